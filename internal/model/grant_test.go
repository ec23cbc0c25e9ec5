package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantMsgDecode(t *testing.T) {
	type executePayload struct {
		Contract string `json:"contract"`
		Funds    string `json:"funds"`
	}

	raw, err := json.Marshal(executePayload{Contract: "arch1sender0q2tvdw0s3jn54khce6", Funds: "10aarch"})
	require.NoError(t, err)

	msg := GrantMsg{
		Sender:  "arch1sender0q2tvdw0s3jn54khce6",
		TypeURL: "/cosmwasm.wasm.v1.MsgExecuteContract",
		Msg:     raw,
	}

	var decoded executePayload
	require.NoError(t, msg.Decode(&decoded))
	assert.Equal(t, "10aarch", decoded.Funds)
}

func TestGrantMsgDecodeFailure(t *testing.T) {
	msg := GrantMsg{Msg: []byte("not json")}

	var decoded map[string]any
	err := msg.Decode(&decoded)
	assert.ErrorIs(t, err, ErrDecodePayload)
}
