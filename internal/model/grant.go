package model

import (
	"encoding/json"
	"fmt"
)

// Coin is an amount of a fee denomination requested by a grant.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// GrantMsg describes one message inside a sponsored transaction. Sender
// is populated by the runtime from the transaction signer and can be
// trusted; Msg is the opaque encoded message body.
type GrantMsg struct {
	Sender  Principal `json:"sender"`
	TypeURL string    `json:"type_url"`
	Msg     []byte    `json:"msg"`
}

// Decode interprets the opaque payload as the structured message v.
// Only collaborators that need to inspect the body call this; grant
// validation itself never decodes payloads.
func (m *GrantMsg) Decode(v any) error {
	if err := json.Unmarshal(m.Msg, v); err != nil {
		return fmt.Errorf("%w: %s", ErrDecodePayload, err)
	}
	return nil
}

// GrantRequest is a batch of proposed messages submitted by the runtime
// for fee-sponsorship approval, together with the fee being requested.
type GrantRequest struct {
	FeeRequested []Coin     `json:"fee_requested"`
	Msgs         []GrantMsg `json:"msgs"`
}
