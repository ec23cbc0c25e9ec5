package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pokearch/registry/internal/api/apierr"
	"github.com/pokearch/registry/internal/api/request"
	"github.com/pokearch/registry/internal/api/response"
	"github.com/pokearch/registry/internal/model"
	"github.com/pokearch/registry/internal/services/grants"
)

// GrantHandler handles the runtime-facing grant validation endpoint
type GrantHandler struct {
	grantsService *grants.Service
}

// NewGrantHandler creates a new grant handler
func NewGrantHandler(grantsService *grants.Service) *GrantHandler {
	return &GrantHandler{
		grantsService: grantsService,
	}
}

// Validate handles POST /internal/v1/grants/validate. Senders inside
// the batch are validated here at the boundary before the service sees
// them.
func (h *GrantHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateGrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	grant := &model.GrantRequest{
		FeeRequested: make([]model.Coin, len(req.FeeRequested)),
		Msgs:         make([]model.GrantMsg, len(req.Msgs)),
	}
	for i, c := range req.FeeRequested {
		grant.FeeRequested[i] = model.Coin{Denom: c.Denom, Amount: c.Amount}
	}
	for i, m := range req.Msgs {
		sender, err := model.ParsePrincipal(m.Sender)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		grant.Msgs[i] = model.GrantMsg{
			Sender:  sender,
			TypeURL: m.TypeURL,
			Msg:     m.Msg,
		}
	}

	if err := h.grantsService.Validate(r.Context(), grant); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GrantResponse{Accepted: true})
}
