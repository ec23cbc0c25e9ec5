package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pokearch/registry/internal/api/apierr"
	"github.com/pokearch/registry/internal/api/middleware"
	"github.com/pokearch/registry/internal/api/request"
	"github.com/pokearch/registry/internal/api/response"
	"github.com/pokearch/registry/internal/model"
	"github.com/pokearch/registry/internal/services/registry"
)

// MinterHandler handles minter contract binding and token counter endpoints
type MinterHandler struct {
	registryService *registry.Service
}

// NewMinterHandler creates a new minter handler
func NewMinterHandler(registryService *registry.Service) *MinterHandler {
	return &MinterHandler{
		registryService: registryService,
	}
}

// Bind handles PUT /api/v1/minter. Only the owner may bind.
func (h *MinterHandler) Bind(w http.ResponseWriter, r *http.Request) {
	sender := middleware.GetSender(r.Context())
	if sender == "" {
		apierr.WriteError(w, apierr.NewUnauthorizedError())
		return
	}

	var req request.BindMinterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	minter, err := model.ParsePrincipal(req.Address)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	mint, err := h.registryService.BindMinter(r.Context(), sender, minter, req.TokenURI)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MinterResponse{
		Address: minter.String(),
		Mint:    response.MintRequestFromModel(mint),
	})
}

// Get handles GET /api/v1/minter
func (h *MinterHandler) Get(w http.ResponseWriter, r *http.Request) {
	minter, err := h.registryService.Minter(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MinterResponse{
		Address: minter.String(),
	})
}

// TokenCount handles GET /api/v1/token-count
func (h *MinterHandler) TokenCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.registryService.TokenCount(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TokenCountResponse{Count: count})
}
