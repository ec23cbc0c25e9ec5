package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pokearch/registry/internal/api/apierr"
	"github.com/pokearch/registry/internal/api/response"
	"github.com/pokearch/registry/internal/model"
	"github.com/pokearch/registry/internal/services/access"
)

// AllowanceHandler handles allow-list endpoints
type AllowanceHandler struct {
	accessService *access.Service
}

// NewAllowanceHandler creates a new allowance handler
func NewAllowanceHandler(accessService *access.Service) *AllowanceHandler {
	return &AllowanceHandler{
		accessService: accessService,
	}
}

// Grant handles PUT /api/v1/allowances/{address}
func (h *AllowanceHandler) Grant(w http.ResponseWriter, r *http.Request) {
	p, err := model.ParsePrincipal(mux.Vars(r)["address"])
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.accessService.Grant(r.Context(), p); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Revoke handles DELETE /api/v1/allowances/{address}
func (h *AllowanceHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	p, err := model.ParsePrincipal(mux.Vars(r)["address"])
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.accessService.Revoke(r.Context(), p); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Check handles GET /api/v1/allowances/{address}
func (h *AllowanceHandler) Check(w http.ResponseWriter, r *http.Request) {
	p, err := model.ParsePrincipal(mux.Vars(r)["address"])
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	allowed, err := h.accessService.IsAllowed(r.Context(), p)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AllowanceResponse{
		Address: p.String(),
		Allowed: allowed,
	})
}
