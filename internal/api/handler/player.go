package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pokearch/registry/internal/api/apierr"
	"github.com/pokearch/registry/internal/api/middleware"
	"github.com/pokearch/registry/internal/api/request"
	"github.com/pokearch/registry/internal/api/response"
	"github.com/pokearch/registry/internal/services/registry"
)

// PlayerHandler handles player and roster endpoints
type PlayerHandler struct {
	registryService *registry.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(registryService *registry.Service) *PlayerHandler {
	return &PlayerHandler{
		registryService: registryService,
	}
}

// Register handles POST /api/v1/players
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.ID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("id is required"))
		return
	}

	player, err := h.registryService.Register(r.Context(), req.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerResponse{
		Player: response.PlayerFromModel(player),
	})
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	player, err := h.registryService.GetPlayer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerResponse{
		Player: response.PlayerFromModel(player),
	})
}

// Catch handles POST /api/v1/players/{id}/catch
func (h *PlayerHandler) Catch(w http.ResponseWriter, r *http.Request) {
	sender := middleware.GetSender(r.Context())
	if sender == "" {
		apierr.WriteError(w, apierr.NewUnauthorizedError())
		return
	}

	var req request.CatchPokemonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.TokenURI == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("token_uri is required"))
		return
	}

	player, mint, err := h.registryService.CatchPokemon(
		r.Context(), sender, mux.Vars(r)["id"], req.TokenURI, req.Health, req.CurrPokemon)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerResponse{
		Player: response.PlayerFromModel(player),
		Mint:   response.MintRequestFromModel(mint),
	})
}

// Heal handles POST /api/v1/players/{id}/pokemon/{index}/heal
func (h *PlayerHandler) Heal(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("index must be an integer"))
		return
	}

	player, err := h.registryService.RestoreHealth(r.Context(), vars["id"], index)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerResponse{
		Player: response.PlayerFromModel(player),
	})
}

// CollectBerries handles POST /api/v1/players/{id}/berries
func (h *PlayerHandler) CollectBerries(w http.ResponseWriter, r *http.Request) {
	player, err := h.registryService.CollectBerries(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerResponse{
		Player: response.PlayerFromModel(player),
	})
}

// SetDefaultPokemon handles PUT /api/v1/players/{id}/default-pokemon
func (h *PlayerHandler) SetDefaultPokemon(w http.ResponseWriter, r *http.Request) {
	var req request.SetDefaultPokemonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.registryService.SetDefaultPokemon(r.Context(), mux.Vars(r)["id"], req.Index)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerResponse{
		Player: response.PlayerFromModel(player),
	})
}
