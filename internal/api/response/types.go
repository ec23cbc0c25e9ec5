package response

import (
	"time"

	"github.com/pokearch/registry/internal/model"
)

// Pokemon represents a pokemon in API responses
type Pokemon struct {
	TokenID int64 `json:"token_id"`
	Index   int   `json:"index"`
	Health  int   `json:"health"`
}

// PokemonFromModel converts a model.Pokemon to a response Pokemon
func PokemonFromModel(p model.Pokemon) Pokemon {
	return Pokemon{
		TokenID: p.TokenID,
		Index:   p.Index,
		Health:  p.Health,
	}
}

// Player represents a player in API responses
type Player struct {
	ID             string    `json:"id"`
	Potions        int       `json:"potions"`
	Berries        int       `json:"berries"`
	DefaultPokemon int       `json:"default_pokemon"`
	Pokemons       []Pokemon `json:"pokemons"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	pokemons := make([]Pokemon, len(p.Pokemons))
	for i, pk := range p.Pokemons {
		pokemons[i] = PokemonFromModel(pk)
	}
	return Player{
		ID:             p.ID,
		Potions:        p.Potions,
		Berries:        p.Berries,
		DefaultPokemon: p.DefaultPokemon,
		Pokemons:       pokemons,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// MintRequest represents an emitted mint request in API responses. The
// caller decides when and whether to dispatch it to the minter.
type MintRequest struct {
	TokenID  int64  `json:"token_id"`
	Owner    string `json:"owner"`
	Minter   string `json:"minter"`
	TokenURI string `json:"token_uri"`
}

// MintRequestFromModel converts a model.MintRequest
func MintRequestFromModel(m *model.MintRequest) *MintRequest {
	if m == nil {
		return nil
	}
	return &MintRequest{
		TokenID:  m.TokenID,
		Owner:    m.Owner.String(),
		Minter:   m.Minter.String(),
		TokenURI: m.TokenURI,
	}
}

// PlayerResponse wraps a player and any mint emitted by the operation
type PlayerResponse struct {
	Player Player       `json:"player"`
	Mint   *MintRequest `json:"mint,omitempty"`
}

// AllowanceResponse is the response for allowance queries
type AllowanceResponse struct {
	Address string `json:"address"`
	Allowed bool   `json:"allowed"`
}

// MinterResponse is the response for minter binding and queries
type MinterResponse struct {
	Address string       `json:"address"`
	Mint    *MintRequest `json:"mint,omitempty"`
}

// TokenCountResponse is the response for the token counter query
type TokenCountResponse struct {
	Count int64 `json:"count"`
}

// GrantResponse is the response for an accepted grant validation
type GrantResponse struct {
	Accepted bool `json:"accepted"`
}
