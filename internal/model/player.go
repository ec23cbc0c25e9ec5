package model

import "time"

// Pokemon is a collectible owned by a player. TokenID is the globally
// unique id assigned from the token counter at catch time; Index is the
// pokemon's position in its owner's roster when it was caught.
type Pokemon struct {
	TokenID int64 `json:"token_id"`
	Index   int   `json:"index"`
	Health  int   `json:"health"`
}

// FullHealth is the health assigned to every freshly caught pokemon and
// restored by healing.
const FullHealth = 100

// Player is a registered participant and their pokemon roster.
// Potions is carried in the persisted record but no operation spends or
// awards them yet.
type Player struct {
	ID             string    `json:"id"`
	Potions        int       `json:"potions"`
	Berries        int       `json:"berries"`
	DefaultPokemon int       `json:"default_pokemon"`
	Pokemons       []Pokemon `json:"pokemons"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewPlayer creates a fresh player with the free starter pokemon.
// The starter carries token id 0 and does not consume the global token
// counter; the first catch mints token id 1.
func NewPlayer(id string, now time.Time) *Player {
	return &Player{
		ID:             id,
		DefaultPokemon: 0,
		Pokemons: []Pokemon{
			{TokenID: 0, Index: 0, Health: FullHealth},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
