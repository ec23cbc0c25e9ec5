package storage

import (
	"context"

	"github.com/pokearch/registry/internal/model"
)

// Storage defines the interface for data persistence.
//
// Every method commits fully or not at all. Player mutations go through
// the Update methods, which load, apply, and persist under one commit so
// concurrent writers never lose updates or share a token id.
type Storage interface {
	// Owner operations
	SetOwner(ctx context.Context, owner model.Principal) error
	GetOwner(ctx context.Context) (model.Principal, error)

	// Allow-list operations
	AddAllowance(ctx context.Context, p model.Principal) error
	RemoveAllowance(ctx context.Context, p model.Principal) error
	HasAllowance(ctx context.Context, p model.Principal) (bool, error)

	// Minter operations. BindMinter stores the minter reference and
	// resets the token counter to zero in one write.
	BindMinter(ctx context.Context, minter model.Principal) error
	GetMinter(ctx context.Context) (model.Principal, error)

	// Token counter operations
	GetTokenCount(ctx context.Context) (int64, error)

	// Player operations. CreatePlayer fails with model.ErrPlayerExists
	// if the id is taken.
	//
	// UpdatePlayer loads the player (model.ErrPlayerNotFound if absent),
	// applies update, and persists the result atomically. An error from
	// update aborts the write and is returned unchanged.
	//
	// UpdatePlayerWithToken additionally allocates the next token id and
	// commits the advanced counter together with the player, so an id is
	// consumed exactly when the mutation that claimed it lands.
	CreatePlayer(ctx context.Context, player *model.Player) error
	UpdatePlayer(ctx context.Context, id string, update func(*model.Player) error) (*model.Player, error)
	UpdatePlayerWithToken(ctx context.Context, id string, update func(player *model.Player, tokenID int64) error) (*model.Player, int64, error)
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
}
