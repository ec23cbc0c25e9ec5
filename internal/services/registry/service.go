package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pokearch/registry/internal/dependencies/clock"
	"github.com/pokearch/registry/internal/model"
	"github.com/pokearch/registry/internal/storage"
)

// Service owns the player roster, each player's pokemon inventory, and
// the global token counter. Mutations that emit a mint return the
// MintRequest as a value; dispatching it is the caller's business.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	// self is the registry's own principal, used as the owner of the
	// bookkeeping token minted when the minter contract is bound.
	self model.Principal
}

// New creates a new registry service
func New(storage storage.Storage, clk clock.Clock, self model.Principal, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
		self:    self,
	}
}

// Register creates a player with the free starter pokemon. The starter
// does not consume the token counter.
func (s *Service) Register(ctx context.Context, id string) (*model.Player, error) {
	player := model.NewPlayer(id, s.clock.Now())
	if err := s.storage.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player registered", slog.String("player", id))
	return player, nil
}

// GetPlayer retrieves a player by id
func (s *Service) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// TokenCount returns the current value of the global token counter
func (s *Service) TokenCount(ctx context.Context) (int64, error) {
	return s.storage.GetTokenCount(ctx)
}

// CatchPokemon appends a fresh full-health pokemon with the next token
// id to the player's roster and sets the health of the pokemon at
// currPokemon to the given value. currPokemon is resolved against the
// roster after the append, so it may refer to the new pokemon itself.
//
// Token allocation happens inside the storage update, so concurrent
// catches each get a distinct id and the counter advances exactly once
// per committed catch. The returned MintRequest asks the minter
// contract to mint the new token to sender; the mint is fire-and-forget,
// and a minter-side failure after the commit leaves a roster entry with
// no on-chain token, a gap the registry does not reconcile.
func (s *Service) CatchPokemon(
	ctx context.Context,
	sender model.Principal,
	id string,
	tokenURI string,
	health int,
	currPokemon int,
) (*model.Player, *model.MintRequest, error) {
	minter, err := s.storage.GetMinter(ctx)
	if err != nil {
		return nil, nil, err
	}

	player, tokenID, err := s.storage.UpdatePlayerWithToken(ctx, id, func(player *model.Player, tokenID int64) error {
		player.Pokemons = append(player.Pokemons, model.Pokemon{
			TokenID: tokenID,
			Index:   len(player.Pokemons),
			Health:  model.FullHealth,
		})

		if currPokemon < 0 || currPokemon >= len(player.Pokemons) {
			return fmt.Errorf("%w: %d", model.ErrIndexOutOfRange, currPokemon)
		}
		player.Pokemons[currPokemon].Health = health
		player.UpdatedAt = s.clock.Now()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("pokemon caught",
		slog.String("player", id),
		slog.Int64("token_id", tokenID),
	)

	mint := &model.MintRequest{
		TokenID:  tokenID,
		Owner:    sender,
		Minter:   minter,
		TokenURI: tokenURI,
	}
	return player, mint, nil
}

// RestoreHealth heals the pokemon at the given roster index back to
// full health.
func (s *Service) RestoreHealth(ctx context.Context, id string, index int) (*model.Player, error) {
	return s.storage.UpdatePlayer(ctx, id, func(player *model.Player) error {
		if index < 0 || index >= len(player.Pokemons) {
			return fmt.Errorf("%w: %d", model.ErrIndexOutOfRange, index)
		}
		player.Pokemons[index].Health = model.FullHealth
		player.UpdatedAt = s.clock.Now()
		return nil
	})
}

// CollectBerries awards the player one berry
func (s *Service) CollectBerries(ctx context.Context, id string) (*model.Player, error) {
	return s.storage.UpdatePlayer(ctx, id, func(player *model.Player) error {
		player.Berries++
		player.UpdatedAt = s.clock.Now()
		return nil
	})
}

// SetDefaultPokemon records the player's preferred roster index. The
// index is stored as given, without a range check against the roster.
func (s *Service) SetDefaultPokemon(ctx context.Context, id string, index int) (*model.Player, error) {
	return s.storage.UpdatePlayer(ctx, id, func(player *model.Player) error {
		player.DefaultPokemon = index
		player.UpdatedAt = s.clock.Now()
		return nil
	})
}

// BindMinter binds the external minter contract and resets the token
// counter. Only the owner may call it; the check reads the owner
// principal directly rather than consulting the allow-list. The
// returned MintRequest mints the bookkeeping token 0 to the registry's
// own principal.
func (s *Service) BindMinter(
	ctx context.Context,
	caller model.Principal,
	minter model.Principal,
	tokenURI string,
) (*model.MintRequest, error) {
	owner, err := s.storage.GetOwner(ctx)
	if err != nil {
		return nil, err
	}
	if caller != owner {
		return nil, model.ErrUnauthorized
	}

	if err := s.storage.BindMinter(ctx, minter); err != nil {
		return nil, err
	}

	s.logger.Info("minter bound", slog.String("minter", minter.String()))

	return &model.MintRequest{
		TokenID:  0,
		Owner:    s.self,
		Minter:   minter,
		TokenURI: tokenURI,
	}, nil
}

// Minter returns the bound minter contract principal
func (s *Service) Minter(ctx context.Context) (model.Principal, error) {
	return s.storage.GetMinter(ctx)
}
