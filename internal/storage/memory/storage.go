package memory

import (
	"context"
	"sync"

	"github.com/pokearch/registry/internal/model"
	"github.com/pokearch/registry/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	owner      model.Principal
	ownerBound bool

	allowed map[model.Principal]struct{}

	minter      model.Principal
	minterBound bool
	tokenCount  int64

	players map[string]*model.Player
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		allowed: make(map[model.Principal]struct{}),
		players: make(map[string]*model.Player),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Owner operations

func (s *Storage) SetOwner(ctx context.Context, owner model.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owner = owner
	s.ownerBound = true
	return nil
}

func (s *Storage) GetOwner(ctx context.Context) (model.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ownerBound {
		return "", model.ErrOwnerNotBound
	}
	return s.owner, nil
}

// Allow-list operations

func (s *Storage) AddAllowance(ctx context.Context, p model.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allowed[p] = struct{}{}
	return nil
}

func (s *Storage) RemoveAllowance(ctx context.Context, p model.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.allowed, p)
	return nil
}

func (s *Storage) HasAllowance(ctx context.Context, p model.Principal) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.allowed[p]
	return ok, nil
}

// Minter operations

func (s *Storage) BindMinter(ctx context.Context, minter model.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.minter = minter
	s.minterBound = true
	s.tokenCount = 0
	return nil
}

func (s *Storage) GetMinter(ctx context.Context) (model.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.minterBound {
		return "", model.ErrMinterNotBound
	}
	return s.minter, nil
}

// Token counter operations

func (s *Storage) GetTokenCount(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokenCount, nil
}

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[player.ID]; ok {
		return model.ErrPlayerExists
	}
	s.players[player.ID] = clonePlayer(player)
	return nil
}

func (s *Storage) UpdatePlayer(ctx context.Context, id string, update func(*model.Player) error) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}

	player := clonePlayer(stored)
	if err := update(player); err != nil {
		return nil, err
	}

	s.players[id] = clonePlayer(player)
	return player, nil
}

func (s *Storage) UpdatePlayerWithToken(ctx context.Context, id string, update func(player *model.Player, tokenID int64) error) (*model.Player, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.players[id]
	if !ok {
		return nil, 0, model.ErrPlayerNotFound
	}

	player := clonePlayer(stored)
	tokenID := s.tokenCount + 1
	if err := update(player, tokenID); err != nil {
		return nil, 0, err
	}

	s.players[id] = clonePlayer(player)
	s.tokenCount = tokenID
	return player, tokenID, nil
}

func (s *Storage) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return clonePlayer(player), nil
}

// clonePlayer deep-copies a player so callers cannot mutate stored
// state outside a save.
func clonePlayer(p *model.Player) *model.Player {
	cp := *p
	cp.Pokemons = make([]model.Pokemon, len(p.Pokemons))
	copy(cp.Pokemons, p.Pokemons)
	return &cp
}
