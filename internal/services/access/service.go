package access

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pokearch/registry/internal/model"
	"github.com/pokearch/registry/internal/storage"
)

// Service owns the registry's owner principal and the allow-list of
// principals whose actions may be fee-sponsored.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new access control service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Bootstrap binds the owner principal on first start and auto-allows
// it. On later starts the stored owner wins and the call is a no-op.
func (s *Service) Bootstrap(ctx context.Context, owner model.Principal) error {
	existing, err := s.storage.GetOwner(ctx)
	if err == nil {
		if existing != owner {
			s.logger.Warn("owner already bound, ignoring configured owner",
				slog.String("owner", existing.String()))
		}
		return nil
	}
	if !errors.Is(err, model.ErrOwnerNotBound) {
		return err
	}

	if err := s.storage.SetOwner(ctx, owner); err != nil {
		return err
	}
	if err := s.storage.AddAllowance(ctx, owner); err != nil {
		return err
	}

	s.logger.Info("owner bound", slog.String("owner", owner.String()))
	return nil
}

// Owner returns the bound owner principal.
func (s *Service) Owner(ctx context.Context) (model.Principal, error) {
	return s.storage.GetOwner(ctx)
}

// IsAllowed reports whether the principal is on the allow-list.
func (s *Service) IsAllowed(ctx context.Context, p model.Principal) (bool, error) {
	return s.storage.HasAllowance(ctx, p)
}

// Grant adds a principal to the allow-list. Idempotent.
//
// There is intentionally no check on who the caller is: only the minter
// binding is owner-gated. Allow-list edits are open to any sender.
func (s *Service) Grant(ctx context.Context, p model.Principal) error {
	if err := s.storage.AddAllowance(ctx, p); err != nil {
		return err
	}
	s.logger.Info("allowance granted", slog.String("principal", p.String()))
	return nil
}

// Revoke removes a principal from the allow-list. Removing an absent
// principal is not an error.
func (s *Service) Revoke(ctx context.Context, p model.Principal) error {
	if err := s.storage.RemoveAllowance(ctx, p); err != nil {
		return err
	}
	s.logger.Info("allowance revoked", slog.String("principal", p.String()))
	return nil
}
