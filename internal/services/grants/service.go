package grants

import (
	"context"
	"log/slog"

	"github.com/pokearch/registry/internal/model"
	"github.com/pokearch/registry/internal/services/access"
)

// MsgTypeExecute is the one message type a sponsored transaction may
// contain: a generic contract-execute call.
const MsgTypeExecute = "/cosmwasm.wasm.v1.MsgExecuteContract"

// Service validates fee-grant requests submitted by the surrounding
// runtime on behalf of a fee-paying relayer. Validation is strict
// all-or-nothing: the first failing message rejects the whole batch,
// and acceptance has no side effect here.
type Service struct {
	access *access.Service
	logger *slog.Logger
}

// New creates a new grant validation service
func New(access *access.Service, logger *slog.Logger) *Service {
	return &Service{
		access: access,
		logger: logger,
	}
}

// Validate accepts or rejects the batch. A nil return is acceptance.
// Every sender must be on the allow-list and every message must be of
// type MsgTypeExecute; messages are checked in batch order and the
// first failure determines the reported reason.
func (s *Service) Validate(ctx context.Context, grant *model.GrantRequest) error {
	for _, msg := range grant.Msgs {
		allowed, err := s.access.IsAllowed(ctx, msg.Sender)
		if err != nil {
			return err
		}
		if !allowed {
			s.logger.Info("grant rejected",
				slog.String("sender", msg.Sender.String()),
				slog.String("reason", "sender not allowed"),
			)
			return model.ErrUnauthorized
		}

		if msg.TypeURL != MsgTypeExecute {
			s.logger.Info("grant rejected",
				slog.String("sender", msg.Sender.String()),
				slog.String("type_url", msg.TypeURL),
			)
			return &model.DisallowedMessageError{TypeURL: msg.TypeURL}
		}
	}

	return nil
}
