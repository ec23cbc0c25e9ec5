package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Principal errors
	ErrInvalidPrincipal = errors.New("invalid principal")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already registered")

	// Roster errors
	ErrIndexOutOfRange = errors.New("pokemon index out of range")

	// Minter errors
	ErrMinterNotBound = errors.New("minter contract not bound")

	// Owner errors
	ErrOwnerNotBound = errors.New("owner not bound")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")

	// Grant errors
	ErrDecodePayload = errors.New("cannot decode message payload")
)

// DisallowedMessageError rejects a fee grant whose batch contains a
// message type outside the allow pattern. It carries the offending type
// url so the runtime can report it.
type DisallowedMessageError struct {
	TypeURL string
}

func (e *DisallowedMessageError) Error() string {
	return fmt.Sprintf("message type is not in the allow list: %s", e.TypeURL)
}
