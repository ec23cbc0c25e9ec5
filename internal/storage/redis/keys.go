package redis

import (
	"fmt"

	"github.com/pokearch/registry/internal/model"
)

// Key prefix for all registry data
const keyPrefix = "pokearch"

// Key generation functions for each persisted namespace

// ownerKey returns the Redis key for the owner principal
func ownerKey() string {
	return fmt.Sprintf("%s:owner", keyPrefix)
}

// allowanceKey returns the Redis key for one allow-list entry
func allowanceKey(p model.Principal) string {
	return fmt.Sprintf("%s:allowed:%s", keyPrefix, p)
}

// minterKey returns the Redis key for the minter contract reference
func minterKey() string {
	return fmt.Sprintf("%s:minter", keyPrefix)
}

// tokenCountKey returns the Redis key for the global token counter
func tokenCountKey() string {
	return fmt.Sprintf("%s:token", keyPrefix)
}

// playerKey returns the Redis key for a Player
func playerKey(id string) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}
