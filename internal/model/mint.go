package model

// MintRequest asks the external minter contract to mint a token for a
// freshly caught pokemon. It is emitted as a value alongside the updated
// state, never dispatched inline: the registry has committed its own
// writes by the time the runtime forwards the request, and it never
// observes the minter's outcome.
type MintRequest struct {
	TokenID  int64     `json:"token_id"`
	Owner    Principal `json:"owner"`
	Minter   Principal `json:"minter"`
	TokenURI string    `json:"token_uri"`
}
