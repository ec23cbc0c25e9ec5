package model

import (
	"fmt"
	"strings"
)

// Principal is a validated identifier for an actor: the registry owner,
// a player's account, the minter contract, or a fee-paying relayer.
type Principal string

const (
	principalMinLen = 8
	principalMaxLen = 90
	// principalCharset is the data charset, matching bech32 addresses.
	principalCharset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
)

// ParsePrincipal validates the wire form of a principal. All external
// input passes through here before reaching any service; services may
// assume a Principal is well-formed.
func ParsePrincipal(s string) (Principal, error) {
	if len(s) < principalMinLen || len(s) > principalMaxLen {
		return "", fmt.Errorf("%w: length %d", ErrInvalidPrincipal, len(s))
	}
	if s != strings.ToLower(s) {
		return "", fmt.Errorf("%w: must be lowercase", ErrInvalidPrincipal)
	}
	sep := strings.LastIndex(s, "1")
	if sep < 1 {
		return "", fmt.Errorf("%w: missing separator", ErrInvalidPrincipal)
	}
	hrp, data := s[:sep], s[sep+1:]
	for _, c := range hrp {
		if c < 'a' || c > 'z' {
			return "", fmt.Errorf("%w: bad prefix character %q", ErrInvalidPrincipal, c)
		}
	}
	if len(data) < 6 {
		return "", fmt.Errorf("%w: data part too short", ErrInvalidPrincipal)
	}
	for _, c := range data {
		if !strings.ContainsRune(principalCharset, c) {
			return "", fmt.Errorf("%w: bad data character %q", ErrInvalidPrincipal, c)
		}
	}
	return Principal(s), nil
}

// String returns the wire form.
func (p Principal) String() string {
	return string(p)
}
