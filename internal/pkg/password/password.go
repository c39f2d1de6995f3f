// Package password is the credential verifier: a thin wrapper over bcrypt
// that owns the work-factor policy. Plaintext never leaves this package and
// is never logged.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost mirrors the platform's historical bcrypt cost. High enough to
// keep verification around the ~100ms mark on commodity hardware.
const DefaultCost = 10

var ErrMismatch = errors.New("password does not match")

// Hasher hashes and verifies passwords with a configurable bcrypt cost.
// The zero value uses DefaultCost.
type Hasher struct {
	Cost int
}

func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return Hasher{Cost: cost}
}

// Hash returns the salted bcrypt hash of plaintext.
func (h Hasher) Hash(plaintext string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = DefaultCost
	}
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify compares plaintext against a stored hash. Returns ErrMismatch on
// any failure so callers cannot distinguish a malformed hash from a wrong
// password.
func (h Hasher) Verify(plaintext, hash string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) != nil {
		return ErrMismatch
	}
	return nil
}
