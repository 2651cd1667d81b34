// Package roomcode generates the short human-shareable codes that
// identify rooms. Codes are plain pseudo-random; uniqueness is enforced
// against the store, with the insert itself as the final arbiter.
package roomcode

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length   = 6

	maxAttempts = 10
)

// ErrExhausted is returned when maxAttempts generated codes all collide
// with existing rooms. Systemic: the caller should not retry.
var ErrExhausted = errors.New("roomcode: exhausted unique code attempts")

// Generate returns a 6-character code drawn uniformly from A-Z0-9.
func Generate() string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}

// EnsureUnique generates codes until exists reports false, up to
// maxAttempts. The check-then-use sequence is not atomic against
// concurrent creators; the room insert's unique constraint remains the
// true uniqueness confirmation.
func EnsureUnique(ctx context.Context, exists func(ctx context.Context, code string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code := Generate()
		taken, err := exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("roomcode: check code %q: %w", code, err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrExhausted
}
