// Package otp generates numeric one-time codes for password resets.
package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	DefaultLength = 6
	MinLength     = 4
	MaxLength     = 10
)

var ErrInvalidLength = errors.New("code length must be between 4 and 10")

// Generate returns a cryptographically random, zero-padded numeric code
// of the given length. A 6-digit code covers 000000 through 999999
// inclusive, all equally likely.
func Generate(length int) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", ErrInvalidLength
	}

	bound := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}

	return fmt.Sprintf("%0*d", length, n), nil
}

// GenerateDefault returns a 6-digit code.
func GenerateDefault() (string, error) {
	return Generate(DefaultLength)
}
