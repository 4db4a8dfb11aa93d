package otp

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

// CodeLength is the number of digits in a verification code.
const CodeLength = 6

// tokenBytes is the entropy of an opaque pairing token. 32 bytes encode to a
// 43-character URL-safe string.
const tokenBytes = 32

// Generator produces verification codes and their opaque pairing tokens.
type Generator interface {
	// Code returns a numeric code of exactly CodeLength digits. Leading zeros
	// are preserved, so the result is a string, never an integer.
	Code() (string, error)
	// Token returns an opaque URL-safe token used to pair a verification
	// request with its stored code.
	Token() (string, error)
}

// Random is a Generator backed by crypto/rand.
type Random struct{}

// NewRandom returns a crypto/rand backed Generator.
func NewRandom() *Random {
	return &Random{}
}

var ten = big.NewInt(10)

// Code draws each digit independently so the distribution over codes is
// uniform, including codes starting with zero.
func (Random) Code() (string, error) {
	buf := make([]byte, CodeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("otp: generate code: %w", err)
		}
		buf[i] = byte('0' + n.Int64())
	}

	return string(buf), nil
}

// Token returns base64url without padding, alphabet [A-Za-z0-9_-].
func (Random) Token() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("otp: generate token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
