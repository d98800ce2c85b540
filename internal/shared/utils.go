// Package shared provides utility functions for working with
// random strings and secure memory wiping.
package shared

import (
	"crypto/rand"
	"math/big"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// MakeRandString generates a cryptographically random alphanumeric string
// of the given length. It is used for project secrets, client ids,
// signed-link tokens and stored-file slugs.
//
// Each character is drawn independently and uniformly from the
// [A-Za-z0-9] alphabet via crypto/rand, so the result carries
// log2(62) ≈ 5.95 bits of entropy per character.
//
// It returns an error if the random number generator fails.
func MakeRandString(length int) (string, error) {
	max := big.NewInt(int64(len(alphanumeric)))

	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = alphanumeric[n.Int64()]
	}

	return string(b), nil
}

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Useful for removing key material from memory after use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
