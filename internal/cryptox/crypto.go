// Package cryptox implements the response cipher for upload manifests:
// argon2id key derivation from a project secret and AES-256-CBC encryption
// with a transport encoding of "<hex ciphertext>|<hex iv>".
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// transportDelimiter separates the hex ciphertext from the hex IV in the
// opaque string returned to upload clients.
const transportDelimiter = "|"

var (
	ErrMalformedPayload = errors.New("malformed encrypted payload")
	ErrBadPadding       = errors.New("invalid padding")
)

// DeriveResponseKey derives the 32-byte AES key for a project's upload
// responses from its secret and the application-wide salt.
//
// The derivation is argon2id with time=1, memory=64 MiB, threads=4. It is
// deterministic: every link issued for a project decrypts with the same key.
// The per-link key label deliberately does not participate here.
func DeriveResponseKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// EncryptPayload serializes v to JSON and encrypts it with AES-256-CBC under
// the given key, using a fresh random 16-byte IV per call. The result is the
// transport form "<hex ciphertext>|<hex iv>".
//
// The key must be 32 bytes (as produced by DeriveResponseKey).
func EncryptPayload(v any, key []byte) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(ciphertext) + transportDelimiter + hex.EncodeToString(iv), nil
}

// DecryptPayload reverses EncryptPayload: it parses the transport form,
// decrypts with the given key, strips the padding and unmarshals the JSON
// into v.
func DecryptPayload(payload string, key []byte, v any) error {
	ctHex, ivHex, ok := strings.Cut(payload, transportDelimiter)
	if !ok {
		return ErrMalformedPayload
	}

	ciphertext, err := hex.DecodeString(ctHex)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if len(iv) != aes.BlockSize || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return ErrMalformedPayload
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return err
	}

	return json.Unmarshal(unpadded, v)
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	padded := make([]byte, len(b)+n)
	copy(padded, b)
	for i := len(b); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, ErrBadPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, ErrBadPadding
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, ErrBadPadding
		}
	}
	return b[:len(b)-n], nil
}
