// Package cryptox seals local data at rest: argon2id key derivation from a
// passphrase and AES-GCM authenticated encryption.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	KeySize  = 32
	SaltSize = 16
)

// ErrMalformed is returned by Open when the input is too short to contain a nonce.
var ErrMalformed = errors.New("sealed data is malformed")

// DeriveKey stretches a passphrase into a KeySize-byte AES key.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, KeySize)
}

// NewSalt returns SaltSize random bytes.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// Verifier is a one-way fingerprint of a derived key, stored next to the salt
// so a wrong passphrase can be told apart from corrupt data.
func Verifier(key []byte) []byte {
	sum := sha256.Sum256(key)
	return sum[:]
}

// Verify reports whether key matches a stored verifier.
func Verify(key, verifier []byte) bool {
	return subtle.ConstantTimeCompare(Verifier(key), verifier) == 1
}

// Seal encrypts plaintext with AES-GCM. The random nonce is prepended to the
// returned ciphertext.
func Seal(key, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal.
func Open(key, sealed []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	ns := gcm.NonceSize()
	if len(sealed) < ns {
		return nil, ErrMalformed
	}

	plaintext, err := gcm.Open(nil, sealed[:ns], sealed[ns:], nil)
	if err != nil {
		return nil, fmt.Errorf("open sealed data: %w", err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return gcm, nil
}
