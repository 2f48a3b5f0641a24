// Package crypto implements the envelope cipher that protects key material at
// rest: AES-256-GCM keyed by SHA-256 of a process-wide secret.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	keyLen = 32
	ivLen  = 16
	tagLen = 16
)

var ErrEmptySecret = errors.New("encryption secret is empty")

// Cipher seals and opens EncryptedBlobs with a single derived key.
// It is safe for concurrent use.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher derives the AES key from secret. The caller may zero secret
// after the call.
func NewCipher(secret []byte) (*Cipher, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	key := sha256.Sum256(secret)
	defer clear(key[:])

	block, err := aes.NewCipher(key[:keyLen])
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	// 16-byte IVs keep blobs readable by the services that wrote them first.
	aead, err := cipher.NewGCMWithNonceSize(block, ivLen)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random IV.
func (c *Cipher) Encrypt(plaintext []byte) (*EncryptedBlob, error) {
	iv := make([]byte, ivLen)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("failed to generate iv: %w", err)
	}

	sealed := c.aead.Seal(nil, iv, plaintext, nil)
	split := len(sealed) - tagLen

	return &EncryptedBlob{
		Ciphertext: sealed[:split],
		IV:         iv,
		AuthTag:    sealed[split:],
	}, nil
}

// EncryptJSON marshals v and seals the result.
func (c *Cipher) EncryptJSON(v any) (*EncryptedBlob, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plaintext: %w", err)
	}
	defer clear(plaintext) // wipe plaintext bytes from memory

	return c.Encrypt(plaintext)
}
