package crypto

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DecryptionError is returned when a blob cannot be opened: wrong key,
// tampered ciphertext or tag, or a malformed envelope.
type DecryptionError struct {
	Reason string
}

func (e *DecryptionError) Error() string {
	return "decryption failed: " + e.Reason
}

// IsDecryptionError reports whether err is or wraps a *DecryptionError.
func IsDecryptionError(err error) bool {
	var de *DecryptionError
	return errors.As(err, &de)
}

// Decrypt opens blob. It never returns partial plaintext.
func (c *Cipher) Decrypt(blob *EncryptedBlob) ([]byte, error) {
	if blob == nil {
		return nil, &DecryptionError{Reason: "blob is nil"}
	}
	if len(blob.IV) != ivLen {
		return nil, &DecryptionError{Reason: fmt.Sprintf("iv must be %d bytes", ivLen)}
	}
	if len(blob.AuthTag) != tagLen {
		return nil, &DecryptionError{Reason: fmt.Sprintf("auth tag must be %d bytes", tagLen)}
	}

	sealed := make([]byte, 0, len(blob.Ciphertext)+tagLen)
	sealed = append(sealed, blob.Ciphertext...)
	sealed = append(sealed, blob.AuthTag...)

	plaintext, err := c.aead.Open(nil, blob.IV, sealed, nil)
	if err != nil {
		return nil, &DecryptionError{Reason: "authentication failed"}
	}
	return plaintext, nil
}

// DecryptJSON opens blob and unmarshals the plaintext into v.
func (c *Cipher) DecryptJSON(blob *EncryptedBlob, v any) error {
	plaintext, err := c.Decrypt(blob)
	if err != nil {
		return err
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	if err := json.Unmarshal(plaintext, v); err != nil {
		return &DecryptionError{Reason: "plaintext is not valid JSON"}
	}
	return nil
}
