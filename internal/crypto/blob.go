package crypto

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// EncryptedBlob is the at-rest form of a sealed value.
type EncryptedBlob struct {
	Ciphertext []byte
	IV         []byte
	AuthTag    []byte
}

type blobJSON struct {
	Encrypted string `json:"encrypted"`
	IV        string `json:"iv"`
	AuthTag   string `json:"authTag"`
}

func (b EncryptedBlob) MarshalJSON() ([]byte, error) {
	return json.Marshal(blobJSON{
		Encrypted: hex.EncodeToString(b.Ciphertext),
		IV:        hex.EncodeToString(b.IV),
		AuthTag:   hex.EncodeToString(b.AuthTag),
	})
}

func (b *EncryptedBlob) UnmarshalJSON(data []byte) error {
	var raw blobJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecryptionError{Reason: "envelope is not valid JSON"}
	}

	var err error
	if b.Ciphertext, err = hex.DecodeString(raw.Encrypted); err != nil {
		return &DecryptionError{Reason: "ciphertext is not hex"}
	}
	if b.IV, err = hex.DecodeString(raw.IV); err != nil {
		return &DecryptionError{Reason: "iv is not hex"}
	}
	if b.AuthTag, err = hex.DecodeString(raw.AuthTag); err != nil {
		return &DecryptionError{Reason: "auth tag is not hex"}
	}
	return nil
}

// MarshalText returns the JSON envelope as stored by the persistence layer.
func (b EncryptedBlob) MarshalText() ([]byte, error) {
	return b.MarshalJSON()
}

func (b *EncryptedBlob) UnmarshalText(text []byte) error {
	return b.UnmarshalJSON(text)
}

// ParseBlob parses a stored envelope string.
func ParseBlob(s string) (*EncryptedBlob, error) {
	var b EncryptedBlob
	if err := b.UnmarshalText([]byte(s)); err != nil {
		return nil, err
	}
	return &b, nil
}

// String returns the stored envelope form.
func (b *EncryptedBlob) String() string {
	data, err := b.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid blob: %v>", err)
	}
	return string(data)
}
