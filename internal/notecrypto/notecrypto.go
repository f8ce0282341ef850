// Package notecrypto encrypts and decrypts note content at the storage
// boundary so plaintext never reaches the database.
package notecrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

// KeySize is the required length of the AES-256 key in bytes.
const KeySize = 32

type Cipher struct {
	aead cipher.AEAD
}

func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt seals the plaintext with a fresh random nonce and returns a
// base64url token. Two calls with the same input produce different tokens.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (c *Cipher) Decrypt(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("malformed ciphertext: %w", err)
	}

	if len(raw) < c.aead.NonceSize() {
		return "", fmt.Errorf("malformed ciphertext: too short")
	}

	nonce, sealed := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]

	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("malformed ciphertext: %w", err)
	}

	return string(plaintext), nil
}

// LooksEncrypted reports whether the value decrypts under our key. This is
// a best-effort probe, not a format check: a value that merely happens to
// decrypt is indistinguishable from real ciphertext.
func (c *Cipher) LooksEncrypted(value string) bool {
	_, err := c.Decrypt(value)
	return err == nil
}

var defaultCipher *Cipher

// Init builds the process-wide cipher from the base64-encoded 32-byte key
// in ENCRYPTION_KEY.
func Init() error {
	encoded := os.Getenv("ENCRYPTION_KEY")
	if encoded == "" {
		return fmt.Errorf("ENCRYPTION_KEY environment variable is not set")
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("ENCRYPTION_KEY must be base64: %w", err)
	}

	c, err := New(key)
	if err != nil {
		return err
	}

	defaultCipher = c
	return nil
}

func Encrypt(plaintext string) (string, error) {
	return defaultCipher.Encrypt(plaintext)
}

func Decrypt(token string) (string, error) {
	return defaultCipher.Decrypt(token)
}

func LooksEncrypted(value string) bool {
	return defaultCipher.LooksEncrypted(value)
}
