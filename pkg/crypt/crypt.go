// Package crypt provides AES-GCM authenticated encryption for the session
// record at rest.
//
// Ciphertext is base64url-encoded with the random nonce prefixed, so a
// single string can be stored in a file or a Redis value. The secret is
// passed explicitly; callers hand in config.AppKey().
//
//	enc, err := crypt.Encrypt(key, raw)
//	raw, err := crypt.Decrypt(key, enc)
package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// ErrDecrypt is returned when decryption or authentication fails.
var ErrDecrypt = errors.New("crypt: decryption failed")

// deriveKey turns an arbitrary-length secret into a 32-byte AES-256 key.
func deriveKey(secret string) ([]byte, error) {
	if secret == "" {
		return nil, errors.New("crypt: empty secret")
	}
	h := sha256.Sum256([]byte(secret))
	return h[:], nil
}

// Encrypt encrypts data with AES-256-GCM under secret and returns a
// base64url string of nonce || ciphertext || tag.
func Encrypt(secret string, data []byte) (string, error) {
	k, err := deriveKey(secret)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(k)
	if err != nil {
		return "", fmt.Errorf("crypt: new cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("crypt: new GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("crypt: nonce: %w", err)
	}

	// Seal appends ciphertext+tag after the nonce.
	ciphertext := gcm.Seal(nonce, nonce, data, nil)
	return base64.URLEncoding.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt. Any tampering or a wrong secret yields ErrDecrypt.
func Decrypt(secret, encoded string) ([]byte, error) {
	k, err := deriveKey(secret)
	if err != nil {
		return nil, err
	}

	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrDecrypt
	}

	block, err := aes.NewCipher(k)
	if err != nil {
		return nil, fmt.Errorf("crypt: new cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("crypt: new GCM: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return nil, ErrDecrypt
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	return plain, nil
}
