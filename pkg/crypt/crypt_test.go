package crypt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghq/shopdesk/pkg/crypt"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	enc, err := crypt.Encrypt("secret", []byte("hello world"))
	require.NoError(t, err)
	assert.NotContains(t, enc, "hello")

	plain, err := crypt.Decrypt("secret", enc)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(plain))
}

func TestDecryptWithWrongSecretFails(t *testing.T) {
	enc, err := crypt.Encrypt("secret-a", []byte("payload"))
	require.NoError(t, err)

	_, err = crypt.Decrypt("secret-b", enc)
	assert.ErrorIs(t, err, crypt.ErrDecrypt)
}

func TestDecryptGarbageFails(t *testing.T) {
	_, err := crypt.Decrypt("secret", "not-base64!!!")
	assert.ErrorIs(t, err, crypt.ErrDecrypt)
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	a, err := crypt.Encrypt("secret", []byte("same"))
	require.NoError(t, err)
	b, err := crypt.Encrypt("secret", []byte("same"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
