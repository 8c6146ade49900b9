package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := []byte("0123456789abcdef")

	sealed, err := Encrypt(key, []byte("acct-1"))
	require.NoError(t, err)
	assert.NotEqual(t, "acct-1", sealed)

	plain, err := Decrypt(key, sealed)
	require.NoError(t, err)
	assert.Equal(t, "acct-1", string(plain))
}

func TestEncryptRejectsBadKeyLength(t *testing.T) {
	_, err := Encrypt([]byte("short"), []byte("acct-1"))
	assert.Error(t, err)
}

func TestDecryptRejectsShortCiphertext(t *testing.T) {
	_, err := Decrypt([]byte("0123456789abcdef"), "aGk=")
	assert.Error(t, err)
}

func TestDecryptRejectsInvalidBase64(t *testing.T) {
	_, err := Decrypt([]byte("0123456789abcdef"), "not base64!!")
	assert.Error(t, err)
}
