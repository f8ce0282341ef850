package notecrypto

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T) *Cipher {
	t.Helper()

	key := make([]byte, KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)

	c, err := New(key)
	require.NoError(t, err)

	return c
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c := newTestCipher(t)

	for _, plaintext := range []string{
		"rest",
		"patient should drink more water",
		"多休息",
		"line one\nline two",
	} {
		token, err := c.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, token)

		decrypted, err := c.Decrypt(token)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	c := newTestCipher(t)

	first, err := c.Encrypt("rest")
	require.NoError(t, err)

	second, err := c.Encrypt("rest")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLooksEncrypted(t *testing.T) {
	c := newTestCipher(t)

	token, err := c.Encrypt("rest")
	require.NoError(t, err)

	assert.True(t, c.LooksEncrypted(token))
	assert.False(t, c.LooksEncrypted("rest"))
	assert.False(t, c.LooksEncrypted(""))
	assert.False(t, c.LooksEncrypted("not base64 !!!"))
}

func TestDecryptRejectsTampering(t *testing.T) {
	c := newTestCipher(t)

	token, err := c.Encrypt("rest")
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)

	raw[len(raw)-1] ^= 0xff
	tampered := base64.RawURLEncoding.EncodeToString(raw)

	_, err = c.Decrypt(tampered)
	assert.Error(t, err)
}

func TestDecryptRejectsForeignKey(t *testing.T) {
	first := newTestCipher(t)
	second := newTestCipher(t)

	token, err := first.Encrypt("rest")
	require.NoError(t, err)

	_, err = second.Decrypt(token)
	assert.Error(t, err)
}

func TestNewRejectsBadKeyLength(t *testing.T) {
	_, err := New([]byte("too short"))
	assert.Error(t, err)
}

func TestInitFromEnvironment(t *testing.T) {
	key := make([]byte, KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)

	t.Setenv("ENCRYPTION_KEY", base64.StdEncoding.EncodeToString(key))
	require.NoError(t, Init())

	token, err := Encrypt("rest")
	require.NoError(t, err)

	decrypted, err := Decrypt(token)
	require.NoError(t, err)
	assert.Equal(t, "rest", decrypted)
	assert.True(t, LooksEncrypted(token))
}

func TestInitRejectsMissingKey(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "")
	assert.Error(t, Init())
}

func TestInitRejectsWrongLengthKey(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", base64.StdEncoding.EncodeToString([]byte("short")))
	assert.Error(t, Init())
}
