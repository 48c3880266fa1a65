package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, KeySize)
}

func TestEncryptDecrypt(t *testing.T) {
	key := testKey(1)
	plaintext := []byte(`{"id_token":"eyJhbGciOiJIUzI1NiJ9.payload.sig"}`)

	sealed, err := Encrypt(plaintext, key, []byte("auth_state"))
	require.NoError(t, err)
	assert.Len(t, sealed, NonceSize+len(plaintext)+16)
	assert.NotContains(t, string(sealed), "id_token")

	opened, err := Decrypt(sealed, key, []byte("auth_state"))
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestEncrypt_RandomNonce(t *testing.T) {
	key := testKey(2)

	a, err := Encrypt([]byte("same"), key, nil)
	require.NoError(t, err)
	b, err := Encrypt([]byte("same"), key, nil)
	require.NoError(t, err)

	assert.NotEqual(t, a[:NonceSize], b[:NonceSize])
	assert.NotEqual(t, a, b)
}

func TestEncrypt_Errors(t *testing.T) {
	_, err := Encrypt(nil, testKey(1), nil)
	assert.ErrorIs(t, err, ErrEmptyPlaintext)

	_, err = Encrypt([]byte("x"), make([]byte, 16), nil)
	assert.ErrorContains(t, err, "encryption key must be 32 bytes, got 16")
}

func TestDecrypt_Rejects(t *testing.T) {
	key := testKey(3)
	sealed, err := Encrypt([]byte("kakao-access-token"), key, []byte("kakao_token"))
	require.NoError(t, err)

	flipped := append([]byte(nil), sealed...)
	flipped[len(flipped)-1] ^= 0xff

	tests := []struct {
		name string
		data []byte
		key  []byte
		ad   []byte
	}{
		{"wrong key", sealed, testKey(4), []byte("kakao_token")},
		{"value moved under another key", sealed, key, []byte("token")},
		{"tampered tag", flipped, key, []byte("kakao_token")},
		{"truncated", sealed[:NonceSize+4], key, []byte("kakao_token")},
		{"empty", nil, key, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opened, err := Decrypt(tt.data, tt.key, tt.ad)
			assert.ErrorIs(t, err, ErrDecrypt)
			assert.Nil(t, opened)
		})
	}

	_, err = Decrypt(sealed, make([]byte, 8), nil)
	assert.ErrorContains(t, err, "encryption key must be 32 bytes")
}
