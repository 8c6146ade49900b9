package codec

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// Encrypt seals text with AES-CFB under key and returns it URL-base64
// encoded with the IV prepended. Key must be 16, 24 or 32 bytes.
func Encrypt(key, text []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("encrypt: could not create cipher: %w", err)
	}

	sealed := make([]byte, aes.BlockSize+len(text))
	iv := sealed[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("encrypt: could not read iv: %w", err)
	}

	cfb := cipher.NewCFBEncrypter(block, iv)
	cfb.XORKeyStream(sealed[aes.BlockSize:], text)

	return base64.URLEncoding.EncodeToString(sealed), nil
}

func Decrypt(key []byte, text string) ([]byte, error) {
	sealed, err := base64.URLEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("decrypt: error decoding base64: %w", err)
	}

	if len(sealed) < aes.BlockSize {
		return nil, fmt.Errorf("decrypt: ciphertext too short")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("decrypt: could not create cipher: %w", err)
	}

	iv := sealed[:aes.BlockSize]
	data := make([]byte, len(sealed)-aes.BlockSize)
	cfb := cipher.NewCFBDecrypter(block, iv)
	cfb.XORKeyStream(data, sealed[aes.BlockSize:])

	return data, nil
}
