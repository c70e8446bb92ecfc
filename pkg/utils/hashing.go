package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

func HashServiceKey(key string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(key), 10)
	return string(bytes), err
}

// CompareServiceKey checks a presented service key against the bcrypt
// hash configured for machine callers.
func CompareServiceKey(hashedKey string, plainKey string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(plainKey))
}

// GenerateSecureToken returns a hex string of 2*length characters,
// used for share-link tokens.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}

	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(bytes), nil
}
