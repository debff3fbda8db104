package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateStateToken mints the opaque state value handed out with an OAuth
// authorization URL. The callback verifies it with ValidateStateToken before
// exchanging the code, so a forged or replayed-after-expiry callback is
// rejected.
func GenerateStateToken(secretKey string, duration time.Duration) (string, error) {
	jti, err := GenerateRandomKey(16)
	if err != nil {
		return "", err
	}

	claims := jwt.RegisteredClaims{
		ID:        jti,
		Issuer:    "crosspostr",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func ValidateStateToken(secretKey, tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid state token")
	}
	return nil
}
