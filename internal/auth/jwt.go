package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// secretKey signs the staff session tokens. Read from JWT_SECRET; the
// fallback exists only so a bare dev environment still boots.
func secretKey() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("elite-gastro-dev-secret-change-me")
}

// GenerateToken creates a session JWT for a staff member. Floor shifts top
// out around twelve hours, so that's the token lifetime.
func GenerateToken(staffName string) (string, error) {
	claims := jwt.MapClaims{
		"sub": staffName,
		"exp": time.Now().Add(12 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string, returning the staff
// name it was issued to.
func ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return "", err // expired or malformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}

	staffName, ok := claims["sub"].(string)
	if !ok || staffName == "" {
		return "", errors.New("token has no subject")
	}
	return staffName, nil
}
