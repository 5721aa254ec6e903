package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"freshpress/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "freshpress-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token for the given subject, portal
// and role. The token expires after the specified duration.
func GenerateToken(subject, portal, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":    subject,
		"portal": portal,
		"role":   role,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// TokenClaims extracts the subject, portal and role claims from a valid
// token string.
func TokenClaims(tokenString string) (subject, portal, role string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", "", errors.New("invalid token")
	}

	subject, _ = claims["sub"].(string)
	portal, _ = claims["portal"].(string)
	role, _ = claims["role"].(string)
	if subject == "" {
		return "", "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	return subject, portal, role, nil
}
