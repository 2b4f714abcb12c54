package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateAdminToken creates a signed admin JWT with the given lifetime.
func GenerateAdminToken(jwtSecret string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"role": "admin",
		"jti":  GenerateULID(),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ValidateJWT validates a JWT token and returns the claims
func ValidateJWT(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// IsAdmin reports whether the claims carry the admin role.
func IsAdmin(claims jwt.MapClaims) bool {
	role, ok := claims["role"].(string)
	return ok && role == "admin"
}
