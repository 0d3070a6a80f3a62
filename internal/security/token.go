package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ShareClaims carries the identity baked into a profile share deep link.
type ShareClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateShareToken creates a signed token embedded in profile share links so
// the linked user id cannot be forged. Links expire after 7 days.
func GenerateShareToken(userID uint, email, secret string) (string, error) {
	claims := &ShareClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateShareToken validates and parses a share token
func ValidateShareToken(tokenString, secret string) (*ShareClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ShareClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*ShareClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
