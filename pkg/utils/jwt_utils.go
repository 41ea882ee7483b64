package utils

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecretOnce sync.Once
	jwtSecretKey  []byte
)

// jwtSecret returns the key that signs and verifies donor session tokens,
// read from JWT_SECRET on first use. Resolving lazily matters: main loads
// .env after package init, so a package-level var would capture the dev
// default before the configured secret exists.
func jwtSecret() []byte {
	jwtSecretOnce.Do(func() {
		jwtSecretKey = []byte(Getenv("JWT_SECRET", "bloodlink-dev-secret-change-me"))
	})
	return jwtSecretKey
}

// AccessTokenTTL is how long a donor session token stays valid.
const AccessTokenTTL = 72 * time.Hour

// Claims defines the JWT claims structure for a logged-in donor.
type Claims struct {
	DonorID  string `json:"donor_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	jwt.RegisteredClaims
}

// GenerateAccessToken creates a new JWT access token for a donor.
func GenerateAccessToken(donorID, email, fullName string) (string, error) {
	claims := Claims{
		DonorID:  donorID,
		Email:    email,
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken parses and validates a token string, returning the donor claims.
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
