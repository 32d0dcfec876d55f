// Package auth guards the service's admin surface with a single shared
// password exchanged for short-lived JWTs.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims are the JWT claims issued for an authenticated admin.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and validates admin tokens.
type Service struct {
	jwtSecret     []byte
	adminHash     string
	tokenDuration time.Duration
}

// NewService hashes the admin password and returns a ready service.
func NewService(jwtSecret, adminPassword string) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{
		jwtSecret:     []byte(jwtSecret),
		adminHash:     string(hash),
		tokenDuration: 24 * time.Hour,
	}, nil
}

// Authenticate exchanges the admin password for a signed token.
func (s *Service) Authenticate(password string) (string, error) {
	if bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	claims := &Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "xwords",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
