package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tavolo/internal/domain/access"
)

// Claims carries the principal attributes in the access token
type Claims struct {
	UserID       uint        `json:"user_id"`
	Role         access.Role `json:"role"`
	RestaurantID uint        `json:"restaurant_id,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate signs an access token for the given principal
func (s *JWTService) Generate(principal access.Principal) (string, error) {
	now := time.Now().UTC()

	claims := &Claims{
		UserID:       principal.UserID,
		Role:         principal.Role,
		RestaurantID: principal.RestaurantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.accessExpMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates an access token
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Principal converts verified claims into the engine's principal
func (c *Claims) Principal() *access.Principal {
	return &access.Principal{
		UserID:       c.UserID,
		Role:         c.Role,
		RestaurantID: c.RestaurantID,
	}
}
