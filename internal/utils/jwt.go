package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"insurance-portal/internal/models"
)

type Claims struct {
	UserID   string      `json:"uid"`
	Role     models.Role `json:"role"`
	AgencyID string      `json:"agencyId,omitempty"`
	jwt.RegisteredClaims
}

// SignJWT issues an HS256 token for u with a fresh random jti.
func SignJWT(secret string, u *models.User, ttl time.Duration) (string, *Claims, error) {
	now := time.Now()
	c := &Claims{
		UserID: u.ID, Role: u.Role, AgencyID: u.AgencyID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   u.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	if err != nil {
		return "", nil, err
	}
	return tok, c, nil
}

func ParseJWT(secret, token string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
