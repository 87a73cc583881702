package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signed admin assertions stay valid for a fixed lifetime regardless of
// process restarts.
const tokenLifetime = 7 * 24 * time.Hour

type jwtTokenStore struct {
	secret []byte
}

func NewJWTTokenStore(secret string) TokenStore {
	return &jwtTokenStore{
		secret: []byte(secret),
	}
}

func (s *jwtTokenStore) Issue() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  now.Add(tokenLifetime).Unix(),
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *jwtTokenStore) IsValid(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	return ok && claims["role"] == "admin"
}

// Revoke is a no-op: signed assertions remain valid until they expire.
func (s *jwtTokenStore) Revoke(string) {}
