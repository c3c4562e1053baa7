package service

import (
	"strconv"
	"time"

	"ad-hub/util/common"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultTokenTTL = 30 * time.Minute

// TokenService issues and validates the bearer tokens that prove a user's
// identity. Tokens are HS256 JWTs carrying the user id as subject and an
// absolute expiry; there is no refresh, an expired token simply fails.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    defaultTokenTTL,
	}
}

// Issue signs a token for the given user id, valid for the service TTL.
func (s *TokenService) Issue(userId int) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.Itoa(userId),
		"exp": time.Now().Add(s.ttl).Unix(),
		"jti": uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Resolve validates a token and returns the user id it was issued for.
// A bad signature, wrong algorithm, missing subject or passed expiry all
// come back as ErrInvalidToken.
func (s *TokenService) Resolve(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.NewErrorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrInvalidToken
	}
	userId, err := strconv.Atoi(sub)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return userId, nil
}
