package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndResolve(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userId, err := svc.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, 42, userId)
}

func TestTokenService_ResolveGarbage(t *testing.T) {
	svc := NewTokenService("test-secret")

	_, err := svc.Resolve("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ResolveWrongSecret(t *testing.T) {
	token, err := NewTokenService("one-secret").Issue(42)
	require.NoError(t, err)

	_, err = NewTokenService("another-secret").Resolve(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ResolveExpired(t *testing.T) {
	svc := NewTokenService("test-secret")
	svc.ttl = -time.Minute

	token, err := svc.Issue(42)
	require.NoError(t, err)

	_, err = svc.Resolve(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ResolveTampered(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(42)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Resolve(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
