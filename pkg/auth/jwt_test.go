package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateToken("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestJWTManager_WrongSecretRejected(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour, 24*time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour, 24*time.Hour)

	token, err := issuer.GenerateToken("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_ExpiredTokenRejected(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateToken("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_GarbageRejected(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	_, err := m.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22pass")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22pass", hash)

	assert.True(t, CheckPasswordHash("hunter22pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
