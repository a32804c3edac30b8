package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewManager("test-secret", time.Minute)

	token, err := manager.GenerateToken("user-1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := NewManager("test-secret", time.Minute)
	token, err := manager.GenerateToken("user-1", "admin")
	require.NoError(t, err)

	other := NewManager("other-secret", time.Minute)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)
	token, err := manager.GenerateToken("user-1", "admin")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbage(t *testing.T) {
	manager := NewManager("test-secret", time.Minute)
	_, err := manager.ValidateToken("not.a.token")
	assert.Error(t, err)
}
