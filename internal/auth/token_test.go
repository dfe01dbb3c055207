package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samadhan-setu/grievance-service/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 60)

	token, exp, err := tm.GenerateToken("u-42", domain.RoleHeadDept)
	require.NoError(t, err)
	assert.False(t, exp.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-42", claims.UserID)
	assert.Equal(t, domain.RoleHeadDept, claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("right-secret", 60)
	token, _, err := tm.GenerateToken("u-1", domain.RoleCitizen)
	require.NoError(t, err)

	other := NewTokenManager("wrong-secret", 60)
	_, err = other.ParseToken(token)
	require.Error(t, err)
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", 60)
	_, err := tm.ParseToken("not.a.jwt")
	require.Error(t, err)
}
