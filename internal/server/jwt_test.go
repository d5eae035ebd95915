package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradeepreddy0/CampusHireAI/internal/config"
	"github.com/pradeepreddy0/CampusHireAI/internal/types"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "0123456789abcdef0123456789abcdef",
		ExpirationHours: 1,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, types.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.GetUserID())
	assert.Equal(t, types.RoleAdmin, claims.GetRole())
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := testJWTService()

	token, err := svc.GenerateToken(uuid.New(), types.RoleStudent)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.ValidateToken(tampered)
	assert.Error(t, err)
}

func TestJWTService_RejectsTokenFromOtherSecret(t *testing.T) {
	other := NewJWTService(&config.JWTConfig{
		Secret:          "ffffffffffffffffffffffffffffffff",
		ExpirationHours: 1,
	})

	token, err := other.GenerateToken(uuid.New(), types.RoleStudent)
	require.NoError(t, err)

	_, err = testJWTService().ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	_, err := testJWTService().ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestAsTokenValidator_ReturnsIdentity(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, types.RoleStudent)
	require.NoError(t, err)

	identity, err := svc.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, identity.GetUserID())
	assert.Equal(t, types.RoleStudent, identity.GetRole())
}
