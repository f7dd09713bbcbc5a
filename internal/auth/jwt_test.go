package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/models"
)

func TestGenerateAndVerify(t *testing.T) {
	mgr := NewManager("test-secret", 60)

	token, err := mgr.Generate("user-123", models.UserTypeHacker)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.Subject)
	require.Equal(t, "hacker", claims.Role)
	require.NotEmpty(t, claims.ID, "token id should be set")
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", 60).Generate("user-123", models.UserTypeClient)
	require.NoError(t, err)

	_, err = NewManager("secret-b", 60).Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	mgr := NewManager("test-secret", -1)
	token, err := mgr.Generate("user-123", models.UserTypeClient)
	require.NoError(t, err)

	_, err = mgr.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewManager("test-secret", 60).Verify("not.a.token")
	require.Error(t, err)
}
