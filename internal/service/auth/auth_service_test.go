package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"tripma/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	users := repository.NewFileUserRepository(filepath.Join(t.TempDir(), "users.json"))
	return NewAuthService(users, "test-secret", time.Hour)
}

func TestAuthService_signUpAndSignIn(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	user, err := service.SignUp(ctx, "Jane Doe", "jane@x.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", user.Email)
	// stored password must be a hash, not the clear text
	assert.NotEqual(t, "hunter2", user.Password)

	token, signed, err := service.SignIn(ctx, "jane@x.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Jane Doe", signed.Name)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", claims.Email)
}

func TestAuthService_signUpValidation(t *testing.T) {
	service := newTestService(t)

	_, err := service.SignUp(context.Background(), "", "jane@x.com", "pw")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestAuthService_duplicateEmail(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.SignUp(ctx, "Jane", "jane@x.com", "pw")
	require.NoError(t, err)

	_, err = service.SignUp(ctx, "Other", "jane@x.com", "pw")
	assert.ErrorIs(t, err, repository.ErrUserExists)
}

func TestAuthService_badCredentials(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.SignUp(ctx, "Jane", "jane@x.com", "hunter2")
	require.NoError(t, err)

	_, _, err = service.SignIn(ctx, "jane@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = service.SignIn(ctx, "nobody@x.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_validateTokenRejectsGarbage(t *testing.T) {
	service := newTestService(t)

	_, err := service.ValidateToken("")
	assert.Error(t, err)

	_, err = service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestAuthService_expiredToken(t *testing.T) {
	users := repository.NewFileUserRepository(filepath.Join(t.TempDir(), "users.json"))
	service := NewAuthService(users, "test-secret", -time.Minute)
	ctx := context.Background()

	_, err := service.SignUp(ctx, "Jane", "jane@x.com", "pw")
	require.NoError(t, err)

	token, _, err := service.SignIn(ctx, "jane@x.com", "pw")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}
