package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titanhire/titanhire/internal/config"
	"github.com/titanhire/titanhire/internal/storage"
	"github.com/titanhire/titanhire/internal/types"
)

func newTestLocal(t *testing.T) (*Local, storage.Store) {
	t.Helper()
	store := storage.NewMemory()
	passwords := &config.PasswordConfig{BcryptCost: 10}
	tokens := testJWTService("local-test-secret")
	return NewLocal(store, passwords, tokens), store
}

func registerReq() *types.RegisterRequest {
	return &types.RegisterRequest{
		Email:    "dana@example.com",
		Password: "Str0ngPass",
		FullName: "Dana Reeves",
		Role:     "Hiring Manager",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	local, _ := newTestLocal(t)

	resp, err := local.Register(ctx, registerReq())
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Dana Reeves", resp.User.Name)
	assert.Equal(t, "Hiring Manager", resp.User.Role)
	assert.NotEmpty(t, resp.Token)

	login, err := local.Login(ctx, &types.LoginRequest{Email: "dana@example.com", Password: "Str0ngPass"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterDefaultsRole(t *testing.T) {
	ctx := context.Background()
	local, _ := newTestLocal(t)

	req := registerReq()
	req.Role = ""
	resp, err := local.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, DefaultRole, resp.User.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	local, _ := newTestLocal(t)

	_, err := local.Register(ctx, registerReq())
	require.NoError(t, err)

	req := registerReq()
	req.Email = "DANA@example.com" // lookup is case-insensitive
	_, err = local.Register(ctx, req)
	var dup *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &dup)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	ctx := context.Background()
	local, _ := newTestLocal(t)

	req := registerReq()
	req.Password = "weakpass"
	_, err := local.Register(ctx, req)
	var authErr *Error
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Message, "uppercase")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	local, _ := newTestLocal(t)

	_, err := local.Register(ctx, registerReq())
	require.NoError(t, err)

	// Wrong password and unknown email produce the same error.
	_, err = local.Login(ctx, &types.LoginRequest{Email: "dana@example.com", Password: "WrongPass1"})
	var invalid *ErrInvalidCredentials
	require.ErrorAs(t, err, &invalid)

	_, err = local.Login(ctx, &types.LoginRequest{Email: "nobody@example.com", Password: "Str0ngPass"})
	require.ErrorAs(t, err, &invalid)
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()
	local, _ := newTestLocal(t)

	t.Run("fails without a session", func(t *testing.T) {
		_, err := local.CurrentUser(ctx)
		var notAuthed *ErrNotAuthenticated
		require.ErrorAs(t, err, &notAuthed)
	})

	t.Run("resolves after login", func(t *testing.T) {
		resp, err := local.Register(ctx, registerReq())
		require.NoError(t, err)

		user, err := local.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, user.ID)
		assert.Equal(t, "dana@example.com", user.Email)
	})
}

func TestLogoutClearsSessionNotJobs(t *testing.T) {
	ctx := context.Background()
	local, store := newTestLocal(t)

	_, err := local.Register(ctx, registerReq())
	require.NoError(t, err)

	// Unrelated workflow data under the jobs key must survive.
	require.NoError(t, store.Set(ctx, storage.KeyJobs, []byte(`[{"id":"a","title":"Kept"}]`)))

	require.NoError(t, local.Logout(ctx))

	token, err := store.Get(ctx, storage.KeyAuthToken)
	require.NoError(t, err)
	assert.Nil(t, token)

	user, err := store.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	assert.Nil(t, user)

	jobsData, err := store.Get(ctx, storage.KeyJobs)
	require.NoError(t, err)
	assert.NotNil(t, jobsData)

	_, err = local.CurrentUser(ctx)
	assert.Error(t, err)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	local, _ := newTestLocal(t)

	_, err := local.Register(ctx, registerReq())
	require.NoError(t, err)

	updated, err := local.UpdateProfile(ctx, &types.UpdateProfileRequest{
		Name:  "Dana R",
		Email: "dana.r@example.com",
		Role:  "Director",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana R", updated.Name)
	assert.Equal(t, "Director", updated.Role)

	// The account record was updated, not just the cache.
	user, err := local.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dana.r@example.com", user.Email)
}

func TestWithFallback(t *testing.T) {
	ctx := context.Background()
	local, _ := newTestLocal(t)
	svc := WithFallback(local)

	t.Run("profile read degrades to placeholder", func(t *testing.T) {
		user, err := svc.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "User", user.Name)
		assert.Equal(t, "user@example.com", user.Email)
		assert.Equal(t, "Team Member", user.Role)
	})

	t.Run("login errors pass through", func(t *testing.T) {
		_, err := svc.Login(ctx, &types.LoginRequest{Email: "nobody@example.com", Password: "Str0ngPass"})
		assert.Error(t, err)
	})

	t.Run("logout never fails", func(t *testing.T) {
		assert.NoError(t, svc.Logout(ctx))
	})
}
