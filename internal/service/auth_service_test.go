package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/foodgram/pkg/api"
)

func TestRegister(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	token, user := env.register(t, "anna")
	assert.NotEmpty(t, token)
	assert.Equal(t, "anna", user.Username)
	assert.Equal(t, "anna@example.com", user.Email)
	assert.False(t, user.IsSubscribed)

	claims, err := env.jwt.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.Id, claims.UserID)

	tests := []struct {
		name string
		req  *api.RegisterRequest
		code connect.Code
	}{
		{
			name: "duplicate email",
			req:  &api.RegisterRequest{Email: "anna@example.com", Username: "anna2", FirstName: "A", LastName: "B", Password: testPassword},
			code: connect.CodeAlreadyExists,
		},
		{
			name: "duplicate username",
			req:  &api.RegisterRequest{Email: "other@example.com", Username: "anna", FirstName: "A", LastName: "B", Password: testPassword},
			code: connect.CodeAlreadyExists,
		},
		{
			name: "weak password",
			req:  &api.RegisterRequest{Email: "weak@example.com", Username: "weak", FirstName: "A", LastName: "B", Password: "short"},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "reserved username",
			req:  &api.RegisterRequest{Email: "me@example.com", Username: "me", FirstName: "A", LastName: "B", Password: testPassword},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "username with spaces",
			req:  &api.RegisterRequest{Email: "sp@example.com", Username: "two words", FirstName: "A", LastName: "B", Password: testPassword},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "invalid email",
			req:  &api.RegisterRequest{Email: "not-an-email", Username: "nomail", FirstName: "A", LastName: "B", Password: testPassword},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "missing names",
			req:  &api.RegisterRequest{Email: "anon@example.com", Username: "anon", Password: testPassword},
			code: connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.Register(ctx, connect.NewRequest(tt.req))
			requireCode(t, tt.code, err)
		})
	}
}

func TestLogin(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	_, user := env.register(t, "anna")

	resp, err := env.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
		Email:    "anna@example.com",
		Password: testPassword,
	}))
	require.NoError(t, err)
	assert.Equal(t, user.Id, resp.Msg.User.Id)
	assert.NotEmpty(t, resp.Msg.Token)

	_, err = env.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
		Email:    "anna@example.com",
		Password: "wrong-password",
	}))
	requireCode(t, connect.CodeUnauthenticated, err)

	_, err = env.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
		Email:    "nobody@example.com",
		Password: testPassword,
	}))
	requireCode(t, connect.CodeUnauthenticated, err)

	_, err = env.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Email: "anna@example.com"}))
	requireCode(t, connect.CodeInvalidArgument, err)
}

func TestGetCurrentUser(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	token, user := env.register(t, "anna")

	resp, err := env.auth.GetCurrentUser(ctx, authed(&api.GetCurrentUserRequest{}, token))
	require.NoError(t, err)
	assert.Equal(t, user.Id, resp.Msg.User.Id)
	assert.Equal(t, "anna", resp.Msg.User.Username)

	_, err = env.auth.GetCurrentUser(ctx, authed(&api.GetCurrentUserRequest{}, ""))
	requireCode(t, connect.CodeUnauthenticated, err)

	_, err = env.auth.GetCurrentUser(ctx, authed(&api.GetCurrentUserRequest{}, "garbage"))
	requireCode(t, connect.CodeUnauthenticated, err)
}

func TestLogout(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	token, _ := env.register(t, "anna")

	_, err := env.auth.Logout(ctx, authed(&api.LogoutRequest{}, token))
	require.NoError(t, err)

	_, err = env.auth.Logout(ctx, authed(&api.LogoutRequest{}, ""))
	requireCode(t, connect.CodeUnauthenticated, err)
}
