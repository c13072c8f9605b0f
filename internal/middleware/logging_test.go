package middleware

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"

	"github.com/mmynk/foodgram/internal/auth"
)

func TestRPCErrorLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, rpcErrorLevel(connect.NewError(connect.CodeNotFound, errors.New("x"))))
	assert.Equal(t, slog.LevelWarn, rpcErrorLevel(connect.NewError(connect.CodeInvalidArgument, errors.New("x"))))
	assert.Equal(t, slog.LevelError, rpcErrorLevel(connect.NewError(connect.CodeInternal, errors.New("x"))))
	assert.Equal(t, slog.LevelError, rpcErrorLevel(errors.New("plain")))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "recipe not found", errorMessage(connect.NewError(connect.CodeNotFound, errors.New("recipe not found"))))
	assert.Equal(t, "plain", errorMessage(errors.New("plain")))
}

func TestLoggingInterceptorPassesThrough(t *testing.T) {
	want := connect.NewError(connect.CodePermissionDenied, errors.New("not the author"))
	next := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, want
	}

	_, err := LoggingInterceptor()(next)(context.Background(), connect.NewRequest(&struct{}{}))
	assert.Same(t, want, err)
}

func TestWithClaimsFillsCaller(t *testing.T) {
	ctx, who := withCaller(context.Background())
	ctx = WithClaims(ctx, &auth.Claims{UserID: "user-1", Email: "anna@example.com"})

	assert.Equal(t, "user-1", who.userID)
	assert.Equal(t, "user-1", GetUserID(ctx))

	// No slot outside the logging interceptor; WithClaims still works.
	assert.Equal(t, "user-2", GetUserID(WithClaims(context.Background(), &auth.Claims{UserID: "user-2"})))
}
