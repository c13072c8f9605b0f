package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/foodgram/internal/auth"
	"github.com/mmynk/foodgram/internal/middleware"
	"github.com/mmynk/foodgram/internal/storage"
	"github.com/mmynk/foodgram/internal/validation"
)

var (
	errNotAuthor     = errors.New("only the author may modify this recipe")
	errSelfSubscribe = errors.New("cannot subscribe to yourself")
)

// storageError maps a storage error onto a Connect error code.
func storageError(err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrConflict):
		return connect.NewError(connect.CodeAlreadyExists, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// validate runs struct validation and converts failures to InvalidArgument.
func validate(input any) error {
	if err := validation.ValidateStruct(input); err != nil {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return nil
}

// requireUser returns the authenticated user ID or an Unauthenticated error.
func requireUser(ctx context.Context, procedure string) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		slog.Warn("Anonymous call to authenticated procedure", "procedure", procedure)
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}
