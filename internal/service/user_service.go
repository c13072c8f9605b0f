package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/foodgram/internal/auth"
	"github.com/mmynk/foodgram/internal/config"
	"github.com/mmynk/foodgram/internal/middleware"
	"github.com/mmynk/foodgram/internal/storage"
	"github.com/mmynk/foodgram/pkg/api"
	"github.com/mmynk/foodgram/pkg/api/apiconnect"
)

var _ apiconnect.UserServiceHandler = (*UserService)(nil)

// UserService implements the Connect UserService.
type UserService struct {
	store         storage.Store
	authenticator auth.Authenticator
	pagination    config.PaginationConfig
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store, authenticator auth.Authenticator, pagination config.PaginationConfig) *UserService {
	return &UserService{store: store, authenticator: authenticator, pagination: pagination}
}

// ListUsers returns a page of users ordered by username.
func (s *UserService) ListUsers(ctx context.Context, req *connect.Request[api.ListUsersRequest]) (*connect.Response[api.ListUsersResponse], error) {
	limit := s.pagination.PageSize(int(req.Msg.Limit))
	offset := max(int(req.Msg.Offset), 0)
	slog.Info("ListUsers request received", "limit", limit, "offset", offset)

	users, total, err := s.store.ListUsers(ctx, limit, offset)
	if err != nil {
		slog.Error("ListUsers failed", "error", err)
		return nil, storageError(err)
	}

	v := viewer{store: s.store, viewerID: middleware.GetUserID(ctx)}
	apiUsers, err := v.users(ctx, users)
	if err != nil {
		slog.Error("ListUsers failed to resolve subscriptions", "error", err)
		return nil, storageError(err)
	}

	slog.Info("ListUsers successful", "count", len(users), "total", total)
	return connect.NewResponse(&api.ListUsersResponse{
		Users: apiUsers,
		Count: int32(total),
	}), nil
}

// GetUser retrieves a user profile by ID.
func (s *UserService) GetUser(ctx context.Context, req *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error) {
	slog.Info("GetUser request received", "user_id", req.Msg.UserId)

	user, err := s.store.GetUserByID(ctx, req.Msg.UserId)
	if err != nil {
		slog.Error("GetUser failed", "user_id", req.Msg.UserId, "error", err)
		return nil, storageError(err)
	}

	v := viewer{store: s.store, viewerID: middleware.GetUserID(ctx)}
	apiUser, err := v.user(ctx, user)
	if err != nil {
		slog.Error("GetUser failed to resolve subscription", "user_id", user.ID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.GetUserResponse{User: apiUser}), nil
}

// SetPassword changes the authenticated user's password.
func (s *UserService) SetPassword(ctx context.Context, req *connect.Request[api.SetPasswordRequest]) (*connect.Response[api.SetPasswordResponse], error) {
	userID, err := requireUser(ctx, apiconnect.UserServiceSetPasswordProcedure)
	if err != nil {
		return nil, err
	}
	slog.Info("SetPassword request received", "user_id", userID)

	if req.Msg.CurrentPassword == "" || req.Msg.NewPassword == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	if err := s.authenticator.ChangeCredential(ctx, userID, req.Msg.CurrentPassword, req.Msg.NewPassword); err != nil {
		slog.Warn("SetPassword failed", "user_id", userID, "error", err)
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrWeakPassword):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, storageError(err)
	}

	slog.Info("Password changed", "user_id", userID)
	return connect.NewResponse(&api.SetPasswordResponse{}), nil
}
