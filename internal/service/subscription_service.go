package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/foodgram/internal/config"
	"github.com/mmynk/foodgram/internal/middleware"
	"github.com/mmynk/foodgram/internal/storage"
	"github.com/mmynk/foodgram/pkg/api"
	"github.com/mmynk/foodgram/pkg/api/apiconnect"
)

var _ apiconnect.SubscriptionServiceHandler = (*SubscriptionService)(nil)

// SubscriptionService implements the Connect SubscriptionService.
// It is mounted behind RequireAuth, so every call has a user ID.
type SubscriptionService struct {
	store      storage.Store
	pagination config.PaginationConfig
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(store storage.Store, pagination config.PaginationConfig) *SubscriptionService {
	return &SubscriptionService{store: store, pagination: pagination}
}

// Subscribe follows an author.
func (s *SubscriptionService) Subscribe(ctx context.Context, req *connect.Request[api.SubscribeRequest]) (*connect.Response[api.SubscribeResponse], error) {
	userID := middleware.GetUserID(ctx)
	authorID := req.Msg.AuthorId
	slog.Info("Subscribe request received", "user_id", userID, "author_id", authorID)

	if authorID == userID {
		return nil, connect.NewError(connect.CodeInvalidArgument, errSelfSubscribe)
	}

	author, err := s.store.GetUserByID(ctx, authorID)
	if err != nil {
		slog.Error("Subscribe failed", "author_id", authorID, "error", err)
		return nil, storageError(err)
	}

	if err := s.store.CreateFollow(ctx, userID, authorID); err != nil {
		slog.Warn("Subscribe failed", "user_id", userID, "author_id", authorID, "error", err)
		return nil, storageError(err)
	}

	v := viewer{store: s.store, viewerID: userID}
	sub, err := v.subscription(ctx, author, max(int(req.Msg.RecipesLimit), 0))
	if err != nil {
		slog.Error("Subscribe failed to build response", "author_id", authorID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Subscribed", "user_id", userID, "author_id", authorID)
	return connect.NewResponse(&api.SubscribeResponse{Subscription: sub}), nil
}

// Unsubscribe stops following an author.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, req *connect.Request[api.UnsubscribeRequest]) (*connect.Response[api.UnsubscribeResponse], error) {
	userID := middleware.GetUserID(ctx)
	slog.Info("Unsubscribe request received", "user_id", userID, "author_id", req.Msg.AuthorId)

	if err := s.store.DeleteFollow(ctx, userID, req.Msg.AuthorId); err != nil {
		slog.Warn("Unsubscribe failed", "user_id", userID, "author_id", req.Msg.AuthorId, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.UnsubscribeResponse{}), nil
}

// ListSubscriptions returns a page of followed authors with recipe previews.
func (s *SubscriptionService) ListSubscriptions(ctx context.Context, req *connect.Request[api.ListSubscriptionsRequest]) (*connect.Response[api.ListSubscriptionsResponse], error) {
	userID := middleware.GetUserID(ctx)
	limit := s.pagination.PageSize(int(req.Msg.Limit))
	offset := max(int(req.Msg.Offset), 0)
	slog.Info("ListSubscriptions request received", "user_id", userID, "limit", limit, "offset", offset)

	authors, total, err := s.store.ListFollowedAuthors(ctx, userID, limit, offset)
	if err != nil {
		slog.Error("ListSubscriptions failed", "user_id", userID, "error", err)
		return nil, storageError(err)
	}

	v := viewer{store: s.store, viewerID: userID}
	subs := make([]*api.Subscription, len(authors))
	for i, author := range authors {
		if subs[i], err = v.subscription(ctx, author, max(int(req.Msg.RecipesLimit), 0)); err != nil {
			slog.Error("ListSubscriptions failed to build entry", "author_id", author.ID, "error", err)
			return nil, storageError(err)
		}
	}

	slog.Info("ListSubscriptions successful", "user_id", userID, "count", len(subs), "total", total)
	return connect.NewResponse(&api.ListSubscriptionsResponse{
		Subscriptions: subs,
		Count:         int32(total),
	}), nil
}
