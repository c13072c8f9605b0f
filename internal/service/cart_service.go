package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/foodgram/internal/metrics"
	"github.com/mmynk/foodgram/internal/middleware"
	"github.com/mmynk/foodgram/internal/shoplist"
	"github.com/mmynk/foodgram/internal/storage"
	"github.com/mmynk/foodgram/pkg/api"
	"github.com/mmynk/foodgram/pkg/api/apiconnect"
)

var _ apiconnect.CartServiceHandler = (*CartService)(nil)

// CartService implements the Connect CartService.
// It is mounted behind RequireAuth, so every call has a user ID.
type CartService struct {
	store storage.Store
}

// NewCartService creates a new CartService.
func NewCartService(store storage.Store) *CartService {
	return &CartService{store: store}
}

// AddToCart puts a recipe into the caller's shopping cart.
func (s *CartService) AddToCart(ctx context.Context, req *connect.Request[api.AddToCartRequest]) (*connect.Response[api.AddToCartResponse], error) {
	userID := middleware.GetUserID(ctx)
	slog.Info("AddToCart request received", "recipe_id", req.Msg.RecipeId, "user_id", userID)

	short, err := addUserRecipe(ctx, s.store, s.store.AddToCart, userID, req.Msg.RecipeId, "shopping cart")
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.AddToCartResponse{Recipe: short}), nil
}

// RemoveFromCart removes a recipe from the caller's shopping cart.
func (s *CartService) RemoveFromCart(ctx context.Context, req *connect.Request[api.RemoveFromCartRequest]) (*connect.Response[api.RemoveFromCartResponse], error) {
	userID := middleware.GetUserID(ctx)
	slog.Info("RemoveFromCart request received", "recipe_id", req.Msg.RecipeId, "user_id", userID)

	if err := s.store.RemoveFromCart(ctx, userID, req.Msg.RecipeId); err != nil {
		slog.Warn("RemoveFromCart failed", "recipe_id", req.Msg.RecipeId, "error", err)
		return nil, storageError(err)
	}
	return connect.NewResponse(&api.RemoveFromCartResponse{}), nil
}

// GetShoppingList returns the caller's consolidated shopping list.
func (s *CartService) GetShoppingList(ctx context.Context, req *connect.Request[api.GetShoppingListRequest]) (*connect.Response[api.GetShoppingListResponse], error) {
	userID := middleware.GetUserID(ctx)
	slog.Info("GetShoppingList request received", "user_id", userID)

	lines, err := shoplist.Build(ctx, s.store, userID)
	if err != nil {
		slog.Error("GetShoppingList failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	metrics.RecordShoppingListBuilt(len(lines))

	out := make([]*api.ShoppingListLine, len(lines))
	for i, line := range lines {
		out[i] = &api.ShoppingListLine{
			Name:            line.Name,
			MeasurementUnit: line.MeasurementUnit,
			Amount:          int64(line.Total),
		}
	}
	return connect.NewResponse(&api.GetShoppingListResponse{Lines: out}), nil
}
