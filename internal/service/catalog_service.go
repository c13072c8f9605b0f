package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/foodgram/internal/storage"
	"github.com/mmynk/foodgram/pkg/api"
	"github.com/mmynk/foodgram/pkg/api/apiconnect"
)

var _ apiconnect.CatalogServiceHandler = (*CatalogService)(nil)

// CatalogService serves the read-only ingredient and tag catalogs.
type CatalogService struct {
	store storage.CatalogStore
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(store storage.CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// ListIngredients returns ingredients whose name starts with the requested prefix.
func (s *CatalogService) ListIngredients(ctx context.Context, req *connect.Request[api.ListIngredientsRequest]) (*connect.Response[api.ListIngredientsResponse], error) {
	slog.Info("ListIngredients request received", "name", req.Msg.Name)

	ingredients, err := s.store.ListIngredients(ctx, req.Msg.Name)
	if err != nil {
		slog.Error("ListIngredients failed", "error", err)
		return nil, storageError(err)
	}

	out := make([]*api.Ingredient, len(ingredients))
	for i, ingredient := range ingredients {
		out[i] = toAPIIngredient(ingredient)
	}
	return connect.NewResponse(&api.ListIngredientsResponse{Ingredients: out}), nil
}

// GetIngredient retrieves an ingredient by ID.
func (s *CatalogService) GetIngredient(ctx context.Context, req *connect.Request[api.GetIngredientRequest]) (*connect.Response[api.GetIngredientResponse], error) {
	ingredient, err := s.store.GetIngredient(ctx, req.Msg.IngredientId)
	if err != nil {
		slog.Error("GetIngredient failed", "ingredient_id", req.Msg.IngredientId, "error", err)
		return nil, storageError(err)
	}
	return connect.NewResponse(&api.GetIngredientResponse{Ingredient: toAPIIngredient(ingredient)}), nil
}

// ListTags returns all tags.
func (s *CatalogService) ListTags(ctx context.Context, req *connect.Request[api.ListTagsRequest]) (*connect.Response[api.ListTagsResponse], error) {
	tags, err := s.store.ListTags(ctx)
	if err != nil {
		slog.Error("ListTags failed", "error", err)
		return nil, storageError(err)
	}

	out := make([]*api.Tag, len(tags))
	for i, tag := range tags {
		out[i] = toAPITag(tag)
	}
	return connect.NewResponse(&api.ListTagsResponse{Tags: out}), nil
}

// GetTag retrieves a tag by ID.
func (s *CatalogService) GetTag(ctx context.Context, req *connect.Request[api.GetTagRequest]) (*connect.Response[api.GetTagResponse], error) {
	tag, err := s.store.GetTag(ctx, req.Msg.TagId)
	if err != nil {
		slog.Error("GetTag failed", "tag_id", req.Msg.TagId, "error", err)
		return nil, storageError(err)
	}
	return connect.NewResponse(&api.GetTagResponse{Tag: toAPITag(tag)}), nil
}
