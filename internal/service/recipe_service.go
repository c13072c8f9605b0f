package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/foodgram/internal/config"
	"github.com/mmynk/foodgram/internal/middleware"
	"github.com/mmynk/foodgram/internal/models"
	"github.com/mmynk/foodgram/internal/storage"
	"github.com/mmynk/foodgram/pkg/api"
	"github.com/mmynk/foodgram/pkg/api/apiconnect"
)

var _ apiconnect.RecipeServiceHandler = (*RecipeService)(nil)

type ingredientInput struct {
	ID     string `json:"id" validate:"required"`
	Amount int    `json:"amount" validate:"min=1,max=999"`
}

// recipeInput holds the validated fields shared by create and update.
type recipeInput struct {
	Name        string            `json:"name" validate:"required,max=200"`
	Text        string            `json:"text" validate:"required"`
	Image       string            `json:"image" validate:"omitempty,datauri"`
	CookingTime int               `json:"cooking_time" validate:"min=1,max=3000"`
	Tags        []string          `json:"tags" validate:"required,min=1,unique,dive,required"`
	Ingredients []ingredientInput `json:"ingredients" validate:"required,min=1,unique=ID,dive"`
}

func newRecipeInput(name, text, image string, cookingTime int32, tagIDs []string, lines []*api.IngredientAmount) recipeInput {
	ingredients := make([]ingredientInput, len(lines))
	for i, line := range lines {
		if line != nil {
			ingredients[i] = ingredientInput{ID: line.Id, Amount: int(line.Amount)}
		}
	}
	return recipeInput{
		Name:        name,
		Text:        text,
		Image:       image,
		CookingTime: int(cookingTime),
		Tags:        tagIDs,
		Ingredients: ingredients,
	}
}

// apply copies the input onto recipe, replacing its tags and lines.
func (in recipeInput) apply(recipe *models.Recipe) {
	recipe.Name = in.Name
	recipe.Text = in.Text
	recipe.Image = in.Image
	recipe.CookingTime = in.CookingTime
	recipe.Tags = make([]models.Tag, len(in.Tags))
	for i, id := range in.Tags {
		recipe.Tags[i] = models.Tag{ID: id}
	}
	recipe.Ingredients = make([]models.RecipeIngredient, len(in.Ingredients))
	for i, line := range in.Ingredients {
		recipe.Ingredients[i] = models.RecipeIngredient{IngredientID: line.ID, Amount: line.Amount}
	}
}

// writeError maps errors from CreateRecipe and UpdateRecipe. Unknown tag or
// ingredient IDs are client mistakes, not missing resources.
func writeError(err error) *connect.Error {
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrConflict) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// RecipeService implements the Connect RecipeService.
type RecipeService struct {
	store      storage.Store
	pagination config.PaginationConfig
}

// NewRecipeService creates a new RecipeService with the given storage backend.
func NewRecipeService(store storage.Store, pagination config.PaginationConfig) *RecipeService {
	return &RecipeService{store: store, pagination: pagination}
}

// CreateRecipe publishes a recipe authored by the caller.
func (s *RecipeService) CreateRecipe(ctx context.Context, req *connect.Request[api.CreateRecipeRequest]) (*connect.Response[api.CreateRecipeResponse], error) {
	userID, err := requireUser(ctx, apiconnect.RecipeServiceCreateRecipeProcedure)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateRecipe request received",
		"user_id", userID,
		"name", req.Msg.Name,
		"tags_count", len(req.Msg.TagIds),
		"ingredients_count", len(req.Msg.Ingredients),
	)

	input := newRecipeInput(req.Msg.Name, req.Msg.Text, req.Msg.Image, req.Msg.CookingTime, req.Msg.TagIds, req.Msg.Ingredients)
	if err := validate(input); err != nil {
		slog.Warn("CreateRecipe rejected", "user_id", userID, "error", err)
		return nil, err
	}

	recipe := &models.Recipe{AuthorID: userID}
	input.apply(recipe)

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateRecipe(ctx, recipe); err != nil {
		slog.Error("CreateRecipe failed", "user_id", userID, "error", err)
		return nil, writeError(err)
	}

	view, err := s.load(ctx, recipe.ID, userID)
	if err != nil {
		return nil, err
	}

	slog.Info("Recipe created", "recipe_id", recipe.ID, "user_id", userID)
	return connect.NewResponse(&api.CreateRecipeResponse{Recipe: view}), nil
}

// GetRecipe retrieves a recipe by ID.
func (s *RecipeService) GetRecipe(ctx context.Context, req *connect.Request[api.GetRecipeRequest]) (*connect.Response[api.GetRecipeResponse], error) {
	slog.Info("GetRecipe request received", "recipe_id", req.Msg.RecipeId)

	view, err := s.load(ctx, req.Msg.RecipeId, middleware.GetUserID(ctx))
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.GetRecipeResponse{Recipe: view}), nil
}

// ListRecipes returns a filtered page of recipes, newest first.
func (s *RecipeService) ListRecipes(ctx context.Context, req *connect.Request[api.ListRecipesRequest]) (*connect.Response[api.ListRecipesResponse], error) {
	viewerID := middleware.GetUserID(ctx)
	filter := models.RecipeFilter{
		AuthorID:         req.Msg.AuthorId,
		TagSlugs:         req.Msg.TagSlugs,
		ViewerID:         viewerID,
		IsFavorited:      req.Msg.IsFavorited,
		IsInShoppingCart: req.Msg.IsInShoppingCart,
		Limit:            s.pagination.PageSize(int(req.Msg.Limit)),
		Offset:           max(int(req.Msg.Offset), 0),
	}
	slog.Info("ListRecipes request received",
		"author_id", filter.AuthorID,
		"tags", filter.TagSlugs,
		"viewer_id", viewerID,
		"limit", filter.Limit,
		"offset", filter.Offset,
	)

	recipes, total, err := s.store.ListRecipes(ctx, filter)
	if err != nil {
		slog.Error("ListRecipes failed", "error", err)
		return nil, storageError(err)
	}

	views, err := viewer{store: s.store, viewerID: viewerID}.recipes(ctx, recipes)
	if err != nil {
		slog.Error("ListRecipes failed to build views", "error", err)
		return nil, storageError(err)
	}

	slog.Info("ListRecipes successful", "count", len(views), "total", total)
	return connect.NewResponse(&api.ListRecipesResponse{
		Recipes: views,
		Count:   int32(total),
	}), nil
}

// UpdateRecipe replaces a recipe's content. Only the author may update it.
func (s *RecipeService) UpdateRecipe(ctx context.Context, req *connect.Request[api.UpdateRecipeRequest]) (*connect.Response[api.UpdateRecipeResponse], error) {
	userID, err := requireUser(ctx, apiconnect.RecipeServiceUpdateRecipeProcedure)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateRecipe request received", "recipe_id", req.Msg.RecipeId, "user_id", userID)

	recipe, err := s.authored(ctx, req.Msg.RecipeId, userID)
	if err != nil {
		return nil, err
	}

	input := newRecipeInput(req.Msg.Name, req.Msg.Text, req.Msg.Image, req.Msg.CookingTime, req.Msg.TagIds, req.Msg.Ingredients)
	if err := validate(input); err != nil {
		slog.Warn("UpdateRecipe rejected", "recipe_id", recipe.ID, "error", err)
		return nil, err
	}
	input.apply(recipe)

	if err := s.store.UpdateRecipe(ctx, recipe); err != nil {
		slog.Error("UpdateRecipe failed", "recipe_id", recipe.ID, "error", err)
		return nil, writeError(err)
	}

	view, err := s.load(ctx, recipe.ID, userID)
	if err != nil {
		return nil, err
	}

	slog.Info("Recipe updated", "recipe_id", recipe.ID)
	return connect.NewResponse(&api.UpdateRecipeResponse{Recipe: view}), nil
}

// DeleteRecipe removes a recipe. Only the author may delete it.
func (s *RecipeService) DeleteRecipe(ctx context.Context, req *connect.Request[api.DeleteRecipeRequest]) (*connect.Response[api.DeleteRecipeResponse], error) {
	userID, err := requireUser(ctx, apiconnect.RecipeServiceDeleteRecipeProcedure)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteRecipe request received", "recipe_id", req.Msg.RecipeId, "user_id", userID)

	if _, err := s.authored(ctx, req.Msg.RecipeId, userID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteRecipe(ctx, req.Msg.RecipeId); err != nil {
		slog.Error("DeleteRecipe failed", "recipe_id", req.Msg.RecipeId, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Recipe deleted", "recipe_id", req.Msg.RecipeId)
	return connect.NewResponse(&api.DeleteRecipeResponse{}), nil
}

// AddFavorite adds a recipe to the caller's favorites.
func (s *RecipeService) AddFavorite(ctx context.Context, req *connect.Request[api.AddFavoriteRequest]) (*connect.Response[api.AddFavoriteResponse], error) {
	userID, err := requireUser(ctx, apiconnect.RecipeServiceAddFavoriteProcedure)
	if err != nil {
		return nil, err
	}
	slog.Info("AddFavorite request received", "recipe_id", req.Msg.RecipeId, "user_id", userID)

	short, err := addUserRecipe(ctx, s.store, s.store.AddFavorite, userID, req.Msg.RecipeId, "favorites")
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.AddFavoriteResponse{Recipe: short}), nil
}

// RemoveFavorite removes a recipe from the caller's favorites.
func (s *RecipeService) RemoveFavorite(ctx context.Context, req *connect.Request[api.RemoveFavoriteRequest]) (*connect.Response[api.RemoveFavoriteResponse], error) {
	userID, err := requireUser(ctx, apiconnect.RecipeServiceRemoveFavoriteProcedure)
	if err != nil {
		return nil, err
	}
	slog.Info("RemoveFavorite request received", "recipe_id", req.Msg.RecipeId, "user_id", userID)

	if err := s.store.RemoveFavorite(ctx, userID, req.Msg.RecipeId); err != nil {
		slog.Warn("RemoveFavorite failed", "recipe_id", req.Msg.RecipeId, "error", err)
		return nil, storageError(err)
	}
	return connect.NewResponse(&api.RemoveFavoriteResponse{}), nil
}

// load fetches a recipe and renders it for viewerID.
func (s *RecipeService) load(ctx context.Context, recipeID, viewerID string) (*api.Recipe, error) {
	recipe, err := s.store.GetRecipe(ctx, recipeID)
	if err != nil {
		slog.Error("Failed to load recipe", "recipe_id", recipeID, "error", err)
		return nil, storageError(err)
	}
	view, err := viewer{store: s.store, viewerID: viewerID}.recipe(ctx, recipe)
	if err != nil {
		slog.Error("Failed to build recipe view", "recipe_id", recipeID, "error", err)
		return nil, storageError(err)
	}
	return view, nil
}

// authored fetches a recipe and checks that userID wrote it.
func (s *RecipeService) authored(ctx context.Context, recipeID, userID string) (*models.Recipe, error) {
	recipe, err := s.store.GetRecipe(ctx, recipeID)
	if err != nil {
		slog.Error("Failed to load recipe", "recipe_id", recipeID, "error", err)
		return nil, storageError(err)
	}
	if recipe.AuthorID != userID {
		slog.Warn("Recipe modification by non-author",
			"recipe_id", recipeID,
			"author_id", recipe.AuthorID,
			"user_id", userID,
		)
		return nil, connect.NewError(connect.CodePermissionDenied, errNotAuthor)
	}
	return recipe, nil
}

// addUserRecipe links a recipe to the user through add (favorites or cart)
// and returns the short recipe view. Adding twice is AlreadyExists.
func addUserRecipe(
	ctx context.Context,
	store storage.RecipeStore,
	add func(ctx context.Context, userID, recipeID string) (bool, error),
	userID, recipeID, list string,
) (*api.RecipeShort, error) {
	recipe, err := store.GetRecipe(ctx, recipeID)
	if err != nil {
		slog.Warn("Cannot add missing recipe", "recipe_id", recipeID, "list", list, "error", err)
		return nil, storageError(err)
	}

	created, err := add(ctx, userID, recipeID)
	if err != nil {
		slog.Error("Failed to add recipe", "recipe_id", recipeID, "list", list, "error", err)
		return nil, storageError(err)
	}
	if !created {
		return nil, connect.NewError(connect.CodeAlreadyExists,
			fmt.Errorf("recipe %s is already in %s", recipeID, list))
	}

	slog.Info("Recipe added", "recipe_id", recipeID, "user_id", userID, "list", list)
	return toAPIRecipeShort(recipe), nil
}
