package service

import (
	"context"
	"fmt"

	"github.com/mmynk/foodgram/internal/models"
	"github.com/mmynk/foodgram/internal/storage"
	"github.com/mmynk/foodgram/pkg/api"
)

// viewer resolves the viewer-dependent flags of users and recipes.
// An empty viewerID is an anonymous viewer for whom every flag is false.
type viewer struct {
	store    storage.Store
	viewerID string
}

func (v viewer) user(ctx context.Context, user *models.User) (*api.User, error) {
	subscribed, err := v.store.IsFollowing(ctx, v.viewerID, user.ID)
	if err != nil {
		return nil, err
	}
	return toAPIUser(user, subscribed), nil
}

func (v viewer) users(ctx context.Context, users []*models.User) ([]*api.User, error) {
	out := make([]*api.User, len(users))
	for i, user := range users {
		u, err := v.user(ctx, user)
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}

func (v viewer) recipe(ctx context.Context, recipe *models.Recipe) (*api.Recipe, error) {
	recipes, err := v.recipes(ctx, []*models.Recipe{recipe})
	if err != nil {
		return nil, err
	}
	return recipes[0], nil
}

// recipes builds full recipe views, loading each distinct author once.
func (v viewer) recipes(ctx context.Context, recipes []*models.Recipe) ([]*api.Recipe, error) {
	authorIDs := make([]string, 0, len(recipes))
	seen := make(map[string]bool)
	for _, r := range recipes {
		if !seen[r.AuthorID] {
			seen[r.AuthorID] = true
			authorIDs = append(authorIDs, r.AuthorID)
		}
	}

	users, err := v.store.GetUsersByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	authors := make(map[string]*api.User, len(users))
	for id, user := range users {
		if authors[id], err = v.user(ctx, user); err != nil {
			return nil, err
		}
	}

	out := make([]*api.Recipe, len(recipes))
	for i, r := range recipes {
		author, ok := authors[r.AuthorID]
		if !ok {
			return nil, fmt.Errorf("author %s of recipe %s: %w", r.AuthorID, r.ID, storage.ErrNotFound)
		}
		favorited, err := v.store.IsFavorite(ctx, v.viewerID, r.ID)
		if err != nil {
			return nil, err
		}
		inCart, err := v.store.IsInCart(ctx, v.viewerID, r.ID)
		if err != nil {
			return nil, err
		}
		out[i] = toAPIRecipe(r, recipeView{
			author:           author,
			isFavorited:      favorited,
			isInShoppingCart: inCart,
		})
	}
	return out, nil
}

// subscription builds the subscription entry for a followed author with a
// preview of at most recipesLimit recipes (zero means all).
func (v viewer) subscription(ctx context.Context, author *models.User, recipesLimit int) (*api.Subscription, error) {
	apiAuthor, err := v.user(ctx, author)
	if err != nil {
		return nil, err
	}

	recipes, total, err := v.store.ListRecipes(ctx, models.RecipeFilter{
		AuthorID: author.ID,
		Limit:    recipesLimit,
	})
	if err != nil {
		return nil, err
	}

	preview := make([]*api.RecipeShort, len(recipes))
	for i, r := range recipes {
		preview[i] = toAPIRecipeShort(r)
	}
	return &api.Subscription{
		Author:       apiAuthor,
		Recipes:      preview,
		RecipesCount: int32(total),
	}, nil
}
