// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/foodgram/internal/models"
)

var (
	// ErrNotFound is returned (wrapped) when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned (wrapped) when a write violates a uniqueness constraint.
	ErrConflict = errors.New("already exists")
)

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUsersByIDs returns a map of user ID to user. Unknown IDs are omitted.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// ListUsers returns a page of users ordered by username and the total count.
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, int, error)

	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// CatalogStore persists ingredients and tags.
type CatalogStore interface {
	// CreateIngredient inserts the ingredient, or loads the existing record with
	// the same (name, measurement unit). It reports whether a row was inserted.
	CreateIngredient(ctx context.Context, ingredient *models.Ingredient) (bool, error)
	GetIngredient(ctx context.Context, id string) (*models.Ingredient, error)

	// ListIngredients returns ingredients whose name starts with prefix
	// (case-insensitive), ordered by name. An empty prefix lists everything.
	ListIngredients(ctx context.Context, prefix string) ([]*models.Ingredient, error)

	// CreateTag inserts the tag, or loads the existing record with the same slug.
	CreateTag(ctx context.Context, tag *models.Tag) (bool, error)
	GetTag(ctx context.Context, id string) (*models.Tag, error)
	ListTags(ctx context.Context) ([]*models.Tag, error)
}

// RecipeStore persists recipes with their tags and ingredient lines.
type RecipeStore interface {
	// CreateRecipe persists a new recipe. ID and CreatedAt are populated by the store.
	CreateRecipe(ctx context.Context, recipe *models.Recipe) error
	GetRecipe(ctx context.Context, id string) (*models.Recipe, error)

	// UpdateRecipe replaces the recipe's fields, tags and ingredient lines.
	UpdateRecipe(ctx context.Context, recipe *models.Recipe) error

	// DeleteRecipe removes the recipe; favorites and cart entries cascade.
	DeleteRecipe(ctx context.Context, id string) error

	// ListRecipes returns one page of matching recipes (newest first) and the
	// total number of matches.
	ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]*models.Recipe, int, error)
	CountRecipesByAuthor(ctx context.Context, authorID string) (int, error)
}

// FavoriteStore persists favorites.
type FavoriteStore interface {
	// AddFavorite is idempotent and reports whether a new entry was created.
	AddFavorite(ctx context.Context, userID, recipeID string) (bool, error)
	RemoveFavorite(ctx context.Context, userID, recipeID string) error
	IsFavorite(ctx context.Context, userID, recipeID string) (bool, error)
}

// CartStore persists shopping cart entries and exposes the reads needed to
// build a shopping list.
type CartStore interface {
	// AddToCart is idempotent and reports whether a new entry was created.
	AddToCart(ctx context.Context, userID, recipeID string) (bool, error)
	RemoveFromCart(ctx context.Context, userID, recipeID string) error
	IsInCart(ctx context.Context, userID, recipeID string) (bool, error)

	// ListCartRecipeIDs returns the recipes in the user's cart in insertion order.
	ListCartRecipeIDs(ctx context.Context, userID string) ([]string, error)

	// ListRecipeIngredients returns a recipe's ingredient lines in line order.
	ListRecipeIngredients(ctx context.Context, recipeID string) ([]models.RecipeIngredient, error)
}

// FollowStore persists author subscriptions.
type FollowStore interface {
	CreateFollow(ctx context.Context, userID, authorID string) error
	DeleteFollow(ctx context.Context, userID, authorID string) error
	IsFollowing(ctx context.Context, userID, authorID string) (bool, error)

	// ListFollowedAuthors returns a page of authors the user follows, ordered
	// by username, and the total count.
	ListFollowedAuthors(ctx context.Context, userID string, limit, offset int) ([]*models.User, int, error)
}

// Store defines the full set of storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	UserStore
	CatalogStore
	RecipeStore
	FavoriteStore
	CartStore
	FollowStore

	// Close releases any resources held by the store.
	Close() error
}
