package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mmynk/foodgram/internal/models"
	"github.com/mmynk/foodgram/internal/storage"
)

// AddFavorite marks a recipe as a favorite of the user.
func (s *SQLiteStore) AddFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	return s.addUserRecipe(ctx, "favorites", userID, recipeID)
}

// RemoveFavorite removes a recipe from the user's favorites.
func (s *SQLiteStore) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	return s.removeUserRecipe(ctx, "favorites", userID, recipeID)
}

// IsFavorite reports whether the recipe is among the user's favorites.
func (s *SQLiteStore) IsFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	return s.hasUserRecipe(ctx, "favorites", userID, recipeID)
}

// AddToCart puts a recipe into the user's shopping cart.
func (s *SQLiteStore) AddToCart(ctx context.Context, userID, recipeID string) (bool, error) {
	return s.addUserRecipe(ctx, "cart_entries", userID, recipeID)
}

// RemoveFromCart removes a recipe from the user's shopping cart.
func (s *SQLiteStore) RemoveFromCart(ctx context.Context, userID, recipeID string) error {
	return s.removeUserRecipe(ctx, "cart_entries", userID, recipeID)
}

// IsInCart reports whether the recipe is in the user's shopping cart.
func (s *SQLiteStore) IsInCart(ctx context.Context, userID, recipeID string) (bool, error) {
	return s.hasUserRecipe(ctx, "cart_entries", userID, recipeID)
}

// ListCartRecipeIDs returns the recipe IDs in the user's cart in the order they were added.
func (s *SQLiteStore) ListCartRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT recipe_id FROM cart_entries WHERE user_id = ? ORDER BY created_at, rowid",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart entries: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan cart entry: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cart entries: %w", err)
	}
	return ids, nil
}

// CreateFollow subscribes the user to the author's recipes.
func (s *SQLiteStore) CreateFollow(ctx context.Context, userID, authorID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO follows (user_id, author_id, created_at) VALUES (?, ?, ?)",
		userID, authorID, time.Now().Unix(),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("follow %s -> %s: %w", userID, authorID, storage.ErrConflict)
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("author %s: %w", authorID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to insert follow: %w", err)
	}
	return nil
}

// DeleteFollow removes the user's subscription to the author.
func (s *SQLiteStore) DeleteFollow(ctx context.Context, userID, authorID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM follows WHERE user_id = ? AND author_id = ?", userID, authorID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("follow %s -> %s: %w", userID, authorID, storage.ErrNotFound)
	}
	return nil
}

// IsFollowing reports whether the user follows the author.
func (s *SQLiteStore) IsFollowing(ctx context.Context, userID, authorID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	found, err := exists(ctx, s.db,
		"SELECT 1 FROM follows WHERE user_id = ? AND author_id = ?", userID, authorID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return found, nil
}

// ListFollowedAuthors returns a page of the authors the user follows.
func (s *SQLiteStore) ListFollowedAuthors(ctx context.Context, userID string, limit, offset int) ([]*models.User, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM follows WHERE user_id = ?", userID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count follows: %w", err)
	}

	users, err := s.queryUsers(ctx,
		`SELECT u.id, u.email, u.username, u.first_name, u.last_name, u.password_hash, u.created_at, u.updated_at
		 FROM follows f JOIN users u ON u.id = f.author_id
		 WHERE f.user_id = ? ORDER BY u.username LIMIT ? OFFSET ?`,
		userID, limitArg(limit), offset,
	)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// addUserRecipe inserts a (user, recipe) row into table, ignoring duplicates.
// table is interpolated into the statement and must be one of the association tables.
func (s *SQLiteStore) addUserRecipe(ctx context.Context, table, userID, recipeID string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO `+table+` (user_id, recipe_id, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (user_id, recipe_id) DO NOTHING`,
		userID, recipeID, time.Now().Unix(),
	)
	if isForeignKeyViolation(err) {
		return false, fmt.Errorf("recipe %s: %w", recipeID, storage.ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (s *SQLiteStore) removeUserRecipe(ctx context.Context, table, userID, recipeID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM `+table+` WHERE user_id = ? AND recipe_id = ?`, userID, recipeID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("recipe %s not in %s: %w", recipeID, table, storage.ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) hasUserRecipe(ctx context.Context, table, userID, recipeID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	found, err := exists(ctx, s.db,
		`SELECT 1 FROM `+table+` WHERE user_id = ? AND recipe_id = ?`, userID, recipeID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", table, err)
	}
	return found, nil
}
