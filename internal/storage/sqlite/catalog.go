package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/foodgram/internal/models"
	"github.com/mmynk/foodgram/internal/storage"
)

// CreateIngredient inserts an ingredient unless one with the same name and
// measurement unit already exists, in which case the existing row is loaded
// into ingredient.
func (s *SQLiteStore) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) (bool, error) {
	if ingredient.ID == "" {
		ingredient.ID = uuid.New().String()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO ingredients (id, name, measurement_unit) VALUES (?, ?, ?)
		 ON CONFLICT (name, measurement_unit) DO NOTHING`,
		ingredient.ID, ingredient.Name, ingredient.MeasurementUnit,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert ingredient: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return true, nil
	}

	err = s.db.QueryRowContext(ctx,
		"SELECT id FROM ingredients WHERE name = ? AND measurement_unit = ?",
		ingredient.Name, ingredient.MeasurementUnit,
	).Scan(&ingredient.ID)
	if err != nil {
		return false, fmt.Errorf("failed to load existing ingredient: %w", err)
	}
	return false, nil
}

// GetIngredient retrieves an ingredient by ID.
func (s *SQLiteStore) GetIngredient(ctx context.Context, id string) (*models.Ingredient, error) {
	ingredient := &models.Ingredient{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, measurement_unit FROM ingredients WHERE id = ?", id,
	).Scan(&ingredient.ID, &ingredient.Name, &ingredient.MeasurementUnit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ingredient %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	return ingredient, nil
}

// ListIngredients returns ingredients whose name starts with prefix.
func (s *SQLiteStore) ListIngredients(ctx context.Context, prefix string) ([]*models.Ingredient, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, measurement_unit FROM ingredients
		 WHERE name LIKE ? ESCAPE '\' OR lower(name) LIKE ? ESCAPE '\'
		 ORDER BY name, measurement_unit`,
		likePrefix(prefix), likePrefix(strings.ToLower(prefix)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []*models.Ingredient
	for rows.Next() {
		ingredient := &models.Ingredient{}
		if err := rows.Scan(&ingredient.ID, &ingredient.Name, &ingredient.MeasurementUnit); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ingredient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ingredients: %w", err)
	}
	return ingredients, nil
}

// CreateTag inserts a tag unless one with the same slug already exists.
func (s *SQLiteStore) CreateTag(ctx context.Context, tag *models.Tag) (bool, error) {
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tags (id, name, color, slug) VALUES (?, ?, ?, ?)
		 ON CONFLICT (slug) DO NOTHING`,
		tag.ID, tag.Name, tag.Color, tag.Slug,
	)
	if isUniqueViolation(err) {
		return false, fmt.Errorf("tag %s: %w", tag.Name, storage.ErrConflict)
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert tag: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return true, nil
	}

	err = s.db.QueryRowContext(ctx,
		"SELECT id, name, color FROM tags WHERE slug = ?", tag.Slug,
	).Scan(&tag.ID, &tag.Name, &tag.Color)
	if err != nil {
		return false, fmt.Errorf("failed to load existing tag: %w", err)
	}
	return false, nil
}

// GetTag retrieves a tag by ID.
func (s *SQLiteStore) GetTag(ctx context.Context, id string) (*models.Tag, error) {
	tag := &models.Tag{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, color, slug FROM tags WHERE id = ?", id,
	).Scan(&tag.ID, &tag.Name, &tag.Color, &tag.Slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tag %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return tag, nil
}

// ListTags returns all tags ordered by name.
func (s *SQLiteStore) ListTags(ctx context.Context) ([]*models.Tag, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, color, slug FROM tags ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []*models.Tag
	for rows.Next() {
		tag := &models.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Color, &tag.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}
	return tags, nil
}

// likePrefix builds a LIKE pattern matching names that start with prefix.
// SQLite folds case for ASCII only, so callers also match a lowered prefix.
func likePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}
