package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/foodgram/internal/models"
	"github.com/mmynk/foodgram/internal/storage"
)

const recipeColumns = `r.id, r.author_id, r.name, r.image, r.text, r.cooking_time, r.created_at`

func scanRecipe(row rowScanner) (*models.Recipe, error) {
	recipe := &models.Recipe{}
	err := row.Scan(&recipe.ID, &recipe.AuthorID, &recipe.Name, &recipe.Image,
		&recipe.Text, &recipe.CookingTime, &recipe.CreatedAt)
	return recipe, err
}

// CreateRecipe persists a new recipe with its tags and ingredient lines.
func (s *SQLiteStore) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	// Generate ID if not set
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	if recipe.CreatedAt == 0 {
		recipe.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO recipes (id, author_id, name, image, text, cooking_time, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		recipe.ID, recipe.AuthorID, recipe.Name, recipe.Image, recipe.Text,
		recipe.CookingTime, recipe.CreatedAt,
	)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("author %s: %w", recipe.AuthorID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}

	if err := insertRecipeRelations(ctx, tx, recipe); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetRecipe retrieves a recipe by ID, including tags and ingredient lines.
func (s *SQLiteStore) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	recipe, err := scanRecipe(s.db.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes r WHERE r.id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("recipe %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	if err := s.loadRelations(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// UpdateRecipe replaces the recipe's fields, tags and ingredient lines.
func (s *SQLiteStore) UpdateRecipe(ctx context.Context, recipe *models.Recipe) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE recipes SET name = ?, image = ?, text = ?, cooking_time = ? WHERE id = ?`,
		recipe.Name, recipe.Image, recipe.Text, recipe.CookingTime, recipe.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("recipe %s: %w", recipe.ID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM recipe_tags WHERE recipe_id = ?", recipe.ID); err != nil {
		return fmt.Errorf("failed to clear recipe tags: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM recipe_ingredients WHERE recipe_id = ?", recipe.ID); err != nil {
		return fmt.Errorf("failed to clear recipe ingredients: %w", err)
	}

	if err := insertRecipeRelations(ctx, tx, recipe); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteRecipe removes a recipe by ID. Tags, lines, favorites and cart
// entries referencing it are removed by cascade.
func (s *SQLiteStore) DeleteRecipe(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("recipe %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// ListRecipes returns a page of recipes matching filter, newest first.
func (s *SQLiteStore) ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]*models.Recipe, int, error) {
	where, args := recipeWhere(filter)

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM recipes r`+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count recipes: %w", err)
	}

	pageArgs := append(args, limitArg(filter.Limit), filter.Offset)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes r`+where+
			` ORDER BY r.created_at DESC, r.rowid DESC LIMIT ? OFFSET ?`,
		pageArgs...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recipes: %w", err)
	}

	var recipes []*models.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			rows.Close()
			return nil, 0, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate recipes: %w", err)
	}

	for _, recipe := range recipes {
		if err := s.loadRelations(ctx, recipe); err != nil {
			return nil, 0, err
		}
	}

	return recipes, total, nil
}

// CountRecipesByAuthor returns how many recipes the author has published.
func (s *SQLiteStore) CountRecipesByAuthor(ctx context.Context, authorID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM recipes WHERE author_id = ?", authorID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

// ListRecipeIngredients returns a recipe's ingredient lines in line order.
func (s *SQLiteStore) ListRecipeIngredients(ctx context.Context, recipeID string) ([]models.RecipeIngredient, error) {
	found, err := exists(ctx, s.db, "SELECT 1 FROM recipes WHERE id = ?", recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check recipe existence: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("recipe %s: %w", recipeID, storage.ErrNotFound)
	}
	return queryIngredientLines(ctx, s.db, recipeID)
}

// recipeWhere builds the WHERE clause for a recipe listing.
func recipeWhere(filter models.RecipeFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.AuthorID != "" {
		conds = append(conds, "r.author_id = ?")
		args = append(args, filter.AuthorID)
	}

	if len(filter.TagSlugs) > 0 {
		conds = append(conds, `EXISTS (
			SELECT 1 FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id
			WHERE rt.recipe_id = r.id AND t.slug IN (`+placeholders(len(filter.TagSlugs))+`))`)
		args = append(args, toArgs(filter.TagSlugs)...)
	}

	if filter.IsFavorited != nil {
		cond := "r.id IN (SELECT recipe_id FROM favorites WHERE user_id = ?)"
		if !*filter.IsFavorited {
			cond = "r.id NOT IN (SELECT recipe_id FROM favorites WHERE user_id = ?)"
		}
		conds = append(conds, cond)
		args = append(args, filter.ViewerID)
	}

	if filter.IsInShoppingCart != nil {
		cond := "r.id IN (SELECT recipe_id FROM cart_entries WHERE user_id = ?)"
		if !*filter.IsInShoppingCart {
			cond = "r.id NOT IN (SELECT recipe_id FROM cart_entries WHERE user_id = ?)"
		}
		conds = append(conds, cond)
		args = append(args, filter.ViewerID)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// insertRecipeRelations writes the recipe's tag links and ingredient lines.
func insertRecipeRelations(ctx context.Context, tx *sql.Tx, recipe *models.Recipe) error {
	for _, tag := range recipe.Tags {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)",
			recipe.ID, tag.ID,
		)
		if isForeignKeyViolation(err) {
			return fmt.Errorf("tag %s: %w", tag.ID, storage.ErrNotFound)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("tag %s listed twice: %w", tag.ID, storage.ErrConflict)
		}
		if err != nil {
			return fmt.Errorf("failed to insert recipe tag: %w", err)
		}
	}

	for i, line := range recipe.Ingredients {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, ingredient_id, position, amount)
			 VALUES (?, ?, ?, ?)`,
			recipe.ID, line.IngredientID, i, line.Amount,
		)
		if isForeignKeyViolation(err) {
			return fmt.Errorf("ingredient %s: %w", line.IngredientID, storage.ErrNotFound)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("ingredient %s listed twice: %w", line.IngredientID, storage.ErrConflict)
		}
		if err != nil {
			return fmt.Errorf("failed to insert recipe ingredient: %w", err)
		}
	}
	return nil
}

// loadRelations fills in the recipe's tags and ingredient lines.
func (s *SQLiteStore) loadRelations(ctx context.Context, recipe *models.Recipe) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT t.id, t.name, t.color, t.slug
		 FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id
		 WHERE rt.recipe_id = ? ORDER BY t.name`,
		recipe.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get recipe tags: %w", err)
	}
	defer rows.Close()

	recipe.Tags = nil
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Color, &tag.Slug); err != nil {
			return fmt.Errorf("failed to scan recipe tag: %w", err)
		}
		recipe.Tags = append(recipe.Tags, tag)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate recipe tags: %w", err)
	}

	lines, err := queryIngredientLines(ctx, s.db, recipe.ID)
	if err != nil {
		return err
	}
	recipe.Ingredients = lines
	return nil
}

func queryIngredientLines(ctx context.Context, q queryer, recipeID string) ([]models.RecipeIngredient, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT i.id, i.name, i.measurement_unit, ri.amount
		 FROM recipe_ingredients ri JOIN ingredients i ON i.id = ri.ingredient_id
		 WHERE ri.recipe_id = ? ORDER BY ri.position`,
		recipeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe ingredients: %w", err)
	}
	defer rows.Close()

	var lines []models.RecipeIngredient
	for rows.Next() {
		var line models.RecipeIngredient
		if err := rows.Scan(&line.IngredientID, &line.Name, &line.MeasurementUnit, &line.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan recipe ingredient: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipe ingredients: %w", err)
	}
	return lines, nil
}
