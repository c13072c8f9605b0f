// Package shoplist consolidates the recipes in a user's shopping cart into a
// single purchase list with summed quantities.
package shoplist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/foodgram/internal/models"
	"github.com/mmynk/foodgram/internal/storage"
)

// Line is one consolidated entry of a shopping list.
type Line struct {
	Name            string
	MeasurementUnit string
	Total           int
}

// key groups ingredient lines. Two catalog ingredients that share a name and
// unit collapse into one line.
type key struct {
	name string
	unit string
}

// Aggregator accumulates ingredient lines, summing amounts per
// (name, measurement unit) and remembering the order keys were first seen.
// The zero value is ready to use.
type Aggregator struct {
	lines []Line
	index map[key]int
}

// Add folds ingredient lines into the running totals.
func (a *Aggregator) Add(ingredients ...models.RecipeIngredient) {
	if a.index == nil {
		a.index = make(map[key]int)
	}
	for _, ing := range ingredients {
		k := key{name: ing.Name, unit: ing.MeasurementUnit}
		if i, ok := a.index[k]; ok {
			a.lines[i].Total += ing.Amount
			continue
		}
		a.index[k] = len(a.lines)
		a.lines = append(a.lines, Line{
			Name:            ing.Name,
			MeasurementUnit: ing.MeasurementUnit,
			Total:           ing.Amount,
		})
	}
}

// Lines returns a copy of the aggregated lines in first-seen order.
// It never returns nil.
func (a *Aggregator) Lines() []Line {
	out := make([]Line, len(a.lines))
	copy(out, a.lines)
	return out
}

// Aggregate sums the given ingredient lines in one pass.
func Aggregate(ingredients []models.RecipeIngredient) []Line {
	var a Aggregator
	a.Add(ingredients...)
	return a.Lines()
}

// Source is the read side of the recipe store needed to build a shopping list.
type Source interface {
	ListCartRecipeIDs(ctx context.Context, userID string) ([]string, error)
	ListRecipeIngredients(ctx context.Context, recipeID string) ([]models.RecipeIngredient, error)
}

// Build computes the consolidated shopping list for every recipe in the
// user's cart. It performs reads only. A cart entry whose recipe no longer
// exists is logged and skipped.
func Build(ctx context.Context, src Source, userID string) ([]Line, error) {
	recipeIDs, err := src.ListCartRecipeIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}

	var a Aggregator
	for _, recipeID := range recipeIDs {
		ingredients, err := src.ListRecipeIngredients(ctx, recipeID)
		if errors.Is(err, storage.ErrNotFound) {
			slog.Warn("Shopping cart references missing recipe, skipping",
				"user_id", userID,
				"recipe_id", recipeID,
			)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list ingredients of recipe %s: %w", recipeID, err)
		}
		a.Add(ingredients...)
	}

	lines := a.Lines()
	slog.Debug("Shopping list built",
		"user_id", userID,
		"recipes_count", len(recipeIDs),
		"lines_count", len(lines),
	)
	return lines, nil
}
