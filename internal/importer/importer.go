// Package importer loads catalog data (ingredients and tags) from files.
// Imports are get-or-create: records already present are left untouched,
// so running an import twice is harmless.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/foodgram/internal/models"
	"github.com/mmynk/foodgram/internal/storage"
	"github.com/mmynk/foodgram/internal/validation"
)

// CatalogWriter is the part of the catalog store an import writes to.
type CatalogWriter interface {
	CreateIngredient(ctx context.Context, ingredient *models.Ingredient) (bool, error)
	CreateTag(ctx context.Context, tag *models.Tag) (bool, error)
}

// Result counts the outcome of one import.
type Result struct {
	Read    int // records read from the input
	Created int // records inserted
	Skipped int // malformed or invalid records
}

// Existing is the number of valid records that were already present.
func (r Result) Existing() int {
	return r.Read - r.Created - r.Skipped
}

// ImportIngredients reads "name,measurement_unit" rows. Rows with a
// different number of fields or an empty column are skipped.
func ImportIngredients(ctx context.Context, r io.Reader, w CatalogWriter) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var res Result
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("failed to read ingredients csv: %w", err)
		}
		res.Read++

		if len(row) != 2 {
			slog.Debug("Skipping ingredient row", "row", res.Read, "fields", len(row))
			res.Skipped++
			continue
		}
		name, unit := strings.TrimSpace(row[0]), strings.TrimSpace(row[1])
		if name == "" || unit == "" {
			slog.Debug("Skipping ingredient row with empty column", "row", res.Read)
			res.Skipped++
			continue
		}

		created, err := w.CreateIngredient(ctx, &models.Ingredient{Name: name, MeasurementUnit: unit})
		if err != nil {
			return res, fmt.Errorf("failed to import ingredient %q (%s): %w", name, unit, err)
		}
		if created {
			res.Created++
		}
	}

	slog.Info("Ingredients imported", "read", res.Read, "created", res.Created, "skipped", res.Skipped)
	return res, nil
}

// tagRecord is one entry of a tags YAML file:
//
//   - name: Breakfast
//     color: "#0505ff"
//     slug: breakfast
type tagRecord struct {
	Name  string `yaml:"name" json:"name" validate:"required,max=200"`
	Color string `yaml:"color" json:"color" validate:"required,oneof=#0505ff #ddff03 #738678 #ff0000"`
	Slug  string `yaml:"slug" json:"slug" validate:"required,max=200,slug"`
}

// ImportTags reads a YAML list of tags. Invalid entries are logged and skipped.
func ImportTags(ctx context.Context, r io.Reader, w CatalogWriter) (Result, error) {
	var records []tagRecord
	if err := yaml.NewDecoder(r).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return Result{}, fmt.Errorf("failed to parse tags yaml: %w", err)
	}

	var res Result
	for _, rec := range records {
		res.Read++
		if err := validation.ValidateStruct(rec); err != nil {
			slog.Warn("Skipping invalid tag", "name", rec.Name, "error", err)
			res.Skipped++
			continue
		}

		created, err := w.CreateTag(ctx, &models.Tag{Name: rec.Name, Color: rec.Color, Slug: rec.Slug})
		if errors.Is(err, storage.ErrConflict) {
			// Another tag already owns this name or color.
			slog.Warn("Skipping conflicting tag", "slug", rec.Slug, "error", err)
			res.Skipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("failed to import tag %q: %w", rec.Slug, err)
		}
		if created {
			res.Created++
		}
	}

	slog.Info("Tags imported", "read", res.Read, "created", res.Created, "skipped", res.Skipped)
	return res, nil
}
