package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/foodgram/internal/models"
	"github.com/mmynk/foodgram/internal/storage"
)

// fakeCatalog is an in-memory CatalogWriter with get-or-create semantics.
type fakeCatalog struct {
	ingredients map[string]bool
	tags        map[string]bool
	colors      map[string]bool
	failOn      string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		ingredients: make(map[string]bool),
		tags:        make(map[string]bool),
		colors:      make(map[string]bool),
	}
}

func (f *fakeCatalog) CreateIngredient(_ context.Context, ing *models.Ingredient) (bool, error) {
	if ing.Name == f.failOn {
		return false, errors.New("disk full")
	}
	key := ing.Name + "|" + ing.MeasurementUnit
	if f.ingredients[key] {
		return false, nil
	}
	f.ingredients[key] = true
	return true, nil
}

func (f *fakeCatalog) CreateTag(_ context.Context, tag *models.Tag) (bool, error) {
	if f.tags[tag.Slug] {
		return false, nil
	}
	if f.colors[tag.Color] {
		return false, fmt.Errorf("tag %s: %w", tag.Name, storage.ErrConflict)
	}
	f.tags[tag.Slug] = true
	f.colors[tag.Color] = true
	return true, nil
}

func TestImportIngredients(t *testing.T) {
	input := `абрикосовое варенье,г
flour,g
bad row
milk,ml,extra
 milk , ml
flour,g
,g
`
	catalog := newFakeCatalog()

	res, err := ImportIngredients(context.Background(), strings.NewReader(input), catalog)
	require.NoError(t, err)

	assert.Equal(t, 7, res.Read)
	assert.Equal(t, 3, res.Created)
	assert.Equal(t, 3, res.Skipped)
	assert.Equal(t, 1, res.Existing())
	assert.True(t, catalog.ingredients["абрикосовое варенье|г"])
	assert.True(t, catalog.ingredients["milk|ml"], "columns are trimmed")
}

func TestImportIngredientsTwiceCreatesNothing(t *testing.T) {
	input := "flour,g\nsugar,g\n"
	catalog := newFakeCatalog()

	_, err := ImportIngredients(context.Background(), strings.NewReader(input), catalog)
	require.NoError(t, err)

	res, err := ImportIngredients(context.Background(), strings.NewReader(input), catalog)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 2, res.Existing())
}

func TestImportIngredientsStorageError(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.failOn = "sugar"

	res, err := ImportIngredients(context.Background(), strings.NewReader("flour,g\nsugar,g\nsalt,g\n"), catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sugar")
	assert.Equal(t, 1, res.Created)
}

func TestImportTags(t *testing.T) {
	input := `
- name: Завтрак
  color: "#0505ff"
  slug: breakfast
- name: Обед
  color: "#ddff03"
  slug: lunch
- name: Invalid color
  color: "#123456"
  slug: invalid
- name: Bad slug
  color: "#738678"
  slug: "no spaces"
- name: Same color
  color: "#0505ff"
  slug: brunch
- name: Завтрак
  color: "#0505ff"
  slug: breakfast
`
	catalog := newFakeCatalog()

	res, err := ImportTags(context.Background(), strings.NewReader(input), catalog)
	require.NoError(t, err)

	assert.Equal(t, 6, res.Read)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 3, res.Skipped)
	assert.Equal(t, 1, res.Existing())
	assert.True(t, catalog.tags["breakfast"])
	assert.True(t, catalog.tags["lunch"])
}

func TestImportTagsEmptyAndMalformed(t *testing.T) {
	res, err := ImportTags(context.Background(), strings.NewReader(""), newFakeCatalog())
	require.NoError(t, err)
	assert.Zero(t, res.Read)

	_, err = ImportTags(context.Background(), strings.NewReader("name: not a list"), newFakeCatalog())
	assert.Error(t, err)
}
