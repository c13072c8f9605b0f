// Command importdata loads the ingredient and tag catalogs into the Foodgram database.
//
// Usage:
//
//	importdata -db ./data/foodgram.db -ingredients data/ingredients.csv -tags data/tags.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mmynk/foodgram/internal/importer"
	"github.com/mmynk/foodgram/internal/storage/sqlite"
	"github.com/mmynk/foodgram/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	dbPath := flag.String("db", getEnv("DB_PATH", "./data/foodgram.db"), "path to the SQLite database")
	ingredientsPath := flag.String("ingredients", "", "CSV file of name,measurement_unit rows")
	tagsPath := flag.String("tags", "", "YAML file with a list of tags (name, color, slug)")
	flag.Parse()

	logging.Setup()

	if *ingredientsPath == "" && *tagsPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to import: pass -ingredients and/or -tags")
		flag.Usage()
		os.Exit(2)
	}

	store, err := sqlite.New(*dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	ok := true
	if *ingredientsPath != "" {
		ok = runImport(ctx, "ingredients", *ingredientsPath, store, importer.ImportIngredients) && ok
	}
	if *tagsPath != "" {
		ok = runImport(ctx, "tags", *tagsPath, store, importer.ImportTags) && ok
	}
	if !ok {
		store.Close()
		os.Exit(1)
	}
}

type importFunc func(ctx context.Context, r io.Reader, w importer.CatalogWriter) (importer.Result, error)

func runImport(ctx context.Context, kind, path string, w importer.CatalogWriter, run importFunc) bool {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("Failed to open import file", "kind", kind, "path", path, "error", err)
		return false
	}
	defer f.Close()

	res, err := run(ctx, f, w)
	if err != nil {
		slog.Error("Import failed", "kind", kind, "path", path, "error", err)
		return false
	}

	fmt.Printf("%s: %d read, %d created, %d already present, %d skipped\n",
		kind, res.Read, res.Created, res.Existing(), res.Skipped)
	return true
}
