package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ApplySchema executes every .surql file in dir against the database, in
// lexical filename order. Files are plain SurrealQL and must be idempotent
// (DEFINE TABLE / DEFINE INDEX re-apply cleanly), so running this at every
// startup is safe.
func ApplySchema(ctx context.Context, db Database, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: reading schema dir %s: %v", ErrQuery, dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".surql") {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)

	for _, name := range files {
		path := filepath.Join(dir, name)
		schema, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: reading schema file %s: %v", ErrQuery, path, err)
		}

		if err := db.Execute(ctx, string(schema), nil); err != nil {
			return fmt.Errorf("applying schema %s: %w", name, err)
		}

		slog.Info("applied schema", "file", name)
	}

	return nil
}
