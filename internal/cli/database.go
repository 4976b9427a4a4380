package cli

import (
	"fmt"
	"path/filepath"

	"github.com/scriptorium-fr/scriptorium/internal/database"
)

// openDatabase opens the database at path, made absolute first.
func openDatabase(path string) (*database.Database, error) {
	absDBPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	fmt.Printf("Database: %s\n", absDBPath)

	db, err := database.NewSilentDatabase(absDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}
