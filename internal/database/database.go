package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/scriptorium-fr/scriptorium/internal/entities"
	"github.com/scriptorium-fr/scriptorium/internal/wikilink"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	return open(dbPath, logger.Info)
}

// NewSilentDatabase opens the database without gorm statement logging.
// CLI commands and tests use it.
func NewSilentDatabase(dbPath string) (*Database, error) {
	return open(dbPath, logger.Silent)
}

func open(dbPath string, level logger.LogLevel) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.BibleBook{},
		&entities.BibleEntity{},
		&entities.BibleVerse{},
		&entities.WikiArticle{},
		&entities.WikiRevision{},
		&entities.VerseLink{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedBooks(); err != nil {
		return nil, fmt.Errorf("failed to seed books: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying connection is alive.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// seedBooks inserts the canonical book table. Existing rows are left untouched.
func (d *Database) seedBooks() error {
	created := 0
	for _, b := range wikilink.Books() {
		var existing entities.BibleBook
		err := d.DB.Where("slug = ?", b.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up book %s: %w", b.Slug, err)
		}

		book := entities.BibleBook{
			Name:               b.Name,
			NameEN:             b.NameEN,
			Slug:               b.Slug,
			OSISID:             b.OSIS,
			Testament:          entities.Testament(b.Testament),
			Position:           b.Position,
			Chapters:           b.Chapters,
			IsDeuterocanonical: b.Deuterocanonical,
		}
		if err := d.DB.Create(&book).Error; err != nil {
			return fmt.Errorf("failed to create book %s: %w", b.Slug, err)
		}
		created++
	}
	if created > 0 {
		log.Printf("Seeded %d bible books", created)
	}
	return nil
}
