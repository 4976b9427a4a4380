package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/scriptorium-fr/scriptorium/internal/config"
	"github.com/scriptorium-fr/scriptorium/internal/database/bible"
	"github.com/scriptorium-fr/scriptorium/internal/database/bibleentities"
	"github.com/scriptorium-fr/scriptorium/internal/importers"
	"github.com/scriptorium-fr/scriptorium/internal/services"
)

// ImportEntitiesCommand loads entities and their verse attachments from YAML.
type ImportEntitiesCommand struct {
	FilePath      string
	DatabasePath  string
	TranslationID string
}

func NewImportEntitiesCommand() *ImportEntitiesCommand {
	return &ImportEntitiesCommand{}
}

func (cmd *ImportEntitiesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-entities", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the entity seed YAML file (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.TranslationID, "translation", config.DefaultTranslationID, "Translation whose verses entities are attached to")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-entities -file <file.yaml> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create or update people, places, concepts and events, then attach them\n")
		fmt.Fprintf(os.Stderr, "to the verses listed under 'verses' (e.g. \"Jean 19:1\").\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample file:\n")
		fmt.Fprintf(os.Stderr, "  entities:\n")
		fmt.Fprintf(os.Stderr, "    - name: Ponce Pilate\n")
		fmt.Fprintf(os.Stderr, "      type: person\n")
		fmt.Fprintf(os.Stderr, "      aliases: [Pilate]\n")
		fmt.Fprintf(os.Stderr, "      verses: [\"Jean 19:1\"]\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *ImportEntitiesCommand) Run() error {
	fmt.Println("Entity Import")
	fmt.Println("=============")

	file, err := os.Open(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to open entities file: %w", err)
	}
	defer file.Close()

	seeds, err := importers.ParseEntitiesYAML(file)
	if err != nil {
		return err
	}
	fmt.Printf("Found %d entities\n", len(seeds))

	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	importer := services.NewImportService(bible.NewRepository(db.DB), bibleentities.NewRepository(db.DB))
	result, err := importer.ImportEntities(seeds, cmd.TranslationID)
	if err != nil {
		return fmt.Errorf("failed to import entities: %w", err)
	}

	fmt.Println("\n=== Import Summary ===")
	fmt.Printf("Entities created: %d\n", result.EntitiesCreated)
	fmt.Printf("Entities updated: %d\n", result.EntitiesUpdated)
	fmt.Printf("Verse attachments: %d\n", result.AttachmentsCreated)
	if result.EntitiesFailed > 0 || result.AttachmentsFailed > 0 {
		fmt.Printf("\n%d entities and %d attachments failed (see log)\n", result.EntitiesFailed, result.AttachmentsFailed)
	}
	fmt.Println("\nImport complete!")
	return nil
}
