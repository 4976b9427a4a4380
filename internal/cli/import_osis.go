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

// ImportOSISCommand loads the verses of an OSIS XML file into the database.
type ImportOSISCommand struct {
	FilePath      string
	DatabasePath  string
	TranslationID string
	DryRun        bool
}

func NewImportOSISCommand() *ImportOSISCommand {
	return &ImportOSISCommand{}
}

func (cmd *ImportOSISCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-osis", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the OSIS XML file (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.TranslationID, "translation", "", "Translation identifier (defaults to the document's osisIDWork, then to \""+config.DefaultTranslationID+"\")")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Parse the file and report counts without writing")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-osis -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import Bible verses from an OSIS XML document.\n\n")
		fmt.Fprintf(os.Stderr, "Both container (<verse osisID=...>text</verse>) and milestone\n")
		fmt.Fprintf(os.Stderr, "(<verse sID=.../>text<verse eID=.../>) verses are supported.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import-osis -file crampon.osis.xml\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import-osis -file segond.xml -translation segond -db ./data/scriptorium.db\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *ImportOSISCommand) Run() error {
	fmt.Println("OSIS Import")
	fmt.Println("===========")

	file, err := os.Open(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to open OSIS file: %w", err)
	}
	defer file.Close()

	doc, err := importers.ParseOSIS(file)
	if err != nil {
		return err
	}

	translationID := cmd.TranslationID
	if translationID == "" {
		translationID = doc.Work
	}
	if translationID == "" {
		translationID = config.DefaultTranslationID
	}

	fmt.Printf("File: %s\n", cmd.FilePath)
	fmt.Printf("Translation: %s\n", translationID)
	fmt.Printf("Found %d verses\n", len(doc.Verses))

	if cmd.DryRun {
		fmt.Println("\nDry run complete. Use without -dry-run to import.")
		return nil
	}

	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	importer := services.NewImportService(bible.NewRepository(db.DB), bibleentities.NewRepository(db.DB))
	result, err := importer.ImportVerses(doc.Verses, translationID)
	if err != nil {
		return fmt.Errorf("failed to import verses: %w", err)
	}

	fmt.Println("\n=== Import Summary ===")
	fmt.Printf("Verses saved: %d\n", result.VersesImported)
	fmt.Printf("Verses skipped: %d\n", result.VersesSkipped)
	fmt.Println("\nImport complete!")
	return nil
}
