package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/scriptorium-fr/scriptorium/internal/config"
	"github.com/scriptorium-fr/scriptorium/internal/database/articles"
	"github.com/scriptorium-fr/scriptorium/internal/database/links"
	"github.com/scriptorium-fr/scriptorium/internal/render"
	"github.com/scriptorium-fr/scriptorium/internal/services"
)

// ReindexLinksCommand rebuilds the verse links of every wiki article.
type ReindexLinksCommand struct {
	DatabasePath string
}

func NewReindexLinksCommand() *ReindexLinksCommand {
	return &ReindexLinksCommand{}
}

func (cmd *ReindexLinksCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("reindex-links", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s reindex-links [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Re-extract the verse and chapter references of every article.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ReindexLinksCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	renderer, err := render.NewArticleRenderer(0)
	if err != nil {
		return err
	}

	wiki := services.NewWikiService(articles.NewRepository(db.DB), links.NewRepository(db.DB), renderer)
	total, err := wiki.ReindexAll(context.Background())
	if err != nil {
		return fmt.Errorf("failed to reindex links: %w", err)
	}

	fmt.Printf("Stored %d verse links\n", total)
	return nil
}
