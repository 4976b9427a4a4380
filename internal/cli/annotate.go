package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/scriptorium-fr/scriptorium/internal/annotate"
	"github.com/scriptorium-fr/scriptorium/internal/entities"
	"github.com/scriptorium-fr/scriptorium/internal/importers"
	"github.com/scriptorium-fr/scriptorium/internal/render"
	"github.com/scriptorium-fr/scriptorium/internal/services"
	"github.com/scriptorium-fr/scriptorium/internal/wikilink"
)

// AnnotateCommand marks entity mentions in a text using a YAML seed file.
type AnnotateCommand struct {
	Text         string
	EntitiesPath string
	HTML         bool

	Stdout io.Writer
}

func NewAnnotateCommand() *AnnotateCommand {
	return &AnnotateCommand{Stdout: os.Stdout}
}

func (cmd *AnnotateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("annotate", flag.ExitOnError)

	fs.StringVar(&cmd.Text, "text", "", "Text to annotate (required)")
	fs.StringVar(&cmd.EntitiesPath, "entities", "", "Path to the entity seed YAML file (required)")
	fs.BoolVar(&cmd.HTML, "html", false, "Print HTML with entity spans instead of segments")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s annotate -text <text> -entities <file.yaml> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Split a text into plain and entity segments. The longest name or alias wins.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s annotate -text \"Ponce Pilate fit flageller Jésus.\" -entities seeds/entities.yaml\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Text == "" {
		return fmt.Errorf("required flag -text not provided")
	}
	if cmd.EntitiesPath == "" {
		return fmt.Errorf("required flag -entities not provided")
	}

	return nil
}

func (cmd *AnnotateCommand) Run() error {
	file, err := os.Open(cmd.EntitiesPath)
	if err != nil {
		return fmt.Errorf("failed to open entities file: %w", err)
	}
	defer file.Close()

	seeds, err := importers.ParseEntitiesYAML(file)
	if err != nil {
		return err
	}

	segments := annotate.Annotate(cmd.Text, seedEntities(seeds))

	if cmd.HTML {
		fmt.Fprintln(cmd.Stdout, render.RenderSegments(segments))
		return nil
	}

	for _, seg := range segments {
		if seg.IsEntity() {
			fmt.Fprintf(cmd.Stdout, "[%s] %q -> %s\n", seg.Entity.EntityType, seg.Text, seg.Entity.Slug)
			continue
		}
		fmt.Fprintf(cmd.Stdout, "%q\n", seg.Text)
	}
	return nil
}

// seedEntities builds in-memory entities from seed entries.
func seedEntities(seeds []services.EntityInput) []entities.BibleEntity {
	list := make([]entities.BibleEntity, 0, len(seeds))
	for _, s := range seeds {
		slug := s.Slug
		if slug == "" {
			slug = wikilink.Slugify(s.Name)
		}
		list = append(list, entities.BibleEntity{
			ID:         slug,
			Name:       s.Name,
			Slug:       slug,
			Aliases:    s.Aliases,
			EntityType: entities.EntityType(s.Type),
		})
	}
	return list
}
