package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/scriptorium-fr/scriptorium/internal/wikilink"
)

// LinkifyCommand replaces [[...]] references in a text with HTML links.
type LinkifyCommand struct {
	InputPath  string
	References bool

	Stdin  io.Reader
	Stdout io.Writer
}

func NewLinkifyCommand() *LinkifyCommand {
	return &LinkifyCommand{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

func (cmd *LinkifyCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("linkify", flag.ExitOnError)

	fs.StringVar(&cmd.InputPath, "in", "", "Path to the text to linkify (reads stdin when omitted)")
	fs.BoolVar(&cmd.References, "refs", false, "Print the extracted references, one per line, instead of HTML")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s linkify [-in <path>] [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Replace [[Livre Ch:V]] and [[Titre]] references with HTML links.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Linkify an article draft:\n")
		fmt.Fprintf(os.Stderr, "  %s linkify -in nicodeme.md\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # List the references of a text read from stdin:\n")
		fmt.Fprintf(os.Stderr, "  echo 'Voir [[Jean 3:16]]' | %s linkify -refs\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *LinkifyCommand) Run() error {
	content, err := readInput(cmd.InputPath, cmd.Stdin)
	if err != nil {
		return err
	}

	if cmd.References {
		for _, ref := range wikilink.ExtractReferences(content) {
			link := wikilink.Resolve(ref)
			fmt.Fprintf(cmd.Stdout, "%s\t%s\t%s\n", ref, link.Kind, link.Href)
		}
		return nil
	}

	fmt.Fprint(cmd.Stdout, wikilink.Linkify(content))
	return nil
}

// readInput returns the content of path, or of stdin when path is empty.
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
