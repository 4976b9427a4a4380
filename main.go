package main

import (
	"fmt"
	"os"

	"github.com/scriptorium-fr/scriptorium/internal/cli"
	"github.com/scriptorium-fr/scriptorium/internal/config"
	"github.com/scriptorium-fr/scriptorium/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// command is implemented by every CLI subcommand.
type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "linkify":
		cmd = cli.NewLinkifyCommand()
	case "annotate":
		cmd = cli.NewAnnotateCommand()
	case "import-osis":
		cmd = cli.NewImportOSISCommand()
	case "import-entities":
		cmd = cli.NewImportEntitiesCommand()
	case "reindex-links":
		cmd = cli.NewReindexLinksCommand()

	case "-h", "--help", "help":
		printUsage()
		return

	case "version":
		fmt.Printf("scriptorium %s (%s)\n", Version, Commit)
		return

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve            Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  linkify          Replace [[...]] references in a text with links\n")
	fmt.Fprintf(os.Stderr, "  annotate         Mark entity mentions in a text\n")
	fmt.Fprintf(os.Stderr, "  import-osis      Import Bible verses from an OSIS XML file\n")
	fmt.Fprintf(os.Stderr, "  import-entities  Import entities and verse attachments from YAML\n")
	fmt.Fprintf(os.Stderr, "  reindex-links    Rebuild the verse links of every article\n")
	fmt.Fprintf(os.Stderr, "  version          Print the version\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
