package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	beer "github.com/lfe011969/local-beer-app"
	"github.com/lfe011969/local-beer-app/goquery"
	"github.com/lfe011969/local-beer-app/menu"
	beerslog "github.com/lfe011969/local-beer-app/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Venue configuration. Set before calling Run() to override the
	// built-in set in tests.
	Venues []*beer.Venue
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Venues: beer.DefaultVenues(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Venues: m.Venues,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("beerlist"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'beerlist --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The extraction engine is the same for every command.
	extractor := menu.NewExtractor(goquery.NewDefaultRegistry())
	deps.Extractor = beerslog.NewLoggingExtractor(extractor, logger)

	return kongCtx.Run(deps)
}
