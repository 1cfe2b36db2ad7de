package main

import (
	"context"
	"io"
	"log/slog"

	beer "github.com/lfe011969/local-beer-app"
	"github.com/lfe011969/local-beer-app/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Venues    []*beer.Venue
	Extractor beer.MenuExtractor
	Scraper   *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape  ScrapeCmd  `cmd:"" help:"Scrape venue menus and write JSON record files"`
	Preview PreviewCmd `cmd:"" help:"Scrape venue menus and print records without writing files"`
	Venues  VenuesCmd  `cmd:"" help:"List configured venues"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Venue       []string `short:"v" help:"Restrict to named venues (repeatable)"`
	Out         string   `short:"o" default:"data" help:"Output directory for per-venue JSON files"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent venue limit"`
	Browser     bool     `help:"Use a headless browser for JS-rendered venues"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	Venue   []string `short:"v" help:"Restrict to named venues (repeatable)"`
	Browser bool     `help:"Use a headless browser for JS-rendered venues"`
}

// VenuesCmd is the "venues" subcommand.
type VenuesCmd struct{}
