package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/rsdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service rsdoc.DocService
}

// Config holds process-wide settings. Every setting can also be given
// through the environment or a .env file.
type Config struct {
	Timeout         time.Duration `help:"HTTP request timeout" default:"30s" env:"RSDOC_TIMEOUT" validate:"gt=0"`
	CacheTTL        time.Duration `name:"cache-ttl" help:"How long responses stay cached" default:"5m" env:"RSDOC_CACHE_TTL" validate:"gt=0"`
	MaxCacheEntries int           `help:"Maximum cached responses (0 = unbounded)" default:"0" env:"RSDOC_MAX_CACHE_ENTRIES" validate:"gte=0"`
	CacheShards     int           `help:"Number of independently locked cache shards" default:"16" env:"RSDOC_CACHE_SHARDS" validate:"gte=1,lte=256"`
	RateLimit       float64       `help:"Requests per second per host" default:"5" env:"RSDOC_RATE_LIMIT" validate:"gt=0"`
	LogLevel        string        `help:"Log level (debug, info, warn, error)" default:"warn" env:"RSDOC_LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config `embed:""`

	Search   SearchCmd   `cmd:"" help:"Search crates.io"`
	Info     InfoCmd     `cmd:"" help:"Show a crate's description and modules"`
	Features FeaturesCmd `cmd:"" help:"List a crate's feature flags"`
	Item     ItemCmd     `cmd:"" help:"Show the documentation of an item"`
	Example  ExampleCmd  `cmd:"" help:"Show the code examples of an item"`
	Find     FindCmd     `cmd:"" help:"Search the items of a crate"`
	Serve    ServeCmd    `cmd:"" help:"Serve documentation tools over MCP on stdio"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search terms"`
	Page  int    `short:"p" default:"1" help:"Result page"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct {
	Crate string `arg:"" help:"Crate name"`
}

// FeaturesCmd is the "features" subcommand.
type FeaturesCmd struct {
	Crate string `arg:"" help:"Crate name"`
}

// ItemCmd is the "item" subcommand.
type ItemCmd struct {
	Path string `arg:"" help:"Fully qualified item path, e.g. tokio::sync::Mutex"`
	JSON bool   `name:"json" help:"Print the definition as JSON"`
}

// ExampleCmd is the "example" subcommand.
type ExampleCmd struct {
	Path string `arg:"" help:"Fully qualified item path"`
	N    int    `arg:"" optional:"" help:"Example number, starting at 1 (all examples if omitted)"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Crate string `arg:"" help:"Crate name"`
	Query string `arg:"" help:"Case-insensitive substring of the item path"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}
