package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rsdoc"
	"github.com/fwojciec/rsdoc/cache"
	"github.com/fwojciec/rsdoc/docs"
	"github.com/fwojciec/rsdoc/goquery"
	"github.com/fwojciec/rsdoc/htmltomarkdown"
	rshttp "github.com/fwojciec/rsdoc/http"
	"github.com/fwojciec/rsdoc/resolve"
	rsslog "github.com/fwojciec/rsdoc/slog"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is fine; configuration may come from flags
	// and the environment alone.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Service overrides the wired documentation service, for end-to-end
	// testing. Set before calling Run().
	Service rsdoc.DocService
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rsdoc"),
		kong.Description("Look up Rust crate and standard library documentation."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rsdoc --help' to see available commands")
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

	if err := validator.New().Struct(cli.Config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	deps.Logger = newLogger(stderr, cli.LogLevel)
	deps.Service = m.Service
	if deps.Service == nil {
		deps.Service = NewService(cli.Config, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// NewService wires the documentation service and its collaborators.
func NewService(cfg Config, logger *slog.Logger) rsdoc.DocService {
	hosts := rsdoc.DefaultHosts()

	c := cache.New(
		cache.WithTTL(cfg.CacheTTL),
		cache.WithMaxEntries(cfg.MaxCacheEntries),
		cache.WithShards(cfg.CacheShards),
	)

	// Burst covers one full candidate race.
	limiter := rshttp.NewHostLimiter(cfg.RateLimit, len(resolve.Kinds)+1)
	var fetcher rsdoc.Fetcher = rshttp.NewFetcher(
		rshttp.WithTimeout(cfg.Timeout),
		rshttp.WithLimiter(limiter),
	)
	fetcher = rsslog.NewLoggingFetcher(fetcher, logger)

	extractor := goquery.NewExtractor(htmltomarkdown.NewConverter())
	index := resolve.NewIndex(fetcher, extractor, c, hosts)

	svc := &docs.Service{
		Fetcher:   fetcher,
		Extractor: extractor,
		Registry:  rsslog.NewLoggingRegistry(rshttp.NewRegistry(fetcher, hosts.CratesIO), logger),
		Resolver:  resolve.NewResolver(fetcher, index, hosts),
		Index:     index,
		Cache:     c,
		Hosts:     hosts,
	}
	return rsslog.NewLoggingService(svc, logger)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
