// Command deprecations scrapes AI model deprecation pages and publishes
// JSON Feed and RSS documents tracking them.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	deprecations "github.com/leblancfg/deprecations-rss"
	"github.com/leblancfg/deprecations-rss/fs"
	"github.com/leblancfg/deprecations-rss/gemini"
	"github.com/leblancfg/deprecations-rss/goquery"
	dephttp "github.com/leblancfg/deprecations-rss/http"
	"github.com/leblancfg/deprecations-rss/readability"
	"github.com/leblancfg/deprecations-rss/scrape"
	depslog "github.com/leblancfg/deprecations-rss/slog"
	"github.com/leblancfg/deprecations-rss/sqlite"
	"github.com/leblancfg/deprecations-rss/trafilatura"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	DeprecationService deprecations.DeprecationService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("deprecations"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'deprecations --help' to see available commands")
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

	cfg, err := deprecations.LoadRunConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config %q: %w", cli.Config, err)
	}
	deps.Config = cfg

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DEPRECATIONS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.DeprecationService = sqlite.NewDeprecationService(m.DB)
	deps.Deprecations = m.DeprecationService
	deps.Store = fs.NewStore(cfg.Output.DataPath, cfg.Output.FeedDir)
	var extractor deprecations.TextExtractor
	switch cli.Extractor {
	case "readability":
		extractor = readability.NewExtractor()
	default:
		extractor = trafilatura.NewExtractor()
	}
	deps.Registry = goquery.DefaultRegistry(extractor)

	scraperConfig := cfg.ScraperConfig()
	deps.NewFetcher = func() deprecations.Fetcher {
		return depslog.NewLoggingFetcher(dephttp.NewFetcher(scraperConfig), deps.Logger)
	}
	deps.RateLimiter = scrape.NewDomainLimiter(cfg.RateRPS)

	if cmd == "scrape" && cli.Scrape.Summarize {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Analyzer = depslog.NewLoggingAnalyzer(gemini.NewSummarizer(client), deps.Logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DEPRECATIONS_DB"); path != "" {
		return path
	}
	return "deprecations.db"
}
