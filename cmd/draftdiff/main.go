package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/draftdiff/draftdiff"
	"github.com/draftdiff/draftdiff/gemini"
	"github.com/draftdiff/draftdiff/htmltomarkdown"
	ddhttp "github.com/draftdiff/draftdiff/http"
	ddslog "github.com/draftdiff/draftdiff/slog"
	"github.com/draftdiff/draftdiff/sqlite"
	"github.com/draftdiff/draftdiff/trafilatura"
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
	VersionService draftdiff.VersionService
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
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("draftdiff"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'draftdiff --help' to see available commands")
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

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DRAFTDIFF_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.VersionService = sqlite.NewVersionService(m.DB)
	deps.DB = m.DB
	deps.Versions = m.VersionService
	if logger != nil {
		deps.Versions = ddslog.NewLoggingVersionService(deps.Versions, logger)
	}

	if cmd == "fetch" {
		deps.Fetcher = ddhttp.NewFetcher(ddhttp.WithRateLimit(cli.Fetch.Rate))
		if logger != nil {
			deps.Fetcher = ddslog.NewLoggingFetcher(deps.Fetcher, logger)
		}
		defer deps.Fetcher.Close()

		deps.Extractor = trafilatura.NewExtractor()
		deps.Converter = htmltomarkdown.NewConverter()
	}

	if cmd == "compare" && cli.Compare.AI {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			// Leave the summarizer unset; the command reports it.
			fmt.Fprintln(stderr, "GEMINI_API_KEY not set. Get an API key at https://aistudio.google.com/apikey")
		} else {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			deps.Summarizer = gemini.NewSummarizer(client, "")
			if logger != nil {
				deps.Summarizer = ddslog.NewLoggingSummarizer(deps.Summarizer, logger)
			}
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DRAFTDIFF_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "draftdiff.db"
	}
	dir := filepath.Join(home, ".draftdiff")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "draftdiff.db")
}
