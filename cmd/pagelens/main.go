package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/fs"
	"github.com/fwojciec/pagelens/gemini"
	"github.com/fwojciec/pagelens/goquery"
	"github.com/fwojciec/pagelens/htmltomarkdown"
	pagelenshttp "github.com/fwojciec/pagelens/http"
	"github.com/fwojciec/pagelens/readability"
	"github.com/fwojciec/pagelens/rod"
	"github.com/fwojciec/pagelens/scan"
	pagelensslog "github.com/fwojciec/pagelens/slog"
	"github.com/fwojciec/pagelens/sqlite"
	"github.com/fwojciec/pagelens/trafilatura"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Session database path. Set before calling Run().
	DBPath string

	// SQLite database backing the session store. Opened only by commands
	// that read or write the session.
	DB *sqlite.DB
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

// Run executes the CLI with the given arguments. Errors are reported on
// stderr as "error: <message>" and returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", errorMessage(err))
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagelens"),
		kong.Description("Extract readable content, structure, and code from web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagelens --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(cli.Verbose, stderr)

	var (
		source  SourceFlags
		pageURL string
		store   bool
	)
	switch command {
	case "extract":
		source, pageURL, store = cli.Extract.Source, cli.Extract.URL, cli.Extract.Store
	case "code":
		source, pageURL, store = cli.Code.Source, cli.Code.URL, cli.Code.Store
	case "outline":
		source, pageURL = cli.Outline.Source, cli.Outline.URL
	}

	if command == "session" || store {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set PAGELENS_DB to use a different session database path")
			return fmt.Errorf("failed to open session database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Store = sqlite.NewSessionStore(m.DB)
	}

	if command == "session" {
		return kongCtx.Run(deps)
	}

	fetcher, err := openFetcher(source, cli.Timeout)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer fetcher.Close()

	structure := goquery.NewStructureExtractor(goquery.WithFrameworkProfiles())
	var (
		primary    pagelens.ContentExtractor
		fallback   pagelens.ContentExtractor   = goquery.NewFallbackExtractor(goquery.WithFrameworkProfiles())
		codeBlocks pagelens.CodeBlockExtractor = goquery.NewCodeBlockExtractor()
	)
	if command == "extract" {
		switch cli.Extract.Extractor {
		case "trafilatura":
			primary = trafilatura.NewExtractor(structure)
		default:
			primary = readability.NewExtractor(structure)
		}
		if cli.Verbose {
			primary = pagelensslog.NewLoggingContentExtractor(primary, cli.Extract.Extractor, deps.Logger)
		}
	}
	if cli.Verbose {
		fetcher = pagelensslog.NewLoggingFetcher(fetcher, deps.Logger)
		fallback = pagelensslog.NewLoggingContentExtractor(fallback, "fallback", deps.Logger)
		codeBlocks = pagelensslog.NewLoggingCodeBlockExtractor(codeBlocks, deps.Logger)
	}

	deps.Scanner = &scan.Scanner{
		Fetcher:    fetcher,
		Primary:    primary,
		Fallback:   fallback,
		CodeBlocks: codeBlocks,
		Structure:  structure,
		Logger:     deps.Logger,
	}
	if source.HTMLFile != "" {
		deps.Scanner.RetryDelays = []time.Duration{}
	}
	if store {
		deps.Scanner.Store = deps.Store
	}

	if command == "extract" && (cli.Extract.Format == "markdown" || cli.Extract.Output != "") {
		deps.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(pageURL))
	}
	if command == "extract" && cli.Extract.Output != "" {
		deps.Writer = fs.NewWriter(cli.Extract.Output)
	}

	if command == "code" && cli.Code.Analyze {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
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

		tokenCounter, err := gemini.NewTokenCounter(gemini.DefaultModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}

		var identifier pagelens.LanguageIdentifier = gemini.NewLanguageIdentifier(client.Models,
			gemini.WithTokenCounter(tokenCounter, gemini.DefaultInputQuota),
		)
		if cli.Verbose {
			identifier = pagelensslog.NewLoggingLanguageIdentifier(identifier, deps.Logger)
		}

		var limiter *rate.Limiter
		if cli.Code.RPS > 0 {
			limiter = rate.NewLimiter(rate.Limit(cli.Code.RPS), 1)
		}
		deps.Analyzer = &scan.Analyzer{
			Identifier:  identifier,
			Concurrency: cli.Concurrency,
			Limiter:     limiter,
			Logger:      deps.Logger,
		}
	}

	return kongCtx.Run(deps)
}

// errorMessage returns the message of application errors and the full text
// of any other error.
func errorMessage(err error) string {
	var e *pagelens.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// openFetcher returns the page source selected by flags: a local file, a
// headless browser, or plain HTTP.
func openFetcher(source SourceFlags, timeout time.Duration) (pagelens.Fetcher, error) {
	switch {
	case source.HTMLFile != "":
		return &fileFetcher{path: source.HTMLFile}, nil
	case source.Browser:
		f, err := rod.NewFetcher(rod.WithFetchTimeout(timeout))
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return pagelenshttp.NewFetcher(pagelenshttp.WithTimeout(timeout)), nil
	}
}

// newLogger returns a debug-level text logger on w when verbose is set,
// and a logger that discards everything otherwise.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	if path := os.Getenv("PAGELENS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.db"
	}
	dir := filepath.Join(home, ".pagelens")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "session.db")
}
