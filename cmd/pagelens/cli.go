package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/fs"
	"github.com/fwojciec/pagelens/scan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Store     pagelens.SessionStore
	Scanner   *scan.Scanner
	Analyzer  *scan.Analyzer
	Converter pagelens.Converter
	Writer    *fs.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose     bool          `short:"v" help:"Log operations to stderr"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent language identification limit"`

	Extract ExtractCmd `cmd:"" help:"Extract the readable content of a page"`
	Code    CodeCmd    `cmd:"" help:"Extract the code blocks of a page"`
	Outline OutlineCmd `cmd:"" help:"Show the navigation and heading outline of a page"`
	Session SessionCmd `cmd:"" help:"Inspect the stored results of previous runs"`
}

// SourceFlags select where page HTML is read from.
type SourceFlags struct {
	HTMLFile string `name:"html-file" type:"existingfile" help:"Read HTML from a file instead of fetching the URL"`
	Browser  bool   `short:"b" help:"Render the page in a headless browser"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL       string      `arg:"" help:"Page URL"`
	Fallback  bool        `help:"Use only the selector-based extractor, which keeps code in the text"`
	Extractor string      `enum:"readability,trafilatura" default:"readability" help:"Primary extractor (${enum})"`
	Format    string      `short:"f" enum:"text,markdown,json" default:"text" help:"Output format (${enum})"`
	Store     bool        `short:"s" help:"Save the results to the session"`
	Output    string      `short:"o" type:"path" help:"Also save the page as Markdown under this directory"`
	Source    SourceFlags `embed:""`
}

// CodeCmd is the "code" subcommand.
type CodeCmd struct {
	URL     string      `arg:"" help:"Page URL"`
	Analyze bool        `short:"a" help:"Identify code languages with Gemini (needs GEMINI_API_KEY)"`
	RPS     float64     `name:"rps" default:"5" help:"Maximum language identification requests per second (0 disables the limit)"`
	Store   bool        `short:"s" help:"Save the results to the session"`
	Source  SourceFlags `embed:""`
}

// OutlineCmd is the "outline" subcommand.
type OutlineCmd struct {
	URL    string      `arg:"" help:"Page URL"`
	Source SourceFlags `embed:""`
}

// SessionCmd groups the session subcommands.
type SessionCmd struct {
	List  SessionListCmd  `cmd:"" help:"List stored keys"`
	Get   SessionGetCmd   `cmd:"" help:"Print a stored value as JSON"`
	Clear SessionClearCmd `cmd:"" help:"Remove all stored values"`
}

// SessionListCmd is the "session list" subcommand.
type SessionListCmd struct{}

// SessionGetCmd is the "session get" subcommand.
type SessionGetCmd struct {
	Key string `arg:"" help:"Session key"`
}

// SessionClearCmd is the "session clear" subcommand.
type SessionClearCmd struct{}
