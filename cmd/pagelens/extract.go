package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	var (
		result *pagelens.ExtractionResult
		err    error
	)
	if c.Fallback {
		result, err = deps.Scanner.ExtractPageContentWithCode(deps.Ctx, c.URL)
	} else {
		result, err = deps.Scanner.ExtractPageContent(deps.Ctx, c.URL)
	}
	if err != nil {
		return err
	}

	var md string
	if deps.Converter != nil {
		if md, err = deps.Converter.Convert(result.ContentHTML); err != nil {
			return err
		}
	}

	switch c.Format {
	case "json":
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	case "markdown":
		if result.Title != "" {
			fmt.Fprintf(deps.Stdout, "# %s\n\n", result.Title)
		}
		fmt.Fprintln(deps.Stdout, md)
	default:
		if result.Title != "" {
			fmt.Fprintf(deps.Stdout, "%s\n\n", result.Title)
		}
		fmt.Fprintln(deps.Stdout, result.Content)
	}

	if deps.Writer == nil {
		return nil
	}
	path, err := deps.Writer.WritePage(&fs.Page{
		URL:       c.URL,
		Title:     result.Title,
		Framework: result.Framework,
		Markdown:  md,
		FetchedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("saving page: %w", err)
	}
	fmt.Fprintf(deps.Stderr, "Saved %s\n", path)
	return nil
}
