package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pagelens"
	main "github.com/fwojciec/pagelens/cmd/pagelens"
	"github.com/fwojciec/pagelens/fs"
	"github.com/fwojciec/pagelens/mock"
	"github.com/fwojciec/pagelens/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractScanner(result *pagelens.ExtractionResult) *scan.Scanner {
	return &scan.Scanner{
		Fetcher: &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
		},
		Fallback: &mock.ContentExtractor{
			ExtractFn: func(string, string) (*pagelens.ExtractionResult, error) { return result, nil },
		},
	}
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	result := &pagelens.ExtractionResult{
		Title:       "Guide",
		Content:     "Guide body",
		ContentHTML: "<h1>Guide</h1><p>Guide body</p>",
		Framework:   pagelens.FrameworkDocusaurus,
	}

	t.Run("renders Markdown and saves the page", func(t *testing.T) {
		t.Parallel()

		outDir := t.TempDir()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Scanner: extractScanner(result),
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					assert.Equal(t, result.ContentHTML, html)
					return "Guide body", nil
				},
			},
			Writer: fs.NewWriter(outDir),
		}

		cmd := &main.ExtractCmd{URL: pageURL, Format: "markdown"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "# Guide\n\nGuide body\n", stdout.String())
		saved, err := os.ReadFile(filepath.Join(outDir, "docs", "guide.md"))
		require.NoError(t, err)
		assert.Contains(t, string(saved), "framework: docusaurus\n")
		assert.Contains(t, stderr.String(), "Saved ")
	})

	t.Run("returns conversion errors", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Scanner: extractScanner(result),
			Converter: &mock.Converter{
				ConvertFn: func(string) (string, error) { return "", errors.New("bad markup") },
			},
		}

		cmd := &main.ExtractCmd{URL: pageURL, Format: "markdown"}
		err := cmd.Run(deps)

		require.EqualError(t, err, "bad markup")
	})
}
