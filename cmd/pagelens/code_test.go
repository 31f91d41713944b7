package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pagelens"
	main "github.com/fwojciec/pagelens/cmd/pagelens"
	"github.com/fwojciec/pagelens/mock"
	"github.com/fwojciec/pagelens/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints language counts when analyzing", func(t *testing.T) {
		t.Parallel()

		blocks := []pagelens.ExtractedCodeBlock{
			{Code: "print('a'); print('b')", Hint: "py"},
			{Code: "SELECT * FROM t;"},
			{Code: "import os\nos.exit(0)"},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Scanner: &scan.Scanner{
				Fetcher: &mock.Fetcher{
					FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
				},
				CodeBlocks: &mock.CodeBlockExtractor{
					ExtractCodeBlocksFn: func(string) ([]pagelens.ExtractedCodeBlock, error) { return blocks, nil },
				},
			},
			Analyzer: &scan.Analyzer{
				Identifier: &mock.LanguageIdentifier{
					IdentifyLanguageFn: func(_ context.Context, block pagelens.ExtractedCodeBlock) (string, error) {
						if block.Code == "SELECT * FROM t;" {
							return "SQL", nil
						}
						return "Python", nil
					},
				},
			},
		}

		cmd := &main.CodeCmd{URL: pageURL, Analyze: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "--- block 1 (Python) ---\nprint('a'); print('b')\n")
		assert.Contains(t, output, "--- block 2 ---\nSELECT * FROM t;\n")
		assert.Contains(t, output, "Languages (3 blocks):\n  Python: 2\n  SQL: 1\n")
	})

	t.Run("reports pages without code", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Scanner: &scan.Scanner{
				Fetcher: &mock.Fetcher{
					FetchFn: func(context.Context, string) (string, error) { return "<p>prose</p>", nil },
				},
				CodeBlocks: &mock.CodeBlockExtractor{
					ExtractCodeBlocksFn: func(string) ([]pagelens.ExtractedCodeBlock, error) { return nil, nil },
				},
			},
			Analyzer: &scan.Analyzer{Identifier: &mock.LanguageIdentifier{}},
		}

		cmd := &main.CodeCmd{URL: pageURL, Analyze: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "No code blocks found.\n", stdout.String())
	})
}
