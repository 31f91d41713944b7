package main

import (
	"fmt"

	"github.com/fwojciec/pagelens"
)

// Run executes the code command.
func (c *CodeCmd) Run(deps *Dependencies) error {
	blocks, err := deps.Scanner.ExtractCodeBlocks(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	if len(blocks) == 0 {
		fmt.Fprintln(deps.Stdout, "No code blocks found.")
	}
	for i, block := range blocks {
		header := fmt.Sprintf("--- block %d", i+1)
		if hint := pagelens.NormalizeLanguageHint(block.Hint); hint != "" {
			header += " (" + hint + ")"
		}
		fmt.Fprintf(deps.Stdout, "%s ---\n%s\n\n", header, block.Code)
	}

	if !c.Analyze {
		return nil
	}

	analysis, err := deps.Analyzer.Analyze(deps.Ctx, blocks)
	if err != nil {
		return err
	}
	if !analysis.HasCodeExamples {
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Languages (%d blocks):\n", analysis.TotalCodeBlocks)
	for _, lang := range analysis.Languages {
		fmt.Fprintf(deps.Stdout, "  %s: %d\n", lang.Language, lang.Count)
	}
	return nil
}
