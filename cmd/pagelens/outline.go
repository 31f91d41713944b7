package main

import (
	"fmt"

	"github.com/fwojciec/pagelens"
)

// Run executes the outline command.
func (c *OutlineCmd) Run(deps *Dependencies) error {
	outline, err := deps.Scanner.ExtractOutline(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	arch := pagelens.FormatArchitecture(outline.Architecture)
	nav := pagelens.FormatNavigation(outline.Navigation)
	if arch == "" && nav == "" {
		fmt.Fprintln(deps.Stdout, "No outline found.")
		return nil
	}
	if arch != "" {
		fmt.Fprintf(deps.Stdout, "Page structure:\n%s\n", arch)
	}
	if nav != "" {
		if arch != "" {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "Navigation:\n%s\n", nav)
	}
	return nil
}
