package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/pagelens"
)

var _ pagelens.Fetcher = (*fileFetcher)(nil)

// fileFetcher serves a local HTML file for any URL.
type fileFetcher struct {
	path string
}

func (f *fileFetcher) Fetch(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("reading HTML file: %w", err)
	}
	return string(b), nil
}

func (f *fileFetcher) Close() error {
	return nil
}
