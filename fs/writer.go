// Package fs provides file-based storage for extracted pages.
package fs

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/pagelens"
)

// URLToPath converts a page URL to a relative file path.
// Example: https://example.com/docs/api/users → docs/api/users.md
// Dot segments are resolved so the result never leaves the output directory.
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	p := u.Path
	trailingSlash := strings.HasSuffix(p, "/")
	p = strings.TrimPrefix(path.Clean("/"+p), "/")

	if p == "" {
		return "index.md", nil
	}
	if trailingSlash {
		return p + "/index.md", nil
	}
	return p + ".md", nil
}

// Page is an extracted page rendered as Markdown.
type Page struct {
	URL       string
	Title     string
	Framework pagelens.Framework
	Markdown  string
	FetchedAt time.Time
}

// FormatPage formats a page with YAML frontmatter.
func FormatPage(page *Page) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(page.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(page.Title)
	if page.Framework != pagelens.FrameworkUnknown {
		b.WriteString("\nframework: ")
		b.WriteString(string(page.Framework))
	}
	b.WriteString("\nextracted: ")
	b.WriteString(page.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(page.Markdown)
	return b.String()
}

// Writer writes pages as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WritePage writes page to disk and returns the path of the written file.
func (w *Writer) WritePage(page *Page) (string, error) {
	if page.URL == "" {
		return "", pagelens.Errorf(pagelens.EINVALID, "page URL required")
	}

	relPath, err := URLToPath(page.URL)
	if err != nil {
		return "", pagelens.Errorf(pagelens.EINVALID, "invalid page URL: %q", page.URL)
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, []byte(FormatPage(page)), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
