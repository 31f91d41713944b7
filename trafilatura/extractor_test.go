package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/goquery"
	"github.com/fwojciec/pagelens/mock"
	"github.com/fwojciec/pagelens/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageURL = "https://docs.example.com/guide/start"

var prose = strings.Repeat("This is important documentation content that should be extracted from the page. ", 8)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor(goquery.NewStructureExtractor())
		_, err := ext.Extract("", pageURL)

		require.Error(t, err)
		assert.Equal(t, pagelens.EINVALID, pagelens.ErrorCode(err))
	})

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Getting Started - My Docs</title>
<meta property="og:title" content="Getting Started Guide">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Getting Started</h1>
<p>` + prose + `</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor(goquery.NewStructureExtractor())
		result, err := ext.Extract(html, pageURL)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/docs">Docs</a></nav>
<article>
<h1>Documentation</h1>
<p>` + prose + `</p>
<p>` + prose + `</p>
</article>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor(goquery.NewStructureExtractor())
		result, err := ext.Extract(html, pageURL)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "important documentation content")
		assert.Contains(t, result.ContentHTML, "important documentation content")
		assert.NotContains(t, result.Content, "Copyright 2024")
		require.NotNil(t, result.Navigation)
		assert.Equal(t, []pagelens.PageHeading{{H1: "Documentation", Children: []pagelens.HeadingChild{}}}, result.Architecture)
	})

	t.Run("passes rendered content to the structure extractor", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title></head><body><article><p>` + prose + `</p><p>` + prose + `</p></article></body></html>`

		var linksHTML string
		structure := &mock.StructureExtractor{
			ExtractLinksFn: func(html, baseURL string) ([]pagelens.PageLink, error) {
				linksHTML = html
				return []pagelens.PageLink{}, nil
			},
			ExtractNavigationFn: func(html, pageURL string) (*pagelens.NavigationContext, error) {
				return &pagelens.NavigationContext{}, nil
			},
			ExtractArchitectureFn: func(html string) ([]pagelens.PageHeading, error) {
				return []pagelens.PageHeading{}, nil
			},
			DetectFrameworkFn: func(html string) (pagelens.Framework, error) {
				return pagelens.FrameworkUnknown, nil
			},
		}

		ext := trafilatura.NewExtractor(structure)
		result, err := ext.Extract(html, pageURL)

		require.NoError(t, err)
		assert.Equal(t, result.ContentHTML, linksHTML)
		assert.Contains(t, linksHTML, "important documentation content")
	})
}
