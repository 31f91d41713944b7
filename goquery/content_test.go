package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractContentFallback(t *testing.T) {
	t.Parallel()

	base := "https://example.com/docs/page"

	t.Run("extracts the main region without boilerplate", func(t *testing.T) {
		t.Parallel()

		body := longText(150)
		doc := parseDoc(t, `<html><head><title>  Getting
  Started </title></head><body>
<header><nav><a href="/">Home</a></nav></header>
<main>
<h1>Getting Started</h1>
<script>var tracking = true;</script>
<p>`+body+`</p>
<div class="advertisement">Buy now</div>
<p><a href="/docs/next">Next page</a></p>
</main>
<footer>Copyright</footer>
</body></html>`)

		result, ok := goquery.ExtractContentFallback(doc, parseURL(t, base))

		require.True(t, ok)
		assert.Equal(t, "Getting Started", result.Title)
		assert.True(t, strings.HasPrefix(result.Content, "Getting Started Documentation pages"))
		assert.NotContains(t, result.Content, "tracking")
		assert.NotContains(t, result.Content, "Buy now")
		assert.NotContains(t, result.Content, "Copyright")
		assert.NotContains(t, result.Content, "Home")
		assert.Equal(t, []pagelens.PageLink{{URL: "https://example.com/docs/next", Text: "Next page"}}, result.Links)
		assert.True(t, strings.HasPrefix(result.ContentHTML, "<main>"))
		assert.Equal(t, []pagelens.PageHeading{{H1: "Getting Started", Children: []pagelens.HeadingChild{}}}, result.Architecture)
	})

	t.Run("takes navigation from the original document", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
<header><nav><a href="/">Home</a><a href="/docs">Docs</a></nav></header>
<aside><a href="/docs/a">A</a></aside>
<article><p>`+longText(120)+`</p></article>
</body></html>`)

		result, ok := goquery.ExtractContentFallback(doc, parseURL(t, base))

		require.True(t, ok)
		require.NotNil(t, result.Navigation)
		assert.Len(t, result.Navigation.MainNav, 2)
		assert.Len(t, result.Navigation.Sidebar, 1)
		assert.Empty(t, result.Links)
	})

	t.Run("does not modify the document", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><nav><a href="/">Home</a></nav><script>x()</script><main><p>`+longText(120)+`</p></main></body></html>`)
		before, err := doc.Html()
		require.NoError(t, err)

		_, ok := goquery.ExtractContentFallback(doc, parseURL(t, base))
		require.True(t, ok)

		after, err := doc.Html()
		require.NoError(t, err)
		assert.Equal(t, before, after)
		assert.Equal(t, 1, doc.Find("nav").Length())
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><aside><a href="/s">S</a></aside><main><h1>T</h1><p>`+longText(120)+`</p></main></body></html>`)

		first, ok1 := goquery.ExtractContentFallback(doc, parseURL(t, base))
		second, ok2 := goquery.ExtractContentFallback(doc, parseURL(t, base))

		assert.True(t, ok1)
		assert.True(t, ok2)
		assert.Equal(t, first, second)
	})

	t.Run("prefers earlier content candidates", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
<div class="content"><p>Secondary `+longText(120)+`</p></div>
<article><p>Primary `+longText(120)+`</p></article>
</body></html>`)

		result, ok := goquery.ExtractContentFallback(doc, parseURL(t, base))

		require.True(t, ok)
		assert.True(t, strings.HasPrefix(result.Content, "Primary"))
	})

	t.Run("falls back to the body", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><div><p>`+longText(120)+`</p></div></body></html>`)

		result, ok := goquery.ExtractContentFallback(doc, parseURL(t, base))

		require.True(t, ok)
		assert.True(t, strings.HasPrefix(result.ContentHTML, "<body>"))
		assert.Equal(t, "", result.Title)
	})

	t.Run("normalizes whitespace including Unicode spaces", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, "<html><body><main><p>Alpha\u00a0\u00a0beta</p>\n\n\n<p>\tgamma\u2003delta\ufeff</p><p>"+longText(120)+"</p></main></body></html>")

		result, ok := goquery.ExtractContentFallback(doc, parseURL(t, base))

		require.True(t, ok)
		assert.True(t, strings.HasPrefix(result.Content, "Alpha beta gamma delta Documentation"))
		assert.False(t, strings.HasSuffix(result.Content, " "))
	})

	t.Run("counts length in characters", func(t *testing.T) {
		t.Parallel()

		exact := parseDoc(t, `<html><body><main><p>`+strings.Repeat("é", pagelens.MinContentLength)+`</p></main></body></html>`)
		short := parseDoc(t, `<html><body><main><p>`+strings.Repeat("é", pagelens.MinContentLength-1)+`</p></main></body></html>`)

		_, okExact := goquery.ExtractContentFallback(exact, parseURL(t, base))
		_, okShort := goquery.ExtractContentFallback(short, parseURL(t, base))

		assert.True(t, okExact)
		assert.False(t, okShort)
	})

	t.Run("reports not found for pages that are only boilerplate", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><nav>`+longText(200)+`</nav><footer>`+longText(200)+`</footer></body></html>`)

		_, ok := goquery.ExtractContentFallback(doc, parseURL(t, base))

		assert.False(t, ok)
	})
}
