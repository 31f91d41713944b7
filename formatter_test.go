package pagelens_test

import (
	"testing"

	"github.com/fwojciec/pagelens"
	"github.com/stretchr/testify/assert"
)

func TestFormatArchitecture(t *testing.T) {
	t.Parallel()

	t.Run("formats headings with indented children", func(t *testing.T) {
		t.Parallel()

		arch := []pagelens.PageHeading{
			{H1: "Guide", Children: []pagelens.HeadingChild{
				{Level: 2, Text: "Install"},
				{Level: 3, Text: "From source"},
			}},
			{H1: "Reference", Children: []pagelens.HeadingChild{}},
		}

		result := pagelens.FormatArchitecture(arch)

		expected := "# Guide\n  ## Install\n    ### From source\n# Reference"
		assert.Equal(t, expected, result)
	})

	t.Run("returns empty string for nil outline", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, pagelens.FormatArchitecture(nil))
	})
}

func TestFormatNavigation(t *testing.T) {
	t.Parallel()

	t.Run("formats non-empty regions only", func(t *testing.T) {
		t.Parallel()

		nav := &pagelens.NavigationContext{
			Breadcrumbs: []pagelens.PageLink{
				{URL: "https://example.com/", Text: "Home"},
			},
			TableOfContents: []pagelens.PageLink{
				{URL: "https://example.com/docs#install", Text: "Install"},
				{URL: "https://example.com/docs#usage", Text: "Usage"},
			},
		}

		result := pagelens.FormatNavigation(nav)

		expected := "Breadcrumbs:\n- Home (https://example.com/)\n\n" +
			"Table of contents:\n- Install (https://example.com/docs#install)\n- Usage (https://example.com/docs#usage)"
		assert.Equal(t, expected, result)
	})

	t.Run("returns empty string for empty context", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, pagelens.FormatNavigation(&pagelens.NavigationContext{}))
		assert.Empty(t, pagelens.FormatNavigation(nil))
	})
}
