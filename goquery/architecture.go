package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelens"
)

// ExtractPageArchitecture returns the H1/H2/H3 outline of doc in document
// order. Each H1 starts a new entry; H2 and H3 headings are attached to the
// most recent H1. Headings that appear before the first H1 have no entry to
// attach to and are dropped. Headings with empty text are skipped.
func ExtractPageArchitecture(doc *goquery.Document) []pagelens.PageHeading {
	architecture := make([]pagelens.PageHeading, 0)
	current := -1

	doc.Find("h1, h2, h3").Each(func(_ int, heading *goquery.Selection) {
		text := strings.TrimSpace(heading.Text())
		if text == "" {
			return
		}

		switch goquery.NodeName(heading) {
		case "h1":
			architecture = append(architecture, pagelens.PageHeading{
				H1:       text,
				Children: []pagelens.HeadingChild{},
			})
			current = len(architecture) - 1
		case "h2", "h3":
			if current < 0 {
				return
			}
			level := 2
			if goquery.NodeName(heading) == "h3" {
				level = 3
			}
			architecture[current].Children = append(architecture[current].Children, pagelens.HeadingChild{
				Level: level,
				Text:  text,
			})
		}
	})

	return architecture
}
