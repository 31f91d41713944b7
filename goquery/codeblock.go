package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelens"
)

// MinCodeLength is the minimum trimmed length, in characters, of a code
// block worth keeping.
const MinCodeLength = 10

const (
	svgNamespace    = "svg"
	mathmlNamespace = "math"
)

// hintPatterns are tried in order against an element's class attribute.
var hintPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)language-(\w+)`),
	regexp.MustCompile(`(?i)lang-(\w+)`),
	regexp.MustCompile(`(?i)hljs-(\w+)`),
	regexp.MustCompile(`(?i)\b(javascript|typescript|python|java|csharp|cpp|c|go|rust|ruby|php|swift|kotlin|html|css|json|yaml|xml|sql|bash|shell|powershell|r|scala|dart)\b`),
}

// fencedBlock matches a Markdown fence with an optional language tag. The
// body is matched lazily so adjacent fences stay separate.
var fencedBlock = regexp.MustCompile("```(\\w+)?\\n([\\s\\S]+?)```")

// LanguageHint returns the first language hint found in a class attribute,
// lowercased, or "" if there is none.
func LanguageHint(class string) string {
	if class == "" {
		return ""
	}
	for _, re := range hintPatterns {
		if m := re.FindStringSubmatch(class); m != nil {
			return strings.ToLower(m[1])
		}
	}
	return ""
}

// IsValidCodeBlock reports whether code looks like source code: at least
// MinCodeLength characters once trimmed, containing a line break, a
// semicolon, a brace, or a parenthesis.
func IsValidCodeBlock(code string) bool {
	trimmed := strings.TrimSpace(code)
	return utf8.RuneCountInString(trimmed) >= MinCodeLength && strings.ContainsAny(trimmed, "\n;{}()")
}

// CodeCollector accumulates code blocks across strategies. A block is kept
// only if it is valid and its exact text has not been kept before.
type CodeCollector struct {
	seen   map[string]struct{}
	blocks []pagelens.ExtractedCodeBlock
}

// NewCodeCollector returns an empty CodeCollector.
func NewCodeCollector() *CodeCollector {
	return &CodeCollector{
		seen:   make(map[string]struct{}),
		blocks: []pagelens.ExtractedCodeBlock{},
	}
}

// Add records code with hint and reports whether it was kept.
func (c *CodeCollector) Add(code, hint string) bool {
	if code == "" || !IsValidCodeBlock(code) {
		return false
	}
	if _, ok := c.seen[code]; ok {
		return false
	}
	c.seen[code] = struct{}{}
	c.blocks = append(c.blocks, pagelens.ExtractedCodeBlock{Code: code, Hint: hint})
	return true
}

// Blocks returns the kept blocks in the order they were added.
func (c *CodeCollector) Blocks() []pagelens.ExtractedCodeBlock {
	return c.blocks
}

// CodeStrategy finds code blocks in doc and adds them to c.
type CodeStrategy func(doc *goquery.Document, c *CodeCollector)

// DefaultCodeStrategies are applied in this order by ExtractCodeBlocks.
var DefaultCodeStrategies = []CodeStrategy{
	PreCodeStrategy,
	BarePreStrategy,
	HintedCodeStrategy,
	FencedCodeStrategy,
}

// ExtractCodeBlocks returns the code blocks of doc found by the default
// strategies. The result is never nil.
func ExtractCodeBlocks(doc *goquery.Document) []pagelens.ExtractedCodeBlock {
	return ExtractCodeBlocksWith(doc, DefaultCodeStrategies...)
}

// ExtractCodeBlocksWith applies strategies in order to a shared collector.
func ExtractCodeBlocksWith(doc *goquery.Document, strategies ...CodeStrategy) []pagelens.ExtractedCodeBlock {
	c := NewCodeCollector()
	for _, strategy := range strategies {
		strategy(doc, c)
	}
	return c.Blocks()
}

// PreCodeStrategy collects code elements inside pre elements. The hint
// comes from the code element, then from its enclosing pre.
func PreCodeStrategy(doc *goquery.Document, c *CodeCollector) {
	doc.Find("pre code").Each(func(_ int, code *goquery.Selection) {
		hint := elementHint(code)
		if hint == "" {
			hint = elementHint(code.Closest("pre"))
		}
		c.Add(strings.TrimSpace(code.Text()), hint)
	})
}

// BarePreStrategy collects pre elements without a code descendant.
func BarePreStrategy(doc *goquery.Document, c *CodeCollector) {
	doc.Find("pre:not(:has(code))").Each(func(_ int, pre *goquery.Selection) {
		c.Add(strings.TrimSpace(pre.Text()), elementHint(pre))
	})
}

// HintedCodeStrategy collects code elements outside pre whose class
// carries a language hint.
func HintedCodeStrategy(doc *goquery.Document, c *CodeCollector) {
	doc.Find(`code[class*="language-"], code[class*="lang-"], code[class*="hljs-"]`).Each(func(_ int, code *goquery.Selection) {
		if code.Closest("pre").Length() > 0 {
			return
		}
		c.Add(strings.TrimSpace(code.Text()), elementHint(code))
	})
}

// FencedCodeStrategy collects Markdown fences that appear as literal text
// in paragraphs and containers. Fence tags are lowercased.
func FencedCodeStrategy(doc *goquery.Document, c *CodeCollector) {
	doc.Find("p, div, article, main").Each(func(_ int, s *goquery.Selection) {
		text := s.Text()
		if !strings.Contains(text, "```") {
			return
		}
		for _, m := range fencedBlock.FindAllStringSubmatch(text, -1) {
			c.Add(strings.TrimSpace(m[2]), strings.ToLower(m[1]))
		}
	})
}

// elementHint returns the language hint of the first element in s. Foreign
// elements such as SVG carry no usable class string.
func elementHint(s *goquery.Selection) string {
	if s.Length() == 0 {
		return ""
	}
	switch s.Get(0).Namespace {
	case svgNamespace, mathmlNamespace:
		return ""
	}
	return LanguageHint(s.AttrOr("class", ""))
}
