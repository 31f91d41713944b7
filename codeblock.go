package pagelens

import (
	"context"
	"sort"
	"strings"
)

// PlainText is the language reported when a code block cannot be identified.
const PlainText = "Plain Text"

// ExtractedCodeBlock is a code sample found on a page.
type ExtractedCodeBlock struct {
	Code string `json:"code"`

	// Hint is a language name inferred from HTML class metadata or a
	// Markdown fence. It biases language identification but is not
	// authoritative.
	Hint string `json:"hint,omitempty"`
}

// CodeBlockExtractor finds code samples in HTML.
type CodeBlockExtractor interface {
	// ExtractCodeBlocks returns the deduplicated code blocks of a page in
	// detection order. An empty slice means the page has no code.
	ExtractCodeBlocks(html string) ([]ExtractedCodeBlock, error)
}

// LanguageIdentifier names the programming language of a code block.
type LanguageIdentifier interface {
	IdentifyLanguage(ctx context.Context, block ExtractedCodeBlock) (string, error)
}

// CodeLanguageInfo counts the code blocks written in one language.
type CodeLanguageInfo struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// CodeAnalysis summarizes the languages used by a page's code blocks.
type CodeAnalysis struct {
	Languages       []CodeLanguageInfo `json:"languages"`
	TotalCodeBlocks int                `json:"totalCodeBlocks"`
	HasCodeExamples bool               `json:"hasCodeExamples"`
}

// LanguageNames lists the display names a code block can be identified as.
var LanguageNames = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C / C++", "C#", "Go",
	"Rust", "Ruby", "PHP", "Swift", "Kotlin", "HTML", "CSS", "JSON", "YAML",
	"XML", "SQL", "Bash", "PowerShell", "R", "Scala", "Dart", "Markdown",
	PlainText,
}

var languageNames = map[string]string{
	"js":         "JavaScript",
	"javascript": "JavaScript",
	"ts":         "TypeScript",
	"typescript": "TypeScript",
	"py":         "Python",
	"python":     "Python",
	"java":       "Java",
	"cpp":        "C / C++",
	"c++":        "C / C++",
	"c":          "C / C++",
	"cs":         "C#",
	"csharp":     "C#",
	"go":         "Go",
	"golang":     "Go",
	"rs":         "Rust",
	"rust":       "Rust",
	"rb":         "Ruby",
	"ruby":       "Ruby",
	"php":        "PHP",
	"swift":      "Swift",
	"kt":         "Kotlin",
	"kotlin":     "Kotlin",
	"html":       "HTML",
	"css":        "CSS",
	"json":       "JSON",
	"yml":        "YAML",
	"yaml":       "YAML",
	"xml":        "XML",
	"sql":        "SQL",
	"sh":         "Bash",
	"bash":       "Bash",
	"shell":      "Bash",
	"zsh":        "Bash",
	"powershell": "PowerShell",
	"ps1":        "PowerShell",
	"r":          "R",
	"scala":      "Scala",
	"dart":       "Dart",
	"md":         "Markdown",
	"markdown":   "Markdown",
}

// NormalizeLanguageHint maps a class-name hint such as "js" or "py" to a
// display name. Unknown hints are returned unchanged; an empty hint
// returns "".
func NormalizeLanguageHint(hint string) string {
	key := strings.ToLower(strings.TrimSpace(hint))
	if key == "" {
		return ""
	}
	if name, ok := languageNames[key]; ok {
		return name
	}
	return hint
}

// CountLanguages aggregates identified languages into counts ordered by
// descending count. Languages with equal counts keep first-seen order.
func CountLanguages(languages []string) []CodeLanguageInfo {
	if len(languages) == 0 {
		return nil
	}

	index := make(map[string]int)
	var counts []CodeLanguageInfo
	for _, lang := range languages {
		if i, ok := index[lang]; ok {
			counts[i].Count++
			continue
		}
		index[lang] = len(counts)
		counts = append(counts, CodeLanguageInfo{Language: lang, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
