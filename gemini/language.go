package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pagelens"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for language identification.
const DefaultModel = "gemini-2.5-flash"

// DefaultInputQuota is the input token limit of DefaultModel.
const DefaultInputQuota = 1_048_576

// MaxCodeLength is the number of characters of a code block sent to the
// model. Longer blocks are truncated.
const MaxCodeLength = 1000

// Ensure LanguageIdentifier implements pagelens.LanguageIdentifier at compile time.
var _ pagelens.LanguageIdentifier = (*LanguageIdentifier)(nil)

// ContentGenerator generates model responses. *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// LanguageIdentifier implements pagelens.LanguageIdentifier using Google
// Gemini with a structured JSON response.
type LanguageIdentifier struct {
	models  ContentGenerator
	model   string
	counter pagelens.TokenCounter
	quota   int
	maxCode int
}

// Option configures a LanguageIdentifier.
type Option func(*LanguageIdentifier)

// WithModel sets the model name. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(id *LanguageIdentifier) {
		id.model = model
	}
}

// WithMaxCodeLength sets the number of characters of a code block included
// in the prompt. Defaults to MaxCodeLength.
func WithMaxCodeLength(n int) Option {
	return func(id *LanguageIdentifier) {
		id.maxCode = n
	}
}

// WithTokenCounter checks every prompt against quota with counter before
// it is sent. Prompts using more than pagelens.MaxQuotaThreshold of the
// quota are rejected.
func WithTokenCounter(counter pagelens.TokenCounter, quota int) Option {
	return func(id *LanguageIdentifier) {
		id.counter = counter
		id.quota = quota
	}
}

// NewLanguageIdentifier creates a new LanguageIdentifier. Pass
// client.Models for a *genai.Client.
func NewLanguageIdentifier(models ContentGenerator, opts ...Option) *LanguageIdentifier {
	id := &LanguageIdentifier{models: models, model: DefaultModel, maxCode: MaxCodeLength}
	for _, opt := range opts {
		opt(id)
	}
	return id
}

// IdentifyLanguage asks the model for the language of block. A response
// without a language is reported as pagelens.PlainText.
func (id *LanguageIdentifier) IdentifyLanguage(ctx context.Context, block pagelens.ExtractedCodeBlock) (string, error) {
	if strings.TrimSpace(block.Code) == "" {
		return "", pagelens.Errorf(pagelens.EINVALID, "code required")
	}

	prompt := buildLanguagePrompt(block, id.maxCode)

	if id.counter != nil {
		check, err := pagelens.CheckContentLength(ctx, id.counter, prompt, id.quota)
		if err != nil {
			return "", err
		}
		if !check.Valid {
			return "", pagelens.Errorf(pagelens.EINVALID, "%s", check.Message)
		}
	}

	result, err := id.models.GenerateContent(ctx, id.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildLanguageConfig(),
	)
	if err != nil {
		return "", fmt.Errorf("identifying language: %w", err)
	}
	if result == nil {
		return "", pagelens.Errorf(pagelens.EINTERNAL, "gemini returned nil result")
	}

	return ParseLanguageResponse(result.Text())
}

// BuildLanguageConfig returns the GenerateContentConfig constraining the
// response to {"language": <one of pagelens.LanguageNames>}.
func BuildLanguageConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"language": {
					Type: genai.TypeString,
					Enum: pagelens.LanguageNames,
				},
			},
			Required: []string{"language"},
		},
	}
}

// buildLanguagePrompt builds the identification prompt for block, with the
// code cut to maxCode characters.
func buildLanguagePrompt(block pagelens.ExtractedCodeBlock, maxCode int) string {
	hint := pagelens.NormalizeLanguageHint(block.Hint)
	if hint == "" {
		hint = "None"
	}

	var sb strings.Builder
	sb.WriteString("Identify the programming language of the code snippet below.\n\n")
	sb.WriteString("CODE SNIPPET:\n")
	sb.WriteString(truncateCode(block.Code, maxCode))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "LANGUAGE HINT (from HTML): %s\n\n", hint)
	sb.WriteString("Determine the programming language. If a language hint is provided, use it unless the code clearly doesn't match.\n\n")
	sb.WriteString("LANGUAGE NAMES TO USE (exact names only):\n")
	for _, name := range pagelens.LanguageNames {
		fmt.Fprintf(&sb, "- %s\n", name)
	}
	sb.WriteString("\nUse Bash for shell and terminal commands. ")
	sb.WriteString("Be conservative: if you can't determine the language, use \"Plain Text\". ")
	sb.WriteString("Consider syntax patterns: keywords, brackets, indentation style.\n\n")
	sb.WriteString(`Respond with a JSON object such as {"language": "JavaScript"}.`)
	return sb.String()
}

// truncateCode returns code cut to n characters, marking the cut with a
// trailing "\n...".
func truncateCode(code string, n int) string {
	if utf8.RuneCountInString(code) <= n {
		return code
	}
	return string([]rune(code)[:n]) + "\n..."
}

// ParseLanguageResponse decodes a {"language": ...} response.
func ParseLanguageResponse(text string) (string, error) {
	var resp struct {
		Language string `json:"language"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &resp); err != nil {
		return "", fmt.Errorf("parsing language response: %w", err)
	}

	language := strings.TrimSpace(resp.Language)
	if language == "" {
		return pagelens.PlainText, nil
	}
	return language, nil
}
