package pagelens

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// Content length validation thresholds.
const (
	// MaxQuotaThreshold is the share of a model's input quota a prompt may use.
	MaxQuotaThreshold = 0.7

	// MinCheckedLength is the content length, in characters, below which
	// content is always considered to fit, without counting tokens.
	MinCheckedLength = 4000
)

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

// ContentCheck reports whether content fits a model's input quota.
type ContentCheck struct {
	Valid   bool
	Message string
	Tokens  int
	Quota   int
}

// CheckContentLength validates content against a model input quota.
// Content shorter than MinCheckedLength is accepted without counting.
func CheckContentLength(ctx context.Context, counter TokenCounter, content string, quota int) (ContentCheck, error) {
	if utf8.RuneCountInString(content) < MinCheckedLength {
		return ContentCheck{Valid: true}, nil
	}
	if quota <= 0 {
		return ContentCheck{}, Errorf(EINVALID, "input quota must be positive")
	}

	tokens, err := counter.CountTokens(ctx, content)
	if err != nil {
		return ContentCheck{}, fmt.Errorf("counting tokens: %w", err)
	}

	check := ContentCheck{Valid: true, Tokens: tokens, Quota: quota}
	if float64(tokens) > float64(quota)*MaxQuotaThreshold {
		check.Valid = false
		check.Message = "This content is too long for processing. Please try with a shorter page or document."
	}
	return check, nil
}
