package mock

import (
	"context"

	"github.com/fwojciec/pagelens"
)

var _ pagelens.LanguageIdentifier = (*LanguageIdentifier)(nil)

// LanguageIdentifier is a mock implementation of pagelens.LanguageIdentifier.
type LanguageIdentifier struct {
	IdentifyLanguageFn func(ctx context.Context, block pagelens.ExtractedCodeBlock) (string, error)
}

func (l *LanguageIdentifier) IdentifyLanguage(ctx context.Context, block pagelens.ExtractedCodeBlock) (string, error) {
	return l.IdentifyLanguageFn(ctx, block)
}
