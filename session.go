package pagelens

import (
	"context"
	"encoding/json"
)

// Session keys written by the scanner.
const (
	KeyPageTitle           = "pageTitle"
	KeyPageContent         = "pageContent"
	KeyPageLinks           = "pageLinks"
	KeyPageNavigation      = "pageNavigation"
	KeyPageArchitecture    = "pageArchitecture"
	KeyPageContentWithCode = "pageContentWithCode"
	KeyExtractedCodeBlocks = "extractedCodeBlocks"
)

// SessionChange describes a single key change in a SessionStore.
// OldValue is nil for new keys; NewValue is nil for removed keys.
type SessionChange struct {
	Key      string
	OldValue json.RawMessage
	NewValue json.RawMessage
}

// SessionChangeFunc is called with the changes of one Set or Remove call.
type SessionChangeFunc func(changes []SessionChange)

// SessionStore is a local key-value store for the latest extraction outputs.
// Values are JSON-encoded.
type SessionStore interface {
	// Get decodes the value stored under key into v.
	// Returns ENOTFOUND if the key does not exist.
	Get(ctx context.Context, key string, v any) error

	// Set stores all values atomically.
	Set(ctx context.Context, values map[string]any) error

	// Remove deletes the given keys. Missing keys are ignored.
	Remove(ctx context.Context, keys ...string) error

	// Keys returns all stored keys in lexical order.
	Keys(ctx context.Context) ([]string, error)

	// Subscribe registers fn to be called after every change.
	// The returned function removes the subscription.
	Subscribe(fn SessionChangeFunc) (unsubscribe func())
}
