package pagelens

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be a content region (e.g., ExtractionResult.ContentHTML).
	Convert(html string) (string, error)
}
