package port

// TextExtractor extracts plain text from an uploaded document on disk.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}
