// Package resume turns an uploaded PDF into the plain text stored on a user.
package resume

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadable indicates the upload could not be parsed as a PDF.
var ErrUnreadable = errors.New("resume is not a readable PDF")

// Extractor pulls text from a PDF and caps its length.
type Extractor struct {
	MaxChars int
}

// NewExtractor returns an Extractor that keeps at most maxChars characters.
func NewExtractor(maxChars int) *Extractor {
	return &Extractor{MaxChars: maxChars}
}

// Extract reads the whole PDF from r and returns its truncated text.
func (e *Extractor) Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	text, err := PlainText(data)
	if err != nil {
		return "", err
	}
	return Truncate(text, e.MaxChars), nil
}

// PlainText concatenates the text of every page in order, with no separator.
func PlainText(data []byte) (text string, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrUnreadable, rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrUnreadable, i, err)
		}
		sb.WriteString(content)
	}
	return sb.String(), nil
}

// Truncate keeps the first limit characters of s. Excess text is dropped.
func Truncate(s string, limit int) string {
	if limit < 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
