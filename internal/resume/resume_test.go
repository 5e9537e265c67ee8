package resume

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/phpdave11/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "shorter than cap", in: "golang", max: 10, want: "golang"},
		{name: "exact cap", in: "golang", max: 6, want: "golang"},
		{name: "over cap", in: "golang developer", max: 6, want: "golang"},
		{name: "zero cap", in: "golang", max: 0, want: ""},
		{name: "counts characters not bytes", in: "héllo wörld", max: 5, want: "héllo"},
		{name: "empty", in: "", max: 5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
		})
	}
}

func TestTruncateLongText(t *testing.T) {
	long := strings.Repeat("ab", 4000)
	got := Truncate(long, 5000)
	assert.Equal(t, 5000, utf8.RuneCountInString(got))
	assert.Equal(t, long[:5000], got)
}

func TestExtractRejectsNonPDF(t *testing.T) {
	e := NewExtractor(5000)

	_, err := e.Extract(strings.NewReader("definitely not a pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreadable)

	_, err = e.Extract(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestExtractReadsEveryPage(t *testing.T) {
	data := buildPDF(t, "Golang", "Postgres")

	text, err := NewExtractor(5000).Extract(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Contains(t, text, "Golang")
	assert.Contains(t, text, "Postgres")
	assert.Less(t, strings.Index(text, "Golang"), strings.Index(text, "Postgres"), "pages keep their order")
}

func TestExtractTruncates(t *testing.T) {
	data := buildPDF(t, "Golang", "Postgres")

	text, err := NewExtractor(3).Extract(bytes.NewReader(data))
	require.NoError(t, err)
	assert.LessOrEqual(t, utf8.RuneCountInString(text), 3)
}

func buildPDF(t *testing.T, pages ...string) []byte {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, text := range pages {
		doc.AddPage()
		doc.Text(20, 20, text)
	}
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}
