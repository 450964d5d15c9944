package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no reserved characters", "hello world", "hello world"},
		{"empty", "", ""},
		{"ampersand", "a&b", "a&amp;b"},
		{"angle brackets", "<script>", "&lt;script&gt;"},
		{"mixed", "<a&b>", "&lt;a&amp;b&gt;"},
		{"already escaped entity", "&lt;", "&amp;lt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}
}

// The entities introduced for < and > must not themselves be re-escaped.
func TestEscapeDoesNotDoubleEscape(t *testing.T) {
	out := Escape("<")
	assert.Equal(t, "&lt;", out)
	assert.NotContains(t, out, "&amp;lt;")
}

func TestInlineCode(t *testing.T) {
	assert.Equal(t, "`ls -la`", InlineCode("ls -la"))
}

func TestCodeBlock(t *testing.T) {
	assert.Equal(t, "```output```", CodeBlock("output"))
	assert.Equal(t, "``````", CodeBlock(""))
}
