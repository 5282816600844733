package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"filinglens/internal/extract"
)

func TestClean(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  hello   world  ", "hello world"},
		{"a\t\tb\r\nc", "a b\nc"},
		{"line one\n\n\n   line two", "line one\nline two"},
		{"Balance sheet  \n  \n Notes", "Balance sheet\nNotes"},
		{"\n\n\n", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extract.Clean(tt.in), "%q", tt.in)
	}
}
