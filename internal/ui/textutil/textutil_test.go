package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"日本語テキスト", 5, "日本…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}
	for _, tc := range cases {
		got := Truncate(tc.in, tc.width)
		assert.Equal(t, tc.want, got, "Truncate(%q, %d)", tc.in, tc.width)
		assert.LessOrEqual(t, Width(got), max(tc.width, 0))
	}
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab   ", Fit("ab", 5))
	assert.Equal(t, "abcd…", Fit("abcdefgh", 5))
	assert.Equal(t, 6, Width(Fit("日本", 6)))
	assert.Equal(t, "", Fit("x", 0))
}

func TestStyledWidthIgnoresEscapes(t *testing.T) {
	assert.Equal(t, 4, StyledWidth("\x1b[1mbold\x1b[0m"))
}
