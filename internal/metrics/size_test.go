package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phobologic/codegauge/internal/syntax"
)

func TestFileLineCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   int
	}{
		{"empty", "", 0},
		{"single", "x = 1", 1},
		{"trailing newline", "x = 1\n", 1},
		{"blank lines", "a\n\n   \n\tb\n", 2},
		{"whitespace only", "  \n\t\n", 0},
		{"crlf", "a\r\n\r\nb\r\n", 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FileLineCount(tt.source))
		})
	}
}

func TestFunctionLineCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, FunctionLineCount(syntax.Leaf("f", "").Lines(4, 4)))
	assert.Equal(t, 5, FunctionLineCount(syntax.Leaf("f", "").Lines(0, 4)))
	assert.Equal(t, 0, FunctionLineCount(syntax.Leaf("f", "").Lines(9, 2)))
	assert.Equal(t, 0, FunctionLineCount(nil))
}

func TestFunctionLineCountContainment(t *testing.T) {
	t.Parallel()
	root := parse(t, "python", pyNested)

	outer := fnNamed(t, root, "python", "outer")
	inner := fnNamed(t, root, "python", "inner")
	assert.Equal(t, 6, FunctionLineCount(outer))
	assert.Equal(t, 4, FunctionLineCount(inner))
	assert.GreaterOrEqual(t, FunctionLineCount(outer), FunctionLineCount(inner))
}
