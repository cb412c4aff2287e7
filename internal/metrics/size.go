package metrics

import (
	"strings"

	"github.com/phobologic/codegauge/internal/syntax"
)

// FileLineCount returns the number of non-blank lines in source.
func FileLineCount(source string) int {
	if source == "" {
		return 0
	}
	n := 0
	for _, line := range strings.Split(source, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// FunctionLineCount returns the inclusive row span of fn, never negative.
func FunctionLineCount(fn syntax.Node) int {
	if fn == nil {
		return 0
	}
	n := fn.EndPoint().Row - fn.StartPoint().Row + 1
	if n < 0 {
		return 0
	}
	return n
}
