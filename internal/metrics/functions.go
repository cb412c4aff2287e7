// Package metrics computes per-function size, structure and growth metrics
// over a syntax tree. Every function is total: an unknown language or a
// missing child yields the documented default instead of an error.
package metrics

import (
	"github.com/phobologic/codegauge/internal/lang"
	"github.com/phobologic/codegauge/internal/syntax"
)

// Anonymous is the name reported for functions without any identifier.
const Anonymous = "(anonymous)"

// FunctionsIn returns every function-like node under root in document order.
// Nested functions are reported as well as their enclosing function.
func FunctionsIn(root syntax.Node, langName string) []syntax.Node {
	l, ok := lang.Lookup(langName)
	if !ok {
		return nil
	}
	return syntax.Collect(root, syntax.OfType(l.Functions))
}

// NameFor derives a display name for a function node: the first direct
// identifier child, else the first identifier anywhere in the subtree, else
// Anonymous.
func NameFor(fn syntax.Node, langName string) string {
	l, ok := lang.Lookup(langName)
	if !ok || fn == nil {
		return Anonymous
	}
	isIdent := func(n syntax.Node) bool { return l.IsIdentifier(n.Type()) }

	for _, c := range syntax.Children(fn) {
		if isIdent(c) {
			return c.Text()
		}
	}
	if id := syntax.FindFirst(fn, isIdent); id != nil {
		return id.Text()
	}
	return Anonymous
}
