package metrics

import (
	"github.com/phobologic/codegauge/internal/lang"
	"github.com/phobologic/codegauge/internal/syntax"
)

// Cyclomatic returns 1 plus the number of decision and case-label nodes in
// fn's body. Nested functions are not descended into; their branches belong
// to their own record.
func Cyclomatic(fn syntax.Node, langName string) int {
	l, ok := lang.Lookup(langName)
	if !ok || fn == nil {
		return 1
	}

	cc := 1
	root := true
	syntax.Visit(fn, func(n syntax.Node) bool {
		if root {
			root = false
			return true
		}
		t := n.Type()
		if l.IsFunction(t) {
			return false
		}
		if l.Decisions.Has(t) {
			cc++
		}
		if l.SwitchLabels.Has(t) {
			cc++
		}
		return true
	})
	return cc
}
