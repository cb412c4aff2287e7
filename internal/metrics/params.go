package metrics

import (
	"github.com/phobologic/codegauge/internal/lang"
	"github.com/phobologic/codegauge/internal/syntax"
)

// ParamsOf returns the declared parameter names of fn in order. The first
// parameter container found depth-first is used. Wrapped parameters (typed,
// defaulted, splat, C++ declarations) report their first identifier;
// destructuring patterns without one are omitted. Receiver names such as
// Python's self are dropped.
func ParamsOf(fn syntax.Node, langName string) []string {
	l, ok := lang.Lookup(langName)
	if !ok {
		return []string{}
	}
	names := []string{}

	list := syntax.FindFirst(fn, func(n syntax.Node) bool {
		return l.ParamContainers.Has(n.Type())
	})
	if list == nil {
		return names
	}

	isIdent := func(n syntax.Node) bool { return l.IsIdentifier(n.Type()) }
	for _, p := range syntax.Children(list) {
		var name string
		switch {
		case isIdent(p):
			name = p.Text()
		case l.ParamWrappers.Has(p.Type()):
			if id := syntax.FindFirst(p, isIdent); id != nil {
				name = id.Text()
			}
		}
		if name == "" || l.Receivers.Has(name) {
			continue
		}
		names = append(names, name)
	}
	return names
}
