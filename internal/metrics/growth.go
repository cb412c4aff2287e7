package metrics

import (
	"regexp"
	"strings"

	"github.com/phobologic/codegauge/internal/lang"
	"github.com/phobologic/codegauge/internal/model"
	"github.com/phobologic/codegauge/internal/syntax"
)

// Evidence notes attached by EstimateGrowth.
const (
	NoteRecursiveHalving = "Recursive with halving input → logarithmic."
	NoteRecursiveLinear  = "Recursive; treating as linear unless halving is detected."
	NoteNestedLoops      = "Nested loops detected."
	NoteConstantLoop     = "Loop has constant upper bound."
	NoteHalvingLoop      = "Loop with halving step detected."
	NoteSingleLoop       = "Single loop over input."
)

var (
	halvingMarkers = []string{"/ 2", ">> 1"}
	constantBound  = regexp.MustCompile(`(?:^|[^<])<=?\s*\d+\b`)
	constantRange  = regexp.MustCompile(`\brange\s*\(\s*\d+\s*\)`)
)

// signals are the syntactic hints the growth classification is based on.
type signals struct {
	recursive bool
	halving   bool
	loops     int
	constant  bool
}

// EstimateGrowth classifies fn into a heuristic asymptotic class and returns
// the single evidence note for the rule that matched, if any. The whole
// subtree is inspected, nested functions included.
func EstimateGrowth(fn syntax.Node, langName string) (model.Growth, []string) {
	l, ok := lang.Lookup(langName)
	if !ok || fn == nil {
		return model.Constant, nil
	}
	s := collectSignals(fn, l, NameFor(fn, langName))

	switch {
	case s.recursive && s.halving:
		return model.Logarithmic, []string{NoteRecursiveHalving}
	case s.recursive:
		return model.Linear, []string{NoteRecursiveLinear}
	case s.loops >= 2:
		return model.Quadratic, []string{NoteNestedLoops}
	case s.loops == 1 && s.constant:
		return model.Constant, []string{NoteConstantLoop}
	case s.loops == 1 && s.halving:
		return model.Logarithmic, []string{NoteHalvingLoop}
	case s.loops == 1:
		return model.Linear, []string{NoteSingleLoop}
	default:
		return model.Constant, nil
	}
}

func collectSignals(fn syntax.Node, l *lang.Language, name string) signals {
	var s signals
	syntax.Visit(fn, func(n syntax.Node) bool {
		t := n.Type()
		switch {
		case l.Calls.Has(t):
			if !s.recursive && name != Anonymous && callsName(n, l, name) {
				s.recursive = true
			}
		case l.Arithmetic.Has(t):
			if !s.halving && isHalving(n.Text()) {
				s.halving = true
			}
		}
		if l.Loops.Has(t) {
			s.loops++
			if !s.constant && hasConstantBound(loopHeader(n, l)) {
				s.constant = true
			}
		}
		return true
	})
	return s
}

// callsName reports whether call has a direct identifier child named name.
func callsName(call syntax.Node, l *lang.Language, name string) bool {
	for _, c := range syntax.Children(call) {
		if l.IsIdentifier(c.Type()) && c.Text() == name {
			return true
		}
	}
	return false
}

func isHalving(text string) bool {
	for _, m := range halvingMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// loopHeader returns the text of the loop's named children outside its body,
// so comparisons inside the body are not mistaken for the bound. The header
// is what precedes the body, or what follows it for a do-while whose body
// comes first. A loop without a block body ends at its last named child.
func loopHeader(loop syntax.Node, l *lang.Language) string {
	children := syntax.Children(loop)
	if len(children) < 2 {
		return ""
	}
	body := len(children) - 1
	for i, c := range children {
		if l.Bodies.Has(c.Type()) {
			body = i
			break
		}
	}

	header := children[:body]
	if body == 0 {
		header = children[1:]
	}
	parts := make([]string, 0, len(header))
	for _, c := range header {
		parts = append(parts, c.Text())
	}
	return strings.Join(parts, " ")
}

func hasConstantBound(text string) bool {
	return constantBound.MatchString(text) || constantRange.MatchString(text)
}
