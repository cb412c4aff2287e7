// Package explain renders function metrics as a short English sentence.
package explain

import (
	"fmt"
	"strings"

	"github.com/phobologic/codegauge/internal/model"
)

// Grade bands for cyclomatic complexity.
const (
	Simple      = "simple"
	Moderate    = "moderate"
	Complex     = "complex"
	VeryComplex = "very complex"
)

// Grade maps a cyclomatic complexity to a descriptive band.
func Grade(cc int) string {
	switch {
	case cc <= 3:
		return Simple
	case cc <= 7:
		return Moderate
	case cc <= 12:
		return Complex
	default:
		return VeryComplex
	}
}

// Explain describes rec in one sentence, followed by a warnings clause when
// the record carries evidence notes.
func Explain(rec *model.FunctionRecord) string {
	if rec == nil {
		rec = &model.FunctionRecord{}
	}
	name := rec.Name
	if name == "" {
		name = "(anonymous)"
	}
	params := len(rec.Params)
	plural := "s"
	if params == 1 {
		plural = ""
	}

	var tail string
	if rec.BigO != "" {
		tail = "estimated time complexity " + rec.BigO
	} else {
		cc := rec.Cyclomatic
		if cc < 1 {
			cc = 1
		}
		tail = fmt.Sprintf("a complexity grade of %s (cyclomatic %d)", Grade(cc), cc)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Function %q is %d lines long, has %d parameter%s, and %s.", name, rec.Lines, params, plural, tail)

	if len(rec.Notes) > 0 {
		warnings := strings.TrimSpace(strings.Join(rec.Notes, " "))
		b.WriteString(" Warnings: ")
		b.WriteString(strings.TrimRight(warnings, "."))
		b.WriteString(".")
	}
	return b.String()
}

// ExplainAll explains every record in order.
func ExplainAll(recs []model.FunctionRecord) []string {
	out := make([]string, len(recs))
	for i := range recs {
		out[i] = Explain(&recs[i])
	}
	return out
}
