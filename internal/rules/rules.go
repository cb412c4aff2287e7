// Package rules turns function metrics into issues using configurable
// thresholds.
package rules

import (
	"fmt"
	"strings"

	"github.com/phobologic/codegauge/internal/model"
)

// Rule identifiers, in evaluation order.
const (
	LongFunction         = "long-function"
	TooManyParams        = "too-many-params"
	HighComplexity       = "high-complexity"
	UnexplainedRecursion = "unexplained-recursion"
	ConstantLoopNote     = "constant-loop-note"
)

// Default thresholds.
const (
	DefaultLongFunction   = 30
	DefaultManyParams     = 5
	DefaultHighComplexity = 10
)

// Thresholds are the limits above which a metric is reported. A zero field
// means "use the default".
type Thresholds struct {
	LongFunction   int `mapstructure:"long_function" yaml:"long_function" json:"long_function"`
	ManyParams     int `mapstructure:"many_params" yaml:"many_params" json:"many_params"`
	HighComplexity int `mapstructure:"high_complexity" yaml:"high_complexity" json:"high_complexity"`
}

// Defaults returns the default thresholds.
func Defaults() Thresholds {
	return Thresholds{
		LongFunction:   DefaultLongFunction,
		ManyParams:     DefaultManyParams,
		HighComplexity: DefaultHighComplexity,
	}
}

// WithDefaults returns th with every non-positive field replaced by its default.
func (th Thresholds) WithDefaults() Thresholds {
	d := Defaults()
	if th.LongFunction <= 0 {
		th.LongFunction = d.LongFunction
	}
	if th.ManyParams <= 0 {
		th.ManyParams = d.ManyParams
	}
	if th.HighComplexity <= 0 {
		th.HighComplexity = d.HighComplexity
	}
	return th
}

// rule is a single check. It returns the message and true when it fires.
type rule struct {
	id       string
	severity model.Severity
	check    func(rec *model.FunctionRecord, th Thresholds) (string, bool)
}

var ruleset = []rule{
	{LongFunction, model.Info, func(rec *model.FunctionRecord, th Thresholds) (string, bool) {
		return fmt.Sprintf("%q is long (%d LOC). Consider extracting helpers.", rec.Name, rec.Lines),
			rec.Lines > th.LongFunction
	}},
	{TooManyParams, model.Warn, func(rec *model.FunctionRecord, th Thresholds) (string, bool) {
		return fmt.Sprintf("%q has %d parameters. Consider grouping.", rec.Name, len(rec.Params)),
			len(rec.Params) > th.ManyParams
	}},
	{HighComplexity, model.Warn, func(rec *model.FunctionRecord, th Thresholds) (string, bool) {
		return fmt.Sprintf("%q has high cyclomatic complexity (%d).", rec.Name, rec.Cyclomatic),
			rec.Cyclomatic > th.HighComplexity
	}},
	{UnexplainedRecursion, model.Warn, func(rec *model.FunctionRecord, _ Thresholds) (string, bool) {
		return fmt.Sprintf("%q is recursive but no base case was identified.", rec.Name),
			anyNote(rec.Notes, "recursive") && !anyNote(rec.Notes, "base case")
	}},
	{ConstantLoopNote, model.Info, func(rec *model.FunctionRecord, _ Thresholds) (string, bool) {
		return fmt.Sprintf("%q loops a constant number of times; treated as O(1).", rec.Name),
			anyNote(rec.Notes, "constant upper bound")
	}},
}

// IssuesFor evaluates every rule against rec in fixed order. Zero thresholds
// fall back to the defaults; a nil record yields no issues.
func IssuesFor(rec *model.FunctionRecord, th Thresholds) []model.Issue {
	issues := []model.Issue{}
	if rec == nil {
		return issues
	}
	th = th.WithDefaults()
	for _, r := range ruleset {
		msg, fired := r.check(rec, th)
		if !fired {
			continue
		}
		issues = append(issues, model.Issue{
			Rule:     r.id,
			Severity: r.severity,
			Message:  msg,
			Function: rec.Name,
			Line:     rec.StartLine,
		})
	}
	return issues
}

// IssuesForAll evaluates every record in order and concatenates the results.
func IssuesForAll(recs []model.FunctionRecord, th Thresholds) []model.Issue {
	issues := []model.Issue{}
	for i := range recs {
		issues = append(issues, IssuesFor(&recs[i], th)...)
	}
	return issues
}

func anyNote(notes []string, substr string) bool {
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n), substr) {
			return true
		}
	}
	return false
}
