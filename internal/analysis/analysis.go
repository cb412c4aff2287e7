// Package analysis runs the full metrics pipeline over one syntax tree:
// function discovery, per-function metrics, rules and explanations.
package analysis

import (
	"github.com/phobologic/codegauge/internal/explain"
	"github.com/phobologic/codegauge/internal/lang"
	"github.com/phobologic/codegauge/internal/metrics"
	"github.com/phobologic/codegauge/internal/model"
	"github.com/phobologic/codegauge/internal/rules"
	"github.com/phobologic/codegauge/internal/syntax"
)

// Result holds the three outputs of an analysis run plus the file line count.
type Result struct {
	Lines        int
	Functions    []model.FunctionRecord
	Issues       []model.Issue
	Explanations []string
}

// Analyze measures every function in root. source must be the text root was
// parsed from. An unknown language yields the zero Result.
func Analyze(root syntax.Node, source, langName string, th rules.Thresholds) Result {
	if _, ok := lang.Lookup(langName); !ok {
		return Result{}
	}
	recs := metrics.MeasureAll(root, langName)
	return Result{
		Lines:        metrics.FileLineCount(source),
		Functions:    recs,
		Issues:       rules.IssuesForAll(recs, th),
		Explanations: explain.ExplainAll(recs),
	}
}

// FileReport converts r into the report form for the file at path.
func (r Result) FileReport(path, langName string) model.FileReport {
	return model.FileReport{
		Path:         path,
		Language:     langName,
		Lines:        r.Lines,
		Functions:    r.Functions,
		Issues:       r.Issues,
		Explanations: r.Explanations,
	}
}
