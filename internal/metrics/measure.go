package metrics

import (
	"github.com/phobologic/codegauge/internal/model"
	"github.com/phobologic/codegauge/internal/syntax"
)

// Measure computes the full FunctionRecord for one function node.
func Measure(fn syntax.Node, langName string) model.FunctionRecord {
	growth, notes := EstimateGrowth(fn, langName)
	rec := model.FunctionRecord{
		Name:       NameFor(fn, langName),
		Lines:      FunctionLineCount(fn),
		Params:     ParamsOf(fn, langName),
		Cyclomatic: Cyclomatic(fn, langName),
		Growth:     growth,
		Notes:      notes,
	}
	if notes == nil {
		rec.Notes = []string{}
	}
	if fn != nil {
		rec.StartLine = fn.StartPoint().Row + 1
		rec.EndLine = fn.EndPoint().Row + 1
	}
	return rec
}

// MeasureAll measures every function under root, in document order.
func MeasureAll(root syntax.Node, langName string) []model.FunctionRecord {
	fns := FunctionsIn(root, langName)
	out := make([]model.FunctionRecord, 0, len(fns))
	for _, fn := range fns {
		out = append(out, Measure(fn, langName))
	}
	return out
}
