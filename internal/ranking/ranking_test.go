package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/codegauge/internal/model"
)

func makeReport() *model.Report {
	return &model.Report{
		Root: "test",
		Files: []model.FileReport{
			{
				Path:     "a.py",
				Language: "python",
				Lines:    40,
				Functions: []model.FunctionRecord{
					{Name: "parse", StartLine: 1, Lines: 20, Cyclomatic: 7},
					{Name: "helper", StartLine: 25, Lines: 3, Cyclomatic: 1},
				},
				Issues: []model.Issue{
					{Rule: "high-complexity", Severity: model.Warn, Function: "parse", Line: 1},
				},
				Explanations: []string{"parse explained", "helper explained"},
			},
			{
				Path:     "b.js",
				Language: "javascript",
				Lines:    30,
				Functions: []model.FunctionRecord{
					{Name: "render", StartLine: 2, Lines: 12, Cyclomatic: 7},
					{Name: "parseArgs", StartLine: 20, Lines: 8, Cyclomatic: 3},
				},
				Issues: []model.Issue{
					{Rule: "too-many-params", Severity: model.Warn, Function: "parseArgs", Line: 20},
				},
				Explanations: []string{"render explained", "parseArgs explained"},
			},
		},
	}
}

func TestHotspotsOrder(t *testing.T) {
	t.Parallel()

	var got []string
	for _, h := range Hotspots(makeReport()) {
		got = append(got, h.File+":"+h.Function.Name)
	}
	// parse and render tie on complexity; parse is longer.
	assert.Equal(t, []string{"a.py:parse", "b.js:render", "b.js:parseArgs", "a.py:helper"}, got)
}

func TestHotspotsTieBreakOnFile(t *testing.T) {
	t.Parallel()

	r := &model.Report{Files: []model.FileReport{
		{Path: "z.cpp", Functions: []model.FunctionRecord{{Name: "f", StartLine: 1, Lines: 5, Cyclomatic: 2}}},
		{Path: "a.cpp", Functions: []model.FunctionRecord{
			{Name: "g", StartLine: 9, Lines: 5, Cyclomatic: 2},
			{Name: "h", StartLine: 3, Lines: 5, Cyclomatic: 2},
		}},
	}}

	var got []string
	for _, h := range Hotspots(r) {
		got = append(got, h.Function.Name)
	}
	assert.Equal(t, []string{"h", "g", "f"}, got)
}

func TestSelectFunctionsAll(t *testing.T) {
	t.Parallel()

	r := makeReport()
	assert.Same(t, r, SelectFunctions(r, 0))
	assert.Same(t, r, SelectFunctions(r, 4))
	assert.Same(t, r, SelectFunctions(r, 10))
}

func TestSelectFunctionsSubset(t *testing.T) {
	t.Parallel()

	got := SelectFunctions(makeReport(), 2)

	require.Len(t, got.Files, 2)
	assert.Equal(t, "test", got.Root)

	a := got.Files[0]
	assert.Equal(t, 40, a.Lines)
	require.Len(t, a.Functions, 1)
	assert.Equal(t, "parse", a.Functions[0].Name)
	assert.Equal(t, []string{"parse explained"}, a.Explanations)
	assert.Len(t, a.Issues, 1)

	b := got.Files[1]
	require.Len(t, b.Functions, 1)
	assert.Equal(t, "render", b.Functions[0].Name)
	assert.Equal(t, []string{"render explained"}, b.Explanations)
	assert.Empty(t, b.Issues)
}

func TestSelectFunctionsDropsEmptyFiles(t *testing.T) {
	t.Parallel()

	got := SelectFunctions(makeReport(), 1)
	require.Len(t, got.Files, 1)
	assert.Equal(t, "a.py", got.Files[0].Path)
	assert.Equal(t, 1, got.FunctionCount())
}

func TestSelectFunctionsDoesNotMutate(t *testing.T) {
	t.Parallel()

	r := makeReport()
	SelectFunctions(r, 1)
	assert.Equal(t, 4, r.FunctionCount())
	assert.Len(t, r.Files[1].Issues, 1)
}

func TestFilterByFunction(t *testing.T) {
	t.Parallel()

	got := FilterByFunction(makeReport(), "PARSE")
	require.Len(t, got.Files, 2)
	assert.Equal(t, "parse", got.Files[0].Functions[0].Name)
	assert.Equal(t, "parseArgs", got.Files[1].Functions[0].Name)
	assert.Equal(t, []string{"parseArgs explained"}, got.Files[1].Explanations)
	require.Len(t, got.Files[1].Issues, 1)
	assert.Equal(t, "too-many-params", got.Files[1].Issues[0].Rule)

	assert.Empty(t, FilterByFunction(makeReport(), "nothing").Files)
}

func TestFilterByFile(t *testing.T) {
	t.Parallel()

	got := FilterByFile(makeReport(), ".JS")
	require.Len(t, got.Files, 1)
	assert.Equal(t, "b.js", got.Files[0].Path)
	assert.Len(t, got.Files[0].Functions, 2)
}
