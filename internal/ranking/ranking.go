// Package ranking selects and filters the functions shown in a report.
package ranking

import (
	"sort"
	"strings"

	"github.com/phobologic/codegauge/internal/model"
)

// Hotspot is a function together with the file it was found in.
type Hotspot struct {
	File     string
	Language string
	Function *model.FunctionRecord
}

// Hotspots returns every function in r, most complex first: cyclomatic
// complexity descending, then length descending, then file path and start
// line ascending.
func Hotspots(r *model.Report) []Hotspot {
	var out []Hotspot
	for i := range r.Files {
		f := &r.Files[i]
		for j := range f.Functions {
			out = append(out, Hotspot{File: f.Path, Language: f.Language, Function: &f.Functions[j]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Function, out[j].Function
		if a.Cyclomatic != b.Cyclomatic {
			return a.Cyclomatic > b.Cyclomatic
		}
		if a.Lines != b.Lines {
			return a.Lines > b.Lines
		}
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		return a.StartLine < b.StartLine
	})
	return out
}

// SelectFunctions returns a new Report with only the maxFunctions most complex
// functions, their issues and their explanations. Files left without
// functions are dropped. Functions keep their source order within a file.
// If maxFunctions is <= 0 or >= the number of functions, r is returned.
func SelectFunctions(r *model.Report, maxFunctions int) *model.Report {
	if maxFunctions <= 0 || maxFunctions >= r.FunctionCount() {
		return r
	}

	selected := make(map[*model.FunctionRecord]struct{}, maxFunctions)
	for _, h := range Hotspots(r)[:maxFunctions] {
		selected[h.Function] = struct{}{}
	}

	return filter(r, func(_ *model.FileReport, rec *model.FunctionRecord) bool {
		_, ok := selected[rec]
		return ok
	})
}

// FilterByFunction returns a new Report containing only functions whose name
// contains substr (case-insensitive).
func FilterByFunction(r *model.Report, substr string) *model.Report {
	lower := strings.ToLower(substr)
	return filter(r, func(_ *model.FileReport, rec *model.FunctionRecord) bool {
		return strings.Contains(strings.ToLower(rec.Name), lower)
	})
}

// FilterByFile returns a new Report containing only files whose path
// contains substr (case-insensitive).
func FilterByFile(r *model.Report, substr string) *model.Report {
	lower := strings.ToLower(substr)

	var files []model.FileReport
	for i := range r.Files {
		if strings.Contains(strings.ToLower(r.Files[i].Path), lower) {
			files = append(files, r.Files[i])
		}
	}
	return &model.Report{Root: r.Root, Files: files}
}

// filter keeps the functions for which keep returns true, along with their
// explanations and the issues raised against them.
func filter(r *model.Report, keep func(*model.FileReport, *model.FunctionRecord) bool) *model.Report {
	var files []model.FileReport
	for i := range r.Files {
		f := &r.Files[i]

		type key struct {
			name string
			line int
		}
		kept := make(map[key]struct{})
		out := model.FileReport{Path: f.Path, Language: f.Language, Lines: f.Lines}

		for j := range f.Functions {
			rec := &f.Functions[j]
			if !keep(f, rec) {
				continue
			}
			kept[key{rec.Name, rec.StartLine}] = struct{}{}
			out.Functions = append(out.Functions, *rec)
			if j < len(f.Explanations) {
				out.Explanations = append(out.Explanations, f.Explanations[j])
			}
		}
		if len(out.Functions) == 0 {
			continue
		}

		for j := range f.Issues {
			is := &f.Issues[j]
			if _, ok := kept[key{is.Function, is.Line}]; ok {
				out.Issues = append(out.Issues, *is)
			}
		}
		files = append(files, out)
	}
	return &model.Report{Root: r.Root, Files: files}
}
