// Package model defines core data structures for codegauge.
package model

// Severity is the importance of an Issue.
type Severity string

const (
	Info Severity = "info"
	Warn Severity = "warn"
)

// Growth is a heuristic asymptotic class triple.
type Growth struct {
	BigO  string `json:"bigO" yaml:"bigO" toml:"bigO"`
	Theta string `json:"theta" yaml:"theta" toml:"theta"`
	Omega string `json:"omega" yaml:"omega" toml:"omega"`
}

// Common growth classes.
var (
	Constant    = Growth{BigO: "O(1)", Theta: "Θ(1)", Omega: "Ω(1)"}
	Logarithmic = Growth{BigO: "O(log n)", Theta: "Θ(log n)", Omega: "Ω(log n)"}
	Linear      = Growth{BigO: "O(n)", Theta: "Θ(n)", Omega: "Ω(1)"}
	Quadratic   = Growth{BigO: "O(n²)", Theta: "Θ(n²)", Omega: "Ω(n²)"}
)

// FunctionRecord holds the metrics computed for one function node.
type FunctionRecord struct {
	Name       string   `json:"name" yaml:"name" toml:"name"`
	StartLine  int      `json:"startLine" yaml:"startLine" toml:"startLine"`
	EndLine    int      `json:"endLine" yaml:"endLine" toml:"endLine"`
	Lines      int      `json:"loc" yaml:"loc" toml:"loc"`
	Params     []string `json:"params" yaml:"params" toml:"params"`
	Cyclomatic int      `json:"cc" yaml:"cc" toml:"cc"`
	Growth     `yaml:",inline"`
	Notes      []string `json:"notes" yaml:"notes" toml:"notes"`
}

// Issue is a rule violation found in a FunctionRecord.
type Issue struct {
	Rule     string   `json:"rule" yaml:"rule" toml:"rule"`
	Severity Severity `json:"severity" yaml:"severity" toml:"severity"`
	Message  string   `json:"message" yaml:"message" toml:"message"`
	Function string   `json:"function" yaml:"function" toml:"function"`
	Line     int      `json:"line" yaml:"line" toml:"line"`
}

// FileReport is the analysis result for a single source file.
type FileReport struct {
	Path         string           `json:"path" yaml:"path" toml:"path"`
	Language     string           `json:"lang" yaml:"lang" toml:"lang"`
	Lines        int              `json:"fileLoc" yaml:"fileLoc" toml:"fileLoc"`
	Functions    []FunctionRecord `json:"rows" yaml:"rows" toml:"rows"`
	Issues       []Issue          `json:"issues" yaml:"issues" toml:"issues"`
	Explanations []string         `json:"explanations" yaml:"explanations" toml:"explanations"`

	// Recovered is set when the parser had to recover from syntax errors.
	Recovered bool `json:"-" yaml:"-" toml:"-"`
}

// Report is the complete analysis of a set of files, ready for rendering.
type Report struct {
	Root  string       `json:"root" yaml:"root" toml:"root"`
	Files []FileReport `json:"files" yaml:"files" toml:"files"`
}

// FunctionCount returns the number of functions across all files.
func (r *Report) FunctionCount() int {
	n := 0
	for i := range r.Files {
		n += len(r.Files[i].Functions)
	}
	return n
}

// Issues returns every issue across all files in file order.
func (r *Report) Issues() []Issue {
	var out []Issue
	for i := range r.Files {
		out = append(out, r.Files[i].Issues...)
	}
	return out
}

// HasSeverity reports whether any issue in the report has severity s.
func (r *Report) HasSeverity(s Severity) bool {
	for i := range r.Files {
		for j := range r.Files[i].Issues {
			if r.Files[i].Issues[j].Severity == s {
				return true
			}
		}
	}
	return false
}
