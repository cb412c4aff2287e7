// Package report renders an analysis Report in the supported output formats.
package report

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/phobologic/codegauge/internal/model"
	"github.com/phobologic/codegauge/internal/toon"
)

// Output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatTOML     = "toml"
	FormatTOON     = "toon"
)

// Formats lists every supported format name.
var Formats = []string{FormatText, FormatMarkdown, FormatJSON, FormatYAML, FormatTOML, FormatTOON}

// ErrUnknownFormat is returned by Render for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Options tune rendering.
type Options struct {
	// Color enables ANSI colour in the text format.
	Color bool
	// Explain adds the per-function explanations to the text format.
	Explain bool
	// GeneratedAt is stamped into JSON output when non-zero.
	GeneratedAt time.Time
}

// IsFormat reports whether name is a supported format. "md" is accepted as
// an alias for markdown.
func IsFormat(name string) bool {
	return slices.Contains(Formats, normalize(name))
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "md" {
		return FormatMarkdown
	}
	if name == "" {
		return FormatText
	}
	return name
}

// Render writes r to w in the named format.
func Render(w io.Writer, format string, r *model.Report, opts Options) error {
	switch normalize(format) {
	case FormatText:
		return renderText(w, r, opts)
	case FormatMarkdown:
		return renderMarkdown(w, r)
	case FormatJSON:
		return renderJSON(w, r, opts)
	case FormatYAML:
		return renderYAML(w, r)
	case FormatTOML:
		return renderTOML(w, r)
	case FormatTOON:
		_, err := fmt.Fprintln(w, toon.Encode(r))
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// filled returns a copy of f whose slices are non-nil, so encoders emit
// empty lists rather than null.
func filled(f model.FileReport) model.FileReport {
	fns := make([]model.FunctionRecord, len(f.Functions))
	for i, fn := range f.Functions {
		if fn.Params == nil {
			fn.Params = []string{}
		}
		if fn.Notes == nil {
			fn.Notes = []string{}
		}
		fns[i] = fn
	}
	f.Functions = fns
	if f.Issues == nil {
		f.Issues = []model.Issue{}
	}
	if f.Explanations == nil {
		f.Explanations = []string{}
	}
	return f
}

func filledReport(r *model.Report) *model.Report {
	out := &model.Report{Root: r.Root, Files: make([]model.FileReport, len(r.Files))}
	for i := range r.Files {
		out.Files[i] = filled(r.Files[i])
	}
	return out
}
