package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/phobologic/codegauge/internal/model"
)

type jsonReport struct {
	Root        string             `json:"root"`
	Files       []model.FileReport `json:"files"`
	GeneratedAt string             `json:"generatedAt,omitempty"`
}

func renderJSON(w io.Writer, r *model.Report, opts Options) error {
	out := jsonReport{Root: r.Root, Files: make([]model.FileReport, len(r.Files))}
	for i := range r.Files {
		out.Files[i] = filled(r.Files[i])
	}
	if !opts.GeneratedAt.IsZero() {
		out.GeneratedAt = opts.GeneratedAt.UTC().Format(time.RFC3339)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, r *model.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(filledReport(r)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func renderTOML(w io.Writer, r *model.Report) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(filledReport(r)); err != nil {
		return fmt.Errorf("encoding toml: %w", err)
	}
	return nil
}
