package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/phobologic/codegauge/internal/model"
)

func renderMarkdown(w io.Writer, r *model.Report) error {
	var b strings.Builder
	b.WriteString("# Analysis Report\n")

	for i := range r.Files {
		f := &r.Files[i]
		fmt.Fprintf(&b, "\n## %s\n\n", f.Path)
		fmt.Fprintf(&b, "- **Language:** %s\n", f.Language)
		fmt.Fprintf(&b, "- **File LOC:** %d\n", f.Lines)
		fmt.Fprintf(&b, "- **Functions:** %d\n", len(f.Functions))

		b.WriteString("\n### Metrics\n")
		b.WriteString("| Function | LOC | Big-O | Θ | Ω | Params |\n")
		b.WriteString("|---|---:|---:|---:|---:|---:|\n")
		for j := range f.Functions {
			fn := &f.Functions[j]
			fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %d |\n",
				cell(fn.Name), fn.Lines, fn.BigO, fn.Theta, fn.Omega, len(fn.Params))
		}

		b.WriteString("\n### Issues\n")
		if len(f.Issues) == 0 {
			b.WriteString("No issues found.\n")
		}
		for j := range f.Issues {
			is := &f.Issues[j]
			fmt.Fprintf(&b, "- **%s** — %s\n", strings.ToUpper(string(is.Severity)), is.Message)
		}

		b.WriteString("\n### Explanation\n")
		for j, e := range f.Explanations {
			fmt.Fprintf(&b, "- %s\n", e)
			if j < len(f.Functions) {
				for _, n := range f.Functions[j].Notes {
					fmt.Fprintf(&b, "  - %s\n", n)
				}
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// cell escapes pipes so a value cannot split a table row.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
