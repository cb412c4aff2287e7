package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/phobologic/codegauge/internal/model"
)

type palette struct {
	heading *color.Color
	warn    *color.Color
	info    *color.Color
	dim     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		heading: color.New(color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		info:    color.New(color.FgCyan),
		dim:     color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.heading, p.warn, p.info, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s model.Severity) string {
	label := strings.ToUpper(string(s))
	if s == model.Warn {
		return p.warn.Sprint(label)
	}
	return p.info.Sprint(label)
}

func renderText(w io.Writer, r *model.Report, opts Options) error {
	p := newPalette(opts.Color)
	var b strings.Builder

	for i := range r.Files {
		f := &r.Files[i]
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n", p.heading.Sprint(f.Path),
			p.dim.Sprintf("(%s, %s, %s)", f.Language, plural(f.Lines, "line"), plural(len(f.Functions), "function")))

		if len(f.Functions) > 0 {
			b.WriteString(functionTable(f.Functions))
			b.WriteString("\n")
		}

		for j := range f.Issues {
			is := &f.Issues[j]
			fmt.Fprintf(&b, "  %s %s %s\n", p.severity(is.Severity), is.Message, p.dim.Sprintf("[%s:%d]", is.Rule, is.Line))
		}

		if opts.Explain {
			for j, e := range f.Explanations {
				fmt.Fprintf(&b, "  %s\n", e)
				if j < len(f.Functions) {
					for _, n := range f.Functions[j].Notes {
						fmt.Fprintf(&b, "    - %s\n", n)
					}
				}
			}
		}
	}

	b.WriteString(summary(r))
	_, err := io.WriteString(w, b.String())
	return err
}

func functionTable(fns []model.FunctionRecord) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Function", "Line", "LOC", "Params", "CC", "Big-O", "Θ", "Ω"})
	for i := range fns {
		fn := &fns[i]
		tbl.AppendRow(table.Row{fn.Name, fn.StartLine, fn.Lines, len(fn.Params), fn.Cyclomatic, fn.BigO, fn.Theta, fn.Omega})
	}
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return tbl.Render()
}

func summary(r *model.Report) string {
	var warn, info int
	for _, is := range r.Issues() {
		if is.Severity == model.Warn {
			warn++
		} else {
			info++
		}
	}
	return fmt.Sprintf("\n%s, %s, %s (%d warn, %d info)\n",
		plural(len(r.Files), "file"), plural(r.FunctionCount(), "function"), plural(warn+info, "issue"), warn, info)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
