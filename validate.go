package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phobologic/codegauge/internal/report"
)

// newValidateCmd builds the `codegauge validate` subcommand, which checks a
// json report against the report schema.
func newValidateCmd(stdout io.Writer) *cobra.Command {
	var printSchema bool

	cmd := &cobra.Command{
		Use:   "validate [report.json]",
		Short: "Check a json report against the report schema",
		Long: `Check a report produced with --format json against the report schema.
Reads from stdin when no file (or "-") is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if printSchema {
				_, err := stdout.Write(report.Schema)
				return err
			}

			label, data, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			if err := report.ValidateJSON(data); err != nil {
				return fmt.Errorf("%s: %w", label, err)
			}
			_, _ = fmt.Fprintf(stdout, "%s: valid\n", label)
			return nil
		},
	}
	cmd.Flags().BoolVar(&printSchema, "schema", false, "print the report schema and exit")
	return cmd
}

func readInput(stdin io.Reader, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, fmt.Errorf("reading stdin: %w", err)
		}
		return "stdin", data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("reading report: %w", err)
	}
	return args[0], data, nil
}
