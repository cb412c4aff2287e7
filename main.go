// codegauge reports size, cyclomatic complexity and estimated growth for the
// functions in Python, JavaScript and C++ source files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/spf13/cobra"

	"github.com/phobologic/codegauge/internal/config"
	"github.com/phobologic/codegauge/internal/discover"
	"github.com/phobologic/codegauge/internal/lang"
	"github.com/phobologic/codegauge/internal/logging"
	"github.com/phobologic/codegauge/internal/model"
	"github.com/phobologic/codegauge/internal/parse"
	"github.com/phobologic/codegauge/internal/ranking"
	"github.com/phobologic/codegauge/internal/report"
	"github.com/phobologic/codegauge/internal/rules"
)

var version = "dev"

// errWarnings is returned with --fail-on-warn when a warn issue is reported.
var errWarnings = errors.New("warn-level issues found")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

type options struct {
	configPath   string
	langs        string
	format       string
	maxFunctions int
	maxFileSize  string
	workers      int
	cachePath    string
	th           rules.Thresholds
	file         string
	function     string
	excludeTests bool
	explain      bool
	noColor      bool
	verbose      int
	quiet        bool
	failOnWarn   bool
	showVersion  bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:   "codegauge [flags] [path...]",
		Short: "Function size, complexity and growth estimates for Python, JavaScript and C++",
		Long: `codegauge parses source files with tree-sitter and reports, for every
function, its length, parameters, cyclomatic complexity and a heuristic
asymptotic growth estimate, along with rule-based issues and a one-line
explanation.

Paths may be files or directories and default to the current directory.
Settings are read from ` + config.FileName + ` and CODEGAUGE_* environment
variables; flags take precedence.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.showVersion {
				_, _ = fmt.Fprintf(stdout, "codegauge %s\n", version)
				return nil
			}
			cfg, err := resolveConfig(cmd, o, args)
			if err != nil {
				return err
			}
			return analyze(cmd.Context(), cfg, o, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&o.langs, "langs", "l", "", "comma-separated languages to include ("+strings.Join(lang.Names(), ", ")+")")
	f.StringVarP(&o.format, "format", "f", "", "output format: "+strings.Join(report.Formats, ", "))
	f.IntVarP(&o.maxFunctions, "max-functions", "n", 0, "show only the N most complex functions")
	f.StringVar(&o.maxFileSize, "max-file-size", "", `skip files larger than this (e.g. "1 MB", "500KiB")`)
	f.IntVarP(&o.workers, "workers", "j", 0, "number of parallel parsers (default GOMAXPROCS)")
	f.StringVar(&o.cachePath, "cache", "", "cache file path")
	f.StringVar(&o.configPath, "config", "", "config file (default ./"+config.FileName+")")
	f.IntVar(&o.th.LongFunction, "long-function", 0, "report functions longer than this many lines")
	f.IntVar(&o.th.ManyParams, "many-params", 0, "report functions with more parameters than this")
	f.IntVar(&o.th.HighComplexity, "high-complexity", 0, "report functions with cyclomatic complexity above this")
	f.StringVar(&o.file, "file", "", "only files whose path contains this substring")
	f.StringVar(&o.function, "function", "", "only functions whose name contains this substring")
	f.BoolVar(&o.excludeTests, "exclude-tests", false, "skip test files")
	f.BoolVar(&o.explain, "explain", false, "print explanations in text output")
	f.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	f.CountVarP(&o.verbose, "verbose", "v", "log progress (-v info, -vv debug)")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "suppress log output")
	f.BoolVar(&o.failOnWarn, "fail-on-warn", false, "exit with an error when any warn-level issue is reported")
	f.BoolVarP(&o.showVersion, "version", "V", false, "show version and exit")

	cmd.AddCommand(newInitCmd(stdout, stderr), newValidateCmd(stdout), newVersionCmd(stdout))
	return cmd
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			_, _ = fmt.Fprintf(stdout, "codegauge %s\n", version)
			_, _ = fmt.Fprintf(stdout, "Go version: %s\n", runtime.Version())
			_, _ = fmt.Fprintf(stdout, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// resolveConfig loads the config file and applies flag overrides. The config
// file is looked up in the first path argument when it is a directory.
func resolveConfig(cmd *cobra.Command, o options, args []string) (*config.Config, error) {
	dir := "."
	if len(args) > 0 {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			dir = args[0]
		}
	}

	cfg, err := config.Load(o.configPath, dir)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("langs") {
		names, err := lang.ParseList(o.langs)
		if err != nil {
			return nil, err
		}
		cfg.Analysis.Languages = names
	}
	if changed("format") {
		cfg.Output.Format = o.format
	}
	if changed("max-functions") {
		cfg.Output.MaxFunctions = o.maxFunctions
	}
	if changed("max-file-size") {
		cfg.Analysis.MaxFileSize = o.maxFileSize
	}
	if changed("workers") {
		cfg.Analysis.Workers = o.workers
	}
	if changed("long-function") {
		cfg.Thresholds.LongFunction = o.th.LongFunction
	}
	if changed("many-params") {
		cfg.Thresholds.ManyParams = o.th.ManyParams
	}
	if changed("high-complexity") {
		cfg.Thresholds.HighComplexity = o.th.HighComplexity
	}
	if o.noColor {
		cfg.Output.Color = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, o options, stderr io.Writer) *slog.Logger {
	if o.quiet {
		return logging.Discard()
	}
	level := logging.LevelFromString(cfg.Logging.Level)
	if o.verbose > 0 || o.quiet {
		level = logging.LevelFromVerbosity(o.verbose, o.quiet)
	}
	return logging.New(stderr, level, cfg.Logging.Format)
}

// target is a file selected for analysis.
type target struct {
	abs      string // Absolute path, used for reading
	display  string // Path shown in the report
	language string
}

func analyze(ctx context.Context, cfg *config.Config, o options, args []string, stdout, stderr io.Writer) error {
	log := newLogger(cfg, o, stderr)

	if len(args) == 0 {
		args = []string{"."}
	}
	targets, rootName, err := resolveTargets(args, cfg.Analysis.Languages)
	if err != nil {
		return err
	}
	if o.excludeTests {
		targets = dropTests(targets)
	}
	if len(targets) == 0 {
		return fmt.Errorf("no analyzable files found")
	}

	maxSize, err := cfg.MaxFileSizeBytes()
	if err != nil {
		return err
	}
	targets = filterBySize(targets, maxSize, log)
	if len(targets) == 0 {
		return fmt.Errorf("no analyzable files found (all exceeded size limit)")
	}

	th := cfg.Thresholds.WithDefaults()

	var (
		rep    *model.Report
		cached bool
	)
	if o.cachePath != "" {
		rep, cached = loadCache(o.cachePath, th, targets)
	}

	if cached {
		log.Info("using cache", "path", o.cachePath)
	} else {
		files := analyzeConcurrent(ctx, targets, cfg.Analysis.Workers, th, log)
		if len(files) == 0 {
			return fmt.Errorf("no files could be parsed")
		}
		rep = &model.Report{Root: rootName, Files: files}

		if o.cachePath != "" {
			if err := writeCache(o.cachePath, th, rep); err != nil {
				log.Warn("writing cache failed", "path", o.cachePath, "err", err)
			}
		}
	}
	log.Info("analysis complete", "files", len(rep.Files), "functions", rep.FunctionCount(), "cached", cached)

	if o.file != "" {
		rep = ranking.FilterByFile(rep, o.file)
	}
	if o.function != "" {
		rep = ranking.FilterByFunction(rep, o.function)
	}
	rep = ranking.SelectFunctions(rep, cfg.Output.MaxFunctions)

	opts := report.Options{
		Color:       cfg.Output.Color && !color.NoColor,
		Explain:     o.explain,
		GeneratedAt: time.Now(),
	}
	if err := report.Render(stdout, cfg.Output.Format, rep, opts); err != nil {
		return err
	}

	if o.failOnWarn && rep.HasSeverity(model.Warn) {
		return errWarnings
	}
	return nil
}

// resolveTargets expands path arguments into files. Directory entries are
// shown relative to their directory when a single directory is analyzed.
func resolveTargets(args, languages []string) ([]target, string, error) {
	var (
		targets  []target
		rootName string
	)
	single := len(args) == 1

	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, "", fmt.Errorf("resolving %s: %w", arg, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, "", fmt.Errorf("root path: %w", err)
		}

		if !info.IsDir() {
			entry, ok := discover.File(abs)
			if !ok {
				return nil, "", fmt.Errorf("%s: %w", arg, lang.ErrUnsupportedLanguage)
			}
			if !wanted(entry.Language, languages) {
				continue
			}
			targets = append(targets, target{abs: abs, display: filepath.Clean(arg), language: entry.Language})
			continue
		}

		if single {
			rootName = filepath.Base(abs)
		}
		entries, err := discover.Files(abs, languages)
		if err != nil {
			return nil, "", fmt.Errorf("discovering files: %w", err)
		}
		for _, e := range entries {
			display := e.Path
			if !single {
				display = filepath.Join(arg, e.Path)
			}
			targets = append(targets, target{abs: filepath.Join(abs, e.Path), display: display, language: e.Language})
		}
	}
	return targets, rootName, nil
}

func wanted(language string, languages []string) bool {
	if len(languages) == 0 {
		return true
	}
	for _, l := range languages {
		if l == language {
			return true
		}
	}
	return false
}

func dropTests(targets []target) []target {
	var kept []target
	for _, t := range targets {
		if !discover.IsTestFile(t.display) {
			kept = append(kept, t)
		}
	}
	return kept
}

func filterBySize(targets []target, maxSize uint64, log *slog.Logger) []target {
	var kept []target
	for _, t := range targets {
		fi, err := os.Stat(t.abs)
		if err != nil {
			kept = append(kept, t) // keep if can't stat
			continue
		}
		if uint64(fi.Size()) > maxSize {
			log.Warn("skipped file over size limit", "path", t.display,
				"size", humanize.Bytes(uint64(fi.Size())), "limit", humanize.Bytes(maxSize))
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

func analyzeConcurrent(ctx context.Context, targets []target, workers int, th rules.Thresholds, log *slog.Logger) []model.FileReport {
	type result struct {
		index  int
		report model.FileReport
	}

	numWorkers := workers
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if numWorkers > len(targets) {
		numWorkers = len(targets)
	}

	work := make(chan int, len(targets))
	results := make(chan result, len(targets))

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Each goroutine gets its own parser per language
			parsers := make(map[string]*sitter.Parser)

			for idx := range work {
				t := targets[idx]
				l, ok := lang.Lookup(t.language)
				if !ok {
					continue
				}
				parser, ok := parsers[t.language]
				if !ok {
					parser = l.NewParser()
					parsers[t.language] = parser
				}

				source, err := os.ReadFile(t.abs)
				if err != nil {
					log.Warn("failed to read file", "path", t.display, "err", err)
					continue
				}

				start := time.Now()
				fr, err := parse.File(ctx, l, parser, t.display, source, th)
				if err != nil {
					log.Warn("failed to parse file", "path", t.display, "err", err)
					continue
				}
				if fr.Recovered {
					log.Warn("syntax errors, analyzed recovered tree", "path", t.display)
				}
				log.Debug("analyzed file", "path", t.display, "functions", len(fr.Functions), "elapsed", time.Since(start))
				results <- result{index: idx, report: fr}
			}

			for _, p := range parsers {
				p.Close()
			}
		}()
	}

	for i := range targets {
		work <- i
	}
	close(work)

	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect results in original order
	indexed := make([]model.FileReport, len(targets))
	valid := make([]bool, len(targets))
	for r := range results {
		indexed[r.index] = r.report
		valid[r.index] = true
	}

	var files []model.FileReport
	for i, v := range valid {
		if v {
			files = append(files, indexed[i])
		}
	}
	return files
}
