// Package parse runs tree-sitter over source files and feeds the resulting
// trees to the analysis pipeline.
package parse

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/codegauge/internal/analysis"
	"github.com/phobologic/codegauge/internal/lang"
	"github.com/phobologic/codegauge/internal/model"
	"github.com/phobologic/codegauge/internal/rules"
	"github.com/phobologic/codegauge/internal/syntax"
)

// ErrNoTree is returned when tree-sitter produces no tree for the input.
var ErrNoTree = errors.New("parser returned no tree")

// Tree is a parsed source file. Nodes obtained from Root are valid until Close.
type Tree struct {
	tree   *sitter.Tree
	source []byte
}

// Root returns the root node of the tree.
func (t *Tree) Root() syntax.Node {
	return syntax.FromSitter(t.tree.RootNode(), t.source)
}

// HasErrors reports whether tree-sitter had to recover from syntax errors.
func (t *Tree) HasErrors() bool {
	return t.tree.RootNode().HasError()
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	t.tree.Close()
}

// Parse parses source with parser, which must already be set to the right
// language.
func Parse(ctx context.Context, parser *sitter.Parser, source []byte) (*Tree, error) {
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, ErrNoTree
	}
	return &Tree{tree: tree, source: source}, nil
}

// File parses one source file and analyzes it. The parser must be created
// for l. path is used only for the report and should be repo-relative.
func File(ctx context.Context, l *lang.Language, parser *sitter.Parser, path string, source []byte, th rules.Thresholds) (model.FileReport, error) {
	if len(source) == 0 {
		return analysis.Result{}.FileReport(path, l.Name), nil
	}

	tree, err := Parse(ctx, parser, source)
	if err != nil {
		return model.FileReport{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	defer tree.Close()

	res := analysis.Analyze(tree.Root(), string(source), l.Name, th)
	fr := res.FileReport(path, l.Name)
	fr.Recovered = tree.HasErrors()
	return fr, nil
}
