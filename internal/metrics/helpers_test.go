package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phobologic/codegauge/internal/lang"
	"github.com/phobologic/codegauge/internal/syntax"
)

// parse returns the root of source parsed as langName. The tree stays alive
// until the test ends.
func parse(t *testing.T, langName, source string) syntax.Node {
	t.Helper()
	l, ok := lang.Lookup(langName)
	require.True(t, ok, "language %q not registered", langName)

	src := []byte(source)
	tree, err := l.NewParser().ParseCtx(context.Background(), nil, src)
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return syntax.FromSitter(tree.RootNode(), src)
}

// fnNamed returns the function node named name.
func fnNamed(t *testing.T, root syntax.Node, langName, name string) syntax.Node {
	t.Helper()
	for _, fn := range FunctionsIn(root, langName) {
		if NameFor(fn, langName) == name {
			return fn
		}
	}
	require.Failf(t, "function not found", "no function named %q", name)
	return nil
}

func names(fns []syntax.Node, langName string) []string {
	out := make([]string, len(fns))
	for i, fn := range fns {
		out[i] = NameFor(fn, langName)
	}
	return out
}
