package parse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/codegauge/internal/lang"
	"github.com/phobologic/codegauge/internal/model"
	"github.com/phobologic/codegauge/internal/rules"
)

func setup(t *testing.T, langName string) func(source string) model.FileReport {
	t.Helper()
	l, ok := lang.Lookup(langName)
	require.True(t, ok, "language %q not registered", langName)
	ext := l.Extensions[0]
	return func(source string) model.FileReport {
		fr, err := File(context.Background(), l, l.NewParser(), "test"+ext, []byte(source), rules.Defaults())
		require.NoError(t, err)
		return fr
	}
}

// --- Python tests ---

func TestPythonFile(t *testing.T) {
	t.Parallel()
	analyze := setup(t, "python")

	fr := analyze("def hello(name: str) -> None:\n    print(name)\n")
	assert.Equal(t, "test.py", fr.Path)
	assert.Equal(t, "python", fr.Language)
	assert.Equal(t, 2, fr.Lines)
	require.Len(t, fr.Functions, 1)

	f := fr.Functions[0]
	assert.Equal(t, "hello", f.Name)
	assert.Equal(t, 1, f.StartLine)
	assert.Equal(t, []string{"name"}, f.Params)
	assert.Equal(t, 1, f.Cyclomatic)
	assert.Empty(t, fr.Issues)
	require.Len(t, fr.Explanations, 1)
	assert.False(t, fr.Recovered)
}

func TestPythonMethods(t *testing.T) {
	t.Parallel()
	analyze := setup(t, "python")

	fr := analyze(`class MyClass:
    def my_method(self, x: int) -> str:
        return str(x)

    @staticmethod
    def helper(a, b):
        return a
`)
	require.Len(t, fr.Functions, 2)
	assert.Equal(t, "my_method", fr.Functions[0].Name)
	assert.Equal(t, []string{"x"}, fr.Functions[0].Params)
	assert.Equal(t, "helper", fr.Functions[1].Name)
	assert.Equal(t, []string{"a", "b"}, fr.Functions[1].Params)
}

// --- JavaScript tests ---

func TestJavaScriptFile(t *testing.T) {
	t.Parallel()
	analyze := setup(t, "javascript")

	fr := analyze(`export function bubble(xs) {
  for (let i = 0; i < xs.length; i++) {
    for (let j = 0; j < xs.length - i - 1; j++) {
      if (xs[j] > xs[j + 1]) {
        [xs[j], xs[j + 1]] = [xs[j + 1], xs[j]];
      }
    }
  }
  return xs;
}
`)
	require.Len(t, fr.Functions, 1)
	f := fr.Functions[0]
	assert.Equal(t, "bubble", f.Name)
	assert.Equal(t, model.Quadratic, f.Growth)
	assert.Equal(t, 4, f.Cyclomatic)
	assert.Equal(t, 10, f.Lines)
}

// --- C++ tests ---

func TestCppFile(t *testing.T) {
	t.Parallel()
	analyze := setup(t, "cpp")

	fr := analyze(`#include <vector>

int fib(int n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
`)
	require.Len(t, fr.Functions, 1)
	assert.Equal(t, "fib", fr.Functions[0].Name)
	assert.Equal(t, model.Linear, fr.Functions[0].Growth)
	require.Len(t, fr.Issues, 1)
	assert.Equal(t, rules.UnexplainedRecursion, fr.Issues[0].Rule)
}

// --- Edge cases ---

func TestEmptySource(t *testing.T) {
	t.Parallel()
	analyze := setup(t, "python")

	fr := analyze("")
	assert.Equal(t, 0, fr.Lines)
	assert.Empty(t, fr.Functions)
	assert.Equal(t, "python", fr.Language)
}

func TestSyntaxErrorsDegrade(t *testing.T) {
	t.Parallel()

	l := lang.Languages["python"]
	src := []byte("def broken(a, b:\n    return a\n\ndef ok(c):\n    return c\n")
	tree, err := Parse(context.Background(), l.NewParser(), src)
	require.NoError(t, err)
	defer tree.Close()
	assert.True(t, tree.HasErrors())

	fr, err := File(context.Background(), l, l.NewParser(), "x.py", src, rules.Defaults())
	require.NoError(t, err)
	assert.Equal(t, 4, fr.Lines)
	assert.True(t, fr.Recovered)
}
