package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phobologic/codegauge/internal/syntax"
)

func TestParamsOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lang   string
		source string
		fn     string
		want   []string
	}{
		{
			name:   "python plain",
			lang:   "python",
			source: "def f(a, b, c):\n    pass\n",
			fn:     "f",
			want:   []string{"a", "b", "c"},
		},
		{
			name: "python method drops self",
			lang: "python",
			source: `class Greeter:
    def greet(self, name, greeting="hi", *args, **kwargs):
        return greeting + name
`,
			fn:   "greet",
			want: []string{"name", "greeting", "args", "kwargs"},
		},
		{
			name:   "python typed",
			lang:   "python",
			source: "def g(x: int, y: str = 'a') -> None:\n    pass\n",
			fn:     "g",
			want:   []string{"x", "y"},
		},
		{
			name:   "python no params",
			lang:   "python",
			source: "def h():\n    pass\n",
			fn:     "h",
			want:   []string{},
		},
		{
			name:   "javascript plain",
			lang:   "javascript",
			source: "function add(a, b, c) { return a + b + c; }",
			fn:     "add",
			want:   []string{"a", "b", "c"},
		},
		{
			name:   "javascript default and rest",
			lang:   "javascript",
			source: "function f(a, b = 2, ...rest) { return a; }",
			fn:     "f",
			want:   []string{"a", "b", "rest"},
		},
		{
			name:   "javascript destructured omitted",
			lang:   "javascript",
			source: "function f({ a, b }, c) { return c; }",
			fn:     "f",
			want:   []string{"c"},
		},
		{
			name:   "cpp declarations",
			lang:   "cpp",
			source: "int sum(const std::vector<int>& v, int start, int *end) { return 0; }",
			fn:     "sum",
			want:   []string{"v", "start", "end"},
		},
		{
			name:   "cpp void",
			lang:   "cpp",
			source: "void tick() {}",
			fn:     "tick",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := parse(t, tt.lang, tt.source)
			fn := fnNamed(t, root, tt.lang, tt.fn)
			assert.Equal(t, tt.want, ParamsOf(fn, tt.lang))
		})
	}
}

func TestParamsOfMissingContainer(t *testing.T) {
	t.Parallel()

	fn := syntax.Branch("function_definition", syntax.Leaf("identifier", "f"))
	got := ParamsOf(fn, "python")
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, ParamsOf(fn, "cobol"))
	assert.Empty(t, ParamsOf(nil, "python"))
}

func TestParamsOfUsesFirstContainer(t *testing.T) {
	t.Parallel()

	fn := syntax.Branch("function_definition",
		syntax.Leaf("identifier", "f"),
		syntax.Branch("parameters", syntax.Leaf("identifier", "a")),
		syntax.Branch("block",
			syntax.Branch("function_definition",
				syntax.Leaf("identifier", "g"),
				syntax.Branch("parameters", syntax.Leaf("identifier", "b")),
			),
		),
	)
	assert.Equal(t, []string{"a"}, ParamsOf(fn, "python"))
}
