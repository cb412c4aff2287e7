package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext  string
		want string
	}{
		{".py", "python"},
		{".js", "javascript"},
		{".mjs", "javascript"},
		{".cpp", "cpp"},
		{".HPP", "cpp"},
		{".go", ""},
		{".rb", ""},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.ext, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ForExtension(tt.ext))
		})
	}
}

func TestLanguagesRegistered(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"cpp", "javascript", "python"}, Names())
	for _, name := range Names() {
		l, ok := Lookup(name)
		require.True(t, ok, name)
		assert.NotNil(t, l.GetLanguage(), name)
	}
}

func TestCategoriesNonEmpty(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		l := Languages[name]
		cats := map[string]Set{
			"functions":        l.Functions,
			"loops":            l.Loops,
			"decisions":        l.Decisions,
			"switch labels":    l.SwitchLabels,
			"bodies":           l.Bodies,
			"param containers": l.ParamContainers,
			"identifiers":      l.Identifiers,
			"calls":            l.Calls,
			"arithmetic":       l.Arithmetic,
		}
		for cat, set := range cats {
			assert.NotEmptyf(t, set, "%s: %s is empty", name, cat)
		}
		for loop := range l.Loops {
			assert.Truef(t, l.Decisions.Has(loop), "%s: loop %s is not a decision", name, loop)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	l, ok := Lookup("cobol")
	assert.False(t, ok)
	assert.Nil(t, l)
}

func TestNewParser(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		assert.NotNil(t, Languages[name].NewParser(), name)
	}
}

func TestParseList(t *testing.T) {
	t.Parallel()

	got, err := ParseList("python, cpp,,")
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "cpp"}, got)

	_, err = ParseList("python,ruby")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Contains(t, err.Error(), `"ruby"`)
}

func TestDetect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "python", Detect("tool.py", nil))
	assert.Equal(t, "python", Detect("tool", []byte("#!/usr/bin/env python3\nprint(1)\n")))
	assert.Equal(t, "javascript", Detect("cli", []byte("#!/usr/bin/env node\nconsole.log(1)\n")))
	assert.Equal(t, "", Detect("notes.txt", []byte("hello")))
}

func TestSet(t *testing.T) {
	t.Parallel()

	a := NewSet("b", "a")
	u := a.Union(NewSet("c"), nil)
	assert.Equal(t, NewSet("a", "b", "c"), u)
	assert.Len(t, a, 2)

	var empty Set
	assert.False(t, empty.Has("a"))
}
