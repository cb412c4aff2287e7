// Package lang provides the language registry: for each supported grammar it
// maps canonical structural categories to concrete tree-sitter node types, and
// file extensions to language names.
package lang

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/src-d/enry/v2"
)

// ErrUnsupportedLanguage is returned when a language name is not registered.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Set is a set of tree-sitter node type names.
type Set map[string]struct{}

// NewSet builds a Set from the given node types.
func NewSet(types ...string) Set {
	s := make(Set, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether t is in the set. A nil set contains nothing.
func (s Set) Has(t string) bool {
	_, ok := s[t]
	return ok
}

// Union returns a new set holding the members of s and every other set.
func (s Set) Union(others ...Set) Set {
	out := make(Set, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	for _, o := range others {
		for t := range o {
			out[t] = struct{}{}
		}
	}
	return out
}

// Language holds tree-sitter configuration and the node vocabulary for a
// supported language. Values are built once in init() and never modified.
type Language struct {
	Name       string
	Extensions []string
	// Enry is the language name enry reports for this grammar.
	Enry string
	lang *sitter.Language

	// Functions are function-like declarations, including lambdas, arrow
	// functions and methods.
	Functions Set
	// Loops are loop statements.
	Loops Set
	// Decisions are the nodes that add one path each to cyclomatic
	// complexity. Loops are included.
	Decisions Set
	// SwitchLabels are case labels, counted separately from Decisions.
	// Default labels are included so a switch scores the same in every
	// language.
	SwitchLabels Set
	// Bodies are the statement blocks that follow a loop header.
	Bodies Set
	// ParamContainers hold a function's declared parameters.
	ParamContainers Set
	// ParamWrappers are parameter children that wrap the parameter name
	// (typed, defaulted, splat or declaration nodes).
	ParamWrappers Set
	// Identifiers are the node types that carry names.
	Identifiers Set
	// Calls are call expressions.
	Calls Set
	// Arithmetic are binary, assignment and update expressions inspected for
	// halving steps.
	Arithmetic Set
	// Receivers are parameter names that denote the method receiver and are
	// not reported as parameters.
	Receivers Set
}

// GetLanguage returns the tree-sitter Language pointer.
func (l *Language) GetLanguage() *sitter.Language {
	return l.lang
}

// NewParser creates a fresh tree-sitter parser for this language.
// Each goroutine must use its own parser (not thread-safe).
func (l *Language) NewParser() *sitter.Parser {
	p := sitter.NewParser()
	p.SetLanguage(l.lang)
	return p
}

// IsFunction reports whether node type t is function-like.
func (l *Language) IsFunction(t string) bool { return l.Functions.Has(t) }

// IsIdentifier reports whether node type t names something.
func (l *Language) IsIdentifier(t string) bool { return l.Identifiers.Has(t) }

// Languages maps language names to their configuration.
// Populated by init() functions in per-language files.
var Languages = map[string]*Language{}

// Lookup returns the registered language for name.
func Lookup(name string) (*Language, bool) {
	l, ok := Languages[name]
	return l, ok
}

// Names returns the registered language names in lexical order.
func Names() []string {
	names := make([]string, 0, len(Languages))
	for n := range Languages {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ParseList splits a comma-separated language list and validates each entry.
func ParseList(list string) ([]string, error) {
	var out []string
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := Languages[name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrUnsupportedLanguage, name)
		}
		out = append(out, name)
	}
	return out, nil
}

// extensionMap is built lazily after all init() functions have run.
var (
	extensionMap  map[string]string
	enryMap       map[string]string
	extensionOnce sync.Once
)

func buildMaps() {
	extensionOnce.Do(func() {
		extensionMap = make(map[string]string)
		enryMap = make(map[string]string)
		for _, l := range Languages {
			for _, ext := range l.Extensions {
				extensionMap[ext] = l.Name
			}
			if l.Enry != "" {
				enryMap[l.Enry] = l.Name
			}
		}
	})
}

// ForExtension returns the language name for a file extension, or "" if unsupported.
func ForExtension(ext string) string {
	buildMaps()
	return extensionMap[strings.ToLower(ext)]
}

// Detect returns the language name for a file, trying the extension first and
// then enry's filename, shebang and content classifiers. content may be nil.
// Returns "" when the file is not in a supported language.
func Detect(filename string, content []byte) string {
	if name := ForExtension(filepath.Ext(filename)); name != "" {
		return name
	}
	buildMaps()
	if sb, ok := enry.GetLanguageByShebang(content); ok {
		if name := enryMap[sb]; name != "" {
			return name
		}
	}
	return enryMap[enry.GetLanguage(filepath.Base(filename), content)]
}
