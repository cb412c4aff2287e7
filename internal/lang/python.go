package lang

import (
	"github.com/smacker/go-tree-sitter/python"
)

func init() {
	loops := NewSet("for_statement", "while_statement")
	Languages["python"] = &Language{
		Name:       "python",
		Extensions: []string{".py", ".pyw"},
		Enry:       "Python",
		lang:       python.GetLanguage(),

		Functions: NewSet("function_definition", "lambda"),
		Loops:     loops,
		Decisions: NewSet(
			"if_statement",
			"elif_clause",
			"conditional_expression",
			"except_clause",
		).Union(loops),
		SwitchLabels:    NewSet("case_clause"),
		Bodies:          NewSet("block"),
		ParamContainers: NewSet("parameters", "lambda_parameters"),
		ParamWrappers: NewSet(
			"typed_parameter",
			"default_parameter",
			"typed_default_parameter",
			"list_splat_pattern",
			"dictionary_splat_pattern",
		),
		Identifiers: NewSet("identifier"),
		Calls:       NewSet("call"),
		Arithmetic:  NewSet("binary_operator", "augmented_assignment", "assignment"),
		Receivers:   NewSet("self"),
	}
}
