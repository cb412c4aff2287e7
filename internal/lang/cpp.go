package lang

import (
	"github.com/smacker/go-tree-sitter/cpp"
)

func init() {
	loops := NewSet("for_statement", "for_range_loop", "while_statement", "do_statement")
	Languages["cpp"] = &Language{
		Name:       "cpp",
		Extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx", ".h"},
		Enry:       "C++",
		lang:       cpp.GetLanguage(),

		Functions: NewSet("function_definition", "lambda_expression"),
		Loops:     loops,
		Decisions: NewSet(
			"if_statement",
			"conditional_expression",
			"catch_clause",
		).Union(loops),
		SwitchLabels:    NewSet("case_statement"),
		Bodies:          NewSet("compound_statement"),
		ParamContainers: NewSet("parameter_list"),
		ParamWrappers: NewSet(
			"parameter_declaration",
			"optional_parameter_declaration",
			"variadic_parameter_declaration",
		),
		// Methods declared inside a class body are named by a
		// field_identifier.
		Identifiers: NewSet("identifier", "field_identifier"),
		Calls:       NewSet("call_expression"),
		Arithmetic:  NewSet("binary_expression", "assignment_expression", "update_expression"),
	}
}
