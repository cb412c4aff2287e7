package lang

import (
	"github.com/smacker/go-tree-sitter/javascript"
)

func init() {
	loops := NewSet("for_statement", "for_in_statement", "while_statement", "do_statement")
	Languages["javascript"] = &Language{
		Name:       "javascript",
		Extensions: []string{".js", ".mjs", ".cjs", ".jsx"},
		Enry:       "JavaScript",
		lang:       javascript.GetLanguage(),

		// "function" is the expression form in older grammar releases,
		// "function_expression" in newer ones.
		Functions: NewSet(
			"function_declaration",
			"function",
			"function_expression",
			"generator_function_declaration",
			"generator_function",
			"arrow_function",
			"method_definition",
		),
		Loops: loops,
		Decisions: NewSet(
			"if_statement",
			"ternary_expression",
			"catch_clause",
		).Union(loops),
		SwitchLabels:    NewSet("switch_case", "switch_default"),
		Bodies:          NewSet("statement_block"),
		ParamContainers: NewSet("formal_parameters"),
		ParamWrappers:   NewSet("assignment_pattern", "rest_pattern"),
		Identifiers:     NewSet("identifier", "property_identifier"),
		Calls:           NewSet("call_expression"),
		Arithmetic: NewSet(
			"binary_expression",
			"assignment_expression",
			"augmented_assignment_expression",
			"update_expression",
		),
	}
}
