package schema

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Property naming strategies for generated field identifiers.
const (
	// CamelCase indicates using CamelCase strategy for struct field.
	CamelCase = "camelcase"

	// PascalCase indicates using PascalCase strategy for struct field.
	PascalCase = "pascalcase"

	// SnakeCase indicates using SnakeCase strategy for struct field.
	SnakeCase = "snakecase"
)

var propertyNamePattern = regexp.MustCompile(`^[a-z][a-z_0-9]*$`)

// IsSnakeCase reports whether a declared property name is lower snake case.
func IsSnakeCase(name string) bool {
	return propertyNamePattern.MatchString(name)
}

// IsValidNamingStrategy reports whether strategy is one of the known strategies.
func IsValidNamingStrategy(strategy string) bool {
	switch strategy {
	case CamelCase, PascalCase, SnakeCase:
		return true
	}
	return false
}

// ToPascalCase converts a snake_case name to PascalCase.
func ToPascalCase(in string) string {
	title := cases.Title(language.English, cases.NoLower)

	var b strings.Builder
	for _, part := range strings.Split(in, "_") {
		if part == "" {
			continue
		}
		b.WriteString(title.String(part))
	}
	return b.String()
}

// ToLowerCamelCase converts a snake_case name to lowerCamelCase.
func ToLowerCamelCase(in string) string {
	pascal := ToPascalCase(in)
	if pascal == "" {
		return ""
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// ApplyNamingStrategy derives a field identifier from a declared property name.
func ApplyNamingStrategy(name string, strategy string) string {
	switch strategy {
	case SnakeCase:
		return name
	case PascalCase:
		return ToPascalCase(name)
	default:
		return ToLowerCamelCase(name)
	}
}
