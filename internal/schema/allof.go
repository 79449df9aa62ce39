package schema

import "github.com/griffnb/core-typedef/internal/openapi"

// Flattened is an allOf composition reduced to single inheritance.
type Flattened struct {
	// BaseRef is the $ref of the inherited parent, empty for the universal root.
	BaseRef string
	// Body is the schema supplying the subtype's own shape.
	Body *openapi.Schema
}

// Flatten reduces a composed schema. Members are scanned in order: the last
// reference member supplies the parent, the last non-reference member the
// body. Without a body member the composed schema itself, minus allOf, is used.
// Non-composed schemas come back unchanged with no parent.
func Flatten(s *openapi.Schema) Flattened {
	if !s.IsComposed() {
		return Flattened{Body: s}
	}

	var result Flattened
	for _, member := range s.AllOf {
		if member.IsRef() {
			result.BaseRef = member.Ref
		} else {
			result.Body = member
		}
	}

	if result.Body == nil {
		body := *s
		body.AllOf = nil
		result.Body = &body
	}
	return result
}
