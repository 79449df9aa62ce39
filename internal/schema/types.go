// Package schema classifies schema nodes and provides the reference, allOf
// and naming helpers used by the compiler.
package schema

import "github.com/griffnb/core-typedef/internal/openapi"

const (
	// ARRAY represent a array value.
	ARRAY = "array"
	// OBJECT represent a object value.
	OBJECT = "object"
	// BOOLEAN represent a boolean value.
	BOOLEAN = "boolean"
	// INTEGER represent a integer value.
	INTEGER = "integer"
	// NUMBER represent a number value.
	NUMBER = "number"
	// STRING represent a string value.
	STRING = "string"
)

// Formats refining the bare kinds.
const (
	FormatDate     = "date"
	FormatDateTime = "date-time"
	FormatUUID     = "uuid"
	FormatFloat    = "float"
	FormatInt64    = "int64"
)

// Shape is the closed set of schema categories the compiler dispatches on.
type Shape int

const (
	ShapeReference Shape = iota
	ShapeDate
	ShapeDateTime
	ShapeUUID
	ShapeInlineEnum
	ShapeString
	ShapeFloat
	ShapeDouble
	ShapeInt64
	ShapeInt32
	ShapeBoolean
	ShapeArray
	ShapeNamedObject
	ShapeOpaqueObject
)

var shapeNames = [...]string{
	ShapeReference:    "reference",
	ShapeDate:         "date",
	ShapeDateTime:     "date-time",
	ShapeUUID:         "uuid",
	ShapeInlineEnum:   "inline-enum",
	ShapeString:       "string",
	ShapeFloat:        "float",
	ShapeDouble:       "double",
	ShapeInt64:        "int64",
	ShapeInt32:        "int32",
	ShapeBoolean:      "boolean",
	ShapeArray:        "array",
	ShapeNamedObject:  "named-object",
	ShapeOpaqueObject: "opaque-object",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// Classify returns the shape of s. Format refinements win over the bare kind;
// references short-circuit everything else. Unknown kinds are treated as objects.
func Classify(s *openapi.Schema) Shape {
	if s.IsRef() {
		return ShapeReference
	}

	switch s.Type {
	case STRING:
		switch {
		case s.Format == FormatDate:
			return ShapeDate
		case s.Format == FormatDateTime:
			return ShapeDateTime
		case s.Format == FormatUUID:
			return ShapeUUID
		case s.HasEnum():
			return ShapeInlineEnum
		}
		return ShapeString
	case NUMBER:
		if s.Format == FormatFloat {
			return ShapeFloat
		}
		return ShapeDouble
	case INTEGER:
		if s.Format == FormatInt64 {
			return ShapeInt64
		}
		return ShapeInt32
	case BOOLEAN:
		return ShapeBoolean
	case ARRAY:
		return ShapeArray
	case OBJECT:
		fallthrough
	default:
		if s.Title != "" {
			return ShapeNamedObject
		}
		return ShapeOpaqueObject
	}
}
