package schema

import (
	"testing"

	"github.com/griffnb/core-typedef/internal/openapi"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		schema *openapi.Schema
		want   Shape
	}{
		{"date", &openapi.Schema{Type: STRING, Format: "date"}, ShapeDate},
		{"date-time", &openapi.Schema{Type: STRING, Format: "date-time"}, ShapeDateTime},
		{"uuid", &openapi.Schema{Type: STRING, Format: "uuid"}, ShapeUUID},
		{"inline enum", &openapi.Schema{Type: STRING, Enum: []string{"A"}}, ShapeInlineEnum},
		{"format wins over enum", &openapi.Schema{Type: STRING, Format: "date", Enum: []string{"A"}}, ShapeDate},
		{"plain string", &openapi.Schema{Type: STRING}, ShapeString},
		{"unknown string format", &openapi.Schema{Type: STRING, Format: "email"}, ShapeString},
		{"float", &openapi.Schema{Type: NUMBER, Format: "float"}, ShapeFloat},
		{"double", &openapi.Schema{Type: NUMBER, Format: "double"}, ShapeDouble},
		{"number without format", &openapi.Schema{Type: NUMBER}, ShapeDouble},
		{"int64", &openapi.Schema{Type: INTEGER, Format: "int64"}, ShapeInt64},
		{"int32", &openapi.Schema{Type: INTEGER, Format: "int32"}, ShapeInt32},
		{"integer without format", &openapi.Schema{Type: INTEGER}, ShapeInt32},
		{"boolean", &openapi.Schema{Type: BOOLEAN}, ShapeBoolean},
		{"array", &openapi.Schema{Type: ARRAY}, ShapeArray},
		{"titled object", &openapi.Schema{Type: OBJECT, Title: "Inner"}, ShapeNamedObject},
		{"titled implicit object", &openapi.Schema{Title: "Inner"}, ShapeNamedObject},
		{"untitled object", &openapi.Schema{Type: OBJECT}, ShapeOpaqueObject},
		{"untitled implicit object", &openapi.Schema{}, ShapeOpaqueObject},
		{"unknown kind falls to object", &openapi.Schema{Type: "file"}, ShapeOpaqueObject},
		{"reference wins", &openapi.Schema{Type: STRING, Ref: "#/components/schemas/X"}, ShapeReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.schema); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	s := &openapi.Schema{Type: INTEGER, Format: "int64"}
	first := Classify(s)
	for i := 0; i < 10; i++ {
		if got := Classify(s); got != first {
			t.Fatalf("Classify changed from %v to %v", first, got)
		}
	}
}

func TestShape_String(t *testing.T) {
	if ShapeNamedObject.String() != "named-object" {
		t.Errorf("unexpected name %q", ShapeNamedObject.String())
	}
	if Shape(99).String() != "unknown" {
		t.Errorf("unexpected name for out of range shape %q", Shape(99).String())
	}
}
