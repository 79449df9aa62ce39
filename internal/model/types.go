// Package model holds the normalized type model produced by the compiler.
package model

import "strings"

// DTOPackage is the sub-package generated declarations live in.
const DTOPackage = "dto"

// SubPackage joins a package and a sub-package name.
func SubPackage(pkg, sub string) string {
	if pkg == "" {
		return sub
	}
	return pkg + "." + sub
}

// TypeRef identifies a declared type.
type TypeRef struct {
	Package string `json:"package,omitempty"`
	Name    string `json:"name"`
	// Enclosing names the declaration a nested type is declared in.
	Enclosing string `json:"enclosing,omitempty"`
	// External is set when the package came from another document.
	External bool `json:"external,omitempty"`
}

// Equal compares references by package, enclosing declaration and name.
func (r TypeRef) Equal(other TypeRef) bool {
	return r.Package == other.Package && r.Enclosing == other.Enclosing && r.Name == other.Name
}

// String renders the qualified name.
func (r TypeRef) String() string {
	name := r.Name
	if r.Enclosing != "" {
		name = r.Enclosing + "." + name
	}
	if r.Package == "" {
		return name
	}
	return r.Package + "." + name
}

// ParseQualified splits "a.b.Name" at its last dot.
func ParseQualified(qualified string) TypeRef {
	idx := strings.LastIndex(qualified, ".")
	if idx < 0 {
		return TypeRef{Name: qualified}
	}
	return TypeRef{Package: qualified[:idx], Name: qualified[idx+1:]}
}

// Kind enumerates resolved type categories.
type Kind string

const (
	KindString   Kind = "string"
	KindDate     Kind = "date"
	KindDateTime Kind = "date-time"
	KindUUID     Kind = "uuid"
	KindFloat    Kind = "float"
	KindDouble   Kind = "double"
	KindInt32    Kind = "int32"
	KindInt64    Kind = "int64"
	KindBoolean  Kind = "boolean"
	KindList     Kind = "list"
	KindRef      Kind = "ref"
	// KindObject is an object that could not be named.
	KindObject Kind = "object"
)

// Type is a resolved field, element or return type.
type Type struct {
	Kind Kind     `json:"kind"`
	Elem *Type    `json:"elem,omitempty"`
	Ref  *TypeRef `json:"ref,omitempty"`
}

// Scalar returns a non-container type of kind k.
func Scalar(k Kind) Type {
	return Type{Kind: k}
}

// ListOf wraps elem in an ordered sequence.
func ListOf(elem Type) Type {
	return Type{Kind: KindList, Elem: &elem}
}

// Named returns a reference type.
func Named(ref TypeRef) Type {
	return Type{Kind: KindRef, Ref: &ref}
}

// Opaque returns the unresolved object type.
func Opaque() Type {
	return Type{Kind: KindObject}
}

// Equal reports structural equality.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindList:
		if t.Elem == nil || other.Elem == nil {
			return t.Elem == other.Elem
		}
		return t.Elem.Equal(*other.Elem)
	case KindRef:
		if t.Ref == nil || other.Ref == nil {
			return t.Ref == other.Ref
		}
		return t.Ref.Equal(*other.Ref)
	}
	return true
}

// String renders the type, e.g. "list<list<string>>".
func (t Type) String() string {
	switch t.Kind {
	case KindList:
		if t.Elem == nil {
			return "list<?>"
		}
		return "list<" + t.Elem.String() + ">"
	case KindRef:
		if t.Ref == nil {
			return "ref<?>"
		}
		return t.Ref.String()
	}
	return string(t.Kind)
}
