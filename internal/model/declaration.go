package model

// Category routes declarations to emitter output locations.
type Category string

const (
	// CategoryDTO marks ordinary generated types.
	CategoryDTO Category = "dto"
	// CategoryHelper marks shared serialization helpers.
	CategoryHelper Category = "helper"
)

// DeclKind distinguishes declaration shapes.
type DeclKind string

const (
	DeclDTO    DeclKind = "dto"
	DeclEnum   DeclKind = "enum"
	DeclHelper DeclKind = "helper"
)

// Helper roles.
const (
	RoleEncoder = "encoder"
	RoleDecoder = "decoder"
)

// Declaration is one generated type.
type Declaration struct {
	Kind      DeclKind `json:"kind"`
	Name      string   `json:"name"`
	Package   string   `json:"package,omitempty"`
	Enclosing string   `json:"enclosing,omitempty"`

	// Base is the single inherited parent; nil means the universal root type.
	Base          *TypeRef       `json:"base,omitempty"`
	Interfaces    []TypeRef      `json:"interfaces,omitempty"`
	Discriminator *Discriminator `json:"discriminator,omitempty"`
	Fields        []Field        `json:"fields,omitempty"`
	// Nested lists the inline enums declared inside this DTO.
	Nested []string `json:"nested,omitempty"`

	Constants []string `json:"constants,omitempty"`

	Role   string `json:"role,omitempty"`
	Target *Type  `json:"target,omitempty"`
	Layout string `json:"layout,omitempty"`
}

// Ref returns a reference to the declaration.
func (d *Declaration) Ref() TypeRef {
	return TypeRef{Package: d.Package, Name: d.Name, Enclosing: d.Enclosing}
}

// IsPolymorphic reports whether the declaration is an open base type.
func (d *Declaration) IsPolymorphic() bool {
	return d.Discriminator != nil
}

// Field returns the named field, or nil.
func (d *Declaration) Field(name string) *Field {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i]
		}
	}
	return nil
}

// FieldNames returns field names in declaration order.
func (d *Declaration) FieldNames() []string {
	names := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Field is one declared property.
type Field struct {
	// Name is the declared property name.
	Name string `json:"name"`
	// Identifier is Name under the configured naming strategy.
	Identifier string `json:"identifier"`
	Type       Type   `json:"type"`
	Hint       *Hint  `json:"hint,omitempty"`
}

// Hint points a field at the helper pair handling its wire form.
type Hint struct {
	Encoder TypeRef `json:"encoder"`
	Decoder TypeRef `json:"decoder"`
}

// Discriminator binds a tag property to concrete subtypes.
type Discriminator struct {
	PropertyName string    `json:"propertyName"`
	Mapping      []Subtype `json:"mapping,omitempty"`
}

// Subtype maps one tag to a subtype.
type Subtype struct {
	Tag string `json:"tag"`
	// Ref is the reference string as written in the document.
	Ref  string  `json:"ref"`
	Type TypeRef `json:"type"`
}

// Emitted is a declaration with its routing category.
type Emitted struct {
	Category    Category     `json:"category"`
	Declaration *Declaration `json:"declaration"`
}

// Registrar receives declarations as they are produced.
type Registrar func(category Category, decl *Declaration) error
