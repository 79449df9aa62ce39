package openapi

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Schema is one node of the schema grammar. Vendor extensions the compiler
// understands are decoded into typed fields; everything else is dropped.
type Schema struct {
	// Type is the declared kind. Type lists use their first non-null entry.
	Type   string
	Format string
	Title  string
	// Enum holds the literal text of each enumerated value in source order.
	Enum  []string
	Ref   string
	Items *Schema
	AllOf []*Schema
	// Properties keeps declaration order.
	Properties    Properties
	Discriminator *Discriminator
	// Extends lists the x-extends interface names, single string or list form.
	Extends []string
}

// NamedSchema pairs a property or definition name with its schema.
type NamedSchema struct {
	Name   string
	Schema *Schema
}

// Properties is an ordered name to schema mapping.
type Properties []*NamedSchema

// Discriminator describes polymorphic dispatch.
type Discriminator struct {
	PropertyName string  `yaml:"propertyName"`
	Mapping      Mapping `yaml:"mapping"`
}

// MappingEntry maps one discriminator tag to a schema reference.
type MappingEntry struct {
	Tag string
	Ref string
}

// Mapping is an ordered tag to reference mapping.
type Mapping []MappingEntry

// IsRef reports whether the schema is a reference.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// IsComposed reports whether the schema uses allOf.
func (s *Schema) IsComposed() bool {
	return s != nil && len(s.AllOf) > 0
}

// HasEnum reports whether the schema declares enumerated literals.
func (s *Schema) HasEnum() bool {
	return s != nil && s.Enum != nil
}

// Property returns the named property schema, or nil.
func (p Properties) Property(name string) *Schema {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Schema
		}
	}
	return nil
}

// Names returns property names in declaration order.
func (p Properties) Names() []string {
	names := make([]string, 0, len(p))
	for _, prop := range p {
		names = append(names, prop.Name)
	}
	return names
}

// UnmarshalYAML decodes a mapping node keeping key order.
func (p *Properties) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: properties must be a mapping", node.Line)
	}
	out := make(Properties, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		schema := &Schema{}
		if err := node.Content[i+1].Decode(schema); err != nil {
			return fmt.Errorf("property %s: %w", node.Content[i].Value, err)
		}
		out = append(out, &NamedSchema{Name: node.Content[i].Value, Schema: schema})
	}
	*p = out
	return nil
}

// Ref returns the reference mapped to tag.
func (m Mapping) Ref(tag string) (string, bool) {
	for _, e := range m {
		if e.Tag == tag {
			return e.Ref, true
		}
	}
	return "", false
}

// UnmarshalYAML decodes a mapping node keeping key order.
func (m *Mapping) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: discriminator mapping must be a mapping", node.Line)
	}
	out := make(Mapping, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, MappingEntry{Tag: node.Content[i].Value, Ref: node.Content[i+1].Value})
	}
	*m = out
	return nil
}

type rawSchema struct {
	Type          yaml.Node      `yaml:"type"`
	Format        string         `yaml:"format"`
	Title         string         `yaml:"title"`
	Enum          []yaml.Node    `yaml:"enum"`
	Ref           string         `yaml:"$ref"`
	Items         *Schema        `yaml:"items"`
	AllOf         []*Schema      `yaml:"allOf"`
	Properties    Properties     `yaml:"properties"`
	Discriminator *Discriminator `yaml:"discriminator"`
	Extends       yaml.Node      `yaml:"x-extends"`
}

// UnmarshalYAML decodes a schema object.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	var raw rawSchema
	if err := node.Decode(&raw); err != nil {
		return err
	}

	kind, err := schemaType(&raw.Type)
	if err != nil {
		return err
	}
	extends, err := stringOrList(&raw.Extends)
	if err != nil {
		return fmt.Errorf("x-extends: %w", err)
	}

	*s = Schema{
		Type:          kind,
		Format:        raw.Format,
		Title:         raw.Title,
		Ref:           raw.Ref,
		Items:         raw.Items,
		AllOf:         raw.AllOf,
		Properties:    raw.Properties,
		Discriminator: raw.Discriminator,
		Extends:       extends,
	}
	if raw.Enum != nil {
		s.Enum = make([]string, 0, len(raw.Enum))
		for i := range raw.Enum {
			s.Enum = append(s.Enum, resolveAlias(&raw.Enum[i]).Value)
		}
	}
	return nil
}

// schemaType reads "type: string" or "type: [string, 'null']".
func schemaType(node *yaml.Node) (string, error) {
	node = resolveAlias(node)
	switch node.Kind {
	case 0:
		return "", nil
	case yaml.ScalarNode:
		return node.Value, nil
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Value != "null" {
				return item.Value, nil
			}
		}
		return "", nil
	default:
		return "", fmt.Errorf("line %d: type must be a string or a list", node.Line)
	}
}

func stringOrList(node *yaml.Node) ([]string, error) {
	node = resolveAlias(node)
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		return []string{node.Value}, nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: expected a string", item.Line)
			}
			out = append(out, item.Value)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
