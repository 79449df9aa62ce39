package openapi

import (
	"fmt"
	"strconv"

	"github.com/go-openapi/spec"
	"sigs.k8s.io/yaml"
)

const extendsExtension = "x-extends"

// parseSwagger decodes a Swagger 2.0 document. Definitions follow x-order,
// then name, since the format itself carries no key order.
func parseSwagger(path string, data []byte) (*Document, error) {
	var sw spec.Swagger
	if err := yaml.Unmarshal(data, &sw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	doc := &Document{
		Path:    path,
		Version: sw.Swagger,
	}
	if pkg, ok := sw.Extensions.GetString(PackageExtension); ok {
		doc.Package = pkg
	}

	for _, item := range spec.SchemaProperties(sw.Definitions).ToOrderedSchemaItems() {
		def := item.Schema
		doc.Schemas = append(doc.Schemas, &NamedSchema{Name: item.Name, Schema: fromSpecSchema(&def)})
	}
	return doc, nil
}

func fromSpecSchema(s *spec.Schema) *Schema {
	out := &Schema{
		Format: s.Format,
		Title:  s.Title,
		Ref:    s.Ref.String(),
	}
	for _, t := range s.Type {
		if t != "null" {
			out.Type = t
			break
		}
	}
	if len(s.Enum) > 0 {
		out.Enum = make([]string, 0, len(s.Enum))
		for _, e := range s.Enum {
			out.Enum = append(out.Enum, enumLiteral(e))
		}
	}
	if s.Items != nil && s.Items.Schema != nil {
		out.Items = fromSpecSchema(s.Items.Schema)
	}
	for i := range s.AllOf {
		out.AllOf = append(out.AllOf, fromSpecSchema(&s.AllOf[i]))
	}
	for _, item := range s.Properties.ToOrderedSchemaItems() {
		prop := item.Schema
		out.Properties = append(out.Properties, &NamedSchema{Name: item.Name, Schema: fromSpecSchema(&prop)})
	}
	if s.Discriminator != "" {
		out.Discriminator = &Discriminator{PropertyName: s.Discriminator}
	}
	if v, ok := s.Extensions.GetString(extendsExtension); ok {
		out.Extends = []string{v}
	} else if v, ok := s.Extensions.GetStringSlice(extendsExtension); ok {
		out.Extends = v
	}
	return out
}

// enumLiteral renders a decoded JSON enum value as its source text. Numbers
// arrive as float64 and are never written in exponent form.
func enumLiteral(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
