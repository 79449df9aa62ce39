package compiler

import (
	"fmt"

	"github.com/griffnb/core-typedef/internal/model"
	"github.com/griffnb/core-typedef/internal/openapi"
	"github.com/griffnb/core-typedef/internal/schema"
)

// compileEnum declares an enum with one constant per literal, in source order.
// A non-nil enclosing declaration makes it an inline enum nested inside it.
func (s *Session) compileEnum(name string, sch *openapi.Schema, enclosing *model.Declaration) model.TypeRef {
	decl := &model.Declaration{
		Kind:      model.DeclEnum,
		Name:      name,
		Package:   s.dtoPackage(),
		Constants: append([]string(nil), sch.Enum...),
	}
	if enclosing != nil {
		decl.Package = enclosing.Package
		decl.Enclosing = enclosing.Name
	}
	s.emit(model.CategoryDTO, decl)
	return decl.Ref()
}

func (s *Session) compileDTO(name string, sch *openapi.Schema) (model.TypeRef, error) {
	flat := flatten(sch)
	body := flat.Body

	decl := &model.Declaration{
		Kind:    model.DeclDTO,
		Name:    name,
		Package: s.dtoPackage(),
	}

	if flat.BaseRef != "" {
		base, err := s.referencedType(flat.BaseRef)
		if err != nil {
			return model.TypeRef{}, err
		}
		decl.Base = &base
	}

	// a body taken from an allOf member inherits the outer schema's extensions
	outer := &openapi.Schema{}
	if isMember(sch.AllOf, body) {
		outer = sch
	}

	for _, ext := range append(append([]string(nil), outer.Extends...), body.Extends...) {
		decl.Interfaces = append(decl.Interfaces, model.ParseQualified(ext))
	}

	discriminator := body.Discriminator
	if discriminator == nil {
		discriminator = outer.Discriminator
	}
	if err := s.bindDiscriminator(decl, discriminator); err != nil {
		return model.TypeRef{}, err
	}

	for _, prop := range body.Properties {
		if !schema.IsSnakeCase(prop.Name) {
			return model.TypeRef{}, fmt.Errorf("%w: property '%s' of schema '%s'", ErrNotSnakeCase, prop.Name, name)
		}
		if discriminator != nil && prop.Name == discriminator.PropertyName {
			continue
		}

		propSchema := prop.Schema
		if propSchema == nil {
			propSchema = &openapi.Schema{}
		}
		typ, err := s.resolveType(propSchema, decl)
		if err != nil {
			return model.TypeRef{}, fmt.Errorf("property '%s' of schema '%s': %w", prop.Name, name, err)
		}

		field := model.Field{
			Name:       prop.Name,
			Identifier: s.identifier(prop.Name),
			Type:       typ,
		}
		if typ.Kind == model.KindDateTime {
			hint := s.ensureDateTimeHelpers()
			field.Hint = &hint
		}
		decl.Fields = append(decl.Fields, field)
	}

	s.emit(model.CategoryDTO, decl)
	return decl.Ref(), nil
}

// flatten reduces compositions. A bare reference used as a named schema is
// treated like allOf with that single parent.
func flatten(sch *openapi.Schema) schema.Flattened {
	if sch.IsRef() && !sch.IsComposed() {
		body := *sch
		body.Ref = ""
		return schema.Flattened{BaseRef: sch.Ref, Body: &body}
	}
	return schema.Flatten(sch)
}

func isMember(members []*openapi.Schema, s *openapi.Schema) bool {
	for _, m := range members {
		if m == s {
			return true
		}
	}
	return false
}
