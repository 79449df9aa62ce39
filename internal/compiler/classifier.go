package compiler

import (
	"fmt"

	"github.com/griffnb/core-typedef/internal/console"
	"github.com/griffnb/core-typedef/internal/model"
	"github.com/griffnb/core-typedef/internal/openapi"
	"github.com/griffnb/core-typedef/internal/schema"
)

// resolveType maps a property, array item or nested schema to a type,
// compiling nested declarations as needed. parent is the DTO under
// construction; inline enums are declared inside it.
func (s *Session) resolveType(sch *openapi.Schema, parent *model.Declaration) (model.Type, error) {
	s.depth++
	defer func() { s.depth-- }()
	if s.depth > s.config.MaxDepth {
		return model.Type{}, fmt.Errorf("%w: more than %d levels below %s", ErrNestingTooDeep, s.config.MaxDepth, parent.Name)
	}

	switch schema.Classify(sch) {
	case schema.ShapeReference:
		ref, err := s.referencedType(sch.Ref)
		if err != nil {
			return model.Type{}, err
		}
		return model.Named(ref), nil
	case schema.ShapeDate:
		return model.Scalar(model.KindDate), nil
	case schema.ShapeDateTime:
		return model.Scalar(model.KindDateTime), nil
	case schema.ShapeUUID:
		return model.Scalar(model.KindUUID), nil
	case schema.ShapeInlineEnum:
		if sch.Title == "" {
			return model.Type{}, fmt.Errorf("%w: in schema '%s'", ErrMissingTitle, parent.Name)
		}
		ref := s.compileEnum(sch.Title, sch, parent)
		parent.Nested = append(parent.Nested, ref.Name)
		return model.Named(ref), nil
	case schema.ShapeString:
		return model.Scalar(model.KindString), nil
	case schema.ShapeFloat:
		return model.Scalar(model.KindFloat), nil
	case schema.ShapeDouble:
		return model.Scalar(model.KindDouble), nil
	case schema.ShapeInt64:
		return model.Scalar(model.KindInt64), nil
	case schema.ShapeInt32:
		return model.Scalar(model.KindInt32), nil
	case schema.ShapeBoolean:
		return model.Scalar(model.KindBoolean), nil
	case schema.ShapeArray:
		if sch.Items == nil {
			console.Logger.Debug("session %s: array without items in %s, using object elements", s.ID, parent.Name)
			return model.ListOf(model.Opaque()), nil
		}
		elem, err := s.resolveType(sch.Items, parent)
		if err != nil {
			return model.Type{}, err
		}
		return model.ListOf(elem), nil
	case schema.ShapeNamedObject:
		ref, err := s.compile(sch.Title, sch)
		if err != nil {
			return model.Type{}, err
		}
		return model.Named(ref), nil
	case schema.ShapeOpaqueObject:
		console.Logger.Debug("session %s: untitled object in %s cannot be named", s.ID, parent.Name)
		return model.Opaque(), nil
	default:
		return model.Opaque(), nil
	}
}
