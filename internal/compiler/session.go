package compiler

import (
	"fmt"

	"github.com/griffnb/core-typedef/internal/console"
	"github.com/griffnb/core-typedef/internal/model"
	"github.com/griffnb/core-typedef/internal/openapi"
	"github.com/griffnb/core-typedef/internal/schema"
)

// Session is one compilation run over a single document.
type Session struct {
	// ID tags the session's log lines.
	ID string

	config      Config
	doc         *openapi.Document
	rootPackage string

	// packages caches x-package per resolved external document path.
	packages map[string]string
	// hasDateTimeHelpers records that the timestamp helper pair was emitted.
	hasDateTimeHelpers bool

	pending []model.Emitted
	depth   int
}

// RootPackage returns the package declarations are compiled into.
func (s *Session) RootPackage() string {
	return s.rootPackage
}

// Compile compiles a named schema and returns a reference to the resulting
// declaration together with every declaration produced on the way, in the
// order they were completed. On error the declarations completed before the
// failure are returned with it.
func (s *Session) Compile(name string, sch *openapi.Schema) (model.TypeRef, []model.Emitted, error) {
	s.pending = nil
	s.depth = 0

	ref, err := s.compile(name, sch)

	emitted := s.pending
	s.pending = nil
	return ref, emitted, err
}

// CompileTo compiles a named schema, streaming declarations to register.
func (s *Session) CompileTo(name string, sch *openapi.Schema, register model.Registrar) (model.TypeRef, error) {
	ref, emitted, compileErr := s.Compile(name, sch)
	for _, e := range emitted {
		if err := register(e.Category, e.Declaration); err != nil {
			return model.TypeRef{}, fmt.Errorf("register %s: %w", e.Declaration.Name, err)
		}
	}
	if compileErr != nil {
		return model.TypeRef{}, compileErr
	}
	return ref, nil
}

// compile is the re-entrant entry point used for root and nested schemas.
func (s *Session) compile(name string, sch *openapi.Schema) (model.TypeRef, error) {
	if sch.HasEnum() {
		return s.compileEnum(name, sch, nil), nil
	}
	return s.compileDTO(name, sch)
}

func (s *Session) emit(category model.Category, decl *model.Declaration) {
	s.pending = append(s.pending, model.Emitted{Category: category, Declaration: decl})
	console.Logger.Debug("session %s: %s %s %s", s.ID, category, decl.Kind, decl.Ref())
}

func (s *Session) dtoPackage() string {
	return model.SubPackage(s.rootPackage, model.DTOPackage)
}

func (s *Session) identifier(property string) string {
	return schema.ApplyNamingStrategy(property, s.config.PropNamingStrategy)
}
