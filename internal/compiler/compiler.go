// Package compiler turns named schemas into type declarations.
//
// A Compiler holds immutable configuration. Each document is compiled in its
// own Session, which owns the run-scoped state: the external package cache
// and the flag recording that the shared timestamp helpers were emitted.
// Sessions are not safe for concurrent use; separate sessions share nothing.
package compiler

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/griffnb/core-typedef/internal/console"
	"github.com/griffnb/core-typedef/internal/model"
	"github.com/griffnb/core-typedef/internal/openapi"
	"github.com/griffnb/core-typedef/internal/schema"
)

// DefaultMaxDepth bounds inline schema nesting.
const DefaultMaxDepth = 64

// Config holds compiler configuration.
type Config struct {
	// RootPackage is the output package. When empty the document's own
	// x-package is used.
	RootPackage string
	// Loader reads externally referenced documents.
	Loader openapi.Loader
	// PropNamingStrategy derives field identifiers: camelcase, pascalcase or snakecase.
	PropNamingStrategy string
	// MaxDepth bounds inline nesting.
	MaxDepth int
}

// Compiler creates compilation sessions.
type Compiler struct {
	config Config
}

// New creates a Compiler, applying defaults for zero values.
func New(config Config) *Compiler {
	if config.Loader == nil {
		config.Loader = openapi.NewFileLoader()
	}
	if config.PropNamingStrategy == "" {
		config.PropNamingStrategy = schema.CamelCase
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	return &Compiler{config: config}
}

// NewSession starts a compilation run for doc with fresh caches.
func (c *Compiler) NewSession(doc *openapi.Document) (*Session, error) {
	if doc == nil {
		doc = &openapi.Document{}
	}

	root := c.config.RootPackage
	if root == "" {
		root = doc.Package
	}
	if root == "" {
		return nil, fmt.Errorf("%w: no root package configured and %s missing in %s",
			ErrMissingPackage, openapi.PackageExtension, doc.Path)
	}

	s := &Session{
		ID:          uuid.NewString(),
		config:      c.config,
		doc:         doc,
		rootPackage: root,
		packages:    make(map[string]string),
	}
	console.Logger.Debug("session %s: compiling %s into %s", s.ID, doc.Path, root)
	return s, nil
}

// Compile is a one-shot helper running a single schema in a fresh session.
func (c *Compiler) Compile(doc *openapi.Document, name string, s *openapi.Schema, register model.Registrar) (model.TypeRef, error) {
	session, err := c.NewSession(doc)
	if err != nil {
		return model.TypeRef{}, err
	}
	return session.CompileTo(name, s, register)
}
