// Package orchestrator drives compilation runs over whole documents.
// It loads root documents, opens one compiler session per document and
// collects the declarations each session produces.
package orchestrator

import (
	"fmt"

	"github.com/griffnb/core-typedef/internal/compiler"
	"github.com/griffnb/core-typedef/internal/model"
	"github.com/griffnb/core-typedef/internal/openapi"
	"github.com/griffnb/core-typedef/internal/schema"
)

// Service coordinates document loading and compilation.
type Service struct {
	loader   openapi.Loader
	compiler *compiler.Compiler
	config   *Config
}

// Config holds orchestrator configuration options.
type Config struct {
	// RootPackage overrides every document's own x-package when set.
	RootPackage        string
	PropNamingStrategy string
	MaxDepth           int
	Loader             openapi.Loader
	Debug              Debugger
}

// Debugger is the interface for debug logging.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// Result is the output of compiling one document.
type Result struct {
	Path      string
	Package   string
	SessionID string
	// Roots holds one reference per root schema, in document order.
	Roots        []model.TypeRef
	Declarations []model.Emitted
}

// New creates a new orchestrator service with the given configuration.
func New(config *Config) *Service {
	if config == nil {
		config = &Config{}
	}

	// Apply defaults for zero values
	if config.PropNamingStrategy == "" {
		config.PropNamingStrategy = schema.CamelCase
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = compiler.DefaultMaxDepth
	}
	if config.Loader == nil {
		config.Loader = openapi.NewFileLoader()
	}

	return &Service{
		loader: config.Loader,
		compiler: compiler.New(compiler.Config{
			RootPackage:        config.RootPackage,
			Loader:             config.Loader,
			PropNamingStrategy: config.PropNamingStrategy,
			MaxDepth:           config.MaxDepth,
		}),
		config: config,
	}
}

// CompileDocument compiles every root schema of doc in document order within
// a single session, streaming declarations to register. The first failure
// aborts the run. The returned result carries no declarations; they went to
// register.
func (s *Service) CompileDocument(doc *openapi.Document, register model.Registrar) (*Result, error) {
	session, err := s.compiler.NewSession(doc)
	if err != nil {
		return nil, err
	}
	s.debugf("Compiling %d schemas from %s into %s (session %s)", len(doc.Schemas), doc.Path, session.RootPackage(), session.ID)

	result := &Result{
		Path:      doc.Path,
		Package:   session.RootPackage(),
		SessionID: session.ID,
		Roots:     make([]model.TypeRef, 0, len(doc.Schemas)),
	}
	for _, named := range doc.Schemas {
		if named.Schema == nil {
			continue
		}
		ref, err := session.CompileTo(named.Name, named.Schema, register)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s in %s: %w", named.Name, doc.Path, err)
		}
		result.Roots = append(result.Roots, ref)
	}

	return result, nil
}

// CompileFile loads and compiles one root document, collecting its declarations.
func (s *Service) CompileFile(path string) (*Result, error) {
	doc, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}

	var declarations []model.Emitted
	result, err := s.CompileDocument(doc, func(category model.Category, decl *model.Declaration) error {
		declarations = append(declarations, model.Emitted{Category: category, Declaration: decl})
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Declarations = declarations

	s.debugf("Compiled %s: %d declarations", doc.Path, len(result.Declarations))
	return result, nil
}

func (s *Service) debugf(format string, v ...interface{}) {
	if s.config.Debug != nil {
		s.config.Debug.Printf(format, v...)
	}
}
