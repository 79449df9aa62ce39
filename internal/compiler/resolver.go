package compiler

import (
	"fmt"

	"github.com/griffnb/core-typedef/internal/console"
	"github.com/griffnb/core-typedef/internal/model"
	"github.com/griffnb/core-typedef/internal/openapi"
	"github.com/griffnb/core-typedef/internal/schema"
)

// referencedType resolves a $ref to the referenced type in its package's dto
// sub-package.
func (s *Session) referencedType(ref string) (model.TypeRef, error) {
	r, err := schema.ParseReference(ref)
	if err != nil {
		return model.TypeRef{}, err
	}

	pkg, err := s.packageOf(r)
	if err != nil {
		return model.TypeRef{}, err
	}

	return model.TypeRef{
		Package:  model.SubPackage(pkg, model.DTOPackage),
		Name:     r.Name,
		External: !r.IsLocal(),
	}, nil
}

// packageOf returns the output package of the document defining r. External
// documents are resolved against the document being compiled and read once
// per session.
func (s *Session) packageOf(r schema.Reference) (string, error) {
	if r.IsLocal() {
		return s.rootPackage, nil
	}

	path := openapi.ResolveSibling(s.doc.Path, r.File)
	if pkg, ok := s.packages[path]; ok {
		return pkg, nil
	}

	pkg, err := s.loadPackage(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrResolution, path, err)
	}
	if pkg == "" {
		return "", fmt.Errorf("%w: %s not defined for externally linked file %s",
			ErrMissingPackage, openapi.PackageExtension, path)
	}

	s.packages[path] = pkg
	console.Logger.Debug("session %s: %s resolves to package %s", s.ID, path, pkg)
	return pkg, nil
}

// loadPackage reads only the x-package when the loader supports it.
func (s *Session) loadPackage(path string) (string, error) {
	if pl, ok := s.config.Loader.(openapi.PackageLoader); ok {
		return pl.LoadPackage(path)
	}
	doc, err := s.config.Loader.Load(path)
	if err != nil {
		return "", err
	}
	return doc.Package, nil
}
