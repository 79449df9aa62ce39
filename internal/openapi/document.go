// Package openapi decodes OpenAPI 3.x and Swagger 2.0 documents into the
// schema graph consumed by the compiler.
package openapi

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PackageExtension is the document root key naming the output package.
const PackageExtension = "x-package"

// Document is a parsed schema document.
type Document struct {
	// Path is the location the document was read from. References are
	// resolved relative to it.
	Path    string
	Version string
	// Package is the root x-package value, empty when absent.
	Package string
	// Schemas are the root named schemas in document order.
	Schemas Properties
}

// Schema returns the root schema with the given name, or nil.
func (d *Document) Schema(name string) *Schema {
	return d.Schemas.Property(name)
}

// Loader reads documents.
type Loader interface {
	Load(path string) (*Document, error)
}

// PackageLoader is implemented by loaders that can read a document's
// x-package without decoding its schemas.
type PackageLoader interface {
	LoadPackage(path string) (string, error)
}

// FileLoader reads documents from the local filesystem.
type FileLoader struct {
	readFile func(string) ([]byte, error)
}

// NewFileLoader creates a FileLoader.
func NewFileLoader() *FileLoader {
	return &FileLoader{readFile: os.ReadFile}
}

// Load reads and parses the document at path.
func (l *FileLoader) Load(path string) (*Document, error) {
	data, err := l.readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// LoadPackage reads only the x-package of the document at path.
func (l *FileLoader) LoadPackage(path string) (string, error) {
	data, err := l.readFile(path)
	if err != nil {
		return "", err
	}
	return ParsePackage(path, data)
}

// ResolveSibling resolves target relative to the directory holding base.
func ResolveSibling(base, target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(filepath.Dir(base), target)
}

type rawDocument struct {
	OpenAPI    string `yaml:"openapi"`
	Swagger    string `yaml:"swagger"`
	Package    string `yaml:"x-package"`
	Components struct {
		Schemas Properties `yaml:"schemas"`
	} `yaml:"components"`
}

type packageHeader struct {
	Package string `yaml:"x-package"`
}

// ParsePackage decodes just the root x-package of a YAML or JSON document.
// Schemas are not looked at, so a malformed schema does not fail it.
func ParsePackage(path string, data []byte) (string, error) {
	var header packageHeader
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&header); err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}
	return header.Package, nil
}

// Parse decodes a YAML or JSON document. path is recorded on the result.
func Parse(path string, data []byte) (*Document, error) {
	var raw rawDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if raw.Swagger != "" {
		return parseSwagger(path, data)
	}

	return &Document{
		Path:    path,
		Version: raw.OpenAPI,
		Package: raw.Package,
		Schemas: raw.Components.Schemas,
	}, nil
}
