package schema

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrIllegalReference is returned for reference strings that name no type.
var ErrIllegalReference = errors.New("illegal reference")

var (
	typeNamePattern = regexp.MustCompile(`/([^/$]+)$`)
	fileNamePattern = regexp.MustCompile(`^([^#]*)#`)
)

// Reference is a parsed $ref: the defining file (empty for the current
// document) and the referenced type's simple name.
type Reference struct {
	File string
	Name string
}

// IsLocal reports whether the reference points into the current document.
func (r Reference) IsLocal() bool {
	return r.File == ""
}

// ParseReference splits "<file>#/.../<Name>" into its file and name parts.
func ParseReference(ref string) (Reference, error) {
	name, err := extractGroup(ref, typeNamePattern)
	if err != nil {
		return Reference{}, err
	}
	file, err := extractGroup(ref, fileNamePattern)
	if err != nil {
		return Reference{}, err
	}
	return Reference{File: file, Name: name}, nil
}

func extractGroup(ref string, pattern *regexp.Regexp) (string, error) {
	match := pattern.FindStringSubmatch(ref)
	if match == nil {
		return "", fmt.Errorf("%w: %q", ErrIllegalReference, ref)
	}
	return match[1], nil
}
