package compiler

import (
	"errors"

	"github.com/griffnb/core-typedef/internal/schema"
)

// Fatal compilation errors. Every one aborts the run.
var (
	// ErrIllegalReference is returned for reference strings that name no type.
	ErrIllegalReference = schema.ErrIllegalReference
	// ErrMissingTitle is returned for an inline enum without a title.
	ErrMissingTitle = errors.New("inline enum schema must have a title")
	// ErrMissingPackage is returned when no output package can be determined,
	// either for the run itself or for an externally referenced document.
	ErrMissingPackage = errors.New("package not defined")
	// ErrNotSnakeCase is returned for property names outside [a-z][a-z_0-9]*.
	ErrNotSnakeCase = errors.New("property not in snake case")
	// ErrResolution wraps failures loading an externally referenced document.
	ErrResolution = errors.New("reference resolution failed")
	// ErrNestingTooDeep is returned when inline nesting exceeds the configured depth.
	ErrNestingTooDeep = errors.New("schema nesting too deep")
)
