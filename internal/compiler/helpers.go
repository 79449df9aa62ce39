package compiler

import (
	"time"

	"github.com/griffnb/core-typedef/internal/model"
)

// Names of the shared timestamp helper pair.
const (
	DateTimeEncoderName = "DateTimeEncoder"
	DateTimeDecoderName = "DateTimeDecoder"
)

// ensureDateTimeHelpers emits the timestamp decoder and encoder the first
// time a session needs them and returns the hint fields carry.
func (s *Session) ensureDateTimeHelpers() model.Hint {
	pkg := s.dtoPackage()
	hint := model.Hint{
		Encoder: model.TypeRef{Package: pkg, Name: DateTimeEncoderName},
		Decoder: model.TypeRef{Package: pkg, Name: DateTimeDecoderName},
	}
	if s.hasDateTimeHelpers {
		return hint
	}

	target := model.Scalar(model.KindDateTime)
	s.emit(model.CategoryHelper, &model.Declaration{
		Kind:    model.DeclHelper,
		Name:    DateTimeDecoderName,
		Package: pkg,
		Role:    model.RoleDecoder,
		Target:  &target,
		Layout:  time.RFC3339,
	})
	s.emit(model.CategoryHelper, &model.Declaration{
		Kind:    model.DeclHelper,
		Name:    DateTimeEncoderName,
		Package: pkg,
		Role:    model.RoleEncoder,
		Target:  &target,
		Layout:  time.RFC3339,
	})
	s.hasDateTimeHelpers = true
	return hint
}
