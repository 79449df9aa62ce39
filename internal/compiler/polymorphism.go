package compiler

import (
	"github.com/griffnb/core-typedef/internal/model"
	"github.com/griffnb/core-typedef/internal/openapi"
)

// bindDiscriminator attaches the discriminator binding to decl. Only the
// explicit mapping drives subtypes; unmapped tags are never inferred.
func (s *Session) bindDiscriminator(decl *model.Declaration, d *openapi.Discriminator) error {
	if d == nil {
		return nil
	}

	binding := &model.Discriminator{PropertyName: d.PropertyName}
	for _, entry := range d.Mapping {
		ref, err := s.referencedType(entry.Ref)
		if err != nil {
			return err
		}
		binding.Mapping = append(binding.Mapping, model.Subtype{
			Tag:  entry.Tag,
			Ref:  entry.Ref,
			Type: ref,
		})
	}

	decl.Discriminator = binding
	return nil
}
