package openapi

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoader_LoadOpenAPI3(t *testing.T) {
	doc, err := NewFileLoader().Load("testdata/petstore.yaml")
	require.NoError(t, err)

	assert.Equal(t, "testdata/petstore.yaml", doc.Path)
	assert.Equal(t, "3.0.3", doc.Version)
	assert.Equal(t, "com.example.pets", doc.Package)
	assert.Equal(t, []string{"Pet", "Dog", "Color", "Nullable"}, doc.Schemas.Names())

	t.Run("properties keep declaration order", func(t *testing.T) {
		pet := doc.Schema("Pet")
		require.NotNil(t, pet)
		assert.Equal(t, []string{"pet_type", "name", "born_at", "price"}, pet.Properties.Names())
		assert.Equal(t, "date-time", pet.Properties.Property("born_at").Format)
		assert.Equal(t, "common.yaml#/components/schemas/Money", pet.Properties.Property("price").Ref)
		assert.True(t, pet.Properties.Property("price").IsRef())
	})

	t.Run("discriminator mapping keeps order", func(t *testing.T) {
		pet := doc.Schema("Pet")
		require.NotNil(t, pet.Discriminator)
		assert.Equal(t, "pet_type", pet.Discriminator.PropertyName)
		assert.Equal(t, Mapping{
			{Tag: "dog", Ref: "#/components/schemas/Dog"},
			{Tag: "cat", Ref: "#/components/schemas/Cat"},
		}, pet.Discriminator.Mapping)

		ref, ok := pet.Discriminator.Mapping.Ref("cat")
		assert.True(t, ok)
		assert.Equal(t, "#/components/schemas/Cat", ref)
		_, ok = pet.Discriminator.Mapping.Ref("cow")
		assert.False(t, ok)
	})

	t.Run("x-extends accepts string and list", func(t *testing.T) {
		assert.Equal(t, []string{"com.example.Identifiable"}, doc.Schema("Pet").Extends)

		dog := doc.Schema("Dog")
		require.True(t, dog.IsComposed())
		require.Len(t, dog.AllOf, 2)
		assert.Equal(t, "#/components/schemas/Pet", dog.AllOf[0].Ref)
		assert.Equal(t, []string{"com.example.Barker", "com.example.Walker"}, dog.AllOf[1].Extends)
	})

	t.Run("enum literals in source order", func(t *testing.T) {
		color := doc.Schema("Color")
		assert.True(t, color.HasEnum())
		assert.Equal(t, []string{"RED", "GREEN", "BLUE"}, color.Enum)
	})

	t.Run("type list uses first non-null entry", func(t *testing.T) {
		nullable := doc.Schema("Nullable")
		assert.Equal(t, "string", nullable.Type)
		tags := nullable.Properties.Property("tags")
		require.NotNil(t, tags.Items)
		assert.Equal(t, "array", tags.Type)
		assert.Equal(t, "string", tags.Items.Type)
	})
}

func TestFileLoader_LoadSwagger2(t *testing.T) {
	doc, err := NewFileLoader().Load("testdata/swagger.yaml")
	require.NoError(t, err)

	assert.Equal(t, "2.0", doc.Version)
	assert.Equal(t, "com.example.legacy", doc.Package)
	assert.Equal(t, []string{"Level", "Shape", "Square"}, doc.Schemas.Names())

	shape := doc.Schema("Shape")
	require.NotNil(t, shape.Discriminator)
	assert.Equal(t, "kind", shape.Discriminator.PropertyName)
	assert.Empty(t, shape.Discriminator.Mapping)
	assert.Equal(t, []string{"area", "kind"}, shape.Properties.Names())
	assert.Equal(t, "float", shape.Properties.Property("area").Format)

	square := doc.Schema("Square")
	require.Len(t, square.AllOf, 2)
	assert.Equal(t, "#/definitions/Shape", square.AllOf[0].Ref)
	assert.Equal(t, []string{"com.example.Polygon"}, square.AllOf[1].Extends)

	assert.Equal(t, []string{"1", "2", "3"}, doc.Schema("Level").Enum)
}

func TestFileLoader_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileLoader().Load("testdata/does-not-exist.yaml")
		assert.Error(t, err)
	})

	t.Run("read failure propagates", func(t *testing.T) {
		boom := errors.New("boom")
		loader := &FileLoader{readFile: func(string) ([]byte, error) { return nil, boom }}
		_, err := loader.Load("x.yaml")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("malformed type", func(t *testing.T) {
		_, err := NewFileLoader().Load("testdata/broken.yaml")
		assert.Error(t, err)
	})
}

func TestParse_SwaggerNumericEnum(t *testing.T) {
	src := `
swagger: "2.0"
x-package: com.example.levels
definitions:
  Level:
    type: integer
    enum: [10000000, 2, -7]
  Ratio:
    type: number
    enum: [0.25, 1.5]
`
	doc, err := Parse("levels.yaml", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"10000000", "2", "-7"}, doc.Schema("Level").Enum)
	assert.Equal(t, []string{"0.25", "1.5"}, doc.Schema("Ratio").Enum)

	t.Run("same literals as the openapi 3 form", func(t *testing.T) {
		doc3, err := Parse("levels3.yaml", []byte(`
openapi: 3.0.3
components:
  schemas:
    Level:
      type: integer
      enum: [10000000, 2, -7]
`))
		require.NoError(t, err)
		assert.Equal(t, doc3.Schema("Level").Enum, doc.Schema("Level").Enum)
	})
}

func TestFileLoader_LoadPackage(t *testing.T) {
	t.Run("malformed schemas are not decoded", func(t *testing.T) {
		loader := &FileLoader{readFile: func(string) ([]byte, error) {
			return []byte("x-package: com.example.partial\ncomponents:\n  schemas:\n    Bad:\n      type: {nested: true}\n"), nil
		}}

		_, err := loader.Load("partial.yaml")
		require.Error(t, err)

		pkg, err := loader.LoadPackage("partial.yaml")
		require.NoError(t, err)
		assert.Equal(t, "com.example.partial", pkg)
	})

	t.Run("swagger document", func(t *testing.T) {
		pkg, err := NewFileLoader().LoadPackage("testdata/swagger.yaml")
		require.NoError(t, err)
		assert.Equal(t, "com.example.legacy", pkg)
	})

	t.Run("no package", func(t *testing.T) {
		pkg, err := NewFileLoader().LoadPackage("testdata/broken.yaml")
		require.NoError(t, err)
		assert.Empty(t, pkg)
	})

	t.Run("read failure propagates", func(t *testing.T) {
		boom := errors.New("boom")
		loader := &FileLoader{readFile: func(string) ([]byte, error) { return nil, boom }}
		_, err := loader.LoadPackage("x.yaml")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		loader := &FileLoader{readFile: func(string) ([]byte, error) { return []byte("x-package: [unclosed"), nil }}
		_, err := loader.LoadPackage("x.yaml")
		assert.Error(t, err)
	})
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{
  "openapi": "3.1.0",
  "x-package": "com.example.json",
  "components": {"schemas": {
    "B": {"type": "object", "properties": {"z": {"type": "string"}, "a": {"type": "integer"}}},
    "A": {"type": "string", "enum": ["X", "Y"]}
  }}
}`)

	doc, err := Parse("inline.json", data)
	require.NoError(t, err)
	assert.Equal(t, "com.example.json", doc.Package)
	assert.Equal(t, []string{"B", "A"}, doc.Schemas.Names())
	assert.Equal(t, []string{"z", "a"}, doc.Schema("B").Properties.Names())
	assert.Nil(t, doc.Schema("missing"))
}

func TestResolveSibling(t *testing.T) {
	tests := []struct {
		base   string
		target string
		want   string
	}{
		{"api/main.yaml", "common.yaml", filepath.Join("api", "common.yaml")},
		{"api/v1/main.yaml", "../shared/types.yaml", filepath.Join("api", "shared", "types.yaml")},
		{"main.yaml", "other.yaml", "other.yaml"},
		{"api/main.yaml", "/abs/types.yaml", filepath.Clean("/abs/types.yaml")},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSibling(tt.base, tt.target))
		})
	}
}
