// Package collection_test tests the collection registry and schema definitions.
// Related: internal/collection/schema.go
// Tags: collection, schema, registry, blog, posts, projects
package collection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchema_RequiredFields(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		name     string
		required []string
		optional []string
	}{
		"blog": {
			name:     Blog,
			required: []string{"title", "description", "publishDate", "tags"},
			optional: []string{"draft"},
		},
		"posts": {
			name:     Posts,
			required: []string{"publishDate"},
			optional: []string{"draft"},
		},
		"projects": {
			name:     Projects,
			required: []string{"title", "description", "publishDate", "tags"},
			optional: []string{"link", "github", "image", "draft"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			schema, err := GetSchema(tt.name)
			require.NoError(t, err)
			require.NotNil(t, schema)

			assert.Equal(t, tt.name, schema.Name)
			assert.Equal(t, ContentTypeContent, schema.Type)
			assert.Equal(t, tt.required, schema.RequiredFields())
			assert.Len(t, schema.Fields, len(tt.required)+len(tt.optional))
			for _, opt := range tt.optional {
				f, ok := schema.Field(opt)
				require.True(t, ok, "field %s", opt)
				assert.False(t, f.Required, "field %s should be optional", opt)
			}
		})
	}
}

func TestGetSchema_FieldKinds(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		collection string
		field      string
		kind       Kind
	}{
		"blog title":           {collection: Blog, field: "title", kind: KindString},
		"blog publishDate":     {collection: Blog, field: "publishDate", kind: KindDate},
		"blog tags":            {collection: Blog, field: "tags", kind: KindStringArray},
		"blog draft":           {collection: Blog, field: "draft", kind: KindBoolean},
		"posts publishDate":    {collection: Posts, field: "publishDate", kind: KindDate},
		"projects link":        {collection: Projects, field: "link", kind: KindURL},
		"projects github":      {collection: Projects, field: "github", kind: KindURL},
		"projects image":       {collection: Projects, field: "image", kind: KindString},
		"projects description": {collection: Projects, field: "description", kind: KindString},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			schema, err := GetSchema(tt.collection)
			require.NoError(t, err)
			f, ok := schema.Field(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.kind, f.Kind)
		})
	}
}

func TestGetSchema_Unknown(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"unknown", "", "Blog", "post"} {
		schema, err := GetSchema(name)
		assert.Nil(t, schema)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCollectionNotFound), "name %q", name)

		var notFound *CollectionNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, name, notFound.Name)
	}
}

func TestGetSchema_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first, err := GetSchema(Blog)
	require.NoError(t, err)
	first.Fields[0].Required = false
	first.Fields = first.Fields[:1]

	second, err := GetSchema(Blog)
	require.NoError(t, err)
	assert.Len(t, second.Fields, 5)
	assert.True(t, second.Fields[0].Required)
}

func TestNamesAndSchemas(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"blog", "posts", "projects"}, Names())

	schemas := Schemas()
	require.Len(t, schemas, 3)
	for i, s := range schemas {
		assert.Equal(t, Names()[i], s.Name)
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		schemas []Schema
		errMsg  string
	}{
		"empty name": {
			schemas: []Schema{{Name: " "}},
			errMsg:  "must not be empty",
		},
		"duplicate collection": {
			schemas: []Schema{{Name: "a"}, {Name: "a"}},
			errMsg:  "already registered",
		},
		"duplicate field": {
			schemas: []Schema{{Name: "a", Fields: []Field{
				{Name: "x", Kind: KindString},
				{Name: "x", Kind: KindBoolean},
			}}},
			errMsg: "duplicate field",
		},
		"unknown kind": {
			schemas: []Schema{{Name: "a", Fields: []Field{{Name: "x", Kind: "number"}}}},
			errMsg:  "unknown kind",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			reg := make(map[string]Schema)
			var err error
			for _, s := range tt.schemas {
				if err = register(reg, s); err != nil {
					break
				}
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
