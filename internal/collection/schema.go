// Package collection defines the content collections of the site (blog, posts,
// projects) and validates raw front matter against them.
//
// Schemas are plain data: an ordered list of fields per collection, interpreted
// by one generic validation function. The registry is built at init and never
// changes, so every exported function is safe for concurrent use.
package collection

import (
	"fmt"
	"sort"
	"strings"
)

// ContentType is the storage type of a collection's entries.
type ContentType string

// ContentTypeContent marks collections backed by markdown/MDX files whose
// front matter is validated.
const ContentTypeContent ContentType = "content"

// Collection names known to the registry.
const (
	Blog     = "blog"
	Posts    = "posts"
	Projects = "projects"
)

// Field defines one front-matter field of a collection schema.
type Field struct {
	Name        string // Key in front matter
	Kind        Kind   // Expected kind after coercion
	Required    bool   // Whether field must be present
	Description string // Human-readable description
}

// Schema is the complete front-matter schema of one collection.
type Schema struct {
	Name        string
	Type        ContentType
	Description string
	Fields      []Field
}

// Field returns the field definition with the given name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// RequiredFields returns the names of required fields in declaration order.
func (s *Schema) RequiredFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// clone returns a deep copy so callers cannot mutate the registry.
func (s Schema) clone() Schema {
	s.Fields = append([]Field(nil), s.Fields...)
	return s
}

// BlogSchema defines the front matter of blog articles.
var BlogSchema = Schema{
	Name:        Blog,
	Type:        ContentTypeContent,
	Description: "Long-form blog articles listed on the blog index",
	Fields: []Field{
		{Name: "title", Kind: KindString, Required: true, Description: "Article title"},
		{Name: "description", Kind: KindString, Required: true, Description: "Summary used in listings and meta tags"},
		{Name: "publishDate", Kind: KindDate, Required: true, Description: "Publication date"},
		{Name: "tags", Kind: KindStringArray, Required: true, Description: "Topic tags"},
		{Name: "draft", Kind: KindBoolean, Description: "Exclude from production builds when true"},
	},
}

// PostsSchema defines the front matter of short posts.
var PostsSchema = Schema{
	Name:        Posts,
	Type:        ContentTypeContent,
	Description: "Short posts identified by their publication date",
	Fields: []Field{
		{Name: "publishDate", Kind: KindDate, Required: true, Description: "Publication date"},
		{Name: "draft", Kind: KindBoolean, Description: "Exclude from production builds when true"},
	},
}

// ProjectsSchema defines the front matter of portfolio projects.
var ProjectsSchema = Schema{
	Name:        Projects,
	Type:        ContentTypeContent,
	Description: "Portfolio projects with optional external links and a cover image",
	Fields: []Field{
		{Name: "title", Kind: KindString, Required: true, Description: "Project name"},
		{Name: "description", Kind: KindString, Required: true, Description: "Short project summary"},
		{Name: "publishDate", Kind: KindDate, Required: true, Description: "Publication date"},
		{Name: "tags", Kind: KindStringArray, Required: true, Description: "Technology tags"},
		{Name: "link", Kind: KindURL, Description: "Live project URL"},
		{Name: "github", Kind: KindURL, Description: "Source repository URL"},
		{Name: "image", Kind: KindString, Description: "Cover image path"},
		{Name: "draft", Kind: KindBoolean, Description: "Exclude from production builds when true"},
	},
}

// registry maps collection names to schemas. Populated once in init.
var registry map[string]Schema

func init() {
	registry = make(map[string]Schema)
	for _, s := range []Schema{BlogSchema, PostsSchema, ProjectsSchema} {
		if err := register(registry, s); err != nil {
			panic(err)
		}
	}
}

// register adds s to reg, rejecting empty or duplicate names and unknown kinds.
func register(reg map[string]Schema, s Schema) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("collection name must not be empty")
	}
	if _, exists := reg[s.Name]; exists {
		return fmt.Errorf("collection %q already registered", s.Name)
	}
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("collection %q: field name must not be empty", s.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("collection %q: duplicate field %q", s.Name, f.Name)
		}
		if !f.Kind.Valid() {
			return fmt.Errorf("collection %q: field %q has unknown kind %q", s.Name, f.Name, f.Kind)
		}
		seen[f.Name] = true
	}
	reg[s.Name] = s.clone()
	return nil
}

// GetSchema returns the schema for the named collection.
// Unknown names yield a *CollectionNotFoundError.
func GetSchema(name string) (*Schema, error) {
	s, ok := registry[name]
	if !ok {
		return nil, &CollectionNotFoundError{Name: name}
	}
	c := s.clone()
	return &c, nil
}

// Names returns the registered collection names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schemas returns copies of every registered schema, sorted by name.
func Schemas() []Schema {
	names := Names()
	schemas := make([]Schema, 0, len(names))
	for _, name := range names {
		schemas = append(schemas, registry[name].clone())
	}
	return schemas
}
