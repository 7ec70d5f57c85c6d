package collection

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// BlogEntry is the typed front matter of a blog article.
type BlogEntry struct {
	Title       string    `mapstructure:"title" json:"title"`
	Description string    `mapstructure:"description" json:"description"`
	PublishDate time.Time `mapstructure:"publishDate" json:"publishDate"`
	Tags        []string  `mapstructure:"tags" json:"tags"`
	Draft       bool      `mapstructure:"draft" json:"draft,omitempty"`
}

// PostEntry is the typed front matter of a short post.
type PostEntry struct {
	PublishDate time.Time `mapstructure:"publishDate" json:"publishDate"`
	Draft       bool      `mapstructure:"draft" json:"draft,omitempty"`
}

// ProjectEntry is the typed front matter of a portfolio project.
type ProjectEntry struct {
	Title       string    `mapstructure:"title" json:"title"`
	Description string    `mapstructure:"description" json:"description"`
	PublishDate time.Time `mapstructure:"publishDate" json:"publishDate"`
	Tags        []string  `mapstructure:"tags" json:"tags"`
	Link        string    `mapstructure:"link" json:"link,omitempty"`
	GitHub      string    `mapstructure:"github" json:"github,omitempty"`
	Image       string    `mapstructure:"image" json:"image,omitempty"`
	Draft       bool      `mapstructure:"draft" json:"draft,omitempty"`
}

// Decode copies a validated record into a typed entry struct.
// Keys without a matching struct field are an error.
func Decode(rec Record, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}
	if err := dec.Decode(map[string]any(rec)); err != nil {
		return fmt.Errorf("decoding record: %w", err)
	}
	return nil
}

// ValidateInto validates raw against the named collection and decodes the
// result into out, which must be the collection's entry type.
func ValidateInto(name string, raw map[string]any, out any) error {
	if err := checkEntryType(name, out); err != nil {
		return err
	}
	rec, err := Validate(name, raw)
	if err != nil {
		return err
	}
	return Decode(rec, out)
}

func checkEntryType(name string, out any) error {
	var ok bool
	switch name {
	case Blog:
		_, ok = out.(*BlogEntry)
	case Posts:
		_, ok = out.(*PostEntry)
	case Projects:
		_, ok = out.(*ProjectEntry)
	default:
		return &CollectionNotFoundError{Name: name}
	}
	if !ok {
		return fmt.Errorf("collection %q cannot decode into %T", name, out)
	}
	return nil
}
