package types

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

// ErrInvalidSlug is returned for values that are not lower-case, hyphen separated
// ASCII words.
var ErrInvalidSlug = errors.New("slug must contain lower-case letters, digits and single hyphens")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Slug is a URL-safe catalog identifier such as "blue-cotton-shirt".
type Slug string

// NewSlug validates an already-normalised slug.
func NewSlug(value string) (Slug, error) {
	value = strings.TrimSpace(value)
	if !slugPattern.MatchString(value) {
		return "", ErrInvalidSlug
	}
	return Slug(value), nil
}

// Slugify derives a slug from free text, e.g. a product name.
func Slugify(text string) (Slug, error) {
	return NewSlug(slug.Make(text))
}

// String implements fmt.Stringer.
func (s Slug) String() string {
	return string(s)
}
