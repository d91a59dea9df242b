package site

import (
	"regexp"
	"strings"
)

// slugPattern matches the public URL path segment of a provisioned
// site: lowercase alphanumerics separated by single hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Slug struct {
	value string
}

func NewSlug(value string) (Slug, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return Slug{}, ErrEmptySlug
	}
	if len(trimmed) > 63 || !slugPattern.MatchString(trimmed) {
		return Slug{}, ErrInvalidSlug
	}
	return Slug{value: trimmed}, nil
}

func (s Slug) String() string {
	return s.value
}
