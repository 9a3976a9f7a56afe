// Package namefilter narrows a list of playlist names to those
// matching a regex-style pattern.
//
// Patterns are ordinary regular expressions matched anywhere in the
// name, case-insensitively, so "disco" matches both "Disco 2010" and
// "nu_disco", and "2020$" matches only names ending in "2020". An
// empty pattern matches everything.
package namefilter

import (
	"fmt"
	"regexp"
)

// Filter returns the subset of names matching pattern, in their
// original order. An empty pattern returns all names. An invalid
// pattern returns an error and no names.
func Filter(names []string, pattern string) ([]string, error) {
	if pattern == "" {
		return names, nil
	}

	re, err := regexp.Compile("(?i:" + pattern + ")")
	if err != nil {
		return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
	}

	var matched []string
	for _, name := range names {
		if re.MatchString(name) {
			matched = append(matched, name)
		}
	}
	return matched, nil
}
