package patch

import (
	"strings"

	"github.com/pillowmc/pillowgen/internals/merrors"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Matcher selects elements of a list
type Matcher[T any] struct {
	// Description is used in error messages, like `"--launchTarget"`
	Description string
	Match       func(T) bool
}

// Equals matches strings equal to token
func Equals(token string) Matcher[string] {
	return Matcher[string]{
		Description: `"` + token + `"`,
		Match:       func(s string) bool { return s == token },
	}
}

// HasPrefix matches strings starting with prefix
func HasPrefix(prefix string) Matcher[string] {
	return Matcher[string]{
		Description: `"` + prefix + `…"`,
		Match:       func(s string) bool { return strings.HasPrefix(s, prefix) },
	}
}

// JarHasPrefix matches processor objects whose "jar" starts with prefix
func JarHasPrefix(prefix string) Matcher[interface{}] {
	return Matcher[interface{}]{
		Description: `processor "` + prefix + `…"`,
		Match: func(v interface{}) bool {
			obj, ok := v.(map[string]interface{})
			if !ok {
				return false
			}
			jar, ok := obj["jar"].(string)
			return ok && strings.HasPrefix(jar, prefix)
		},
	}
}

// Find returns the index of the first element m matches
func Find[T any](list []T, m Matcher[T]) (int, error) {
	i := slices.IndexFunc(list, m.Match)
	if i == -1 {
		return -1, errors.Wrapf(merrors.ErrTokenNotFound, "no %s", m.Description)
	}
	return i, nil
}

// FindUnique is like Find but also fails if more than one element matches
func FindUnique[T any](list []T, m Matcher[T]) (int, error) {
	i, err := Find(list, m)
	if err != nil {
		return -1, err
	}
	if slices.IndexFunc(list[i+1:], m.Match) != -1 {
		return -1, errors.Wrapf(merrors.ErrTokenNotFound, "%s is not unique", m.Description)
	}
	return i, nil
}

// ValueAfter returns the index of the element following the unique match of m
func ValueAfter(list []string, m Matcher[string]) (int, error) {
	i, err := FindUnique(list, m)
	if err != nil {
		return -1, err
	}
	if i+1 >= len(list) {
		return -1, errors.Wrapf(merrors.ErrTokenNotFound, "%s is the last one, value is missing", m.Description)
	}
	return i + 1, nil
}

// RemoveAt removes the element at i (and returns the shortened list)
func RemoveAt[T any](list []T, i int) []T {
	return slices.Delete(list, i, i+1)
}
