// Package inputs holds the files handed to one frontend invocation.
package inputs

import (
	"fmt"
	"path/filepath"
	"strings"
)

// File is one input of the invocation.
type File struct {
	Path    string
	Primary bool
}

// Stem returns the base name of the file without its extension.
func (f File) Stem() string {
	base := filepath.Base(f.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Set is an ordered list of inputs. The zero value is empty and usable.
type Set struct {
	files []File
}

// NewSet builds a set from paths, marking every path listed in primaries as
// primary. A primary that names no input is an error.
func NewSet(paths, primaries []string) (Set, error) {
	isPrimary := make(map[string]bool, len(primaries))
	for _, p := range primaries {
		isPrimary[filepath.Clean(p)] = true
	}
	s := Set{files: make([]File, 0, len(paths))}
	matched := make(map[string]bool, len(primaries))
	for _, p := range paths {
		clean := filepath.Clean(p)
		s.files = append(s.files, File{Path: p, Primary: isPrimary[clean]})
		if isPrimary[clean] {
			matched[clean] = true
		}
	}
	for _, p := range primaries {
		if !matched[filepath.Clean(p)] {
			return Set{}, fmt.Errorf("primary file %q is not an input", p)
		}
	}
	return s, nil
}

// Add appends an input.
func (s *Set) Add(f File) {
	s.files = append(s.files, f)
}

// Files returns the inputs in order. Do not modify the returned slice.
func (s Set) Files() []File {
	return s.files
}

func (s Set) Len() int {
	return len(s.files)
}

// PrimaryCount returns the number of primary inputs.
func (s Set) PrimaryCount() int {
	n := 0
	for _, f := range s.files {
		if f.Primary {
			n++
		}
	}
	return n
}

// UniquePrimaryInput returns the primary input when there is exactly one.
func (s Set) UniquePrimaryInput() (File, bool) {
	var (
		found File
		count int
	)
	for _, f := range s.files {
		if !f.Primary {
			continue
		}
		count++
		if count > 1 {
			return File{}, false
		}
		found = f
	}
	return found, count == 1
}

// First returns the first input, if any.
func (s Set) First() (File, bool) {
	if len(s.files) == 0 {
		return File{}, false
	}
	return s.files[0], true
}
