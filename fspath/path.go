// Package fspath provides the Path value type used by the file core to
// identify filesystem locations.
package fspath

import "path/filepath"

// Path identifies a filesystem location by its platform-native name
// string. The zero Path is empty and unusable.
type Path struct {
	name string
}

// New returns a Path recording name verbatim. No lexical cleaning is
// performed; the name is forwarded to the operating system as given.
func New(name string) Path {
	return Path{name: name}
}

// Name returns the recorded name string.
func (p Path) Name() string {
	return p.name
}

// String returns the recorded name string.
func (p Path) String() string {
	return p.name
}

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(p.name)
}

// Dir returns the Path of the enclosing directory.
func (p Path) Dir() Path {
	return Path{name: filepath.Dir(p.name)}
}

// Join returns a Path with the given elements appended, separated by
// the platform separator.
func (p Path) Join(elem ...string) Path {
	parts := append([]string{p.name}, elem...)
	return Path{name: filepath.Join(parts...)}
}

// Empty reports whether the Path carries no name.
func (p Path) Empty() bool {
	return p.name == ""
}
