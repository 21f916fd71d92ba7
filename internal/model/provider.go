package model

import (
	"slices"
	"strings"
)

// Provider is the boundary to the host tool that owns the parsed entities.
type Provider interface {
	// AllFiles returns the documented files in host order.
	AllFiles() []File
	// AllTypes returns every documented class and module, in no particular order.
	AllTypes() []Type
}

// Static is an in-memory Provider.
type Static struct {
	Files []File `yaml:"files" json:"files"`
	Types []Type `yaml:"types" json:"types"`
}

func (s *Static) AllFiles() []File { return s.Files }
func (s *Static) AllTypes() []Type { return s.Types }

// SortedTypes returns a copy of types ordered by qualified name (byte-wise ascending).
func SortedTypes(types []Type) []Type {
	out := slices.Clone(types)
	slices.SortStableFunc(out, func(a, b Type) int {
		return strings.Compare(a.QualifiedName, b.QualifiedName)
	})
	return out
}

// SortedMethods flattens the methods of all types and orders them by owner qualified
// name, then simple name, then kind so instance and class methods sharing a name
// keep a fixed order.
func SortedMethods(types []Type) []Method {
	var out []Method
	for _, t := range types {
		out = append(out, t.Methods...)
	}
	slices.SortStableFunc(out, compareMethods)
	return out
}

func compareMethods(a, b Method) int {
	if c := strings.Compare(a.Owner, b.Owner); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(string(a.Kind), string(b.Kind))
}
