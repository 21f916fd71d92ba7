package model

import (
	"fmt"
	"strings"

	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
)

// Normalize fills the fields a host may leave implicit: method owners default to the
// containing type, visibility to public and method kind to instance. It mutates the
// provider's entities in place and must run before Validate.
func Normalize(s *Static) {
	for i := range s.Types {
		t := &s.Types[i]
		for j := range t.Methods {
			m := &t.Methods[j]
			if m.Owner == "" {
				m.Owner = t.QualifiedName
			}
			if m.Visibility == "" {
				m.Visibility = Public
			}
			if m.Kind == "" {
				m.Kind = InstanceMethod
			}
		}
	}
}

// Validate checks the invariants the generators rely on and returns a model error
// naming the first offending entity.
func Validate(p Provider) error {
	for i, f := range p.AllFiles() {
		if strings.TrimSpace(f.RelativeName) == "" {
			return ferrors.ModelInvalid(fmt.Sprintf("file[%d]", i), "missing relative name")
		}
	}

	seen := make(map[string]struct{})
	for i, t := range p.AllTypes() {
		if err := validateType(t); err != nil {
			if t.QualifiedName == "" {
				err.WithContext("entity", fmt.Sprintf("type[%d]", i))
			}
			return err
		}
		if _, dup := seen[t.QualifiedName]; dup {
			return ferrors.ModelInvalid(t.QualifiedName, "duplicate qualified name")
		}
		seen[t.QualifiedName] = struct{}{}
	}
	return nil
}

func validateType(t Type) *ferrors.EmeraldError {
	name := t.QualifiedName
	if name == "" {
		return ferrors.ModelInvalid(name, "missing qualified name")
	}
	for _, seg := range t.Segments() {
		if seg == "" {
			return ferrors.ModelInvalid(name, "empty namespace segment")
		}
	}
	switch t.Kind {
	case KindClass:
	case KindModule:
		if t.Superclass != "" {
			return ferrors.ModelInvalid(name, "module cannot have a superclass")
		}
	default:
		return ferrors.ModelInvalid(name, fmt.Sprintf("unknown kind %q", t.Kind))
	}

	for _, m := range t.Methods {
		if err := validateMethod(t, m); err != nil {
			return err
		}
	}
	for _, c := range t.Constants {
		if c.Name == "" {
			return ferrors.ModelInvalid(name, "constant without name")
		}
	}
	for _, a := range t.Attributes {
		if a.Name == "" {
			return ferrors.ModelInvalid(name, "attribute without name")
		}
	}
	return nil
}

func validateMethod(t Type, m Method) *ferrors.EmeraldError {
	if m.Name == "" {
		return ferrors.ModelInvalid(t.QualifiedName, "method without name")
	}
	if m.Owner != t.QualifiedName {
		return ferrors.ModelInvalid(m.FullName(), fmt.Sprintf("method owner does not match containing type %s", t.QualifiedName))
	}
	switch m.Visibility {
	case Public, Protected, Private:
	default:
		return ferrors.ModelInvalid(m.FullName(), fmt.Sprintf("unknown visibility %q", m.Visibility))
	}
	switch m.Kind {
	case InstanceMethod, ClassMethod, Constructor:
	default:
		return ferrors.ModelInvalid(m.FullName(), fmt.Sprintf("unknown method kind %q", m.Kind))
	}
	return nil
}
