// Package model defines the host-provided documentation entities consumed by the
// generators. Entities are read-only for the duration of one generation run.
package model

import "strings"

// NamespaceSeparator joins the segments of a qualified type name.
const NamespaceSeparator = "::"

// TypeKind discriminates classes from modules.
type TypeKind string

const (
	KindClass  TypeKind = "class"
	KindModule TypeKind = "module"
)

// Visibility of a method.
type Visibility string

const (
	Public    Visibility = "public"
	Protected Visibility = "protected"
	Private   Visibility = "private"
)

// MethodKind distinguishes instance methods from class-level ones.
type MethodKind string

const (
	InstanceMethod MethodKind = "instance"
	ClassMethod    MethodKind = "class"
	Constructor    MethodKind = "constructor"
)

// File is a documented source file.
type File struct {
	RelativeName string `yaml:"relative_name" json:"relative_name"`
	Description  string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Type is a documented class or module.
type Type struct {
	QualifiedName string      `yaml:"qualified_name" json:"qualified_name"`
	Kind          TypeKind    `yaml:"kind" json:"kind"`
	Superclass    string      `yaml:"superclass,omitempty" json:"superclass,omitempty"`
	Description   string      `yaml:"description,omitempty" json:"description,omitempty"`
	Methods       []Method    `yaml:"methods,omitempty" json:"methods,omitempty"`
	Includes      []string    `yaml:"includes,omitempty" json:"includes,omitempty"`
	Constants     []Constant  `yaml:"constants,omitempty" json:"constants,omitempty"`
	Attributes    []Attribute `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// IsModule reports whether the type is a module rather than a class.
func (t Type) IsModule() bool { return t.Kind == KindModule }

// Segments returns the namespace segments of the qualified name.
func (t Type) Segments() []string { return strings.Split(t.QualifiedName, NamespaceSeparator) }

// Method is a documented method. Owner refers back to the qualified name of the
// type whose Methods slice holds it.
type Method struct {
	Name          string     `yaml:"name" json:"name"`
	Owner         string     `yaml:"owner,omitempty" json:"owner,omitempty"`
	Visibility    Visibility `yaml:"visibility,omitempty" json:"visibility,omitempty"`
	Kind          MethodKind `yaml:"kind,omitempty" json:"kind,omitempty"`
	Signatures    []string   `yaml:"signatures,omitempty" json:"signatures,omitempty"`
	Description   string     `yaml:"description,omitempty" json:"description,omitempty"`
	FormattedBody string     `yaml:"formatted_body,omitempty" json:"formatted_body,omitempty"`
	RawBody       string     `yaml:"raw_body,omitempty" json:"raw_body,omitempty"`
}

// IsClassLevel reports whether the method is called on the type itself.
func (m Method) IsClassLevel() bool { return m.Kind == ClassMethod || m.Kind == Constructor }

// FullName renders the method the way cross-reference text does:
// Owner#name for instance methods and Owner::name for class-level ones.
func (m Method) FullName() string {
	if m.IsClassLevel() {
		return m.Owner + NamespaceSeparator + m.Name
	}
	return m.Owner + "#" + m.Name
}

// Constant is a constant defined by a type.
type Constant struct {
	Name        string `yaml:"name" json:"name"`
	Value       string `yaml:"value,omitempty" json:"value,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Attribute is an accessor defined by a type. RW is the access mode as reported by
// the host ("R", "W" or "RW").
type Attribute struct {
	Name        string `yaml:"name" json:"name"`
	RW          string `yaml:"rw,omitempty" json:"rw,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}
