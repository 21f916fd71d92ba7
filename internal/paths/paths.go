// Package paths maps documented entities to output-relative file paths and computes
// the relative prefix from a page back to the site root.
//
// The naming rules match the Darkfish generator so links published against either
// generator's output keep resolving. Returned paths always use forward slashes. Convert
// with filepath.FromSlash before touching the filesystem, and with Href before
// placing one in a link.
package paths

import (
	"net/url"
	"strings"

	"git.home.luguber.info/inful/emerald/internal/model"
)

const (
	pageSuffix    = ".html"
	parentSegment = "../"
	currentDir    = "./"
)

// ForFile returns the page path of a documented file: every "." becomes "_" and
// ".html" is appended, so "lib/foo.rb" maps to "lib/foo_rb.html".
func ForFile(relativeName string) string {
	return strings.ReplaceAll(relativeName, ".", "_") + pageSuffix
}

// ForType returns the page path of a class or module: namespace segments become
// directories, so "Foo::Bar" maps to "Foo/Bar.html".
func ForType(qualifiedName string) string {
	return strings.Join(strings.Split(qualifiedName, model.NamespaceSeparator), "/") + pageSuffix
}

// RootPrefix returns depth parent segments, or "./" when depth is zero.
func RootPrefix(depth int) string {
	if depth <= 0 {
		return currentDir
	}
	return strings.Repeat(parentSegment, depth)
}

// FileDepth is the nesting depth of a file page; the last segment is the file itself.
func FileDepth(relativeName string) int {
	return strings.Count(relativeName, "/")
}

// TypeDepth is the nesting depth of a type page; the last segment names the page.
func TypeDepth(qualifiedName string) int {
	return strings.Count(qualifiedName, model.NamespaceSeparator)
}

// FileRoot is RootPrefix(FileDepth(relativeName)).
func FileRoot(relativeName string) string { return RootPrefix(FileDepth(relativeName)) }

// TypeRoot is RootPrefix(TypeDepth(qualifiedName)).
func TypeRoot(qualifiedName string) string { return RootPrefix(TypeDepth(qualifiedName)) }

// Href returns the link form of a page path: each "/"-separated segment is
// percent-escaped so names containing "#", "?" or spaces still reach their page.
func Href(pagePath string) string {
	segments := strings.Split(pagePath, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

// MethodHref links a method's anchor on its owner's page.
func MethodHref(m model.Method) string {
	return Href(ForType(m.Owner)) + "#" + MethodAnchor(m)
}

// MethodAnchor returns the fragment id of a method on its type page:
// "method-i-<name>" for instance methods and "method-c-<name>" for class-level ones.
// Characters outside [A-Za-z0-9_.~-] are percent-encoded with "-" in place of "%",
// and a leading "-" is dropped, so "==" becomes "method-i-3D-3D".
func MethodAnchor(m model.Method) string {
	kind := "i"
	if m.IsClassLevel() {
		kind = "c"
	}
	escaped := strings.ReplaceAll(url.QueryEscape(m.Name), "%", "-")
	return "method-" + kind + "-" + strings.TrimPrefix(escaped, "-")
}
