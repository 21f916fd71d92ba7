package config

import "strings"

// GeneratorKind selects what a run produces.
type GeneratorKind string

const (
	// GeneratorHTML writes the browsable site.
	GeneratorHTML GeneratorKind = "html"
	// GeneratorJSON writes the single all.json summary.
	GeneratorJSON GeneratorKind = "json"
)

// NormalizeGenerator lower-cases and trims raw. Unknown values are returned as-is
// so Validate can report them.
func NormalizeGenerator(raw string) GeneratorKind {
	return GeneratorKind(strings.ToLower(strings.TrimSpace(raw)))
}

func (g GeneratorKind) Valid() bool {
	return g == GeneratorHTML || g == GeneratorJSON
}
