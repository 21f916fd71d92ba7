package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyOutput     = "output"
	KeyEntity     = "entity"
	KeyTemplate   = "template"
	KeyStage      = "stage"
	KeyGenerator  = "generator"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyRoot       = "root"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Output(dir string) slog.Attr     { return slog.String(KeyOutput, dir) }
func Entity(name string) slog.Attr    { return slog.String(KeyEntity, name) }
func Template(id string) slog.Attr    { return slog.String(KeyTemplate, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Generator(name string) slog.Attr { return slog.String(KeyGenerator, name) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Root(prefix string) slog.Attr    { return slog.String(KeyRoot, prefix) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
