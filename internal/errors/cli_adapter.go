package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	stderr  io.Writer
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		stderr:  os.Stderr,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if ee, ok := As(err); ok {
		return a.exitCodeFromEmerald(ee)
	}

	return 1
}

// exitCodeFromEmerald maps EmeraldError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromEmerald(err *EmeraldError) int {
	switch err.Category {
	case CategoryModel:
		return 2 // Invalid input
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryFileSystem, CategoryRender:
		return 11 // Output error
	case CategoryCanceled:
		return 130
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if ee, ok := As(err); ok {
		return a.formatEmerald(ee)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatEmerald formats an EmeraldError for display. Context fields are printed in key
// order so the offending path or entity is always visible.
func (a *CLIErrorAdapter) formatEmerald(err *EmeraldError) string {
	if a.verbose {
		return err.Error()
	}

	msg := err.Message
	if err.Category != CategoryConfig && err.Category != CategoryModel {
		msg = fmt.Sprintf("%s: %s", err.Category, err.Message)
	}
	if len(err.Context) == 0 {
		return msg
	}
	keys := make([]string, 0, len(err.Context))
	for k := range err.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, err.Context[k]))
	}
	return msg + " (" + strings.Join(parts, ", ") + ")"
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.shouldLog(err) {
		a.logError(err)
	}

	_, _ = fmt.Fprintf(a.stderr, "%s\n", message)
	os.Exit(exitCode)
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	if ee, ok := As(err); ok {
		return ee.Category == CategoryInternal || ee.Severity == SeverityFatal
	}

	return true
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	if ee, ok := As(err); ok {
		attrs := []slog.Attr{
			slog.String("category", string(ee.Category)),
		}
		if ee.Cause != nil {
			attrs = append(attrs, slog.String("cause", ee.Cause.Error()))
		}
		a.logger.LogAttrs(context.Background(), slogLevelFromSeverity(ee.Severity), ee.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}

// slogLevelFromSeverity converts EmeraldError severity to slog level.
func slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
