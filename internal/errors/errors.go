package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/streakr/internal/logger"
	"github.com/julianstephens/streakr/internal/models"
	"github.com/julianstephens/streakr/internal/storage"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Hint returns a follow-up suggestion for well-known failures, or "" if there is none
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, models.ErrInvalidPeriodicity):
		return "periodicity must be 'daily' or 'weekly'"
	case stderrors.Is(err, storage.ErrNotInitialized):
		return "run 'streakr init' to create the habit store"
	case stderrors.Is(err, storage.ErrDuplicateName):
		return "habit names must be unique; run 'streakr habit list' to see existing habits"
	case stderrors.Is(err, models.ErrCompletionBeforeCreation):
		return "check-offs cannot be dated before the habit was created"
	default:
		return ""
	}
}

// Report writes the formatted error and any hint to w
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, Format(err))
	if hint := Hint(err); hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		Report(os.Stderr, err)
		os.Exit(1)
	}
}
