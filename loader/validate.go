package loader

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/nathoo/ecohero/engine/errs"
	"github.com/nathoo/ecohero/engine/state"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Unwrap lets errors.Is match errs.ErrInvalidContent.
func (e *ValidationError) Unwrap() error { return errs.ErrInvalidContent }

// validate checks the compiled defs for consistency. Structural problems are
// errors; missing flavor text is only a warning.
func validate(defs *state.Defs) error {
	ve := &ValidationError{Errors: defs.Validate()}

	for _, a := range defs.Roster {
		if a.Description == "" {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("adversary %q has no description", a.ID))
		}
		if a.Reward == 0 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("adversary %q gives no reward", a.ID))
		}
	}
	for _, e := range defs.Catalog.Entries() {
		if e.Name == "" {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("item %q has no name", e.Kind))
		}
		if e.Category == "" {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("item %q has no category", e.Kind))
		}
	}
	if defs.Catalog.Len() == 0 {
		ve.Warnings = append(ve.Warnings, "no Item definitions: the shop will be empty")
	}

	for _, w := range ve.Warnings {
		slog.Warn("content warning", "detail", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
