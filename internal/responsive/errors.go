// File: internal/responsive/errors.go
package responsive

import "errors"

// -- Configuration errors --
// These indicate a misauthored spec document and are raised when the specs are built.

var (
	// ErrInvalidSizeSpec is returned when a size value is out of range for its mode.
	ErrInvalidSizeSpec = errors.New("invalid size spec")
	// ErrInvalidResponsiveSpec is returned when a breakpoint entry fails validation.
	ErrInvalidResponsiveSpec = errors.New("invalid responsive spec")
	// ErrEmptySpecs is returned when an axis has no breakpoints at all.
	ErrEmptySpecs = errors.New("no specs defined for axis")
)

// -- Usage errors --

var (
	// ErrAxisMismatch is returned when a companion spec was resolved for a different axis.
	ErrAxisMismatch = errors.New("axis mismatch")
	// ErrInvalidCellCount is returned when fewer than one cell is requested.
	ErrInvalidCellCount = errors.New("cell count must be at least 1")
	// ErrInvalidAvailableSpace is returned for negative available space.
	ErrInvalidAvailableSpace = errors.New("available space must not be negative")
)

// ErrDimensionOverflow is returned when the resolved slots cannot sum exactly to the
// available space. Callers are expected to log it and fall back.
var ErrDimensionOverflow = errors.New("dimension overflow")

// ErrMissingCompanion is returned when an aligned grid is resolved without the workspace
// spec it must follow.
var ErrMissingCompanion = errors.New("companion spec required")
