// File: internal/responsive/responsive_spec.go
package responsive

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// -- Axis --

// Axis is the layout dimension a breakpoint applies to.
type Axis int

const (
	// Width breakpoints are matched against the available width.
	Width Axis = iota
	// Height breakpoints are matched against the available height.
	Height
)

func (a Axis) String() string {
	switch a {
	case Width:
		return "width"
	case Height:
		return "height"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// IsValid reports whether a is one of the two defined axes.
func (a Axis) IsValid() bool { return a == Width || a == Height }

// ParseAxis accepts "width" or "height" in any case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "width":
		return Width, nil
	case "height":
		return Height, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// -- Slots --

// Slot names one of the four sized positions of a breakpoint.
type Slot string

const (
	StartPaddingSlot Slot = "startPadding"
	EndPaddingSlot   Slot = "endPadding"
	GutterSlot       Slot = "gutter"
	CellSizeSlot     Slot = "cellSize"
)

// Slots lists every slot in resolution order.
var Slots = []Slot{StartPaddingSlot, EndPaddingSlot, GutterSlot, CellSizeSlot}

// -- ResponsiveSpec --

// ResponsiveSpec is one breakpoint: the sizing rules that apply while the available
// space on its axis is at most MaxAvailableSize.
type ResponsiveSpec struct {
	maxAvailableSize int
	axis             Axis
	startPadding     SizeSpec
	endPadding       SizeSpec
	gutter           SizeSpec
	cellSize         SizeSpec
}

// NewResponsiveSpec validates and builds a breakpoint.
func NewResponsiveSpec(maxAvailableSize int, axis Axis, startPadding, endPadding, gutter, cellSize SizeSpec) (ResponsiveSpec, error) {
	s := ResponsiveSpec{
		maxAvailableSize: maxAvailableSize,
		axis:             axis,
		startPadding:     startPadding,
		endPadding:       endPadding,
		gutter:           gutter,
		cellSize:         cellSize,
	}
	if err := s.validate(); err != nil {
		return ResponsiveSpec{}, err
	}
	return s, nil
}

// MustResponsiveSpec is like NewResponsiveSpec but panics if the breakpoint is invalid.
// A failure here means the spec document is broken.
func MustResponsiveSpec(maxAvailableSize int, axis Axis, startPadding, endPadding, gutter, cellSize SizeSpec) ResponsiveSpec {
	s, err := NewResponsiveSpec(maxAvailableSize, axis, startPadding, endPadding, gutter, cellSize)
	if err != nil {
		panic(err)
	}
	return s
}

func (s ResponsiveSpec) MaxAvailableSize() int  { return s.maxAvailableSize }
func (s ResponsiveSpec) Axis() Axis             { return s.axis }
func (s ResponsiveSpec) StartPadding() SizeSpec { return s.startPadding }
func (s ResponsiveSpec) EndPadding() SizeSpec   { return s.endPadding }
func (s ResponsiveSpec) Gutter() SizeSpec       { return s.gutter }
func (s ResponsiveSpec) CellSize() SizeSpec     { return s.cellSize }

// Responsive returns the breakpoint itself. Grid families embed ResponsiveSpec and get this
// method promoted, which is what lets ResponsiveSpecs hold any of them.
func (s ResponsiveSpec) Responsive() ResponsiveSpec { return s }

// Size returns the rule for the given slot.
func (s ResponsiveSpec) Size(slot Slot) SizeSpec {
	switch slot {
	case StartPaddingSlot:
		return s.startPadding
	case EndPaddingSlot:
		return s.endPadding
	case GutterSlot:
		return s.gutter
	case CellSizeSlot:
		return s.cellSize
	}
	panic(fmt.Sprintf("responsive: unknown slot %q", slot))
}

// IsValid reports whether the axis, the bound and all four slots are valid.
func (s ResponsiveSpec) IsValid() bool { return s.validate() == nil }

func (s ResponsiveSpec) validate() error {
	var errs error
	if !s.axis.IsValid() {
		errs = multierr.Append(errs, fmt.Errorf("unknown axis %d", int(s.axis)))
	}
	if s.maxAvailableSize < 0 {
		errs = multierr.Append(errs, fmt.Errorf("maxAvailableSize %d is negative", s.maxAvailableSize))
	}
	for _, slot := range Slots {
		if err := s.Size(slot).validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", slot, err))
		}
	}
	if errs != nil {
		return fmt.Errorf("%w (%s, max %dpx): %w", ErrInvalidResponsiveSpec, s.axis, s.maxAvailableSize, errs)
	}
	return nil
}

func (s ResponsiveSpec) String() string {
	return fmt.Sprintf("%s<=%dpx{start: %s, end: %s, gutter: %s, cell: %s}",
		s.axis, s.maxAvailableSize, s.startPadding, s.endPadding, s.gutter, s.cellSize)
}

// -- Raw entries --

// RawSize is an unvalidated slot rule as read from a spec document. MaxSize < 0 means unset.
type RawSize struct {
	Mode    SizeMode
	Value   float64
	MaxSize int
}

// Entry is one unvalidated breakpoint as read from a spec document.
type Entry struct {
	Axis             Axis
	MaxAvailableSize int
	Sizes            map[Slot]RawSize
}

// Build validates the entry and converts it to a ResponsiveSpec. All problems found are
// reported together.
func (e Entry) Build() (ResponsiveSpec, error) {
	var (
		errs  error
		sizes [4]SizeSpec
	)
	for i, slot := range Slots {
		raw, ok := e.Sizes[slot]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%s: missing", slot))
			continue
		}
		spec, err := NewSizeSpec(raw.Mode, raw.Value, raw.MaxSize)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", slot, err))
			continue
		}
		sizes[i] = spec
	}
	if errs != nil {
		return ResponsiveSpec{}, fmt.Errorf("%w (%s, max %dpx): %w", ErrInvalidResponsiveSpec, e.Axis, e.MaxAvailableSize, errs)
	}
	return NewResponsiveSpec(e.MaxAvailableSize, e.Axis, sizes[0], sizes[1], sizes[2], sizes[3])
}
