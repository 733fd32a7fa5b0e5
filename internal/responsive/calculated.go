// File: internal/responsive/calculated.go
package responsive

import "fmt"

// CalculatedSpec is the pixel resolution of one breakpoint for a concrete available space
// and cell count. It never changes after Calculate returns.
//
// The resolved slots always satisfy
//
//	StartPadding + EndPadding + (Cells-1)*Gutter + (Cells-1)*CellSize + LastCellSize == AvailableSpace
//
// LastCellSize equals CellSize unless the last cell absorbed a rounding leftover.
type CalculatedSpec struct {
	availableSpace int
	cells          int
	spec           ResponsiveSpec
	// companion is borrowed from the grid this one aligns to; it is never modified.
	companion *CalculatedSpec

	startPaddingPx int
	endPaddingPx   int
	gutterPx       int
	cellSizePx     int
	lastCellSizePx int
}

// Calculate resolves spec for availableSpace pixels split into cells cells.
//
// Slots that do not depend on the remainder are resolved first. When companion is set its
// cell size replaces the spec's cell size rule. Paddings and gutter still follow spec, so
// the pitch equals the companion's only when the gutter resolves to the companion's gutter.
// Remainder-based slots are then resolved in the order start padding, end padding, gutter,
// cell size, each taking its fraction of what the previous ones left. A leftover smaller
// than the rounding error of those slots goes to the last cell, or to the end padding when
// aligned to a companion. Anything else is ErrDimensionOverflow.
func Calculate(availableSpace, cells int, spec ResponsiveSpec, companion *CalculatedSpec) (*CalculatedSpec, error) {
	if cells < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCellCount, cells)
	}
	if availableSpace < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAvailableSpace, availableSpace)
	}
	if companion != nil && companion.spec.Axis() != spec.Axis() {
		return nil, fmt.Errorf("%w: expected companion for %s, found %s", ErrAxisMismatch, spec.Axis(), companion.spec.Axis())
	}

	c := &CalculatedSpec{
		availableSpace: availableSpace,
		cells:          cells,
		spec:           spec,
		companion:      companion,
	}
	gutters := cells - 1

	// -- Pass 1: fixed and proportional-to-available slots --
	c.startPaddingPx = c.resolveDirect(spec.startPadding)
	c.endPaddingPx = c.resolveDirect(spec.endPadding)
	if gutters > 0 {
		c.gutterPx = c.resolveDirect(spec.gutter)
	}
	if companion != nil {
		c.cellSizePx = companion.cellSizePx
	} else {
		c.cellSizePx = c.resolveDirect(spec.cellSize)
	}

	remainder := availableSpace - c.usedSpace(c.cellSizePx)
	if remainder < 0 {
		return nil, fmt.Errorf("%w: %s needs %dpx more than the %dpx available for %d cells",
			ErrDimensionOverflow, spec, -remainder, availableSpace, cells)
	}

	// -- Pass 2: remainder-based slots, each narrowing the remainder --
	tolerance := 0
	if spec.startPadding.Mode() == OfRemainderSpace {
		c.startPaddingPx = spec.startPadding.share(remainder, 1)
		remainder -= c.startPaddingPx
		tolerance++
	}
	if spec.endPadding.Mode() == OfRemainderSpace {
		c.endPaddingPx = spec.endPadding.share(remainder, 1)
		remainder -= c.endPaddingPx
		tolerance++
	}
	if gutters > 0 && spec.gutter.Mode() == OfRemainderSpace {
		c.gutterPx = spec.gutter.share(remainder, gutters)
		remainder -= gutters * c.gutterPx
		tolerance += gutters
	}
	if companion == nil && spec.cellSize.Mode() == OfRemainderSpace {
		c.cellSizePx = spec.cellSize.share(remainder, cells)
		remainder -= cells * c.cellSizePx
		tolerance += cells
	}
	c.lastCellSizePx = c.cellSizePx

	// -- Leftover --
	if remainder > 0 {
		if remainder >= tolerance {
			return nil, fmt.Errorf("%w: %s leaves %dpx of %dpx unallocated for %d cells",
				ErrDimensionOverflow, spec, remainder, availableSpace, cells)
		}
		if companion != nil {
			c.endPaddingPx += remainder
		} else {
			c.lastCellSizePx += remainder
		}
	}
	return c, nil
}

// MustCalculate is like Calculate but panics on error.
func MustCalculate(availableSpace, cells int, spec ResponsiveSpec, companion *CalculatedSpec) *CalculatedSpec {
	c, err := Calculate(availableSpace, cells, spec, companion)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *CalculatedSpec) resolveDirect(s SizeSpec) int {
	if s.Mode() == OfRemainderSpace {
		return 0
	}
	return s.Resolve(c.availableSpace, c.availableSpace)
}

func (c *CalculatedSpec) usedSpace(lastCell int) int {
	return c.startPaddingPx + c.endPaddingPx +
		(c.cells-1)*c.gutterPx +
		(c.cells-1)*c.cellSizePx + lastCell
}

func (c *CalculatedSpec) AvailableSpace() int  { return c.availableSpace }
func (c *CalculatedSpec) Cells() int           { return c.cells }
func (c *CalculatedSpec) Spec() ResponsiveSpec { return c.spec }
func (c *CalculatedSpec) Axis() Axis           { return c.spec.Axis() }
func (c *CalculatedSpec) StartPadding() int    { return c.startPaddingPx }
func (c *CalculatedSpec) EndPadding() int      { return c.endPaddingPx }
func (c *CalculatedSpec) Gutter() int          { return c.gutterPx }
func (c *CalculatedSpec) CellSize() int        { return c.cellSizePx }
func (c *CalculatedSpec) LastCellSize() int    { return c.lastCellSizePx }

// Companion returns the grid this one is aligned to, or nil.
func (c *CalculatedSpec) Companion() *CalculatedSpec { return c.companion }

// IsAligned reports whether the cell size was taken from a companion grid.
func (c *CalculatedSpec) IsAligned() bool { return c.companion != nil }

// Pitch is the distance between the starts of two adjacent cells. For an aligned grid it
// matches the companion's pitch when both gutters resolve to the same size.
func (c *CalculatedSpec) Pitch() int { return c.cellSizePx + c.gutterPx }

// UsedSpace sums every resolved slot. It equals AvailableSpace for any spec Calculate
// returned without error.
func (c *CalculatedSpec) UsedSpace() int { return c.usedSpace(c.lastCellSizePx) }

// CellStart returns the offset of cell i from the start edge.
func (c *CalculatedSpec) CellStart(i int) int {
	return c.startPaddingPx + i*c.Pitch()
}

func (c *CalculatedSpec) String() string {
	return fmt.Sprintf("%s %dpx x%d: start=%d end=%d gutter=%d cell=%d last=%d",
		c.spec.Axis(), c.availableSpace, c.cells,
		c.startPaddingPx, c.endPaddingPx, c.gutterPx, c.cellSizePx, c.lastCellSizePx)
}
