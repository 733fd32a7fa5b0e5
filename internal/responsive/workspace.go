// File: internal/responsive/workspace.go
package responsive

import "fmt"

// WorkspaceSpec is a breakpoint of the home-screen grid.
type WorkspaceSpec struct {
	ResponsiveSpec
}

// WorkspaceSpecs are the home-screen breakpoints. The workspace grid is resolved on its own
// and is the alignment reference for the other grids.
type WorkspaceSpecs struct {
	*ResponsiveSpecs[WorkspaceSpec]
}

// NewWorkspaceSpecs partitions specs by axis and validates both lists.
func NewWorkspaceSpecs(specs []ResponsiveSpec) (*WorkspaceSpecs, error) {
	r, err := newFamily(specs, func(s ResponsiveSpec) WorkspaceSpec { return WorkspaceSpec{s} })
	if err != nil {
		return nil, fmt.Errorf("workspace specs: %w", err)
	}
	return &WorkspaceSpecs{r}, nil
}

// CalculatedWidthSpec resolves the breakpoint for availableWidth across columns cells.
func (s *WorkspaceSpecs) CalculatedWidthSpec(columns, availableWidth int) (*CalculatedSpec, error) {
	return Calculate(availableWidth, columns, s.WidthSpec(availableWidth).ResponsiveSpec, nil)
}

// CalculatedHeightSpec resolves the breakpoint for availableHeight across rows cells.
func (s *WorkspaceSpecs) CalculatedHeightSpec(rows, availableHeight int) (*CalculatedSpec, error) {
	return Calculate(availableHeight, rows, s.HeightSpec(availableHeight).ResponsiveSpec, nil)
}

// newFamily wraps plain breakpoints into a family type and builds its ResponsiveSpecs.
func newFamily[T Specifier](specs []ResponsiveSpec, wrap func(ResponsiveSpec) T) (*ResponsiveSpecs[T], error) {
	wrapped := make([]T, 0, len(specs))
	for _, s := range specs {
		wrapped = append(wrapped, wrap(s))
	}
	width, height := Partition(wrapped)
	return NewResponsiveSpecs(width, height)
}

// calculateAligned checks the companion before selecting the breakpoint, then resolves the
// breakpoint with the companion's cell size.
func calculateAligned[T Specifier](specs *ResponsiveSpecs[T], axis Axis, cells, availableSpace int, companion *CalculatedSpec) (*CalculatedSpec, error) {
	if companion == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingCompanion, axis)
	}
	if companion.Axis() != axis {
		return nil, fmt.Errorf("%w: invalid axis for workspace spec, expected %s, found %s", ErrAxisMismatch, axis, companion.Axis())
	}
	spec := specs.Spec(axis, availableSpace).Responsive()
	return Calculate(availableSpace, cells, spec, companion)
}
