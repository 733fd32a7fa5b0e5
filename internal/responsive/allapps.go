// File: internal/responsive/allapps.go
package responsive

import "fmt"

// AllAppsSpec is a breakpoint of the all-apps grid.
type AllAppsSpec struct {
	ResponsiveSpec
}

// AllAppsSpecs are the all-apps breakpoints. Their cell size always follows the resolved
// workspace grid so icons line up across both surfaces.
type AllAppsSpecs struct {
	*ResponsiveSpecs[AllAppsSpec]
}

// NewAllAppsSpecs partitions specs by axis and validates both lists.
func NewAllAppsSpecs(specs []ResponsiveSpec) (*AllAppsSpecs, error) {
	r, err := newFamily(specs, func(s ResponsiveSpec) AllAppsSpec { return AllAppsSpec{s} })
	if err != nil {
		return nil, fmt.Errorf("all apps specs: %w", err)
	}
	return &AllAppsSpecs{r}, nil
}

// CalculatedWidthSpec resolves the all-apps width breakpoint aligned to workspace, which
// must be a resolved workspace width spec.
func (s *AllAppsSpecs) CalculatedWidthSpec(columns, availableWidth int, workspace *CalculatedSpec) (*CalculatedSpec, error) {
	return calculateAligned(s.ResponsiveSpecs, Width, columns, availableWidth, workspace)
}

// CalculatedHeightSpec resolves the all-apps height breakpoint aligned to workspace, which
// must be a resolved workspace height spec.
func (s *AllAppsSpecs) CalculatedHeightSpec(rows, availableHeight int, workspace *CalculatedSpec) (*CalculatedSpec, error) {
	return calculateAligned(s.ResponsiveSpecs, Height, rows, availableHeight, workspace)
}
