// File: internal/responsive/folder.go
package responsive

import "fmt"

// FolderSpec is a breakpoint of an open folder's grid.
type FolderSpec struct {
	ResponsiveSpec
}

// FolderSpecs are the folder breakpoints, aligned to the workspace like all-apps.
type FolderSpecs struct {
	*ResponsiveSpecs[FolderSpec]
}

// NewFolderSpecs partitions specs by axis and validates both lists.
func NewFolderSpecs(specs []ResponsiveSpec) (*FolderSpecs, error) {
	r, err := newFamily(specs, func(s ResponsiveSpec) FolderSpec { return FolderSpec{s} })
	if err != nil {
		return nil, fmt.Errorf("folder specs: %w", err)
	}
	return &FolderSpecs{r}, nil
}

// CalculatedWidthSpec resolves the folder width breakpoint aligned to the workspace width.
func (s *FolderSpecs) CalculatedWidthSpec(columns, availableWidth int, workspace *CalculatedSpec) (*CalculatedSpec, error) {
	return calculateAligned(s.ResponsiveSpecs, Width, columns, availableWidth, workspace)
}

// CalculatedHeightSpec resolves the folder height breakpoint aligned to the workspace height.
func (s *FolderSpecs) CalculatedHeightSpec(rows, availableHeight int, workspace *CalculatedSpec) (*CalculatedSpec, error) {
	return calculateAligned(s.ResponsiveSpecs, Height, rows, availableHeight, workspace)
}
