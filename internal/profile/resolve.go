// File: internal/profile/resolve.go
package profile

import (
	"fmt"

	"github.com/xkilldash9x/gridspec/api/schemas"
	"github.com/xkilldash9x/gridspec/internal/config"
	"github.com/xkilldash9x/gridspec/internal/responsive"
)

// Resolve lays out every family of the snapshot on device. The workspace is resolved first
// because the all apps and folder grids align their cells to it.
func (s *Snapshot) Resolve(device config.DeviceConfig) (*schemas.ResolvedGrid, error) {
	if s == nil {
		return nil, ErrNoSnapshot
	}
	ratio := device.AspectRatio()

	ws := s.Workspace.ForAspectRatio(ratio)
	wsWidth, err := ws.CalculatedWidthSpec(device.Columns, device.Width)
	if err != nil {
		return nil, fmt.Errorf("workspace width: %w", err)
	}
	wsHeight, err := ws.CalculatedHeightSpec(device.Rows, device.Height)
	if err != nil {
		return nil, fmt.Errorf("workspace height: %w", err)
	}

	grid := &schemas.ResolvedGrid{
		SnapshotID: s.ID.String(),
		ResolvedAt: s.LoadedAt,
		Device:     schemas.Device{Width: device.Width, Height: device.Height, AspectRatio: ratio},
		Workspace:  resolvedFamily(schemas.FamilyWorkspace, wsWidth, wsHeight),
	}

	if s.AllApps != nil {
		specs := s.AllApps.ForAspectRatio(ratio)
		width, err := specs.CalculatedWidthSpec(device.Columns, device.Width, wsWidth)
		if err != nil {
			return nil, fmt.Errorf("all apps width: %w", err)
		}
		height, err := specs.CalculatedHeightSpec(device.Rows, device.Height, wsHeight)
		if err != nil {
			return nil, fmt.Errorf("all apps height: %w", err)
		}
		family := resolvedFamily(schemas.FamilyAllApps, width, height)
		grid.AllApps = &family
	}

	if s.Folder != nil {
		specs := s.Folder.ForAspectRatio(ratio)
		width, err := specs.CalculatedWidthSpec(device.FolderColumns, device.Width, wsWidth)
		if err != nil {
			return nil, fmt.Errorf("folder width: %w", err)
		}
		height, err := specs.CalculatedHeightSpec(device.FolderRows, device.Height, wsHeight)
		if err != nil {
			return nil, fmt.Errorf("folder height: %w", err)
		}
		family := resolvedFamily(schemas.FamilyFolder, width, height)
		grid.Folder = &family
	}
	return grid, nil
}

func resolvedFamily(family schemas.Family, width, height *responsive.CalculatedSpec) schemas.ResolvedFamily {
	return schemas.ResolvedFamily{Family: family, Width: resolvedAxis(width), Height: resolvedAxis(height)}
}

func resolvedAxis(c *responsive.CalculatedSpec) schemas.ResolvedAxis {
	starts := make([]int, c.Cells())
	for i := range starts {
		starts[i] = c.CellStart(i)
	}
	return schemas.ResolvedAxis{
		Axis:             c.Axis().String(),
		AvailableSpace:   c.AvailableSpace(),
		Cells:            c.Cells(),
		MaxAvailableSize: c.Spec().MaxAvailableSize(),
		StartPadding:     c.StartPadding(),
		EndPadding:       c.EndPadding(),
		Gutter:           c.Gutter(),
		CellSize:         c.CellSize(),
		LastCellSize:     c.LastCellSize(),
		Aligned:          c.IsAligned(),
		CellStarts:       starts,
	}
}
