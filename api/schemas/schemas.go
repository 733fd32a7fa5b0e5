// File: api/schemas/schemas.go
package schemas

import "time"

// Family names a grid whose breakpoints are read from one spec document.
type Family string

const (
	FamilyWorkspace Family = "workspace"
	FamilyAllApps   Family = "all_apps"
	FamilyFolder    Family = "folder"
)

// -- Resolution Schemas --

// Device is the display a grid was resolved for.
type Device struct {
	Width       int     `json:"width" yaml:"width"`
	Height      int     `json:"height" yaml:"height"`
	AspectRatio float64 `json:"aspect_ratio" yaml:"aspect_ratio"`
}

// ResolvedAxis is the pixel layout of one axis of one grid.
type ResolvedAxis struct {
	Axis             string `json:"axis" yaml:"axis"`
	AvailableSpace   int    `json:"available_space" yaml:"available_space"`
	Cells            int    `json:"cells" yaml:"cells"`
	MaxAvailableSize int    `json:"max_available_size" yaml:"max_available_size"`
	StartPadding     int    `json:"start_padding" yaml:"start_padding"`
	EndPadding       int    `json:"end_padding" yaml:"end_padding"`
	Gutter           int    `json:"gutter" yaml:"gutter"`
	CellSize         int    `json:"cell_size" yaml:"cell_size"`
	LastCellSize     int    `json:"last_cell_size" yaml:"last_cell_size"`
	// Aligned is set when the cell size was taken from the workspace grid.
	Aligned    bool  `json:"aligned" yaml:"aligned"`
	CellStarts []int `json:"cell_starts,omitempty" yaml:"cell_starts,omitempty"`
}

// ResolvedFamily holds both axes of one grid.
type ResolvedFamily struct {
	Family Family       `json:"family" yaml:"family"`
	Width  ResolvedAxis `json:"width" yaml:"width"`
	Height ResolvedAxis `json:"height" yaml:"height"`
}

// ResolvedGrid is the output of resolving every configured family for a device.
// Families without a spec document are omitted.
type ResolvedGrid struct {
	SnapshotID string          `json:"snapshot_id" yaml:"snapshot_id"`
	ResolvedAt time.Time       `json:"resolved_at" yaml:"resolved_at"`
	Device     Device          `json:"device" yaml:"device"`
	Workspace  ResolvedFamily  `json:"workspace" yaml:"workspace"`
	AllApps    *ResolvedFamily `json:"all_apps,omitempty" yaml:"all_apps,omitempty"`
	Folder     *ResolvedFamily `json:"folder,omitempty" yaml:"folder,omitempty"`
}

// -- Validation Schemas --

// DocumentReport summarizes one spec document after it was parsed and built.
type DocumentReport struct {
	Family      Family `json:"family" yaml:"family"`
	Path        string `json:"path" yaml:"path"`
	Groups      int    `json:"groups" yaml:"groups"`
	WidthSpecs  int    `json:"width_specs" yaml:"width_specs"`
	HeightSpecs int    `json:"height_specs" yaml:"height_specs"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Valid reports whether the document loaded without error.
func (r DocumentReport) Valid() bool { return r.Error == "" }
