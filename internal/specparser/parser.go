// File: internal/specparser/parser.go
//
// Package specparser reads declarative breakpoint documents and turns them into the raw,
// unvalidated entries the responsive package builds its specs from. Documents are either
// Launcher-style XML or the equivalent YAML. Dimensions are written as "16dp", "16px" or a
// bare pixel count; dp values are scaled by the configured density.
package specparser

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xkilldash9x/gridspec/internal/responsive"
)

// Root tags of the spec families, as used by the launcher's XML resources.
const (
	WorkspaceSpecTag = "workspaceSpec"
	AllAppsSpecTag   = "allAppsSpec"
	FolderSpecTag    = "folderSpec"
)

// OpenAspectRatio bounds a document that declares no aspect-ratio groups.
var OpenAspectRatio = math.Inf(1)

// ErrMalformedDocument wraps every problem found while reading a document.
var ErrMalformedDocument = errors.New("malformed spec document")

// Format identifies the syntax of a spec document.
type Format int

const (
	FormatXML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "xml"
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported spec document extension %q", filepath.Ext(path))
}

// Parser converts spec documents to raw groups of entries.
type Parser struct {
	density float64
}

// New returns a Parser that converts dp to px with density (pixels per dp).
// A non-positive density is treated as 1.
func New(density float64) *Parser {
	if density <= 0 {
		density = 1
	}
	return &Parser{density: density}
}

// Density returns the pixels-per-dp factor.
func (p *Parser) Density() float64 { return p.density }

// Parse reads a document. specTag is the element (XML) name of one breakpoint entry; YAML
// documents ignore it.
func (p *Parser) Parse(data []byte, format Format, specTag string) ([]responsive.Group, error) {
	switch format {
	case FormatXML:
		return p.parseXML(data, specTag)
	case FormatYAML:
		return p.parseYAML(data)
	}
	return nil, fmt.Errorf("unknown format %d", int(format))
}

// ParseFile reads and parses the document at path, picking the format from its extension.
func (p *Parser) ParseFile(path, specTag string) ([]responsive.Group, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec document: %w", err)
	}
	groups, err := p.Parse(data, format, specTag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return groups, nil
}

// -- Value helpers --

// dimension converts "16dp", "16px" or "16" to pixels.
func (p *Parser) dimension(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	scale := 1.0
	switch {
	case strings.HasSuffix(s, "dp"):
		s, scale = strings.TrimSuffix(s, "dp"), p.density
	case strings.HasSuffix(s, "dip"):
		s, scale = strings.TrimSuffix(s, "dip"), p.density
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid dimension %q", raw)
	}
	return v * scale, nil
}

// pixels is dimension rounded to whole pixels. Values must fit the pixel range of a slot.
func (p *Parser) pixels(raw string) (int, error) {
	v, err := p.dimension(raw)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.Abs(v) > responsive.NoMaxSize {
		return 0, fmt.Errorf("dimension %q is out of range", raw)
	}
	return int(math.Round(v)), nil
}

func fraction(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid fraction %q", raw)
	}
	return v, nil
}

// rawSize builds a slot rule from the mode attributes present on a slot. Exactly one mode
// must be set.
func (p *Parser) rawSize(fixed, ofAvailable, ofRemainder, maxSize *string) (responsive.RawSize, error) {
	size := responsive.RawSize{MaxSize: -1}
	set := 0
	if fixed != nil {
		v, err := p.dimension(*fixed)
		if err != nil {
			return size, err
		}
		size.Mode, size.Value = responsive.FixedSize, v
		set++
	}
	if ofAvailable != nil {
		v, err := fraction(*ofAvailable)
		if err != nil {
			return size, err
		}
		size.Mode, size.Value = responsive.OfAvailableSpace, v
		set++
	}
	if ofRemainder != nil {
		v, err := fraction(*ofRemainder)
		if err != nil {
			return size, err
		}
		size.Mode, size.Value = responsive.OfRemainderSpace, v
		set++
	}
	if set != 1 {
		return size, fmt.Errorf("expected exactly one of fixedSize, ofAvailableSpace, ofRemainderSpace, found %d", set)
	}
	if maxSize != nil {
		v, err := p.pixels(*maxSize)
		if err != nil {
			return size, err
		}
		if v < 0 {
			return size, fmt.Errorf("maxSize %q is negative", *maxSize)
		}
		size.MaxSize = v
	}
	return size, nil
}
