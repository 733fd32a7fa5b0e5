// File: internal/specparser/yaml.go
package specparser

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/xkilldash9x/gridspec/internal/responsive"
)

// yamlScalar keeps the raw text of a scalar so "16dp" and 16 decode the same way.
type yamlScalar string

func (s *yamlScalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", node.Line)
	}
	*s = yamlScalar(node.Value)
	return nil
}

func (s *yamlScalar) ptr() *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

type yamlSize struct {
	FixedSize        *yamlScalar `yaml:"fixed_size"`
	OfAvailableSpace *yamlScalar `yaml:"of_available_space"`
	OfRemainderSpace *yamlScalar `yaml:"of_remainder_space"`
	MaxSize          *yamlScalar `yaml:"max_size"`
}

type yamlEntry struct {
	Axis             string     `yaml:"axis"`
	MaxAvailableSize yamlScalar `yaml:"max_available_size"`
	StartPadding     *yamlSize  `yaml:"start_padding"`
	EndPadding       *yamlSize  `yaml:"end_padding"`
	Gutter           *yamlSize  `yaml:"gutter"`
	CellSize         *yamlSize  `yaml:"cell_size"`
}

type yamlGroup struct {
	MaxAspectRatio *float64    `yaml:"max_aspect_ratio"`
	Specs          []yamlEntry `yaml:"specs"`
}

type yamlDocument struct {
	Groups []yamlGroup `yaml:"groups"`
	Specs  []yamlEntry `yaml:"specs"`
}

// parseYAML reads documents shaped like
//
//	groups:
//	  - max_aspect_ratio: 1.5
//	    specs:
//	      - axis: width
//	        max_available_size: 600dp
//	        start_padding: {fixed_size: 16dp}
//	        cell_size: {of_remainder_space: 1, max_size: 120dp}
//
// A top-level specs list forms a single open-ended group.
func (p *Parser) parseYAML(data []byte) ([]responsive.Group, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	var (
		groups []responsive.Group
		errs   error
	)
	for gi, yg := range doc.Groups {
		g := responsive.Group{MaxAspectRatio: OpenAspectRatio}
		if yg.MaxAspectRatio != nil {
			g.MaxAspectRatio = *yg.MaxAspectRatio
		}
		for si, ye := range yg.Specs {
			e, err := p.yamlEntry(ye)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("groups[%d].specs[%d]: %w", gi, si, err))
			}
			g.Entries = append(g.Entries, e)
		}
		groups = append(groups, g)
	}
	if len(doc.Specs) > 0 {
		g := responsive.Group{MaxAspectRatio: OpenAspectRatio}
		for si, ye := range doc.Specs {
			e, err := p.yamlEntry(ye)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("specs[%d]: %w", si, err))
			}
			g.Entries = append(g.Entries, e)
		}
		groups = append(groups, g)
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, errs)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: neither groups nor specs are defined", ErrMalformedDocument)
	}
	return groups, nil
}

func (p *Parser) yamlEntry(ye yamlEntry) (responsive.Entry, error) {
	e := responsive.Entry{Axis: responsive.Height, Sizes: make(map[responsive.Slot]responsive.RawSize, len(responsive.Slots))}
	var errs error

	if ye.Axis != "" {
		axis, err := responsive.ParseAxis(ye.Axis)
		errs = multierr.Append(errs, err)
		e.Axis = axis
	}
	if ye.MaxAvailableSize != "" {
		v, err := p.pixels(string(ye.MaxAvailableSize))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("max_available_size: %w", err))
		}
		e.MaxAvailableSize = v
	}

	slots := []struct {
		slot responsive.Slot
		size *yamlSize
	}{
		{responsive.StartPaddingSlot, ye.StartPadding},
		{responsive.EndPaddingSlot, ye.EndPadding},
		{responsive.GutterSlot, ye.Gutter},
		{responsive.CellSizeSlot, ye.CellSize},
	}
	for _, s := range slots {
		if s.size == nil {
			continue
		}
		size, err := p.rawSize(s.size.FixedSize.ptr(), s.size.OfAvailableSpace.ptr(), s.size.OfRemainderSpace.ptr(), s.size.MaxSize.ptr())
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", s.slot, err))
			continue
		}
		e.Sizes[s.slot] = size
	}
	return e, errs
}
