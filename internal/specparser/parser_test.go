// File: internal/specparser/parser_test.go
package specparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/gridspec/internal/responsive"
)

// -- Test Helpers --

func buildWorkspace(t *testing.T, groups []responsive.Group) *responsive.SpecGroups[*responsive.WorkspaceSpecs] {
	t.Helper()
	built, err := responsive.BuildGroups(groups, responsive.NewWorkspaceSpecs)
	require.NoError(t, err)
	return built
}

// -- Dimensions --

func TestParser_Dimension(t *testing.T) {
	p := New(2.5)

	tests := []struct {
		raw  string
		want float64
	}{
		{"16dp", 40},
		{"16dip", 40},
		{"16px", 16},
		{"16", 16},
		{" 7.5 dp", 18.75},
		{"0dp", 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := p.dimension(tt.raw)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := p.dimension("wide")
		assert.Error(t, err)
		_, err = p.dimension("dp")
		assert.Error(t, err)
	})

	t.Run("pixels rounds", func(t *testing.T) {
		v, err := New(2.75).pixels("600dp")
		require.NoError(t, err)
		assert.Equal(t, 1650, v)
	})

	t.Run("pixels rejects values outside the slot range", func(t *testing.T) {
		_, err := New(1).pixels("1e19dp")
		assert.ErrorContains(t, err, "out of range")
		_, err = New(1).pixels("-3e10")
		assert.Error(t, err)
		_, err = New(1).pixels("NaN")
		assert.Error(t, err)
	})

	t.Run("non-positive density falls back to one", func(t *testing.T) {
		assert.Equal(t, 1.0, New(0).Density())
		assert.Equal(t, 1.0, New(-3).Density())
	})
}

func TestParser_RawSize(t *testing.T) {
	p := New(2)
	str := func(s string) *string { return &s }

	t.Run("fixed with clamp", func(t *testing.T) {
		size, err := p.rawSize(str("16dp"), nil, nil, str("20dp"))
		require.NoError(t, err)
		assert.Equal(t, responsive.RawSize{Mode: responsive.FixedSize, Value: 32, MaxSize: 40}, size)
	})

	t.Run("fractions are not scaled", func(t *testing.T) {
		size, err := p.rawSize(nil, nil, str("0.5"), nil)
		require.NoError(t, err)
		assert.Equal(t, responsive.RawSize{Mode: responsive.OfRemainderSpace, Value: 0.5, MaxSize: -1}, size)
	})

	t.Run("exactly one mode", func(t *testing.T) {
		_, err := p.rawSize(nil, nil, nil, nil)
		assert.ErrorContains(t, err, "found 0")
		_, err = p.rawSize(str("1"), str("0.1"), nil, nil)
		assert.ErrorContains(t, err, "found 2")
	})

	t.Run("negative clamp", func(t *testing.T) {
		_, err := p.rawSize(str("1"), nil, nil, str("-4px"))
		assert.ErrorContains(t, err, "negative")
	})
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b/specs.XML")
	require.NoError(t, err)
	assert.Equal(t, FormatXML, f)

	f, err = FormatFromPath("specs.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	assert.Equal(t, "yaml", f.String())

	_, err = FormatFromPath("specs.json")
	assert.Error(t, err)
}

// -- XML --

func TestParseFile_WorkspaceXML(t *testing.T) {
	groups, err := New(1).ParseFile(filepath.Join("testdata", "workspace_specs.xml"), WorkspaceSpecTag)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, 1.0, groups[0].MaxAspectRatio)
	assert.Len(t, groups[0].Entries, 2)
	assert.Equal(t, 1000.0, groups[1].MaxAspectRatio)
	require.Len(t, groups[1].Entries, 3)

	first := groups[1].Entries[0]
	assert.Equal(t, responsive.Width, first.Axis)
	assert.Equal(t, 600, first.MaxAvailableSize)
	assert.Equal(t, responsive.RawSize{Mode: responsive.FixedSize, Value: 16, MaxSize: -1}, first.Sizes[responsive.StartPaddingSlot])
	assert.Equal(t, responsive.RawSize{Mode: responsive.OfRemainderSpace, Value: 1, MaxSize: -1}, first.Sizes[responsive.CellSizeSlot])

	built := buildWorkspace(t, groups)
	phone := built.ForAspectRatio(2.1)
	c, err := phone.CalculatedWidthSpec(4, 480)
	require.NoError(t, err)
	assert.Equal(t, 106, c.CellSize())

	square := built.ForAspectRatio(0.9)
	assert.Equal(t, responsive.Fixed(8), square.WidthSpec(2000).Gutter())
}

func TestParseFile_DensityScalesDp(t *testing.T) {
	groups, err := New(2).ParseFile(filepath.Join("testdata", "workspace_specs.xml"), WorkspaceSpecTag)
	require.NoError(t, err)

	first := groups[1].Entries[0]
	assert.Equal(t, 1200, first.MaxAvailableSize)
	assert.Equal(t, 32.0, first.Sizes[responsive.StartPaddingSlot].Value)
}

func TestParseFile_AllAppsDefaultsToHeight(t *testing.T) {
	groups, err := New(1).ParseFile(filepath.Join("testdata", "all_apps_specs.xml"), AllAppsSpecTag)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, OpenAspectRatio, groups[0].MaxAspectRatio)

	entries := groups[0].Entries
	require.Len(t, entries, 2)
	assert.Equal(t, responsive.Width, entries[0].Axis)
	assert.Equal(t, responsive.Height, entries[1].Axis)
	assert.Equal(t, 200, entries[1].Sizes[responsive.CellSizeSlot].MaxSize)

	built, err := responsive.BuildGroups(groups, responsive.NewAllAppsSpecs)
	require.NoError(t, err)
	assert.Equal(t, 1, built.Len())
}

func TestParseXML_Defaults(t *testing.T) {
	doc := `<specs><allAppsSpec>
		<startPadding fixedSize="1"/><endPadding fixedSize="1"/>
		<gutter fixedSize="1"/><cellSize ofRemainderSpace="1"/>
	</allAppsSpec></specs>`

	groups, err := New(1).Parse([]byte(doc), FormatXML, AllAppsSpecTag)
	require.NoError(t, err)
	e := groups[0].Entries[0]
	assert.Equal(t, responsive.Height, e.Axis, "specType defaults to height")
	assert.Equal(t, 0, e.MaxAvailableSize, "maxAvailableSize defaults to zero")
}

func TestParseXML_Errors(t *testing.T) {
	p := New(1)

	t.Run("every problem is reported", func(t *testing.T) {
		_, err := p.ParseFile(filepath.Join("testdata", "broken_specs.xml"), WorkspaceSpecTag)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedDocument)
		msg := err.Error()
		assert.Contains(t, msg, `unknown axis "diagonal"`)
		assert.Contains(t, msg, `invalid dimension "wide"`)
		assert.Contains(t, msg, "found 2")
		assert.Contains(t, msg, "found 0")
		assert.Contains(t, msg, "<margin>")
	})

	t.Run("not xml", func(t *testing.T) {
		_, err := p.Parse([]byte("<a b=></a>"), FormatXML, WorkspaceSpecTag)
		assert.ErrorIs(t, err, ErrMalformedDocument)
	})

	t.Run("no entries", func(t *testing.T) {
		_, err := p.Parse([]byte("<workspaceSpecs/>"), FormatXML, WorkspaceSpecTag)
		assert.ErrorIs(t, err, ErrMalformedDocument)
	})

	t.Run("wrong entry tag", func(t *testing.T) {
		_, err := p.Parse([]byte("<x><specs><folderSpec/></specs></x>"), FormatXML, WorkspaceSpecTag)
		assert.ErrorContains(t, err, "<folderSpec>")
	})

	t.Run("duplicated slot", func(t *testing.T) {
		doc := `<x><workspaceSpec><gutter fixedSize="1"/><gutter fixedSize="2"/></workspaceSpec></x>`
		_, err := p.Parse([]byte(doc), FormatXML, WorkspaceSpecTag)
		assert.ErrorContains(t, err, "gutter declared twice")
	})

	t.Run("bad ratio", func(t *testing.T) {
		_, err := p.Parse([]byte(`<x><specs maxAspectRatio="tall"/></x>`), FormatXML, WorkspaceSpecTag)
		assert.ErrorContains(t, err, "invalid maxAspectRatio")

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromString(`<specs maxAspectRatio="tall"/>`))
		g, err := p.xmlGroup(doc.Root(), WorkspaceSpecTag)
		require.Error(t, err)
		assert.Equal(t, OpenAspectRatio, g.MaxAspectRatio, "an unparsable ratio is never assigned")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := p.ParseFile(filepath.Join(t.TempDir(), "absent.xml"), WorkspaceSpecTag)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

// -- YAML --

func TestParseFile_WorkspaceYAML(t *testing.T) {
	groups, err := New(2).ParseFile(filepath.Join("testdata", "workspace_specs.yaml"), WorkspaceSpecTag)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 1000.0, groups[0].MaxAspectRatio)

	entries := groups[0].Entries
	require.Len(t, entries, 3)
	assert.Equal(t, 1200, entries[0].MaxAvailableSize)
	assert.Equal(t, 9999, entries[1].MaxAvailableSize, "bare numbers are pixels")
	assert.Equal(t, 300, entries[1].Sizes[responsive.CellSizeSlot].MaxSize)
	assert.Equal(t, responsive.RawSize{Mode: responsive.OfAvailableSpace, Value: 0.05, MaxSize: -1}, entries[2].Sizes[responsive.StartPaddingSlot])

	built := buildWorkspace(t, groups)
	c, err := built.ForAspectRatio(2).CalculatedWidthSpec(4, 1250)
	require.NoError(t, err)
	assert.Equal(t, 288, c.CellSize())
	assert.Equal(t, 290, c.LastCellSize())

	_, err = built.ForAspectRatio(2).CalculatedWidthSpec(4, 2000)
	assert.ErrorIs(t, err, responsive.ErrDimensionOverflow, "cells clamped by max_size cannot fill the row")
}

func TestParseFile_FolderYAMLMatchesXMLShape(t *testing.T) {
	groups, err := New(1).ParseFile(filepath.Join("testdata", "folder_specs.yaml"), FolderSpecTag)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, OpenAspectRatio, groups[0].MaxAspectRatio)

	built, err := responsive.BuildGroups(groups, responsive.NewFolderSpecs)
	require.NoError(t, err)
	assert.Equal(t, responsive.OfRemainder(0.5), built.ForAspectRatio(1).WidthSpec(10).StartPadding())
}

func TestParseYAML_Errors(t *testing.T) {
	p := New(1)

	t.Run("unknown field", func(t *testing.T) {
		_, err := p.Parse([]byte("specs:\n  - axis: width\n    margin: {fixed_size: 1}\n"), FormatYAML, "")
		assert.ErrorIs(t, err, ErrMalformedDocument)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := p.Parse(nil, FormatYAML, "")
		assert.ErrorContains(t, err, "neither groups nor specs")
	})

	t.Run("entry problems carry their position", func(t *testing.T) {
		doc := "groups:\n  - specs:\n      - axis: sideways\n        gutter: {fixed_size: 1, of_remainder_space: 1}\n"
		_, err := p.Parse([]byte(doc), FormatYAML, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "groups[0].specs[0]")
		assert.Contains(t, err.Error(), `unknown axis "sideways"`)
		assert.Contains(t, err.Error(), "gutter: expected exactly one")
	})

	t.Run("mapping where a scalar belongs", func(t *testing.T) {
		_, err := p.Parse([]byte("specs:\n  - max_available_size: {a: 1}\n"), FormatYAML, "")
		assert.ErrorContains(t, err, "expected a scalar")
	})
}
