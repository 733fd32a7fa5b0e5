// File: internal/responsive/families_test.go
package responsive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Test Helpers --

func newWorkspace(t *testing.T) *WorkspaceSpecs {
	t.Helper()
	specs, err := NewWorkspaceSpecs([]ResponsiveSpec{
		widthSpec(9999, Fixed(20), Fixed(20), Fixed(10), OfRemainder(1)),
		heightSpec(800, Fixed(24), Fixed(24), Fixed(16), OfRemainder(1)),
		heightSpec(9999, Fixed(48), OfRemainder(1), Fixed(16), Fixed(120)),
	})
	require.NoError(t, err)
	return specs
}

// -- Workspace --

func TestWorkspaceSpecs_Calculated(t *testing.T) {
	ws := newWorkspace(t)

	width, err := ws.CalculatedWidthSpec(5, 680)
	require.NoError(t, err)
	assert.Equal(t, Width, width.Axis())
	assert.Equal(t, 120, width.CellSize())

	height, err := ws.CalculatedHeightSpec(4, 1000)
	require.NoError(t, err)
	assert.Equal(t, Height, height.Axis())
	assert.Equal(t, 120, height.CellSize())
	// 1000 - 48 - 48 - 480 = 424 left for the end padding.
	assert.Equal(t, 424, height.EndPadding())
	assertSums(t, height)

	_, err = ws.CalculatedWidthSpec(0, 680)
	assert.ErrorIs(t, err, ErrInvalidCellCount)
}

// -- All apps --

func TestAllAppsSpecs_AlignsToWorkspace(t *testing.T) {
	ws := newWorkspace(t)
	allApps, err := NewAllAppsSpecs([]ResponsiveSpec{
		widthSpec(9999, Fixed(16), Fixed(16), OfRemainder(1), OfRemainder(1)),
		heightSpec(9999, Fixed(0), Fixed(0), OfRemainder(1), OfRemainder(1)),
	})
	require.NoError(t, err)

	workspaceWidth, err := ws.CalculatedWidthSpec(5, 680)
	require.NoError(t, err)
	workspaceHeight, err := ws.CalculatedHeightSpec(4, 700)
	require.NoError(t, err)

	t.Run("width", func(t *testing.T) {
		c, err := allApps.CalculatedWidthSpec(5, 700, workspaceWidth)
		require.NoError(t, err)
		assert.Equal(t, workspaceWidth.CellSize(), c.CellSize())
		assert.Equal(t, 17, c.Gutter())
		assertSums(t, c)
	})

	t.Run("height", func(t *testing.T) {
		c, err := allApps.CalculatedHeightSpec(4, 700, workspaceHeight)
		require.NoError(t, err)
		assert.Equal(t, workspaceHeight.CellSize(), c.CellSize())
		assertSums(t, c)
	})

	t.Run("workspace spec of the other axis", func(t *testing.T) {
		_, err := allApps.CalculatedWidthSpec(5, 700, workspaceHeight)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAxisMismatch)
		assert.Contains(t, err.Error(), "expected width, found height")

		_, err = allApps.CalculatedHeightSpec(4, 700, workspaceWidth)
		assert.ErrorIs(t, err, ErrAxisMismatch)
	})

	t.Run("missing workspace spec", func(t *testing.T) {
		_, err := allApps.CalculatedWidthSpec(5, 700, nil)
		assert.ErrorIs(t, err, ErrMissingCompanion)
	})
}

// -- Folder --

func TestFolderSpecs_AlignsToWorkspace(t *testing.T) {
	ws := newWorkspace(t)
	folders, err := NewFolderSpecs([]ResponsiveSpec{
		widthSpec(9999, OfRemainder(0.5), OfRemainder(1), Fixed(16), OfRemainder(1)),
		heightSpec(9999, Fixed(24), OfRemainder(1), Fixed(16), OfRemainder(1)),
	})
	require.NoError(t, err)

	workspaceWidth, err := ws.CalculatedWidthSpec(5, 680)
	require.NoError(t, err)

	c, err := folders.CalculatedWidthSpec(3, 500, workspaceWidth)
	require.NoError(t, err)
	// 500 - 32 gutters - 360 cells = 108, split evenly between the paddings.
	assert.Equal(t, 120, c.CellSize())
	assert.Equal(t, 54, c.StartPadding())
	assert.Equal(t, 54, c.EndPadding())
	assertSums(t, c)

	_, err = folders.CalculatedHeightSpec(3, 500, workspaceWidth)
	assert.ErrorIs(t, err, ErrAxisMismatch)

	_, err = NewFolderSpecs(nil)
	assert.ErrorIs(t, err, ErrEmptySpecs)
}
