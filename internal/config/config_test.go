// File: internal/config/config_test.go
package config

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Constructor and Defaults Tests --

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "info", cfg.Logger().Level)
	assert.Equal(t, "gridspec", cfg.Logger().ServiceName)
	assert.Equal(t, 1.0, cfg.Specs().Density)
	assert.Equal(t, 4, cfg.Device().Columns)
	assert.Equal(t, 5, cfg.Device().Rows)
	assert.Equal(t, 3, cfg.Device().FolderColumns)
	assert.False(t, cfg.Watch().Enabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch().Debounce)

	assert.NoError(t, cfg.Validate(), "defaults must validate")
}

func TestSetters(t *testing.T) {
	cfg := NewDefaultConfig()
	var iface Interface = cfg

	iface.SetDeviceSize(800, 1280)
	iface.SetDeviceGrid(5, 6)
	iface.SetFolderGrid(4, 4)
	iface.SetWatchEnabled(true)

	assert.Equal(t, DeviceConfig{Width: 800, Height: 1280, Columns: 5, Rows: 6, FolderColumns: 4, FolderRows: 4}, cfg.Device())
	assert.True(t, cfg.Watch().Enabled)
}

func TestDeviceConfig_AspectRatio(t *testing.T) {
	assert.InDelta(t, 2.1667, DeviceConfig{Width: 1080, Height: 2340}.AspectRatio(), 1e-4)
	assert.InDelta(t, 2.1667, DeviceConfig{Width: 2340, Height: 1080}.AspectRatio(), 1e-4, "orientation does not matter")
	assert.Equal(t, 0.0, DeviceConfig{Width: 1080}.AspectRatio())
}

// -- Validation Logic Tests --

func TestConfigValidation(t *testing.T) {
	t.Run("Specs Validation", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.SpecsCfg.WorkspacePath = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "workspace_path is required")

		cfg = NewDefaultConfig()
		cfg.SpecsCfg.Density = 0
		assert.ErrorContains(t, cfg.Validate(), "density must be positive")
	})

	t.Run("Device Validation", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.DeviceCfg.Columns = 0
		assert.ErrorContains(t, cfg.Validate(), "columns and rows must be at least 1")

		cfg = NewDefaultConfig()
		cfg.DeviceCfg.Width = -1
		assert.ErrorContains(t, cfg.Validate(), "must not be negative")

		cfg = NewDefaultConfig()
		cfg.DeviceCfg.FolderRows = 0
		assert.NoError(t, cfg.Validate(), "folder grid is ignored without a folder document")
		cfg.SpecsCfg.FolderPath = "folder_specs.yaml"
		assert.ErrorContains(t, cfg.Validate(), "folder_columns and folder_rows")
	})

	t.Run("Watch Validation", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.WatchCfg.Debounce = 0
		assert.NoError(t, cfg.Validate(), "debounce is ignored while watching is off")
		cfg.WatchCfg.Enabled = true
		assert.ErrorContains(t, cfg.Validate(), "watch.debounce must be a positive duration")
	})
}

// -- Viper Integration Tests --

func TestNewConfigFromViper(t *testing.T) {
	yamlConfig := []byte(`
logger:
  level: debug
specs:
  workspace_path: ~/specs/workspace_specs.xml
  all_apps_path: /etc/gridspec/all_apps_specs.xml
  density: 2.75
device:
  width: 1440
  height: 3120
  columns: 5
watch:
  enabled: true
  debounce: 1s
`)

	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBuffer(yamlConfig)))

	cfg, err := NewConfigFromViper(v)
	require.NoError(t, err)

	home, err := homedir.Dir()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger().Level)
	assert.Equal(t, filepath.Join(home, "specs", "workspace_specs.xml"), cfg.Specs().WorkspacePath)
	assert.Equal(t, "/etc/gridspec/all_apps_specs.xml", cfg.Specs().AllAppsPath)
	assert.Equal(t, 2.75, cfg.Specs().Density)
	assert.Equal(t, 1440, cfg.Device().Width)
	assert.Equal(t, 5, cfg.Device().Columns)
	assert.Equal(t, 5, cfg.Device().Rows, "unset keys keep their default")
	assert.Equal(t, time.Second, cfg.Watch().Debounce)
}

func TestNewConfigFromViper_EnvOverride(t *testing.T) {
	t.Setenv("GRIDSPEC_FOLDER_SPECS", "/tmp/folder_specs.yaml")

	v := viper.New()
	SetDefaults(v)

	cfg, err := NewConfigFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/folder_specs.yaml", cfg.Specs().FolderPath)
}

func TestNewConfigFromViper_Invalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("device.rows", 0)

	_, err := NewConfigFromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
