// File: cmd/resolve.go
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/gridspec/internal/config"
	"github.com/xkilldash9x/gridspec/internal/observability"
	"github.com/xkilldash9x/gridspec/internal/profile"
)

// addDeviceFlags registers the flags describing the display and grid to resolve for.
func addDeviceFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int("width", 0, "available width in px")
	flags.Int("height", 0, "available height in px")
	flags.Int("columns", 0, "workspace and all apps columns")
	flags.Int("rows", 0, "workspace and all apps rows")
	flags.Int("folder-columns", 0, "folder columns")
	flags.Int("folder-rows", 0, "folder rows")
}

// applyDeviceFlags overrides the configured device with the device flags the user set
// explicitly, then revalidates the configuration.
func applyDeviceFlags(cmd *cobra.Command, cfg config.Interface) error {
	flags := cmd.Flags()
	device := cfg.Device()
	pairs := []struct {
		name string
		dst  *int
	}{
		{"width", &device.Width},
		{"height", &device.Height},
		{"columns", &device.Columns},
		{"rows", &device.Rows},
		{"folder-columns", &device.FolderColumns},
		{"folder-rows", &device.FolderRows},
	}
	for _, p := range pairs {
		if !flags.Changed(p.name) {
			continue
		}
		v, err := flags.GetInt(p.name)
		if err != nil {
			return err
		}
		*p.dst = v
	}
	cfg.SetDeviceSize(device.Width, device.Height)
	cfg.SetDeviceGrid(device.Columns, device.Rows)
	cfg.SetFolderGrid(device.FolderColumns, device.FolderRows)
	return cfg.Validate()
}

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve every configured grid for a device and print the pixel layout",
		Example: `  gridspec resolve --workspace workspace_specs.xml --width 1080 --height 2340 --columns 4 --rows 5
  gridspec resolve --all-apps all_apps_specs.xml --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd, formatJSON, formatYAML)
			if err != nil {
				return err
			}
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			if err := applyDeviceFlags(cmd, cfg); err != nil {
				return err
			}
			logger := observability.GetLogger()

			snap, err := profile.NewLoader(cfg.Specs(), logger).Load(cmd.Context())
			if err != nil {
				return err
			}
			grid, err := snap.Resolve(cfg.Device())
			if err != nil {
				return err
			}
			logger.Debug("Resolved grid",
				zap.String("snapshot_id", grid.SnapshotID),
				zap.Int("width", cfg.Device().Width),
				zap.Int("height", cfg.Device().Height))
			return writeStructured(cmd.OutOrStdout(), format, grid)
		},
	}
	addDeviceFlags(cmd)
	addFormatFlag(cmd, formatJSON, formatJSON, formatYAML)
	return cmd
}
