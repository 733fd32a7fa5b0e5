// File: cmd/watch.go
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/gridspec/internal/observability"
	"github.com/xkilldash9x/gridspec/internal/profile"
	"github.com/xkilldash9x/gridspec/internal/watcher"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Resolve the grids and print them again whenever a spec document changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd, formatJSON, formatYAML)
			if err != nil {
				return err
			}
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			cfg.SetWatchEnabled(true)
			if err := applyDeviceFlags(cmd, cfg); err != nil {
				return err
			}
			ctx := cmd.Context()
			logger := observability.GetLogger()
			out := cmd.OutOrStdout()

			loader := profile.NewLoader(cfg.Specs(), logger)
			initial, err := loader.Load(ctx)
			if err != nil {
				return err
			}

			publish := func(snap *profile.Snapshot) error {
				grid, err := snap.Resolve(cfg.Device())
				if err != nil {
					return err
				}
				return writeStructured(out, format, grid)
			}
			if err := publish(initial); err != nil {
				return err
			}

			w := watcher.New(loader, initial, cfg.Watch(), logger)
			w.OnReload(func(snap *profile.Snapshot) {
				if err := publish(snap); err != nil {
					logger.Error("Reloaded specs do not resolve for the device", zap.Error(err), zap.String("snapshot_id", snap.ID.String()))
				}
			})
			if err := w.Start(ctx); err != nil {
				return err
			}
			<-w.Done()
			return nil
		},
	}
	addDeviceFlags(cmd)
	addFormatFlag(cmd, formatJSON, formatJSON, formatYAML)
	cmd.Flags().Duration("debounce", 0, "quiet period before reloading changed documents")
	return cmd
}
