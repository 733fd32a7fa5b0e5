// File: cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/gridspec/internal/config"
	"github.com/xkilldash9x/gridspec/internal/observability"
)

// cfgKey is the context key under which the loaded configuration travels to subcommands.
type cfgKey struct{}

// flagKeys maps command-line flags to the configuration keys they override. Device flags
// are applied per command by applyDeviceFlags.
var flagKeys = map[string]string{
	"workspace": "specs.workspace_path",
	"all-apps":  "specs.all_apps_path",
	"folder":    "specs.folder_path",
	"density":   "specs.density",
	"debounce":  "watch.debounce",
}

// NewRootCommand builds a fresh command tree with its own viper instance, so repeated
// executions never share flag or config state.
func NewRootCommand() *cobra.Command {
	var cfgFile string
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "gridspec",
		Short:         "gridspec resolves responsive launcher grid specs into pixel layouts.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.SetDefaults(v)
			if err := initializeConfig(cmd, v, cfgFile); err != nil {
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "gridspec"})
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "gridspec"})
				return err
			}
			observability.InitializeLogger(cfg.Logger())
			observability.GetLogger().Debug("Starting gridspec", zap.String("version", Version), zap.String("command", cmd.Name()))

			cmd.SetContext(context.WithValue(cmd.Context(), cfgKey{}, cfg))
			return nil
		},
	}

	rootCmd.SetVersionTemplate(`{{printf "%s version %s\n" .Name .Version}}`)
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./gridspec.yaml)")
	flags.String("workspace", "", "workspace spec document (.xml or .yaml)")
	flags.String("all-apps", "", "all apps spec document")
	flags.String("folder", "", "folder spec document")
	flags.Float64("density", 0, "pixels per dp used when reading spec documents")

	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the command tree. Errors are logged here; the caller only picks the exit code.
func Execute(ctx context.Context) error {
	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		observability.GetLogger().Error("Command execution failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	observability.Sync()
	return err
}

// initializeConfig reads the config file and environment, then lets explicitly set flags
// override both.
func initializeConfig(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("gridspec")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("GRIDSPEC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

// configFrom returns the configuration loaded by the root command.
func configFrom(cmd *cobra.Command) (*config.Config, error) {
	cfg, ok := cmd.Context().Value(cfgKey{}).(*config.Config)
	if !ok {
		return nil, errors.New("configuration not loaded")
	}
	return cfg, nil
}
