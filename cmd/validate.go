// File: cmd/validate.go
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/gridspec/api/schemas"
	"github.com/xkilldash9x/gridspec/internal/observability"
	"github.com/xkilldash9x/gridspec/internal/profile"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Parse and build every configured spec document and report all problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd, formatText, formatJSON, formatYAML)
			if err != nil {
				return err
			}
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}

			reports, err := profile.NewLoader(cfg.Specs(), observability.GetLogger()).Validate(cmd.Context())
			if err != nil {
				return err
			}
			if format == formatText {
				err = writeReports(cmd.OutOrStdout(), reports)
			} else {
				err = writeStructured(cmd.OutOrStdout(), format, reports)
			}
			if err != nil {
				return err
			}

			invalid := 0
			for _, r := range reports {
				if !r.Valid() {
					invalid++
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d spec documents are invalid", invalid, len(reports))
			}
			return nil
		},
	}
	addFormatFlag(cmd, formatText, formatText, formatJSON, formatYAML)
	return cmd
}

func writeReports(w io.Writer, reports []schemas.DocumentReport) error {
	for _, r := range reports {
		var err error
		if r.Valid() {
			_, err = fmt.Fprintf(w, "ok    %-10s %s (%d groups, %d width, %d height specs)\n",
				r.Family, r.Path, r.Groups, r.WidthSpecs, r.HeightSpecs)
		} else {
			_, err = fmt.Fprintf(w, "FAIL  %-10s %s\n      %s\n", r.Family, r.Path, r.Error)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
