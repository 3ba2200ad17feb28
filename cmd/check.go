package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/slp/internal/ui"
	"github.com/PolarWolf314/slp/internal/workflows"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates the encryption setup without changing anything",
	Long: `Scans the site for protected pages and checks that every page has a protected
source page and an entry in the secrets file, and that every password option
tag is valid. Nothing is generated, saved or encrypted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting check command")
		spinner, cleanup := startSpinner(cmd, "Checking encryption setup...")
		defer cleanup()

		result, err := workflows.Run(cmd.Context(), workflows.RunOptions{Options: workflowOptions(), DryRun: true})
		if err != nil {
			return fail(spinner, "Encryption setup is invalid", err)
		}

		var msg strings.Builder
		msg.WriteString(ui.Success.Sprint("✓") + fmt.Sprintf(" Encryption setup is valid for %d protected pages", len(result.Pages)))
		for _, d := range result.Planned {
			msg.WriteString("\n" + ui.Info.Sprint("→") + " Would generate a " +
				fmt.Sprintf("%d byte", d.Bytes) + " password for " + ui.Highlight.Sprint(d.Title))
		}

		spinner.FinalMSG = msg.String()
		return nil
	},
}
