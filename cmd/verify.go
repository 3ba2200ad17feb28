package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/slp/internal/ui"
	"github.com/PolarWolf314/slp/internal/workflows"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Checks every encrypted artifact against its source page",
	Long: `Decrypts the artifact of every protected page with the password from the
secrets file and checks that it matches the protected source page byte for
byte. Keys are derived with PBKDF2-SHA256 using kdf_iterations from the
settings file, matching the encryption server.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting verify command")
		spinner, cleanup := startSpinner(cmd, "Verifying encrypted pages...")
		defer cleanup()

		result, err := workflows.Verify(cmd.Context(), workflowOptions())
		if err != nil {
			return fail(spinner, "Failed to verify encrypted pages", err)
		}

		if len(result.Failures) > 0 {
			var msg strings.Builder
			msg.WriteString(ui.Error.Sprint("✗") + fmt.Sprintf(" %d of %d pages failed verification:\n",
				len(result.Failures), len(result.Failures)+len(result.Verified)))
			for _, f := range result.Failures {
				msg.WriteString("    - " + ui.Highlight.Sprint(f.Page.Title) + ": " + f.Err.Error() + "\n")
			}
			msg.WriteString(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("slp") + " to encrypt them again")
			spinner.FinalMSG = msg.String()
			return reported(fmt.Errorf("%d pages failed verification", len(result.Failures)))
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" All %d encrypted pages match their source", len(result.Verified))
		return nil
	},
}
