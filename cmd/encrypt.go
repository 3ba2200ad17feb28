package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/slp/internal/ui"
	"github.com/PolarWolf314/slp/internal/utils"
	"github.com/PolarWolf314/slp/internal/workflows"
	"github.com/spf13/cobra"
)

func runEncrypt(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting encryption run")
	spinner, cleanup := startSpinner(cmd, "Encrypting protected pages...")
	defer cleanup()

	result, err := workflows.Run(cmd.Context(), workflows.RunOptions{Options: workflowOptions()})
	if err != nil {
		return fail(spinner, "Failed to encrypt protected pages", err)
	}

	if len(result.Pages) == 0 {
		spinner.FinalMSG = ui.Success.Sprint("✓") + " No protected pages found in " + ui.Path.Sprint(result.Root)
		return nil
	}

	var msg strings.Builder
	msg.WriteString(ui.Success.Sprint("✓") + fmt.Sprintf(" Encrypted %d protected pages!\n", len(result.Encrypted)))
	msg.WriteString("The following files were created:")
	msg.WriteString(utils.FormatPaths(utils.RelPaths(result.Root, result.Encrypted)))
	if len(result.Generated) > 0 {
		msg.WriteString(ui.Info.Sprint("→") + " Generated passwords for " +
			ui.Highlight.Sprint(strings.Join(result.Generated, ", ")) +
			", saved to " + ui.Path.Sprint(result.SecretsFile))
	}

	Logger.Infof("Encryption run completed, %d artifacts written", len(result.Encrypted))
	spinner.FinalMSG = msg.String()
	return nil
}
