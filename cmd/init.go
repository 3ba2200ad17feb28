package cmd

import (
	"github.com/PolarWolf314/slp/internal/ui"
	"github.com/PolarWolf314/slp/internal/workflows"
	"github.com/spf13/cobra"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing settings file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes the default settings file",
	Long: `Writes encrypt/slp.toml with the default settings and creates an empty
secrets file when none exists. An existing secrets file is never modified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")
		spinner, cleanup := startSpinner(cmd, "Initializing slp...")
		defer cleanup()

		result, err := workflows.Init(cmd.Context(), workflows.InitOptions{
			Options: workflowOptions(),
			Force:   initForce,
		})
		if err != nil {
			return fail(spinner, "Failed to initialize slp", err)
		}

		msg := ui.Success.Sprint("✓") + " Wrote settings to " + ui.Path.Sprint(result.SettingsPath)
		if result.SecretsCreated {
			msg += "\n" + ui.Success.Sprint("✓") + " Created secrets file " + ui.Path.Sprint(result.SecretsPath)
		}
		msg += "\n" + ui.Info.Sprint("→") + " Add a " + ui.Code.Sprint("<title>: <secret>") +
			" line per protected page, then run " + ui.Code.Sprint("slp")
		spinner.FinalMSG = msg
		return nil
	},
}
