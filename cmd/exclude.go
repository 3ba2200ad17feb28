package cmd

import (
	"github.com/PolarWolf314/slp/internal/ui"
	"github.com/PolarWolf314/slp/internal/utils"
	"github.com/PolarWolf314/slp/internal/workflows"
	"github.com/spf13/cobra"
)

var excludeCmd = &cobra.Command{
	Use:   "exclude",
	Short: "Keeps protected source pages out of the published site",
	Long: `Adds the protected source page of every protected page to the exclude list
of the site config (site_config in the settings file, _config.yaml by
default). Existing entries and the rest of the file are kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting exclude command")
		spinner, cleanup := startSpinner(cmd, "Updating site config...")
		defer cleanup()

		result, err := workflows.Exclude(cmd.Context(), workflowOptions())
		if err != nil {
			return fail(spinner, "Failed to update the site config", err)
		}

		if len(result.Added) == 0 {
			spinner.FinalMSG = ui.Success.Sprint("✓") + " " + ui.Path.Sprint(result.SiteConfig) + " already excludes every protected page"
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Updated " + ui.Path.Sprint(result.SiteConfig) + "\n" +
			"The following entries were added to exclude:" + utils.FormatPaths(result.Added)
		return nil
	},
}
