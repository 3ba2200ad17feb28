package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PolarWolf314/slp/internal/ui"
	"github.com/PolarWolf314/slp/internal/utils"
	"github.com/PolarWolf314/slp/internal/workflows"
	"github.com/spf13/cobra"
)

var statusJSONOutput bool

func init() {
	statusCmd.Flags().BoolVar(&statusJSONOutput, "json", false, "output in JSON format")
}

type pageStatusJSON struct {
	Title     string `json:"title"`
	Source    string `json:"source"`
	Output    string `json:"output"`
	Status    string `json:"status"`
	HasSecret bool   `json:"has_secret"`
}

type statusSummaryJSON struct {
	Current        int `json:"current"`
	Stale          int `json:"stale"`
	Unencrypted    int `json:"unencrypted"`
	MissingSource  int `json:"missing_source"`
	MissingSecrets int `json:"missing_secrets"`
}

type statusJSON struct {
	Root    string            `json:"root"`
	Pages   []pageStatusJSON  `json:"pages"`
	Summary statusSummaryJSON `json:"summary"`
}

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"scan"},
	Short:   "Lists protected pages and the state of their encrypted artifacts",
	Long: `Lists every page that declares the shareable-link-protected layout.

Each page has one of four statuses:
  - current:        Artifact is newer than the protected source page
  - stale:          Source page modified after encryption (run slp again)
  - unencrypted:    Source page exists with no artifact
  - missing_source: The protected source page does not exist

Use --json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting status command")

		result, err := workflows.Status(cmd.Context(), workflowOptions())
		if err != nil {
			return reported(Logger.ErrorfAndReturn("failed to scan for protected pages: %v", err))
		}

		if statusJSONOutput {
			return outputStatusJSON(cmd.OutOrStdout(), result)
		}

		printStatusTable(cmd.OutOrStdout(), result)
		return nil
	},
}

func outputStatusJSON(w io.Writer, result *workflows.StatusResult) error {
	out := statusJSON{
		Root:  result.Root,
		Pages: []pageStatusJSON{},
		Summary: statusSummaryJSON{
			Current:        result.Summary.Current,
			Stale:          result.Summary.Stale,
			Unencrypted:    result.Summary.Unencrypted,
			MissingSource:  result.Summary.MissingSource,
			MissingSecrets: result.Summary.MissingSecrets,
		},
	}
	for _, p := range result.Pages {
		rel := utils.RelPaths(result.Root, []string{p.Page.Source, p.Page.Output})
		out.Pages = append(out.Pages, pageStatusJSON{
			Title:     p.Page.Title,
			Source:    rel[0],
			Output:    rel[1],
			Status:    string(p.Status),
			HasSecret: p.HasSecret,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func printStatusTable(w io.Writer, result *workflows.StatusResult) {
	fmt.Fprintf(w, "Site: %s\n\n", ui.Highlight.Sprint(result.Root))

	if len(result.Pages) == 0 {
		fmt.Fprintln(w, ui.Success.Sprint("✓")+" No protected pages found.")
		return
	}

	titleWidth := 20
	for _, p := range result.Pages {
		if len(p.Page.Title) > titleWidth {
			titleWidth = len(p.Page.Title)
		}
	}
	if titleWidth > 40 {
		titleWidth = 40
	}

	fmt.Fprintf(w, "  %-*s  %s\n", titleWidth, "TITLE", "STATUS")
	for _, p := range result.Pages {
		title := p.Page.Title
		if len(title) > titleWidth {
			title = title[:titleWidth-3] + "..."
		}

		var statusStr string
		switch p.Status {
		case workflows.StatusCurrent:
			statusStr = ui.Success.Sprint("✓") + " encrypted (up to date)"
		case workflows.StatusStale:
			statusStr = ui.Warning.Sprint("⚠") + " stale (source modified after encryption)"
		case workflows.StatusUnencrypted:
			statusStr = ui.Error.Sprint("✗") + " not encrypted"
		case workflows.StatusMissingSource:
			statusStr = ui.Error.Sprint("✗") + " missing " + ui.Path.Sprint(p.Page.Source)
		}
		if !p.HasSecret {
			statusStr += " " + ui.Muted.Sprint("no secret")
		}

		fmt.Fprintf(w, "  %-*s  %s\n", titleWidth, title, statusStr)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")
	if result.Summary.Current > 0 {
		fmt.Fprintf(w, "  %d page(s) up to date\n", result.Summary.Current)
	}
	if result.Summary.Stale+result.Summary.Unencrypted > 0 {
		fmt.Fprintf(w, "  %d page(s) need encrypting (run '%s')\n",
			result.Summary.Stale+result.Summary.Unencrypted, ui.Code.Sprint("slp"))
	}
	if result.Summary.MissingSource > 0 {
		fmt.Fprintf(w, "  %d page(s) missing their protected source page\n", result.Summary.MissingSource)
	}
	if result.Summary.MissingSecrets > 0 {
		fmt.Fprintf(w, "  %d page(s) missing from the secrets file\n", result.Summary.MissingSecrets)
	}
}
