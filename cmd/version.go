package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/PolarWolf314/slp/cmd.Version=...".
var Version = "dev"

var versionBanner bool

func init() {
	versionCmd.Flags().BoolVar(&versionBanner, "banner", false, "print the ASCII art banner")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the slp version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if versionBanner {
			fmt.Fprintln(out, figure.NewFigure("slp", "", true).String())
		}
		fmt.Fprintf(out, "slp %s\n", Version)
	},
}
