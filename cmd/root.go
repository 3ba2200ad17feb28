package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	logger "github.com/PolarWolf314/slp/internal/logging"
	"github.com/PolarWolf314/slp/internal/workflows"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose    bool
	debug      bool
	rootDir    string
	configPath string
	endpoint   string
	Logger     logger.Logger

	RootCmd = &cobra.Command{
		Use:   "slp",
		Short: "Encrypts shareable-link-protected pages of a static site",
		Long: `slp finds every page whose front matter declares the shareable-link-protected
layout, checks that each one has a protected source page and an entry in the
secrets file, generates any passwords that were asked for, and has the local
encryption server encrypt every page.

Run with no command to encrypt the whole site:
  slp

Passwords live in encrypt/slp_secrets.yaml, keyed by page directory name.
A value of <secret>, <bytes:N> or <> asks slp to generate one.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		RunE: runEncrypt,
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "site root (default: current directory)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default: <root>/encrypt/slp.toml)")
	RootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "encryption server endpoint")

	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(verifyCmd)
	RootCmd.AddCommand(excludeCmd)
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(versionCmd)
}

// reportedError marks an error already shown to the user in a final message.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// Execute runs the root command. Errors not already shown are printed to
// stderr. A non-nil return means the process should exit non-zero.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := RootCmd.ExecuteContext(ctx)
	var shown *reportedError
	if err != nil && !errors.As(err, &shown) {
		fmt.Fprintln(RootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func workflowOptions() workflows.Options {
	return workflows.Options{
		Root:         rootDir,
		SettingsPath: configPath,
		Endpoint:     endpoint,
		Logger:       Logger,
	}
}

// Helper functions for testing

// ResetGlobalState resets all global flag values to their defaults for testing.
func ResetGlobalState() {
	resetFlags(RootCmd)
	Logger = logger.Logger{}
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
