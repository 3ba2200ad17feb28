package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	kerrors "github.com/PolarWolf314/slp/internal/errors"
	"github.com/PolarWolf314/slp/internal/ui"
	"github.com/PolarWolf314/slp/internal/utils"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode and stdout is a terminal. Returns the spinner and
// a function that should be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message and prints it to the
// command's output.
func startSpinner(cmd *cobra.Command, message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	active := !verbose && !debug && utils.IsTerminal()
	if active {
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if active {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(cmd.OutOrStdout(), finalMsg)
		}
	}

	return s, cleanup
}

// failureMessage renders err for a spinner's final message, with a hint
// where the fix is known.
func failureMessage(summary string, err error) string {
	var b strings.Builder
	b.WriteString(ui.Error.Sprint("✗") + " " + summary + "\n")

	var setupErr *kerrors.SetupError
	switch {
	case errors.As(err, &setupErr):
		for _, line := range setupErr.Lines {
			b.WriteString("    - " + line + "\n")
		}
		b.WriteString(ui.Info.Sprint("→") + " Fix the problems above; nothing was changed")
	case errors.Is(err, kerrors.ErrConnectivity):
		b.WriteString(ui.Error.Sprint("Error: ") + err.Error() + "\n")
		b.WriteString(ui.Info.Sprint("→") + " Start the encryption server or pass " + ui.Code.Sprint("--endpoint"))
	case errors.Is(err, kerrors.ErrAlreadyInitialized):
		b.WriteString(ui.Error.Sprint("Error: ") + err.Error() + "\n")
		b.WriteString(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("slp init --force") + " to overwrite it")
	default:
		b.WriteString(ui.Error.Sprint("Error: ") + err.Error())
	}
	return b.String()
}

// fail sets the spinner's final message for err and returns it marked as
// already reported.
func fail(s *spinner.Spinner, summary string, err error) error {
	Logger.Debugf("%s: %v", summary, err)
	s.FinalMSG = failureMessage(summary, err)
	return reported(err)
}
