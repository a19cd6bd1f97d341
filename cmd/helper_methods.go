package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	kerrors "github.com/echosistema/ironmonger/internal/errors"
	"github.com/echosistema/ironmonger/internal/ui"
	"github.com/echosistema/ironmonger/internal/utils"
)

// startSpinner creates a spinner with the given message and starts it when
// stdout is a terminal and neither verbose, debug nor quiet output was
// requested. The returned cleanup function must be deferred.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message and prints it to the
// command's output stream.
func startSpinner(cmd *cobra.Command, message string, quiet bool) (*spinner.Spinner, func()) {
	out := cmd.OutOrStdout()
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	animate := !verbose && !debug && !quiet && utils.IsTerminal(out)
	if animate {
		s.Start()
	} else {
		Logger.Debugf("Spinner disabled: %s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Cleared so s.Stop() doesn't print it a second time.
			s.FinalMSG = ""
		}

		if animate {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(out, finalMsg)
		}
	}

	return s, cleanup
}

// printMessage writes msg to the command's output stream with a trailing newline.
func printMessage(cmd *cobra.Command, msg string) {
	fmt.Fprint(cmd.OutOrStdout(), ui.EnsureNewline(msg))
}

// printFailure writes the user-facing form of err.
func printFailure(cmd *cobra.Command, err error) {
	printMessage(cmd, formatError(err))
}

// formatError maps errors to user-facing messages.
func formatError(err error) string {
	cross := ui.Error.Sprint("✗")
	arrow := ui.Info.Sprint("→")

	var fileErr *kerrors.FileError
	switch {
	case errors.Is(err, kerrors.ErrNoHardwareIdentifier):
		return cross + " No MAC address found on this system\n" +
			arrow + " A network interface with a hardware address is required to generate a secret"

	case errors.As(err, &fileErr):
		return cross + " Failed to " + fileErr.Op + " " + ui.Path.Sprint(fileErr.Path) + ": " + fileErr.Err.Error()

	case errors.Is(err, kerrors.ErrSecretNotFound):
		return cross + " " + err.Error() + "\n" +
			arrow + " Run " + ui.Code.Sprint("ironmonger create:secret") + " to generate one"

	case errors.Is(err, kerrors.ErrInvalidFormat):
		return cross + " " + err.Error() + "\n" +
			arrow + " Run " + ui.Code.Sprint("ironmonger create:secret") + " to replace it"

	default:
		return cross + " " + err.Error()
	}
}
