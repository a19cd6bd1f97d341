package cmd

import (
	"github.com/spf13/cobra"

	"github.com/echosistema/ironmonger/internal/ui"
	"github.com/echosistema/ironmonger/internal/workflows"
)

var (
	createFlags secretFlags
	quiet       bool
)

func init() {
	createFlags.register(createSecretCmd.Flags())
	createSecretCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the generated secret")
}

// resetCreateSecretCommandState resets the create:secret command's global state for testing.
func resetCreateSecretCommandState() {
	createFlags = secretFlags{}
	quiet = false
}

var createSecretCmd = &cobra.Command{
	Use:     "create:secret",
	Aliases: []string{"create-secret"},
	Short:   "Generate and store a new application secret",
	Long: `Generates a new 192 character hexadecimal secret and writes it to the
target file as KEY=VALUE. An existing entry for the key is replaced in place;
otherwise the entry is appended. All other lines are preserved.

Generation takes about a second of CPU time and cannot be interrupted
except by terminating the process.

Concurrent runs against the same file are not locked; the last writer wins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Flag parsing succeeded; from here on errors are reported via the final message.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		Logger.Infof("Starting create:secret command")

		settings, err := createFlags.resolve(cmd)
		if err != nil {
			printFailure(cmd, err)
			return err
		}

		spinner, cleanup := startSpinner(cmd, "Deriving secret...", quiet)
		defer cleanup()

		Logger.Infof("Generating secret for %s", settings.KeyName)
		result, err := workflows.CreateSecret(cmd.Context(), workflows.CreateSecretOptions{
			FilePath:  settings.FilePath,
			KeyName:   settings.KeyName,
			Generator: newGenerator(),
		})
		if err != nil {
			spinner.FinalMSG = formatError(err)
			return err
		}
		Logger.Infof("Secret written to %s", result.FilePath)

		if quiet {
			spinner.FinalMSG = result.Secret.Value()
			return nil
		}

		action := "updated"
		switch {
		case result.FileCreated:
			action = "created"
		case !result.Replaced:
			action = "appended to"
		}

		finalMessage := ui.Success.Sprint("✓") + " New " + ui.Key.Sprint(result.KeyName) +
			" generated and saved: " + ui.Secret.Sprint(result.Secret.Value()) + "\n" +
			"    " + ui.Muted.Sprint(action+": "+result.FilePath)
		if result.Replaced {
			finalMessage += "\n" + ui.Warning.Sprint("⚠") + " The previous value of " + ui.Key.Sprint(result.KeyName) +
				" was overwritten; anything signed with it is no longer valid"
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
