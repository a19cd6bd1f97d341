package cmd

import (
	"github.com/spf13/cobra"

	"github.com/echosistema/ironmonger/internal/ui"
	"github.com/echosistema/ironmonger/internal/workflows"
)

var checkFlags secretFlags

func init() {
	checkFlags.register(checkSecretCmd.Flags())
}

// resetCheckSecretCommandState resets the check:secret command's global state for testing.
func resetCheckSecretCommandState() {
	checkFlags = secretFlags{}
}

var checkSecretCmd = &cobra.Command{
	Use:     "check:secret",
	Aliases: []string{"check-secret"},
	Short:   "Validate a stored application secret",
	Long: `Reads the key from the target file and checks that its value is a
192 character hexadecimal secret. Exits with status 1 if the key is missing
or the value is malformed.

The file is read with the same rules create:secret writes it with: the first
line starting with KEY= holds the value.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		Logger.Infof("Starting check:secret command")

		settings, err := checkFlags.resolve(cmd)
		if err != nil {
			printFailure(cmd, err)
			return err
		}

		result, err := workflows.CheckSecret(cmd.Context(), workflows.CheckSecretOptions{
			FilePath: settings.FilePath,
			KeyName:  settings.KeyName,
		})
		if err != nil {
			printFailure(cmd, err)
			return err
		}

		printMessage(cmd, ui.Success.Sprint("✓")+" "+ui.Key.Sprint(result.KeyName)+
			" in "+ui.Path.Sprint(result.FilePath)+" is a valid secret")
		return nil
	},
}
