package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/echosistema/ironmonger/internal/generator"
	logger "github.com/echosistema/ironmonger/internal/logging"
	"github.com/echosistema/ironmonger/internal/ui"
	"github.com/echosistema/ironmonger/internal/workflows"
)

// Version is set at build time with -ldflags "-X github.com/echosistema/ironmonger/cmd.Version=...".
var Version = "dev"

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// newGenerator builds the generator used by create:secret. Tests swap it
	// for one with a reduced work factor.
	newGenerator = func() workflows.SecretGenerator { return generator.New() }

	RootCmd = &cobra.Command{
		Use:     "ironmonger",
		Short:   "Ironmonger CLI - Generate and manage application secrets",
		Version: Version,
		Long: `Ironmonger generates high-entropy application secrets and stores them
in a KEY=VALUE configuration file such as .env.

Secrets are derived from this machine's network hardware address, the
current time, the process id, secure randomness and the hostname, stretched
through two PBKDF2 layers (1,000,000 and 500,000 iterations) and SHA3-512.

Usage:
  ironmonger <command> [flags]

Available Commands:
  create:secret   Generate and store a new application secret
  check:secret    Validate a stored application secret
`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewFigure("Ironmonger", "", true).String()
			fmt.Fprint(cmd.OutOrStdout(), ui.Success.Sprint(banner))
			fmt.Fprintln(cmd.OutOrStdout(), "Run "+ui.Code.Sprint("ironmonger --help")+" to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(createSecretCmd)
	RootCmd.AddCommand(checkSecretCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables and every flag in the command
// tree to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	resetCreateSecretCommandState()
	resetCheckSecretCommandState()
	resetCommandTree(RootCmd)
}

func resetCommandTree(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	cmd.SilenceUsage = false
	cmd.SilenceErrors = false

	for _, sub := range cmd.Commands() {
		resetCommandTree(sub)
	}
}
