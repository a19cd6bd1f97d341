package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/echosistema/ironmonger/internal/configs"
	"github.com/echosistema/ironmonger/internal/envfile"
)

// secretFlags are shared by every command that targets a key in a file.
type secretFlags struct {
	name string
	file string
}

func (f *secretFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.name, "name", "n", envfile.DefaultKey, "name of the environment variable")
	fs.StringVarP(&f.file, "file", "f", envfile.DefaultPath, "path to the .env file")
}

// resolve layers explicitly set flags over the configured defaults.
func (f *secretFlags) resolve(cmd *cobra.Command) (*configs.Settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, Logger.ErrorfAndReturn("failed to get working directory: %w", err)
	}

	settings, err := configs.Resolve(wd)
	if err != nil {
		return nil, Logger.ErrorfAndReturn("failed to load settings: %w", err)
	}

	if cmd.Flags().Changed("file") {
		settings.FilePath, settings.FilePathSource = f.file, configs.SourceFlag
	}
	if cmd.Flags().Changed("name") {
		settings.KeyName, settings.KeyNameSource = f.name, configs.SourceFlag
	}

	Logger.Debugf("Target file: %s (from %s)", settings.FilePath, settings.FilePathSource)
	Logger.Debugf("Key name: %s (from %s)", settings.KeyName, settings.KeyNameSource)
	return settings, nil
}
