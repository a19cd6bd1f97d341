package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/echosistema/ironmonger/internal/envfile"
)

// ProjectFileName is the optional per-project configuration file.
const ProjectFileName = ".ironmonger.toml"

// Settings are the resolved defaults for the secret commands.
type Settings struct {
	FilePath string
	KeyName  string

	// Source records where each value came from, for --debug output.
	FilePathSource string
	KeyNameSource  string
}

// ProjectConfig mirrors .ironmonger.toml.
type ProjectConfig struct {
	Secret SecretConfig `toml:"secret"`
}

type SecretConfig struct {
	File string `toml:"file"`
	Name string `toml:"name"`
}

// EnvConfig holds overrides read from the environment.
type EnvConfig struct {
	File string `env:"IRONMONGER_FILE"`
	Name string `env:"IRONMONGER_KEY_NAME"`
}

// Sources reported in Settings.
const (
	SourceDefault = "default"
	SourceProject = ProjectFileName
	SourceEnv     = "environment"
	SourceFlag    = "flag"
)

// LoadProjectConfig reads .ironmonger.toml from dir. A missing file yields an
// empty config.
func LoadProjectConfig(dir string) (*ProjectConfig, error) {
	config := &ProjectConfig{}
	configPath := filepath.Join(dir, ProjectFileName)

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}
	return config, nil
}

// Resolve builds Settings for dir with precedence
// environment > .ironmonger.toml > built-in defaults. Flags are applied on
// top by the caller.
func Resolve(dir string) (*Settings, error) {
	s := &Settings{
		FilePath:       envfile.DefaultPath,
		KeyName:        envfile.DefaultKey,
		FilePathSource: SourceDefault,
		KeyNameSource:  SourceDefault,
	}

	project, err := LoadProjectConfig(dir)
	if err != nil {
		return nil, err
	}
	if project.Secret.File != "" {
		s.FilePath, s.FilePathSource = project.Secret.File, SourceProject
	}
	if project.Secret.Name != "" {
		s.KeyName, s.KeyNameSource = project.Secret.Name, SourceProject
	}

	var envCfg EnvConfig
	if err := ParseEnv(&envCfg); err != nil {
		return nil, err
	}
	if envCfg.File != "" {
		s.FilePath, s.FilePathSource = envCfg.File, SourceEnv
	}
	if envCfg.Name != "" {
		s.KeyName, s.KeyNameSource = envCfg.Name, SourceEnv
	}

	return s, nil
}
