package cmd

import (
	"bytes"
	"crypto/rand"
	"os"
	"testing"

	"github.com/fatih/color"

	"github.com/echosistema/ironmonger/internal/entropy"
	"github.com/echosistema/ironmonger/internal/generator"
	"github.com/echosistema/ironmonger/internal/kdf"
	"github.com/echosistema/ironmonger/internal/workflows"
)

type stubCollector struct{ err error }

func (s stubCollector) Collect() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte("02:42:ac:11:00:02 cli test entropy"), nil
}

// setupTestEnvironment moves into a fresh directory, clears configuration
// overrides, disables colors and installs a fast generator.
func setupTestEnvironment(t *testing.T, collector entropy.Collector) string {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	tempDir := t.TempDir()
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	originalNoColor := color.NoColor
	color.NoColor = true

	originalGenerator := newGenerator
	newGenerator = func() workflows.SecretGenerator {
		return &generator.Generator{
			Collector: collector,
			Deriver:   &kdf.MultiLayer{Params: kdf.Params{Iterations: 2}},
			Rand:      rand.Reader,
		}
	}

	t.Cleanup(func() {
		newGenerator = originalGenerator
		ResetGlobalState()
		color.NoColor = originalNoColor
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
	})

	t.Setenv("NO_COLOR", "1")
	t.Setenv("IRONMONGER_FILE", "")
	t.Setenv("IRONMONGER_KEY_NAME", "")

	return tempDir
}

// runCLI executes the command tree with args after resetting flag state
// left over from earlier runs, and returns its combined output.
func runCLI(args ...string) (string, error) {
	ResetGlobalState()

	var buf bytes.Buffer
	rootCmd := GetRootCmd()
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}
