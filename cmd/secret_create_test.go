package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	kerrors "github.com/echosistema/ironmonger/internal/errors"
)

var secretLine = regexp.MustCompile(`^APP_SECRET=[0-9a-f]{192}$`)

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(content)
}

func TestCreateSecretCommand(t *testing.T) {
	t.Run("DefaultsToEnvFileAndAppSecret", testCreateSecretDefaults)
	t.Run("AliasWithFlags", testCreateSecretAliasWithFlags)
	t.Run("QuietPrintsOnlySecret", testCreateSecretQuiet)
	t.Run("PreservesExistingLines", testCreateSecretPreservesLines)
	t.Run("ProjectConfigAndPrecedence", testCreateSecretPrecedence)
	t.Run("InvalidKeyName", testCreateSecretInvalidKeyName)
	t.Run("UnwritablePath", testCreateSecretUnwritablePath)
	t.Run("NoHardwareIdentifier", testCreateSecretNoHardwareIdentifier)
	t.Run("VerboseLogsProgress", testCreateSecretVerbose)
	t.Run("RejectsArguments", testCreateSecretRejectsArguments)
}

func testCreateSecretDefaults(t *testing.T) {
	dir := setupTestEnvironment(t, stubCollector{})

	output, err := runCLI("create:secret")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	content := strings.TrimSuffix(readFile(t, filepath.Join(dir, ".env")), "\n")
	if !secretLine.MatchString(content) {
		t.Fatalf(".env content = %q, want a single APP_SECRET line", content)
	}

	value := strings.TrimPrefix(content, "APP_SECRET=")
	if !strings.Contains(output, "New 'APP_SECRET' generated and saved: "+value) {
		t.Errorf("output should echo the secret, got: %s", output)
	}
	if !strings.Contains(output, "(created: .env)") {
		t.Errorf("output should report the created file, got: %s", output)
	}
	if strings.Contains(output, "overwritten") {
		t.Errorf("a new entry should not warn about overwriting, got: %s", output)
	}
}

func testCreateSecretAliasWithFlags(t *testing.T) {
	dir := setupTestEnvironment(t, stubCollector{})

	output, err := runCLI("create-secret", "--name", "SESSION_KEY", "-f", "config.env")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	content := readFile(t, filepath.Join(dir, "config.env"))
	if !regexp.MustCompile(`^SESSION_KEY=[0-9a-f]{192}\n$`).MatchString(content) {
		t.Errorf("config.env content = %q, want one SESSION_KEY line", content)
	}
	if _, err := os.Stat(filepath.Join(dir, ".env")); !os.IsNotExist(err) {
		t.Errorf(".env should not be created when --file is given")
	}
}

func testCreateSecretQuiet(t *testing.T) {
	dir := setupTestEnvironment(t, stubCollector{})

	output, err := runCLI("create:secret", "--quiet")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	content := readFile(t, filepath.Join(dir, ".env"))
	want := strings.TrimPrefix(content, "APP_SECRET=")
	if output != want {
		t.Errorf("output = %q, want %q", output, want)
	}
}

func testCreateSecretPreservesLines(t *testing.T) {
	dir := setupTestEnvironment(t, stubCollector{})
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("# app\nFOO=bar\nAPP_SECRET=old\nBAZ=qux\n"), 0600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	output, err := runCLI("create:secret")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	lines := strings.Split(strings.TrimSuffix(readFile(t, path), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %q, want 4 lines", lines)
	}
	if lines[0] != "# app" || lines[1] != "FOO=bar" || lines[3] != "BAZ=qux" {
		t.Errorf("surrounding lines changed: %q", lines)
	}
	if !secretLine.MatchString(lines[2]) {
		t.Errorf("line 3 = %q, want new APP_SECRET", lines[2])
	}
	if !strings.Contains(output, "(updated: .env)") {
		t.Errorf("output should report an update, got: %s", output)
	}
	if !strings.Contains(output, "⚠ The previous value of 'APP_SECRET' was overwritten") {
		t.Errorf("output should warn about the replaced value, got: %s", output)
	}
}

func testCreateSecretPrecedence(t *testing.T) {
	dir := setupTestEnvironment(t, stubCollector{})
	config := "[secret]\nfile = \"project.env\"\nname = \"PROJECT_KEY\"\n"
	if err := os.WriteFile(filepath.Join(dir, ".ironmonger.toml"), []byte(config), 0600); err != nil {
		t.Fatalf("Failed to write project config: %v", err)
	}

	if output, err := runCLI("create:secret"); err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if !strings.HasPrefix(readFile(t, filepath.Join(dir, "project.env")), "PROJECT_KEY=") {
		t.Errorf("project config should choose file and key")
	}

	t.Setenv("IRONMONGER_KEY_NAME", "ENV_KEY")
	if output, err := runCLI("create:secret"); err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(readFile(t, filepath.Join(dir, "project.env")), "\nENV_KEY=") {
		t.Errorf("environment should override the project key name")
	}

	if output, err := runCLI("create:secret", "--name", "FLAG_KEY"); err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(readFile(t, filepath.Join(dir, "project.env")), "\nFLAG_KEY=") {
		t.Errorf("flag should override the environment key name")
	}
}

func testCreateSecretInvalidKeyName(t *testing.T) {
	dir := setupTestEnvironment(t, stubCollector{})

	output, err := runCLI("create:secret", "--name", "A=B")
	if !errors.Is(err, kerrors.ErrInvalidKeyName) {
		t.Fatalf("error = %v, want ErrInvalidKeyName", err)
	}
	if !strings.Contains(output, "✗") || !strings.Contains(output, "invalid key name") {
		t.Errorf("output should explain the failure, got: %s", output)
	}
	if _, err := os.Stat(filepath.Join(dir, ".env")); !os.IsNotExist(err) {
		t.Errorf(".env should not be created for an invalid key name")
	}
}

func testCreateSecretUnwritablePath(t *testing.T) {
	setupTestEnvironment(t, stubCollector{})

	output, err := runCLI("create:secret", "--file", filepath.Join("missing", ".env"))
	if !errors.Is(err, kerrors.ErrFileAccess) {
		t.Fatalf("error = %v, want ErrFileAccess", err)
	}
	if !strings.Contains(output, "Failed to create "+filepath.Join("missing", ".env")) {
		t.Errorf("output should name the failed path, got: %s", output)
	}
}

func testCreateSecretNoHardwareIdentifier(t *testing.T) {
	dir := setupTestEnvironment(t, stubCollector{err: kerrors.ErrNoHardwareIdentifier})

	output, err := runCLI("create:secret")
	if !errors.Is(err, kerrors.ErrNoHardwareIdentifier) {
		t.Fatalf("error = %v, want ErrNoHardwareIdentifier", err)
	}
	if !strings.Contains(output, "No MAC address found on this system") {
		t.Errorf("output should explain the missing MAC address, got: %s", output)
	}
	if _, err := os.Stat(filepath.Join(dir, ".env")); !os.IsNotExist(err) {
		t.Errorf(".env should not be created when generation fails")
	}
}

func testCreateSecretVerbose(t *testing.T) {
	setupTestEnvironment(t, stubCollector{})

	output, err := runCLI("create:secret", "--verbose")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "[info] Starting create:secret command") {
		t.Errorf("verbose output should include info logs, got: %s", output)
	}
	if strings.Contains(output, "[debug]") {
		t.Errorf("verbose output should not include debug logs, got: %s", output)
	}
}

func testCreateSecretRejectsArguments(t *testing.T) {
	setupTestEnvironment(t, stubCollector{})

	if _, err := runCLI("create:secret", "extra"); err == nil {
		t.Errorf("create:secret should reject positional arguments")
	}
}
