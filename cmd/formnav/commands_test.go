package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/muurk/formnav/internal/config"
	"github.com/muurk/formnav/internal/logging"
	"github.com/muurk/formnav/internal/navigator"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		configPath, formName, logLevel, logFile, behaviour, lastLabel = "", "", "", "", "", ""
		forceInit, showFormat = false, "yaml"
	})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forms.yaml")
	if err := config.DefaultDocument().SaveFile(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNavigationConfig_Overrides(t *testing.T) {
	t.Cleanup(func() { behaviour, lastLabel = "", "" })
	doc := config.DefaultDocument()

	behaviour, lastLabel = "by-position", "Emergency_Call"
	cfg, err := navigationConfig(doc)
	if err != nil {
		t.Fatalf("navigationConfig() error = %v", err)
	}
	if cfg.Behaviour != navigator.ByPosition || cfg.LastSubmitLabel != navigator.LabelEmergencyCall {
		t.Errorf("cfg = %+v", cfg)
	}

	behaviour = "sideways"
	if _, err := navigationConfig(doc); err == nil {
		t.Error("navigationConfig() should reject an unknown behaviour")
	}
}

func TestOrderCommand(t *testing.T) {
	path := writeConfig(t)

	out, err := execute(t, "order", "--config", path, "--last-label", "done")
	if err != nil {
		t.Fatalf("order error = %v", err)
	}

	for _, want := range []string{"NAVIGATION ORDER", "first_name", "notes", "Done", "Next"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "first_name") > strings.Index(out, "notes") {
		t.Error("first_name should be listed before notes")
	}
}

func TestOrderCommand_UnknownForm(t *testing.T) {
	path := writeConfig(t)

	if _, err := execute(t, "order", "--config", path, "--form", "missing"); err == nil {
		t.Error("order should fail for an unknown form")
	}
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := execute(t, "config", "init", "--config", path)
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(out, "Configuration written") {
		t.Errorf("unexpected init output:\n%s", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	if _, err := execute(t, "config", "init", "--config", path); err == nil {
		t.Error("config init should refuse to overwrite without --force")
	}

	out, err = execute(t, "config", "path", "--config", path)
	if err != nil || strings.TrimSpace(out) != path {
		t.Errorf("config path = %q, %v; want %q", out, err, path)
	}

	out, err = execute(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(out, "behaviour: subviews") {
		t.Errorf("config show should print YAML:\n%s", out)
	}

	out, err = execute(t, "config", "show", "--config", path, "--format", "toml")
	if err != nil {
		t.Fatalf("config show --format toml error = %v", err)
	}
	if !strings.Contains(out, `behaviour = "subviews"`) {
		t.Errorf("config show should print TOML:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "formnav ") {
		t.Errorf("version output = %q", out)
	}
}

func TestSetupLogging_DefaultLogFile(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("relies on XDG_CONFIG_HOME")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(logging.LogFileEnvVar, "")
	t.Cleanup(func() {
		logLevel, logFile = "", ""
		logging.SetLogger(nil)
	})
	logLevel = "info"

	defaultLog := filepath.Join(dir, "formnav", "formnav.log")

	// Subcommands keep logging on stdout.
	if err := setupLogging(versionCmd, nil); err != nil {
		t.Fatalf("setupLogging(version) error = %v", err)
	}
	if _, err := os.Stat(defaultLog); !os.IsNotExist(err) {
		t.Errorf("subcommand should not open %s", defaultLog)
	}

	if err := setupLogging(rootCmd, nil); err != nil {
		t.Fatalf("setupLogging(root) error = %v", err)
	}
	logging.Info("Form loaded")
	logging.Sync()

	data, err := os.ReadFile(defaultLog)
	if err != nil {
		t.Fatalf("root command should log to %s: %v", defaultLog, err)
	}
	if !strings.Contains(string(data), "Form loaded") {
		t.Errorf("log file = %q, want the logged message", data)
	}

	explicit := filepath.Join(t.TempDir(), "explicit.log")
	logFile = explicit
	if err := setupLogging(rootCmd, nil); err != nil {
		t.Fatalf("setupLogging(--log-file) error = %v", err)
	}
	logging.Info("Explicit")
	logging.Sync()
	if data, err := os.ReadFile(explicit); err != nil || !strings.Contains(string(data), "Explicit") {
		t.Errorf("--log-file should take precedence, got %q, %v", data, err)
	}
}

func TestConfigInit_DefaultPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("relies on XDG_CONFIG_HOME")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	out, err := execute(t, "config", "init")
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(out, "Configuration written") {
		t.Errorf("unexpected init output:\n%s", out)
	}
	want := filepath.Join(dir, "formnav", "config.yaml")
	if _, err := config.LoadFile(want); err != nil {
		t.Errorf("written config does not load: %v", err)
	}
}
