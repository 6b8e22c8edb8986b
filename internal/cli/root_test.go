package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func overrideContent(t *testing.T, dir, name, profileName, fortune string) string {
	t.Helper()
	return writeFile(t, dir, name, `
profile:
  name: `+profileName+`
projects:
  - key: demo
    name: Demo
work:
  - key: job
    organization: Somewhere
    role: Engineer
fortunes:
  - "`+fortune+`"
telnet_banner: "hi"
`)
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd("test")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestDoctorHonorsConfiguredContentFile(t *testing.T) {
	dir := t.TempDir()
	contentPath := overrideContent(t, dir, "portfolio.yaml", "Override Person", "override fortune")
	configPath := writeFile(t, dir, "config.yaml", "content:\n  file: "+contentPath+"\n")

	out := runCommand(t, "doctor", "--config", configPath)

	require.Contains(t, out, contentPath, "doctor must report the configured content source")
	require.Contains(t, out, "Override Person", "doctor must summarize the configured content, not the built-in")
	require.Contains(t, out, "projects:   1 (demo)")
}

func TestDoctorReportsConfigFileUsed(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yaml", "tui:\n  theme: matrix\n")

	out := runCommand(t, "doctor", "--config", configPath)

	require.Contains(t, out, "config:     "+configPath)
	require.Contains(t, out, "theme:      matrix")
}

func TestFortuneHonorsConfiguredContentFile(t *testing.T) {
	dir := t.TempDir()
	contentPath := overrideContent(t, dir, "portfolio.yaml", "Override Person", "the only fortune")
	configPath := writeFile(t, dir, "config.yaml", "content:\n  file: "+contentPath+"\n")

	out := runCommand(t, "fortune", "--config", configPath)

	require.Contains(t, out, "the only fortune")
}

func TestContentFlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	configContent := overrideContent(t, dir, "from_config.yaml", "Config Person", "x")
	flagContent := overrideContent(t, dir, "from_flag.yaml", "Flag Person", "x")
	configPath := writeFile(t, dir, "config.yaml", "content:\n  file: "+configContent+"\n")

	out := runCommand(t, "doctor", "--config", configPath, "--content", flagContent)

	require.Contains(t, out, "Flag Person")
	require.NotContains(t, out, "Config Person")
}

func TestDoctorDefaultsToBuiltInContent(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yaml", "tui:\n  user: someone\n")

	out := runCommand(t, "doctor", "--config", configPath)

	require.Contains(t, out, "content:    built-in")
	require.Contains(t, out, "sentiment_analysis")
}
