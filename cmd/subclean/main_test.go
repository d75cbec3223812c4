package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subclean/internal/testsupport"
)

const cleanedSample = "1\n00:00:03,000 --> 00:00:04,500\nWhere are you going? I'll be back.\n\n"

type cliTestEnv struct {
	baseDir    string
	configPath string
	historyDB  string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("SUBCLEAN_LOG_LEVEL", "")

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		historyDB:  filepath.Join(base, "state", "history.db"),
	}
	content := fmt.Sprintf("[history]\nenabled = true\npath = %q\n\n[logging]\nlevel = \"error\"\n", env.historyDB)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestCleanWritesSiblingFile(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteSubtitle(t, env.baseDir, "movie.srt", testsupport.SampleSRT)

	out, _, err := runCLI(t, []string{"clean", input, "--summary"}, env.configPath)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	requireContains(t, out, "movie.srt")
	requireContains(t, out, "1 cleaned, 0 failed")

	got := testsupport.ReadFile(t, filepath.Join(env.baseDir, "movie_clean.srt"))
	if got != cleanedSample {
		t.Fatalf("unexpected output file:\n%q", got)
	}
}

func TestCleanStdout(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteSubtitle(t, env.baseDir, "movie.srt", testsupport.SampleSRT)

	out, _, err := runCLI(t, []string{"clean", "--stdout", input}, env.configPath)
	if err != nil {
		t.Fatalf("clean --stdout: %v", err)
	}
	if out != cleanedSample {
		t.Fatalf("unexpected stdout:\n%q", out)
	}
	if _, err := os.Stat(filepath.Join(env.baseDir, "movie_clean.srt")); !os.IsNotExist(err) {
		t.Fatalf("expected no output file in stdout mode, stat err=%v", err)
	}
}

func TestCleanProcessorFlags(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteSubtitle(t, env.baseDir, "movie.srt", testsupport.SampleSRT)

	out, _, err := runCLI(t, []string{"clean", "--stdout", "--processors", "sdh,error", input}, env.configPath)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	want := "1\n00:00:03,000 --> 00:00:04,500\nWhere are you going?\nI'll be back.\n\n" +
		"2\n00:00:05,000 --> 00:00:06,000\nSubtitles by www.example-subs.com\n\n"
	if out != want {
		t.Fatalf("unexpected stdout:\n%q", out)
	}

	_, _, err = runCLI(t, []string{"clean", "--stdout", "--processors", "Translate", input}, env.configPath)
	if err == nil {
		t.Fatal("expected error for unknown processor")
	}
	requireContains(t, err.Error(), "Translate")
}

func TestCleanReportsFailures(t *testing.T) {
	env := setupCLITestEnv(t)
	good := testsupport.WriteSubtitle(t, env.baseDir, "good.srt", testsupport.SampleSRT)
	bad := testsupport.WriteSubtitle(t, env.baseDir, "notes.txt", "hello")

	_, _, err := runCLI(t, []string{"clean", good, bad}, env.configPath)
	if err == nil {
		t.Fatal("expected error when a file fails")
	}
	requireContains(t, err.Error(), "1 of 2 files failed")
	if got := testsupport.ReadFile(t, filepath.Join(env.baseDir, "good_clean.srt")); got != cleanedSample {
		t.Fatalf("expected good file cleaned, got %q", got)
	}
}

func TestCleanRejectsConflictingOutputs(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteSubtitle(t, env.baseDir, "movie.srt", testsupport.SampleSRT)

	if _, _, err := runCLI(t, []string{"clean", "--stdout", "--overwrite", input}, env.configPath); err == nil {
		t.Fatal("expected error for --stdout with --overwrite")
	}
	if _, _, err := runCLI(t, []string{"clean", "--line-length", "0", input}, env.configPath); err == nil {
		t.Fatal("expected error for zero line length")
	}
}

func TestHistoryListAndClear(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteSubtitle(t, env.baseDir, "episode.srt", testsupport.SampleSRT)

	out, _, err := runCLI(t, []string{"history", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "No runs recorded")

	if _, _, err := runCLI(t, []string{"clean", input}, env.configPath); err != nil {
		t.Fatalf("clean: %v", err)
	}

	out, _, err = runCLI(t, []string{"history", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "episode.srt")
	requireContains(t, out, "cleaned")

	out, _, err = runCLI(t, []string{"history", "list", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("history list --json: %v", err)
	}
	var runs []map[string]any
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(runs) != 1 || runs[0]["status"] != "cleaned" || runs[0]["source"] != input {
		t.Fatalf("unexpected runs %v", runs)
	}

	out, _, err = runCLI(t, []string{"history", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, out, "Removed 1 runs")
}

func TestProcessorsCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"processors"}, env.configPath)
	if err != nil {
		t.Fatalf("processors: %v", err)
	}
	for _, name := range []string{"Blacklist", "SDH", "Dialog", "ErrorFix", "LineLength", "Style", "Error"} {
		requireContains(t, out, name)
	}
	requireContains(t, out, "default order")
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.historyDB)
	requireContains(t, out, "[ok] History directory")

	if _, _, err := runCLI(t, []string{"config", "validate", filepath.Join(env.baseDir, "missing", "movie.srt")}, env.configPath); err == nil {
		t.Fatal("expected preflight failure for missing output directory")
	}

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestInvalidLogFlags(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"--log-level", "loud", "processors"}, env.configPath); err == nil {
		t.Fatal("expected error for invalid log level")
	}
	if _, _, err := runCLI(t, []string{"--log-format", "xml", "processors"}, env.configPath); err == nil {
		t.Fatal("expected error for invalid log format")
	}
}
