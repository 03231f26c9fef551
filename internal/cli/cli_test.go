package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/opencode-ai/themekit/internal/storage"
)

type testEnv struct {
	home    string
	config  string
	data    string
	project string
}

// newTestEnv isolates config, data, and theme directories for one test.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	root := t.TempDir()
	env := &testEnv{
		home:    filepath.Join(root, "home"),
		config:  filepath.Join(root, "config"),
		data:    filepath.Join(root, "data"),
		project: filepath.Join(root, "project"),
	}
	for _, dir := range []string{env.home, env.config, env.data, env.project} {
		require.NoError(t, os.MkdirAll(dir, 0o755))
	}
	t.Setenv("HOME", env.home)
	t.Setenv("XDG_CONFIG_HOME", env.config)
	t.Setenv("XDG_DATA_HOME", env.data)
	t.Setenv("THEMEKIT_NON_INTERACTIVE", "1")

	sessionStore = storage.NewMemory()
	return env
}

func (e *testEnv) userThemes() string {
	return filepath.Join(e.config, "themekit", "themes")
}

// run executes one themekit invocation with freshly reset flags.
func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgFile, jsonOutput, logLevel = "", false, ""
	storageFlag, keyFlag, nonInteractive = "", "", false
	projectDir = e.project
	appConfig = nil
	addSets, addRefs, addDescription = nil, nil, ""
	exportFormat, exportTheme = "css", ""
	historyLimit, historyType, historySince = 20, "", 0
	initForce = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	require.NoError(t, err, "themekit %s", strings.Join(args, " "))
	return out
}

func requirePreflight(t *testing.T, err error) *PreflightError {
	t.Helper()
	var preflight *PreflightError
	require.True(t, errors.As(err, &preflight), "expected PreflightError, got %v", err)
	return preflight
}

func TestFirstRunAppliesFirstThemeWithoutRemembering(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "var", "get", "--", "--bg")
	require.Equal(t, "#FFFFFF\n", out)

	out = env.mustRun(t, "current")
	require.Contains(t, out, "No theme remembered")
}

func TestFirstRunUsesConfiguredDefault(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("THEMEKIT_THEMES_DEFAULT", "dark")

	require.Equal(t, "#0B0F14\n", env.mustRun(t, "var", "get", "--", "--bg"))
	require.Equal(t, "dark\n", env.mustRun(t, "current"))
}

func TestApplyPersistsAcrossInvocations(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "apply", "dark")
	require.Contains(t, out, "Applied theme dark")
	require.Contains(t, out, "--bg: #0B0F14;")

	require.Equal(t, "#0B0F14\n", env.mustRun(t, "var", "get", "--", "--bg"))
	require.Equal(t, "dark\n", env.mustRun(t, "current"))
}

func TestApplyJSON(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "apply", "dim", "--json")

	var result ApplyResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, "dim", result.Theme)
	require.Equal(t, "local", result.Storage)

	values := map[string]string{}
	for _, p := range result.Properties {
		values[p.Name] = p.Value
	}
	require.Equal(t, "#1C2128", values["--bg"])
	require.Equal(t, "#5B8DEF", values["--accent"])
}

func TestApplyUnknownTheme(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "apply", "nope")
	preflight := requirePreflight(t, err)
	require.Contains(t, preflight.Message, `"nope"`)
	require.Equal(t, "themekit list", preflight.NextStep)
}

func TestSessionStorageIsNotWrittenToDatabase(t *testing.T) {
	env := newTestEnv(t)

	env.mustRun(t, "apply", "dark", "--storage", "session")
	require.Equal(t, "dark\n", env.mustRun(t, "current", "--storage", "session"))
	require.Contains(t, env.mustRun(t, "current"), "No theme remembered")

	sessionStore = storage.NewMemory()
	require.Contains(t, env.mustRun(t, "current", "--storage", "session"), "No theme remembered")
}

func TestNoneStorageRemembersNothing(t *testing.T) {
	env := newTestEnv(t)

	env.mustRun(t, "apply", "dark", "--storage", "none")
	require.Contains(t, env.mustRun(t, "current", "--storage", "none"), "No theme remembered")
	require.Contains(t, env.mustRun(t, "current"), "No theme remembered")
}

func TestListJSON(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "apply", "high-contrast")

	out := env.mustRun(t, "list", "--json")

	var summaries []ThemeSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 4)

	names := make([]string, 0, len(summaries))
	for _, s := range summaries {
		names = append(names, s.Name)
		require.Equal(t, s.Name == "high-contrast", s.Active, s.Name)
		require.Equal(t, "builtin", s.Source)
	}
	require.Equal(t, []string{"light", "dark", "high-contrast", "dim"}, names)
	require.Equal(t, []string{"dark"}, summaries[3].References)
}

func TestListTable(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[0], "NAME"))
	require.Contains(t, lines[4], "dim")
}

func TestShowTheme(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "show", "dim")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.True(t, strings.HasPrefix(lines[1], "ref"))
	require.Contains(t, lines[1], "dark")

	_, err := env.run(t, "show", "missing")
	requirePreflight(t, err)
}

func TestAddExportAndRemove(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "add", "ocean", "--ref", "dark", "--set=--bg=#001F3F", "--description", "deep blue")
	require.Contains(t, out, "Registered theme ocean")

	path := filepath.Join(env.userThemes(), "ocean.yaml")
	require.FileExists(t, path)

	out = env.mustRun(t, "export", "--theme", "ocean", "--format", "json")
	require.Equal(t, "#001F3F", gjson.Get(out, "--bg").String())
	require.Equal(t, "#E6EDF3", gjson.Get(out, "--text").String())

	// Exporting a theme leaves the remembered theme alone.
	require.Contains(t, env.mustRun(t, "current"), "No theme remembered")

	listed := env.mustRun(t, "list", "--json")
	require.Equal(t, "deep blue", gjson.Get(listed, `#(name=="ocean").description`).String())

	_, err := env.run(t, "add", "ocean", "--set=--bg=#000")
	requirePreflight(t, err)

	out = env.mustRun(t, "remove", "ocean")
	require.Contains(t, out, "Removed theme ocean")
	require.NoFileExists(t, path)

	_, err = env.run(t, "apply", "ocean")
	requirePreflight(t, err)
}

func TestAddRequiresDeclarations(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "add", "empty")
	requirePreflight(t, err)

	_, err = env.run(t, "add", "broken", "--set", "novalue")
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected name=value")
}

func TestRemoveBuiltinIsRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "remove", "dark")
	preflight := requirePreflight(t, err)
	require.Contains(t, preflight.Message, "built in")
}

func TestRemoveThemeSharingAFile(t *testing.T) {
	env := newTestEnv(t)
	dir := filepath.Join(env.project, ".themekit", "themes")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "pair.yaml")
	require.NoError(t, os.WriteFile(path, []byte("themes:\n  one:\n    --bg: red\n  two:\n    --bg: blue\n"), 0o644))

	_, err := env.run(t, "remove", "one")
	preflight := requirePreflight(t, err)
	require.Contains(t, preflight.Message, "1 other themes")
	require.FileExists(t, path)

	// Unknown names are a silent no-op.
	out := env.mustRun(t, "remove", "ghost", "--json")
	require.False(t, gjson.Get(out, "removed").Bool())
}

func TestVarSetAndHistory(t *testing.T) {
	env := newTestEnv(t)

	env.mustRun(t, "apply", "dark")
	require.Equal(t, "--bg: #123456\n", env.mustRun(t, "var", "set", "--", "--bg", "#123456"))
	require.Equal(t, "#123456\n", env.mustRun(t, "var", "get", "--", "--bg"))

	// Later invocations keep manual edits instead of re-initializing.
	require.Equal(t, "#5B8DEF\n", env.mustRun(t, "var", "get", "--", "--accent"))

	_, err := env.run(t, "var", "set", "--", "--bg", "  ")
	requirePreflight(t, err)

	out := env.mustRun(t, "history", "--json")
	events := gjson.Parse(out).Array()
	require.Len(t, events, 2)
	require.Equal(t, "var.set", events[0].Get("type").String())
	require.Equal(t, "#123456", events[0].Get("payload.value").String())
	require.Equal(t, "theme.applied", events[1].Get("type").String())
	require.Equal(t, "dark", events[1].Get("entity_id").String())

	out = env.mustRun(t, "history", "--json", "--type", "theme.applied")
	require.Len(t, gjson.Parse(out).Array(), 1)
}

func TestExportFormats(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "apply", "light")

	css := env.mustRun(t, "export")
	require.True(t, strings.HasPrefix(css, ":root {\n  --bg: #FFFFFF;\n"))

	swatches := env.mustRun(t, "export", "--format", "swatch")
	require.Contains(t, swatches, "--accent")

	_, err := env.run(t, "export", "--format", "xml")
	requirePreflight(t, err)

	_, err = env.run(t, "export", "--theme", "missing")
	requirePreflight(t, err)
}

func TestPickRequiresTerminal(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "pick")
	preflight := requirePreflight(t, err)
	require.Contains(t, preflight.NextStep, "themekit apply")
}

func TestInvalidConfigFailsBeforeRunning(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("THEMEKIT_LOGGING_FORMAT", "xml")

	_, err := env.run(t, "list")
	require.Error(t, err)
	require.Contains(t, err.Error(), "logging.format")
}
