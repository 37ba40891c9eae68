package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/check-examples/internal/model"
)

// resetFlags restores every flag to its default; cobra keeps parsed values
// in the package-level variables between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				var def []string
				if f.Name == "lang" {
					def = append(def, model.DefaultLanguages...)
				}
				_ = sv.Replace(def)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
	}
	reset(cmd.PersistentFlags())
	reset(cmd.Flags())
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (code int, stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	code, err = Execute()
	return code, out.String(), errOut.String(), err
}

func specDirWith(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte(content), 0644))
	return dir
}

const widgets = "## Widgets\n\n```json\n{\"id\": 1,}\n```\n"

func TestExecute_FailureCountIsExitCode(t *testing.T) {
	dir := specDirWith(t, widgets)

	code, out, _, err := execute(t, "-d", dir)
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Equal(t, "Example in section 'Widgets' -- JSON PARSING FAILED\n", out)
}

func TestExecute_AllValid(t *testing.T) {
	dir := specDirWith(t, "# A\n\n```json\n{}\n```\n\n# B\n\n```json-doc\n\"k\": \"v\"\n```\n")

	code, out, _, err := execute(t, "--spec-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Example in section 'A' -- OK\nExample in section 'B' -- OK\n", out)
}

func TestExecute_MissingSpec(t *testing.T) {
	dir := t.TempDir()

	code, out, _, err := execute(t, "-d", dir)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "No spec file "+filepath.Join(dir, "index.md")+", nothing to do!\n", out)
}

func TestExecute_Verbose(t *testing.T) {
	dir := specDirWith(t, widgets)

	_, out, _, err := execute(t, "-d", dir, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "line 1 column 10")
	assert.NotContains(t, out, `{"id": 1,}`)

	code, out, _, err := execute(t, "-d", dir, "-V")
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "line 1 column 10")
	assert.Contains(t, out, `{"id": 1,}`)
}

func TestExecute_LanguagesFlag(t *testing.T) {
	dir := specDirWith(t, "# A\n\n```jsonc\n{bad\n```\n\n```json\n{bad\n```\n")

	code, out, _, err := execute(t, "-d", dir, "--lang", "jsonc")
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Equal(t, "Example in section 'A' -- JSON PARSING FAILED\n", out)

	code, _, _, err = execute(t, "-d", dir)
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	code, _, _, err = execute(t, "-d", dir, "--lang", "json,jsonc")
	require.NoError(t, err)
	assert.Equal(t, 2, code)
}

func TestExecute_SpecFileFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "emm.md"), []byte(widgets), 0644))

	code, _, _, err := execute(t, "-d", dir, "--spec-file", "emm.md")
	require.NoError(t, err)
	assert.Equal(t, 1, code)
}

func TestExecute_EnvOverridesDefault(t *testing.T) {
	dir := specDirWith(t, widgets)
	t.Setenv("CHECK_EXAMPLES_SPEC_DIR", dir)

	code, out, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Widgets")
}

func TestExecute_ConfigFile(t *testing.T) {
	dir := specDirWith(t, "# A\n\n```jsonc\n{bad\n```\n")
	cfgPath := filepath.Join(t.TempDir(), "check.yaml")
	content := "spec:\n  dir: " + dir + "\nmarkdown:\n  languages:\n    - jsonc\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	code, out, _, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Example in section 'A' -- JSON PARSING FAILED")
}

func TestExecute_FlagBeatsConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "check.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("spec:\n  dir: /nonexistent/spec\n"), 0644))
	dir := specDirWith(t, widgets)

	code, _, _, err := execute(t, "--config", cfgPath, "-d", dir)
	require.NoError(t, err)
	assert.Equal(t, 1, code)
}

func TestExecute_InvalidLogLevel(t *testing.T) {
	dir := specDirWith(t, widgets)

	code, _, _, err := execute(t, "-d", dir, "--log-level", "loud")
	assert.Error(t, err)
	assert.Equal(t, 1, code)
}

func TestExecute_DebugLogging(t *testing.T) {
	dir := specDirWith(t, widgets)

	_, out, errOut, err := execute(t, "-d", dir, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "loaded spec")
	assert.Contains(t, errOut, "check complete")
	assert.NotContains(t, out, "loaded spec")
}

func TestExecute_NoFrontMatter(t *testing.T) {
	dir := specDirWith(t, "---\ntitle: EMM\n---\n```json\n{}\n```\n")

	_, out, _, err := execute(t, "-d", dir)
	require.NoError(t, err)
	assert.Equal(t, "Example in section 'unknown' -- OK\n", out)

	_, out, _, err = execute(t, "-d", dir, "--no-front-matter")
	require.NoError(t, err)
	assert.Equal(t, "Example in section 'title: EMM' -- OK\n", out)
}

func TestExecute_RejectsArgs(t *testing.T) {
	_, _, _, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	code, out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "check-examples "+Version+"\n", out)
}
