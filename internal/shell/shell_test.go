package shell_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/i2cjak/durrrrrenv/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookSnippet_Zsh(t *testing.T) {
	snippet := shell.HookSnippet("zsh")
	assert.Contains(t, snippet, "chpwd_functions")
	assert.Contains(t, snippet, `eval "$(durrrrrenv check)"`)
}

func TestHookSnippet_Bash(t *testing.T) {
	snippet := shell.HookSnippet("bash")
	assert.Contains(t, snippet, "PROMPT_COMMAND")
	assert.Contains(t, snippet, `eval "$(durrrrrenv check)"`)
}

func TestHookSnippet_Fish(t *testing.T) {
	snippet := shell.HookSnippet("fish")
	assert.Contains(t, snippet, "--on-variable PWD")
	assert.Contains(t, snippet, "durrrrrenv check")
}

func TestHookSnippet_Unknown(t *testing.T) {
	snippet := shell.HookSnippet("unknown")
	assert.Empty(t, snippet)
}

func TestHookSnippet_DoesNotSilenceStderr(t *testing.T) {
	// The not-yet-approved hint travels over stderr; hooks must not hide it.
	for _, sh := range []string{"zsh", "bash", "fish"} {
		assert.NotContains(t, shell.HookSnippet(sh), "2>/dev/null", sh)
	}
}

func TestHookSnippet_RunsOnShellInit(t *testing.T) {
	// chpwd/PWD hooks only fire on change; the snippet must also cover the
	// directory the shell starts in.
	zsh := shell.HookSnippet("zsh")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(zsh), "_durrrrrenv_chpwd"))

	fish := shell.HookSnippet("fish")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(fish), "_durrrrrenv_chpwd"))
}

func TestDetectShell_FromEnv(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	assert.Equal(t, "zsh", shell.DetectShell())
}

func TestRCPath_PerShell(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	assert.Equal(t, "/home/tester/.zshrc", shell.RCPath("zsh"))
	assert.Equal(t, "/home/tester/.bashrc", shell.RCPath("bash"))
	assert.Equal(t, "/home/tester/.config/fish/conf.d/durrrrrenv.fish", shell.RCPath("fish"))
	assert.Empty(t, shell.RCPath("unknown"))
}

func TestInstallHook_AppendsSnippet(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".zshrc")
	require.NoError(t, os.WriteFile(rcPath, []byte("# my zshrc\n"), 0644))

	require.NoError(t, shell.InstallHook("zsh", rcPath))

	data, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# my zshrc")
	assert.Contains(t, string(data), "durrrrrenv shell integration")
	assert.True(t, shell.Installed(rcPath))
}

func TestInstallHook_CreatesMissingRCFile(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), "conf.d", "durrrrrenv.fish")

	require.NoError(t, shell.InstallHook("fish", rcPath))
	assert.True(t, shell.Installed(rcPath))
}

func TestInstallHook_Idempotent(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".bashrc")

	require.NoError(t, shell.InstallHook("bash", rcPath))
	require.NoError(t, shell.InstallHook("bash", rcPath))

	data, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "durrrrrenv shell integration"))
}

func TestInstallHook_UnknownShell(t *testing.T) {
	err := shell.InstallHook("tcsh", filepath.Join(t.TempDir(), ".tcshrc"))
	assert.Error(t, err)
}

func TestInstalled_MissingFile(t *testing.T) {
	assert.False(t, shell.Installed(filepath.Join(t.TempDir(), ".zshrc")))
}
