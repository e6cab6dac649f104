package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilupskalvis/ps1/internal/config"
	"github.com/kilupskalvis/ps1/internal/models"
	"github.com/kilupskalvis/ps1/internal/style"
)

func ansiPainter() style.Painter {
	return style.Painter{Styler: style.ANSIStyler{}, Theme: style.Dark}
}

func TestInfo_DisplaySimple(t *testing.T) {
	info := Info{Env: Env{Hostname: "firefly", Cwd: "~/work"}}

	got := info.Display(ansiPainter(), config.DefaultMaxHeadLen)
	assert.Equal(t, "\x1b[91mfirefly\x1b[m:\x1b[96m~/work\x1b[m$ ", got)
}

func TestInfo_DisplayFull(t *testing.T) {
	info := Info{Env: Env{
		Mail:         true,
		DebianChroot: "/chroot/jail",
		CondaPrefix:  "(base) ",
		VenvPrompt:   "venv",
		Hostname:     "firefly",
		Cwd:          "~/work",
	}}

	got := info.Display(ansiPainter(), config.DefaultMaxHeadLen)
	assert.Equal(t, "\x1b[36;1m[MAIL] \x1b[m"+
		"\x1b[34;1m[/chroot/jail] \x1b[m"+
		"\x1b[92m(base) \x1b[m"+
		"(venv) "+
		"\x1b[91mfirefly\x1b[m:"+
		"\x1b[96m~/work\x1b[m$ ", got)
}

func TestInfo_DisplayWithCleanRepo(t *testing.T) {
	info := Info{
		Env: Env{Hostname: "firefly", Cwd: "~/work"},
		Git: &models.RepoStatus{Head: models.Head{Kind: models.HeadBranch, Name: "main"}},
	}

	got := info.Display(ansiPainter(), config.DefaultMaxHeadLen)
	assert.Equal(t, "\x1b[91mfirefly\x1b[m:\x1b[96m~/work\x1b[m@\x1b[92mmain\x1b[m$ ", got)
}

func TestInfo_DisplayBash(t *testing.T) {
	info := Info{Env: Env{Hostname: "firefly", Cwd: "~/work"}}
	p := style.Painter{Styler: style.BashStyler{}, Theme: style.Dark}

	got := info.Display(p, config.DefaultMaxHeadLen)
	assert.Equal(t, `\[\e[91m\]firefly\[\e[m\]:\[\e[96m\]~/work\[\e[m\]\$ `, got)
}

func TestVenvPrompt_BasenameWithoutConfig(t *testing.T) {
	dir := t.TempDir()
	venv := filepath.Join(dir, "myenv")
	require.NoError(t, os.Mkdir(venv, 0o755))

	assert.Equal(t, "myenv", venvPrompt(venv))
}

func TestVenvPrompt_QuotedOverride(t *testing.T) {
	venv := t.TempDir()
	cfg := "home = /usr/bin\nprompt = 'custom-prompt'\nversion = 3.12.1\n"
	require.NoError(t, os.WriteFile(filepath.Join(venv, "pyvenv.cfg"), []byte(cfg), 0o644))

	assert.Equal(t, "custom-prompt", venvPrompt(venv))
}

// An unquoted prompt value is not a venv-written repr; keep the
// directory basename.
func TestVenvPrompt_UnquotedIgnored(t *testing.T) {
	dir := t.TempDir()
	venv := filepath.Join(dir, "proj-env")
	require.NoError(t, os.Mkdir(venv, 0o755))
	cfg := "prompt = bare-words\n"
	require.NoError(t, os.WriteFile(filepath.Join(venv, "pyvenv.cfg"), []byte(cfg), 0o644))

	assert.Equal(t, "proj-env", venvPrompt(venv))
}
