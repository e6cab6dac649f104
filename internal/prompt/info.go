// Package prompt assembles the final prompt string: environment context
// (mail, chroot, conda/virtualenv, hostname, working directory) plus the
// rendered Git status tokens.
package prompt

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kilupskalvis/ps1/internal/models"
	"github.com/kilupskalvis/ps1/internal/style"
)

const debianChrootPath = "/etc/debian_chroot"

// Env is a snapshot of the process environment taken once per
// invocation. Building it up front keeps the rest of the assembly free
// of ambient reads.
type Env struct {
	Mail         bool   // $MAIL file exists and is nonempty
	DebianChroot string // contents of /etc/debian_chroot, if any
	CondaPrefix  string // conda prompt prefix, parentheses included
	VenvPrompt   string // virtualenv prompt name, without parentheses
	Hostname     string
	Cwd          string // display form: ~-substituted and shortened
}

// Collect reads the environment. maxCwd bounds the displayed working
// directory length.
func Collect(maxCwd int) Env {
	var e Env

	if mail := os.Getenv("MAIL"); mail != "" {
		if fi, err := os.Stat(mail); err == nil && fi.Size() > 0 {
			e.Mail = true
		}
	}

	if data, err := os.ReadFile(debianChrootPath); err == nil {
		e.DebianChroot = strings.TrimSpace(string(data))
	}

	// Conda exports a ready-made prefix like "(base) "; fall back to
	// wrapping the bare environment name.
	if mod := os.Getenv("CONDA_PROMPT_MODIFIER"); mod != "" {
		e.CondaPrefix = mod
	} else if name := os.Getenv("CONDA_DEFAULT_ENV"); name != "" {
		e.CondaPrefix = "(" + name + ") "
	}

	if venv := os.Getenv("VIRTUAL_ENV"); venv != "" {
		e.VenvPrompt = venvPrompt(venv)
	}

	e.Hostname, _ = os.Hostname()
	e.Cwd = cwdString(maxCwd)

	return e
}

// venvPrompt returns the display name for a virtualenv: the custom
// prompt from pyvenv.cfg when one is set, otherwise the basename of the
// virtualenv directory. venv writes the prompt value repr-quoted, so
// only a quoted value is taken as an override.
func venvPrompt(dir string) string {
	name := filepath.Base(dir)
	data, err := os.ReadFile(filepath.Join(dir, "pyvenv.cfg"))
	if err != nil {
		return name
	}
	for _, line := range strings.Split(string(data), "\n") {
		val, found := strings.CutPrefix(strings.TrimSpace(line), "prompt")
		if !found {
			continue
		}
		val, found = strings.CutPrefix(strings.TrimSpace(val), "=")
		if !found {
			continue
		}
		val = strings.TrimSpace(val)
		if n := len(val); n >= 2 && (val[0] == '\'' || val[0] == '"') && val[n-1] == val[0] {
			if inner := val[1 : n-1]; inner != "" {
				return inner
			}
		}
		break
	}
	return name
}

// Info is everything the prompt displays.
type Info struct {
	Env Env
	Git *models.RepoStatus // nil when there is no Git status to show
}

// Display builds the complete prompt string for one shell target.
func (i Info) Display(p style.Painter, maxHead int) string {
	var b strings.Builder

	if i.Env.Mail {
		b.WriteString(p.Paint("[MAIL] ", style.Mail))
	}
	if i.Env.DebianChroot != "" {
		b.WriteString(p.Paint("["+i.Env.DebianChroot+"] ", style.Chroot))
	}
	if i.Env.CondaPrefix != "" {
		b.WriteString(p.Paint(i.Env.CondaPrefix, style.Conda))
	}
	if i.Env.VenvPrompt != "" {
		b.WriteString(p.Paint("("+i.Env.VenvPrompt+") ", style.Venv))
	}
	b.WriteString(p.Paint(i.Env.Hostname, style.Host))
	b.WriteString(p.Paint(":", style.Default))
	b.WriteString(p.Paint(i.Env.Cwd, style.Cwd))
	b.WriteString(p.Apply(GitTokens(i.Git, maxHead)))
	b.WriteString(p.Styler.PromptSuffix())
	b.WriteString(" ")

	return b.String()
}
