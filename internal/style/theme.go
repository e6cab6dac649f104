package style

import (
	"fmt"

	"github.com/fatih/color"
)

// Theme maps each semantic role to its display attributes. Roles missing
// from a theme render unstyled.
type Theme map[Role]Style

func fg(attrs ...color.Attribute) Style {
	return Style{Attrs: attrs}
}

// Dark is the default theme, tuned for dark terminal backgrounds.
var Dark = Theme{
	Mail:              fg(color.FgCyan, color.Bold),
	Chroot:            fg(color.FgBlue, color.Bold),
	Conda:             fg(color.FgHiGreen),
	Venv:              fg(),
	Host:              fg(color.FgHiRed),
	Cwd:               fg(color.FgHiCyan),
	GitStashed:        fg(color.FgHiYellow, color.Bold),
	GitHead:           fg(color.FgHiGreen),
	GitHeadDetached:   fg(color.FgHiBlue),
	GitAhead:          fg(color.FgGreen),
	GitBehind:         fg(color.FgRed),
	GitStaged:         fg(color.FgGreen),
	GitUnstaged:       fg(color.FgRed),
	GitStagedUnstaged: fg(color.FgHiYellow, color.Bold),
	GitUntracked:      fg(color.FgRed, color.Bold),
	GitState:          fg(color.FgMagenta),
	GitConflict:       fg(color.FgRed, color.Bold),
}

// Light adjusts the handful of bright colors that wash out on light
// backgrounds; everything else is shared with Dark.
var Light = merge(Dark, Theme{
	Conda:           fg(color.FgGreen),
	Cwd:             fg(color.FgBlue),
	GitHead:         fg(color.FgGreen),
	GitHeadDetached: fg(color.FgBlue),
})

// Lookup returns the named built-in theme.
func Lookup(name string) (Theme, error) {
	switch name {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return nil, fmt.Errorf("unknown theme %q (want \"dark\" or \"light\")", name)
	}
}

func merge(base, overrides Theme) Theme {
	t := make(Theme, len(base))
	for role, st := range base {
		t[role] = st
	}
	for role, st := range overrides {
		t[role] = st
	}
	return t
}
