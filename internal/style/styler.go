package style

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ANSIStyler styles strings for direct display in a terminal.
type ANSIStyler struct{}

func (ANSIStyler) Paint(s string, st Style) string {
	if st.Empty() {
		return s
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[m", strings.Join(st.Params(), ";"), s)
}

func (ANSIStyler) PromptSuffix() string { return "$" }

// BashStyler escapes and styles strings for use in bash's PS1 variable.
// Escape sequences are wrapped in `\[ ... \]` so bash can compute the
// prompt's printable width correctly.
type BashStyler struct{}

func (BashStyler) Paint(s string, st Style) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	if st.Empty() {
		return s
	}
	return fmt.Sprintf(`\[\e[%sm\]%s\[\e[m\]`, strings.Join(st.Params(), ";"), s)
}

func (BashStyler) PromptSuffix() string { return `\$` }

// ZshStyler escapes and styles strings for use in zsh's PS1 variable,
// using zsh's native %B/%F prompt escapes rather than raw SGR sequences.
type ZshStyler struct{}

func (ZshStyler) Paint(s string, st Style) string {
	s = strings.ReplaceAll(s, "%", "%%")
	bold, fg := decompose(st)
	if bold {
		s = "%B" + s + "%b"
	}
	if fg >= 0 {
		s = fmt.Sprintf("%%F{%d}%s%%f", fg, s)
	}
	return s
}

func (ZshStyler) PromptSuffix() string { return "%#" }

// decompose splits a style into a bold flag and a terminal color number
// (-1 when no foreground color is set). zsh's %F takes color numbers,
// not SGR parameters.
func decompose(st Style) (bold bool, fg int) {
	fg = -1
	for _, a := range st.Attrs {
		switch {
		case a == color.Bold:
			bold = true
		case a >= color.FgBlack && a <= color.FgWhite:
			fg = int(a) - int(color.FgBlack)
		case a >= color.FgHiBlack && a <= color.FgHiWhite:
			fg = int(a) - int(color.FgHiBlack) + 8
		}
	}
	return bold, fg
}
