// Package style turns role-tagged prompt tokens into escaped, colored text.
// The core stays shell-agnostic: a Token names what a piece of text *is*
// (host, cwd, git head, ...), a Theme maps that role to display attributes,
// and a Styler encodes the result for one target (ANSI, bash PS1, zsh PS1).
package style

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Role is the semantic class of a prompt token.
type Role int

const (
	Default Role = iota // rendered without attributes
	Mail
	Chroot
	Conda
	Venv
	Host
	Cwd
	GitStashed
	GitHead
	GitHeadDetached
	GitAhead
	GitBehind
	GitStaged
	GitUnstaged
	GitStagedUnstaged
	GitUntracked
	GitState
	GitConflict
)

// Token is one piece of prompt text tagged with its semantic role.
type Token struct {
	Text string
	Role Role
}

// Style is a set of display attributes. Attribute values are SGR parameters,
// so fatih/color's constants can be used directly.
type Style struct {
	Attrs []color.Attribute
}

// Params returns the style's SGR parameters as strings, in order.
func (s Style) Params() []string {
	params := make([]string, 0, len(s.Attrs))
	for _, a := range s.Attrs {
		params = append(params, strconv.Itoa(int(a)))
	}
	return params
}

// Empty reports whether the style carries no attributes at all.
func (s Style) Empty() bool {
	return len(s.Attrs) == 0
}

// Styler encodes a styled string for one output target.
type Styler interface {
	// Paint escapes s for the target and wraps it in the escape
	// sequences expressed by st.
	Paint(s string, st Style) string

	// PromptSuffix is the prompt symbol appended at the very end of the
	// prompt, just before a final space.
	PromptSuffix() string
}

// Painter binds a Styler to a Theme so callers can paint by role.
type Painter struct {
	Styler Styler
	Theme  Theme
}

// Paint styles a single string according to its role.
func (p Painter) Paint(s string, role Role) string {
	return p.Styler.Paint(s, p.Theme[role])
}

// Apply renders a token sequence into one string.
func (p Painter) Apply(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(p.Paint(t.Text, t.Role))
	}
	return b.String()
}
