package prompt

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/kilupskalvis/ps1/internal/models"
	"github.com/kilupskalvis/ps1/internal/style"
)

// GitTokens renders a repository status as an ordered token sequence.
// A nil or bare status yields no tokens. The order is fixed: separator,
// stash marker, head name, ahead, behind, staged/unstaged marker,
// untracked marker, in-progress tag, conflict marker. Tokens whose
// condition is absent are omitted entirely.
func GitTokens(st *models.RepoStatus, maxHead int) []style.Token {
	if st == nil || st.Bare {
		return nil
	}

	tokens := []style.Token{{Text: "@", Role: style.Default}}

	if st.Stashed {
		tokens = append(tokens, style.Token{Text: "+", Role: style.GitStashed})
	}

	headRole := style.GitHead
	if st.Detached {
		headRole = style.GitHeadDetached
	}
	tokens = append(tokens, style.Token{Text: shortHead(st.Head.Name, maxHead), Role: headRole})

	if st.HasUpstream && st.Ahead > 0 {
		tokens = append(tokens, style.Token{Text: "+" + strconv.Itoa(st.Ahead), Role: style.GitAhead})
	}
	if st.HasUpstream && st.Behind > 0 {
		tokens = append(tokens, style.Token{Text: "-" + strconv.Itoa(st.Behind), Role: style.GitBehind})
	}

	switch {
	case st.Staged && st.Unstaged:
		tokens = append(tokens, style.Token{Text: "*", Role: style.GitStagedUnstaged})
	case st.Staged:
		tokens = append(tokens, style.Token{Text: "*", Role: style.GitStaged})
	case st.Unstaged:
		tokens = append(tokens, style.Token{Text: "*", Role: style.GitUnstaged})
	}

	if st.Untracked {
		tokens = append(tokens, style.Token{Text: "+", Role: style.GitUntracked})
	}
	if st.InProgress != models.NoOperation {
		tokens = append(tokens, style.Token{Text: "[" + st.InProgress.Tag() + "]", Role: style.GitState})
	}
	if st.Conflicted {
		tokens = append(tokens, style.Token{Text: "!", Role: style.GitConflict})
	}

	return tokens
}

// shortHead truncates a head name to at most maxLen display cells,
// replacing the cut tail with an ellipsis so the result is exactly
// maxLen wide.
func shortHead(name string, maxLen int) string {
	if maxLen <= 0 || runewidth.StringWidth(name) <= maxLen {
		return name
	}
	return runewidth.Truncate(name, maxLen, "…")
}
