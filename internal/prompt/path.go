package prompt

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// cwdString returns the working directory for display: $PWD when set
// (it preserves symlinks, unlike os.Getwd), with the home directory
// replaced by ~ and the result shortened to maxLen.
func cwdString(maxLen int) string {
	cwd := os.Getenv("PWD")
	if cwd == "" {
		cwd, _ = os.Getwd()
	}
	if cwd == "" {
		return ""
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		if cwd == home {
			cwd = "~"
		} else if rel, under := strings.CutPrefix(cwd, home+"/"); under {
			cwd = "~/" + rel
		}
	}
	return shortPath(cwd, maxLen)
}

// shortPath cuts leading path components (replaced with an ellipsis)
// until p fits in maxLen characters; if even the last component alone is
// too long, its tail is truncated with an ellipsis as well.
func shortPath(p string, maxLen int) string {
	if utf8.RuneCountInString(p) <= maxLen {
		return p
	}
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return runewidth.Truncate(p, maxLen, "…")
	}

	parts := splitPath(p)
	start := 1
	if parts[0] == "/" {
		start = 2
	}
	parts = append([]string{"…"}, parts[start:]...)
	for utf8.RuneCountInString(joinPath(parts)) > maxLen {
		if len(parts) > 2 {
			parts = append([]string{"…"}, parts[2:]...)
		} else {
			runes := []rune(parts[1])
			parts[1] = string(runes[:maxLen-3]) + "…"
		}
	}
	return joinPath(parts)
}

func splitPath(p string) []string {
	if p == "/" {
		return []string{"/"}
	}
	if rest, abs := strings.CutPrefix(p, "/"); abs {
		return append([]string{"/"}, strings.Split(rest, "/")...)
	}
	return strings.Split(p, "/")
}

func joinPath(parts []string) string {
	if parts[0] == "/" {
		return "/" + strings.Join(parts[1:], "/")
	}
	return strings.Join(parts, "/")
}
