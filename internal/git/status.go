// Package git summarizes the state of a Git repository for display in a
// shell prompt. Everything here degrades rather than fails: a missing
// git binary, a timeout, or a malformed status line can never surface as
// an error, only as a reduced (or absent) summary.
package git

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kilupskalvis/ps1/internal/models"
)

// Status gathers the state of the repository containing dir. It returns
// nil when there is nothing to show: dir is not inside a repository, git
// is not installed, or a command exceeded the timeout.
func Status(dir string, timeout time.Duration) *models.RepoStatus {
	return status(Runner{Dir: dir, Timeout: timeout})
}

func status(run Runner) *models.RepoStatus {
	gitDir, ok := run.Run("rev-parse", "--git-dir")
	if !ok {
		return nil
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(run.Dir, gitDir)
	}

	st := &models.RepoStatus{}

	// A bare repository (or being inside the .git directory itself) has
	// no working tree to report on; the renderer shows nothing for it.
	if isBare(run) {
		st.Bare = true
		return st
	}

	out, ok := run.Run("status", "--porcelain", "--branch")
	if !ok {
		return nil
	}
	p := parsePorcelain(out)

	if !resolveHead(run, gitDir, st) && !headFromPorcelain(run, p, st) {
		return nil
	}
	if p.unborn {
		st.Head.Kind = models.HeadUnborn
	}
	st.HasUpstream = p.hasUpstream
	st.Ahead = p.ahead
	st.Behind = p.behind
	st.Staged = p.staged
	st.Unstaged = p.unstaged
	st.Untracked = p.untracked
	st.Conflicted = p.conflicted

	_, st.Stashed = run.Run("rev-parse", "--verify", "--quiet", "refs/stash")
	st.InProgress = detectInProgress(gitDir)

	return st
}

// resolveHead fills in st.Head and st.Detached from the HEAD ref. On a
// detached HEAD a tag pointing exactly at the commit takes precedence
// over the short hash; git emits tags sorted, so the first line is the
// lexicographically smallest when several match.
func resolveHead(run Runner, gitDir string, st *models.RepoStatus) bool {
	raw, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		slog.Debug("cannot read HEAD", "gitdir", gitDir, "err", err)
		return false
	}
	head := strings.TrimSpace(string(raw))

	if name, isRef := strings.CutPrefix(head, "ref: "); isRef {
		name = strings.TrimPrefix(name, "refs/heads/")
		st.Head = models.Head{Kind: models.HeadBranch, Name: name}
		return true
	}

	st.Detached = true
	if tags, ok := run.Run("tag", "--points-at", "HEAD"); ok && tags != "" {
		name, _, _ := strings.Cut(tags, "\n")
		st.Head = models.Head{Kind: models.HeadTag, Name: name}
		return true
	}
	if short, ok := run.Run("rev-parse", "--short", "HEAD"); ok && short != "" {
		st.Head = models.Head{Kind: models.HeadCommit, Name: short}
		return true
	}
	if len(head) >= 7 {
		st.Head = models.Head{Kind: models.HeadCommit, Name: head[:7]}
		return true
	}
	return false
}

// headFromPorcelain recovers the head from the status header when the
// HEAD file under the git dir cannot be read (worktrees and other
// unusual layouts keep it elsewhere).
func headFromPorcelain(run Runner, p porcelain, st *models.RepoStatus) bool {
	if p.detached {
		short, ok := run.Run("rev-parse", "--short", "HEAD")
		if !ok || short == "" {
			return false
		}
		st.Detached = true
		st.Head = models.Head{Kind: models.HeadCommit, Name: short}
		return true
	}
	if p.branch != "" {
		st.Head = models.Head{Kind: models.HeadBranch, Name: p.branch}
		return true
	}
	return false
}

func isBare(run Runner) bool {
	if out, ok := run.Run("rev-parse", "--is-bare-repository"); ok && out == "true" {
		return true
	}
	if out, ok := run.Run("rev-parse", "--is-inside-work-tree"); ok && out == "false" {
		return true
	}
	return false
}

// porcelain is the result of parsing `git status --porcelain --branch`
// output.
type porcelain struct {
	branch      string
	unborn      bool
	detached    bool
	hasUpstream bool
	ahead       int
	behind      int
	staged      bool
	unstaged    bool
	untracked   bool
	conflicted  bool
}

// aheadBehindRe matches the bracketed divergence counts in the porcelain
// branch header, e.g. "[ahead 2, behind 1]", "[ahead 3]" or "[behind 4]".
var aheadBehindRe = regexp.MustCompile(`\[(?:ahead (\d+))?[,\s]*(?:behind (\d+))?\]`)

// statusCodes are the porcelain XY characters we recognize; lines with
// anything else in either column are skipped as malformed.
const statusCodes = " MTADRCU?"

// parsePorcelain turns `git status --porcelain --branch` output into a
// porcelain value. It is a pure function: identical input yields an
// identical result, and malformed lines are skipped rather than fatal.
func parsePorcelain(out string) porcelain {
	var p porcelain
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, "## "):
			p.parseHeader(line[3:])
		case strings.HasPrefix(line, "??"):
			p.untracked = true
		case strings.HasPrefix(line, "!!"):
			// ignored files
		case len(line) >= 4 && line[2] == ' ':
			x, y := line[0], line[1]
			if strings.IndexByte(statusCodes, x) < 0 || strings.IndexByte(statusCodes, y) < 0 {
				continue
			}
			if x == 'U' || y == 'U' || (x == 'A' && y == 'A') || (x == 'D' && y == 'D') {
				p.conflicted = true
				continue
			}
			if x != ' ' {
				p.staged = true
			}
			if y != ' ' {
				p.unstaged = true
			}
		}
	}
	return p
}

// parseHeader parses the branch header, everything after "## ". Forms:
//
//	main
//	main...origin/main
//	main...origin/main [ahead 2, behind 1]
//	No commits yet on main
//	Initial commit on main
//	HEAD (no branch)
func (p *porcelain) parseHeader(rest string) {
	if strings.HasPrefix(rest, "HEAD (") {
		p.detached = true
		return
	}
	for _, prefix := range []string{"No commits yet on ", "Initial commit on "} {
		if name, found := strings.CutPrefix(rest, prefix); found {
			p.unborn = true
			p.branch = strings.TrimSpace(name)
			return
		}
	}

	name, upstream, found := strings.Cut(rest, "...")
	p.branch = strings.TrimSpace(name)
	if !found {
		return
	}
	p.hasUpstream = true
	if m := aheadBehindRe.FindStringSubmatch(upstream); m != nil {
		if m[1] != "" {
			p.ahead, _ = strconv.Atoi(m[1])
		}
		if m[2] != "" {
			p.behind, _ = strconv.Atoi(m[2])
		}
	}
}
