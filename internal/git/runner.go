package git

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Runner invokes the git binary and captures its output. A zero Timeout
// means no bound; stderr is always discarded so a noisy git can never
// leak into the prompt.
type Runner struct {
	Dir     string        // working directory; empty means the process cwd
	Timeout time.Duration // per-command bound
	GitPath string        // binary to invoke; empty means "git"
}

// Run executes a single git command and returns its whitespace-trimmed
// stdout. ok is false when the binary is missing, the command exits
// nonzero, or the timeout elapses (the process is killed). Callers treat
// all three the same way: no status for this invocation.
func (r Runner) Run(args ...string) (out string, ok bool) {
	gitPath := r.GitPath
	if gitPath == "" {
		gitPath = "git"
	}

	ctx := context.Background()
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = r.Dir
	raw, err := cmd.Output()
	if err != nil {
		slog.Debug("git command failed", "args", args, "err", err)
		return "", false
	}
	return strings.TrimSpace(string(raw)), true
}
