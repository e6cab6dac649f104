// Package cli implements the command-line interface for ps1.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilupskalvis/ps1/internal/config"
	"github.com/kilupskalvis/ps1/internal/git"
	"github.com/kilupskalvis/ps1/internal/models"
	"github.com/kilupskalvis/ps1/internal/prompt"
	"github.com/kilupskalvis/ps1/internal/style"
)

const version = "0.1.0"

var (
	flagANSI       bool
	flagBash       bool
	flagZsh        bool
	flagGitOnly    bool
	flagGitTimeout float64
	flagTheme      string
	flagDebug      bool
)

var rootCmd = &cobra.Command{
	Use:   "ps1 [git-flag]",
	Short: "Yet another bash/zsh prompt generator",
	Long: `ps1 prints a single-line styled shell prompt showing mail status, chroot,
conda/virtualenv prefixes, the hostname, the working directory, and a
compact Git status summary when inside a repository.

Pass "off" as the positional argument (shell glue typically forwards
${PS1_GIT:-}) to disable the Git summary.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPrompt,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&flagANSI, "ansi", false, "format the prompt for direct display")
	f.BoolVar(&flagBash, "bash", false, "format the prompt for bash's PS1 (default)")
	f.BoolVar(&flagZsh, "zsh", false, "format the prompt for zsh's PS1")
	f.BoolVarP(&flagGitOnly, "git-only", "G", false, "only output the Git portion of the prompt")
	f.Float64Var(&flagGitTimeout, "git-timeout", config.DefaultGitTimeout,
		"disable Git integration when git runtime exceeds this many seconds")
	f.StringVar(&flagTheme, "theme", "", `color theme: "dark" or "light"`)
	f.BoolVar(&flagDebug, "debug", false, "log diagnostics to stderr")
	// registering the flag ourselves gives --version the -V shorthand
	f.BoolP("version", "V", false, "version for ps1")
	rootCmd.MarkFlagsMutuallyExclusive("ansi", "bash", "zsh")
	rootCmd.Version = version
}

func runPrompt(cmd *cobra.Command, args []string) {
	setupLogging()

	cfg, err := config.Load()
	if err != nil {
		// a broken config file must not break the prompt
		slog.Debug("config unavailable, using defaults", "err", err)
	}
	if cmd.Flags().Changed("git-timeout") {
		cfg.GitTimeout = flagGitTimeout
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}

	theme, err := style.Lookup(cfg.Theme)
	if err != nil {
		if cmd.Flags().Changed("theme") {
			exitError("%v", err)
		}
		slog.Debug("bad theme in config file, using dark", "err", err)
		theme = style.Dark
	}
	painter := style.Painter{Styler: styler(), Theme: theme}

	showGit := len(args) == 0 || args[0] != "off"
	var st *models.RepoStatus
	if showGit {
		st = git.Status("", cfg.GitTimeoutDuration())
	}

	if flagGitOnly {
		fmt.Println(painter.Apply(prompt.GitTokens(st, cfg.MaxHeadLen)))
		return
	}

	info := prompt.Info{Env: prompt.Collect(cfg.MaxCwdLen), Git: st}
	fmt.Println(info.Display(painter, cfg.MaxHeadLen))
}

// styler picks the output encoder; bash is the default since the usual
// consumer is a PROMPT_COMMAND assignment.
func styler() style.Styler {
	switch {
	case flagANSI:
		return style.ANSIStyler{}
	case flagZsh:
		return style.ZshStyler{}
	default:
		return style.BashStyler{}
	}
}

func setupLogging() {
	if flagDebug || os.Getenv("PS1_DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
