// Command ps1 emits a styled shell prompt string for bash, zsh, or
// direct terminal display.
package main

import (
	"os"

	"github.com/kilupskalvis/ps1/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(2)
	}
}
