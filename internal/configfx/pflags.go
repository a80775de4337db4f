package configfx

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func PFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <log-directory> [flags]\n\nFlags:\n%s", os.Args[0], fs.FlagUsages())
	}

	// Config file flag
	fs.StringP("config", "c", "", "Config file")

	fs.StringP("out", "o", "", "Directory receiving bundles and the history file (default \"<log-directory>/archives\")")
	fs.IntP("retain", "r", 0, "Delete bundles older than this many days after archiving")

	// ExitOnError: pflag handles --help (exit 0) and malformed flags
	// (message + usage, exit 2) itself.
	_ = fs.Parse(os.Args[1:])

	return fs
}
