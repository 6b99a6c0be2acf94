package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/mattn/go-colorable"
	"github.com/spf13/pflag"

	"github.com/digimatic/vscode-launch-gen/cmd"
	"github.com/digimatic/vscode-launch-gen/pkg/output"
)

func main() {
	restoreColorMode := colorable.EnableColorsStdout(nil)
	defer restoreColorMode()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if !isDebugEnabled() {
		log.SetOutput(io.Discard)
	}

	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.WithErrorFormat("Error: %v", err))
		os.Exit(1)
	}
}

// isDebugEnabled parses --debug out of the raw command line so logging is
// live before cobra's own flag parsing runs. VSCODE_LAUNCH_GEN_DEBUG works as
// well for cases where passing a flag through is awkward.
func isDebugEnabled() bool {
	debug := false
	help := false
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)

	// Flags not in this set still need to parse (they belong to the real
	// command), so unknown flags must not be an error here.
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.BoolVar(&debug, "debug", false, "")

	// pflag treats "help" as special: without a defined help flag, Parse
	// returns ErrHelp when --help is on the command line. The real help text
	// is produced later by Execute.
	flags.BoolVarP(&help, "help", "h", false, "")

	if err := flags.Parse(os.Args[1:]); err != nil {
		return debug
	}

	if !debug {
		if on, err := strconv.ParseBool(os.Getenv("VSCODE_LAUNCH_GEN_DEBUG")); err == nil {
			debug = on
		}
	}

	return debug
}
