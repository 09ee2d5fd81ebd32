// Command ccdtree is a command-line driver around the phylomds package,
// exposing the mds, ccd and mixing subcommands sketched in spec.md
// section 6. It is not part of the core module and owns its own
// concerns: flag parsing, file I/O and human-readable output.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "ccdtree",
		Short:         "Analyse a sample of phylogenetic trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostic messages to stderr")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := zerolog.Disabled
		if verbose {
			level = zerolog.InfoLevel
		}
		setLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level))
	}

	root.AddCommand(newMDSCmd(), newCCDCmd(), newMixingCmd())
	return root
}

var log = zerolog.Nop()

func setLogger(l zerolog.Logger) { log = l }
