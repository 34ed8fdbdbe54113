package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cumreturn/renderer"
	"github.com/google/subcommands"
)

type indexCmd struct{}

func (*indexCmd) Name() string     { return "index" }
func (*indexCmd) Synopsis() string { return "display the cumulative return index" }
func (*indexCmd) Usage() string {
	return `cumret index

  Displays every observed return with its cumulative growth since the start of
  the history.
`
}

func (*indexCmd) SetFlags(f *flag.FlagSet) {}

func (*indexCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ix, err := DecodeIndex()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.IndexMarkdown(ix))
	return subcommands.ExitSuccess
}
