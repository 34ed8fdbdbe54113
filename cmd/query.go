package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cumreturn/date"
	"github.com/etnz/cumreturn/renderer"
	"github.com/google/subcommands"
)

type queryCmd struct {
	base   string
	period string
	date   string
	raw    bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "compute the cumulative return between two dates" }
func (*queryCmd) Usage() string {
	return `cumret query -b <base_date> | -p <period> [-d <asof_date>] [-raw]

  Computes the cumulative return from the base date to the as-of date, both
  included. Dates between two observed returns move to the closest observed
  return inside the range.
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "b", "", "The base date of the range.")
	f.StringVar(&c.period, "p", "", "Predefined period for the range (day, week, month, quarter, year) ending on the as-of date. Exclusive with -b.")
	f.StringVar(&c.date, "d", "0d", "The as-of date of the range (defaults to today).")
	f.BoolVar(&c.raw, "raw", false, "Print only the cumulative return as a fraction, 0 if there is no data.")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.base == "") == (c.period == "") {
		fmt.Fprintln(os.Stderr, "either -b or -p must be provided")
		return subcommands.ExitUsageError
	}

	asOf, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing as-of date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var base date.Date
	if c.base != "" {
		base, err = date.Parse(c.base)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing base date: %v\n", err)
			return subcommands.ExitUsageError
		}
	} else {
		period, err := date.ParsePeriod(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
		base = asOf.StartOf(period)
	}

	ix, err := DecodeIndex()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.raw {
		fmt.Fprintln(stdout, ix.CumulativeReturn(asOf, base))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.QueryMarkdown(ix.Lookup(asOf, base)))
	return subcommands.ExitSuccess
}
