package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"

	"github.com/etnz/cumreturn"
	"github.com/google/subcommands"
)

type importCmd struct {
	dates   string
	returns string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import periodic returns from a json document" }
func (*importCmd) Usage() string {
	return `cumret import -dates <jsonpath> -returns <jsonpath> <file.json>

  Extracts days and returns from a json document, and merges them into the
  returns file. Imported days replace existing ones.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dates, "dates", "", "JSONPath selecting the list of days.")
	f.StringVar(&c.returns, "returns", "", "JSONPath selecting the list of returns, one per day.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.dates == "" || c.returns == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "-dates, -returns and exactly one json file must be provided")
		return subcommands.ExitUsageError
	}
	filename := f.Arg(0)

	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	imported, err := cumreturn.ExtractReturns(doc, c.dates, c.returns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting returns from %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	returns, err := DecodeReturns()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	maps.Copy(returns, imported)

	if err := EncodeReturns(returns); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Successfully imported %d returns into %s\n", len(imported), *returnsFile)
	return subcommands.ExitSuccess
}
