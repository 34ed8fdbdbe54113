// Package cmd implements the CLI application to query cumulative returns.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cumreturn"
	"github.com/google/subcommands"
)

const (
	EnvReturnsFile = "CUMRET_RETURNS_FILE"
	EnvVerbose     = "CUMRET_VERBOSE"
)

// Commands lists all subcommands, a main package registers them all.
var Commands = []subcommands.Command{
	&queryCmd{},
	&indexCmd{},
	&importCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	returnsFile = flag.String("returns-file", getenv(EnvReturnsFile, "returns.jsonl"), "Path to the periodic returns file (JSONL format), or $"+EnvReturnsFile)
	Verbose     = flag.Bool("v", getenvBool(EnvVerbose), "Verbose logging, or $"+EnvVerbose)
)

// stdout is where commands print their output, tests replace it.
var stdout io.Writer = os.Stdout

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}

// SetupLogging discards logs unless verbose mode is on. It must be called after flags are parsed.
func SetupLogging() {
	log.SetFlags(0)
	log.SetPrefix("cumret: ")
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// DecodeReturns decode periodic returns from the app returns file.
func DecodeReturns() (cumreturn.Returns, error) {
	returns, err := cumreturn.DecodeReturnsFile(*returnsFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, returns file %q does not exist, using an empty history instead", *returnsFile)
		return cumreturn.Returns{}, nil
	}
	return returns, err
}

// DecodeIndex builds the cumulative return index of the app returns file.
func DecodeIndex() (*cumreturn.Index, error) {
	returns, err := DecodeReturns()
	if err != nil {
		return nil, err
	}
	ix := cumreturn.Build(returns)
	if r, ok := ix.Range(); ok {
		log.Printf("loaded %d returns from %v to %v", ix.Len(), r.From, r.To)
	}
	return ix, nil
}

// EncodeReturns encode periodic returns into the app returns file.
func EncodeReturns(returns cumreturn.Returns) error {
	return cumreturn.EncodeReturnsFile(*returnsFile, returns)
}

// printMarkdown renders markdown for the terminal, or prints it as is if it cannot.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		out = md
	}
	fmt.Fprint(stdout, out)
}
