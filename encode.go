package cumreturn

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/cumreturn/date"
	"github.com/shopspring/decimal"
)

// This file contains code to persist periodic returns in a way that is still human-readable and git-friendly.
//
// Returns are stored in JSONL, one observed day per line:
//
//	{"on":"2015-01-10","return":0.1}
//
// Lines are written in chronological order.

// jreturn is the object read from, or written to, a single line.
type jreturn struct {
	On     date.Date `json:"on"`
	Return float64   `json:"return"`
}

// DecodeReturns reads periodic returns in JSONL format.
//
// The return can be a json number or a decimal string like "0.05". A day
// defined twice is an error.
func DecodeReturns(r io.Reader) (Returns, error) {
	// the decoded line accepts quoted decimals, hence the dedicated struct.
	type jline struct {
		On     *date.Date       `json:"on"`
		Return *decimal.Decimal `json:"return"`
	}

	returns := make(Returns)
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var jl jline
		if err := json.Unmarshal(line, &jl); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", i, string(line), err)
		}
		if jl.On == nil || jl.On.IsZero() {
			return nil, fmt.Errorf("format error on line %d: missing the property %q with a date", i, "on")
		}
		if jl.Return == nil {
			return nil, fmt.Errorf("format error on line %d: missing the property %q with a number", i, "return")
		}
		if _, exists := returns[*jl.On]; exists {
			return nil, fmt.Errorf("format error on line %d: day %v is already defined", i, *jl.On)
		}
		returns[*jl.On] = jl.Return.InexactFloat64()
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read line %d: %w", i+1, err)
	}
	return returns, nil
}

// DecodeReturnsFile reads periodic returns from a JSONL file.
func DecodeReturnsFile(filename string) (Returns, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer f.Close()

	returns, err := DecodeReturns(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %q: %w", filename, err)
	}
	return returns, nil
}

// EncodeReturns writes periodic returns in JSONL format, in chronological order.
func EncodeReturns(w io.Writer, returns Returns) error {
	enc := json.NewEncoder(w)
	for on, r := range date.NewSeries(returns).Values() {
		if err := enc.Encode(jreturn{On: on, Return: r}); err != nil {
			return fmt.Errorf("cannot encode return on %v: %w", on, err)
		}
	}
	return nil
}

// EncodeReturnsFile writes periodic returns into a JSONL file, replacing its content.
func EncodeReturnsFile(filename string, returns Returns) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot open %q for writing: %w", filename, err)
	}
	if err := EncodeReturns(f, returns); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode %q: %w", filename, err)
	}
	return f.Close()
}
