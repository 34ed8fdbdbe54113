package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/cumreturn"
	"github.com/etnz/cumreturn/date"
)

func sampleIndex() *cumreturn.Index {
	return cumreturn.Build(cumreturn.Returns{
		date.New(2015, time.January, 10):  0.10,
		date.New(2015, time.February, 10): 0.05,
		date.New(2015, time.April, 10):    0.15,
		date.New(2015, time.April, 15):    -0.10,
		date.New(2015, time.June, 10):     -0.12,
	})
}

// contains fails the test for every expected fragment missing from got.
func contains(t *testing.T, got string, fragments ...string) {
	t.Helper()
	for _, f := range fragments {
		if !strings.Contains(got, f) {
			t.Errorf("output does not contain %q:\n%s", f, got)
		}
	}
}

func TestQueryMarkdown(t *testing.T) {
	ix := sampleIndex()

	w, ok := ix.Lookup(date.New(2015, time.June, 30), date.New(2015, time.February, 1))
	contains(t, QueryMarkdown(w, ok),
		"# Cumulative Return from 2015-02-01 to 2015-06-30",
		"-4.37%",
		"2015-02-10",
		"2015-06-10",
		"Periods",
	)

	w, ok = ix.Lookup(date.New(2015, time.January, 31), date.New(2015, time.February, 1))
	contains(t, QueryMarkdown(w, ok),
		"# Cumulative Return from 2015-02-01 to 2015-01-31",
		"No return was observed",
	)
}

func TestIndexMarkdown(t *testing.T) {
	contains(t, IndexMarkdown(sampleIndex()),
		"# Cumulative Return Index from 2015-01-10 to 2015-06-10",
		"2015-04-15",
		"1.1000",
		"+10.00%",
		"-12.00%",
	)
	contains(t, IndexMarkdown(cumreturn.Build(nil)), "The history of returns is empty.")
}
