package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/cumreturn"
	md "github.com/nao1215/markdown"
)

// QueryMarkdown renders the result of a cumulative return query.
// ok is false when the query had no data, see [cumreturn.Index.Lookup].
func QueryMarkdown(w cumreturn.Window, ok bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Cumulative Return from %s to %s", w.Base, w.AsOf))

	if !ok {
		doc.PlainText("No return was observed in this range: the cumulative return is undefined (reported as 0).")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Cumulative Return"),
			md.Bold(w.Percent().SignedString()),
		},
		Rows: [][]string{
			{"First Period", w.Effective.From.String()},
			{"Last Period", w.Effective.To.String()},
			{"Periods", strconv.Itoa(w.Periods)},
		},
	})
	return doc.String()
}

// IndexMarkdown renders the whole cumulative return index.
func IndexMarkdown(ix *cumreturn.Index) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	r, ok := ix.Range()
	if !ok {
		doc.H1("Cumulative Return Index")
		doc.PlainText("The history of returns is empty.")
		return doc.String()
	}
	doc.H1(fmt.Sprintf("Cumulative Return Index from %s to %s", r.From, r.To))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Date",
			"Return",
			"Growth",
			"Cumulative",
		},
	}
	for on, e := range ix.Entries() {
		table.Rows = append(table.Rows, []string{
			on.String(),
			cumreturn.Percent(100 * e.Return).SignedString(),
			strconv.FormatFloat(e.Factor, 'f', 4, 64),
			cumreturn.Percent(100 * (e.Factor - 1)).SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}
