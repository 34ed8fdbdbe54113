package cumreturn

import (
	"iter"

	"github.com/etnz/cumreturn/date"
)

// Returns maps each observed day to the periodic return realized on that day,
// as a fraction (0.05 is +5%).
type Returns map[date.Date]float64

// Index is the cumulative return index of a series of periodic returns.
//
// The growth factor stored for a day D is the product of (1 + r) for every
// observed day up to and including D. An Index is immutable once built, and
// safe for concurrent use.
type Index struct {
	returns *date.Series[float64] // periodic returns
	factors []float64             // factors[i] is the growth factor of returns.At(i)
}

// Build computes the cumulative return index of returns.
//
// returns is not retained.
func Build(returns Returns) *Index {
	series := date.NewSeries(returns)
	factors := make([]float64, series.Len())
	factor := 1.0
	i := 0
	for _, r := range series.Values() {
		factor *= 1 + r
		factors[i] = factor
		i++
	}
	return &Index{returns: series, factors: factors}
}

// Len returns the number of observed days.
func (ix *Index) Len() int { return ix.returns.Len() }

// Dates returns an iterator over the observed days, in chronological order.
func (ix *Index) Dates() iter.Seq[date.Date] {
	return func(yield func(date.Date) bool) {
		for on := range ix.returns.Values() {
			if !yield(on) {
				return
			}
		}
	}
}

// Entries returns an iterator over each observed day with its periodic return and growth factor.
func (ix *Index) Entries() iter.Seq2[date.Date, Entry] {
	return func(yield func(date.Date, Entry) bool) {
		i := 0
		for on, r := range ix.returns.Values() {
			if !yield(on, Entry{Return: r, Factor: ix.factors[i]}) {
				return
			}
			i++
		}
	}
}

// Entry is the content of the index for one observed day.
type Entry struct {
	Return float64 // periodic return of the day
	Factor float64 // growth factor since the start of history, this day included
}

// Factor returns the growth factor of an observed day.
func (ix *Index) Factor(day date.Date) (float64, bool) {
	i, ok := ix.returns.Floor(day)
	if !ok {
		return 0, false
	}
	if on, _ := ix.returns.At(i); on != day {
		return 0, false
	}
	return ix.factors[i], true
}

// Range returns the span of observed days, or false if the index is empty.
func (ix *Index) Range() (date.Range, bool) {
	n := ix.Len()
	if n == 0 {
		return date.Range{}, false
	}
	first, _ := ix.returns.At(0)
	last, _ := ix.returns.At(n - 1)
	return date.Range{From: first, To: last}, true
}

// Window is the resolution of a cumulative return query.
type Window struct {
	AsOf, Base date.Date  // requested days
	Effective  date.Range // observed days actually used, boundaries included
	Periods    int        // number of observed days in Effective
	Return     float64    // cumulative return over Effective
}

// Percent returns the cumulative return in percent.
func (w Window) Percent() Percent { return Percent(100 * w.Return) }

// Lookup computes the cumulative return from base to asOf.
//
// base is snapped to the first observed day on or after it, and asOf to the last
// observed day on or before it. The return of the effective base day is
// included in the result.
//
// It returns false when there is no data to compute a return: asOf is before
// base, base is after all observed days, asOf is before all observed days, or
// no day was observed between them.
func (ix *Index) Lookup(asOf, base date.Date) (Window, bool) {
	w := Window{AsOf: asOf, Base: base}
	if asOf.Before(base) {
		return w, false
	}
	from, ok := ix.returns.Ceil(base)
	if !ok {
		return w, false
	}
	to, ok := ix.returns.Floor(asOf)
	if !ok {
		return w, false
	}
	if to < from {
		// Nothing observed in [base, asOf].
		return w, false
	}

	w.Effective.From, _ = ix.returns.At(from)
	w.Effective.To, _ = ix.returns.At(to)
	w.Periods = to - from + 1
	w.Return = ix.factors[to] - 1
	if from > 0 {
		// Divide out the growth realized before the effective base.
		w.Return = ix.factors[to]/ix.factors[from-1] - 1
	}
	return w, true
}

// CumulativeReturn returns the cumulative return from base to asOf, as a fraction.
//
// It follows the rules of [Index.Lookup] but returns 0 when there is no data,
// which cannot be told apart from a flat return.
func (ix *Index) CumulativeReturn(asOf, base date.Date) float64 {
	w, ok := ix.Lookup(asOf, base)
	if !ok {
		return 0
	}
	return w.Return
}
