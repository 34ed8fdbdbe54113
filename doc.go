// Package cumreturn computes cumulative returns over arbitrary date ranges from
// a sparse series of periodic returns.
//
// The cumulative return index is computed once, when the [Index] is built, as
// the running product of (1 + r) over all observed days. A range query then
// only needs two binary searches and one division:
//
//	ix := cumreturn.Build(returns)
//	r := ix.CumulativeReturn(asOf, base)
//
// Query dates need not be observed days: the base date snaps forward to the
// next observed day, and the as-of date snaps back to the previous one. Queries
// without data yield 0, or false with [Index.Lookup].
//
// Periodic returns are persisted as JSONL files, one day per line, see
// [DecodeReturns] and [EncodeReturns].
//
// This package serves as the foundational logic for the `cumret` command-line
// tool.
package cumreturn
