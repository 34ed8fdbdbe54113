package date

import (
	"iter"
	"maps"
	"slices"
)

// Series stores a chronological series of values, each associated with a specific date.
//
// A Series is built once from a map, so dates are unique and always sorted.
// There is no way to modify it afterwards, hence it can be read concurrently.
type Series[T any] struct {
	days   []Date
	values []T
}

// NewSeries returns the chronological series of all (day, value) pairs in m.
func NewSeries[T any](m map[Date]T) *Series[T] {
	days := slices.SortedFunc(maps.Keys(m), Date.Compare)
	values := make([]T, len(days))
	for i, day := range days {
		values[i] = m[day]
	}
	return &Series[T]{days: days, values: values}
}

// Len returns the number of items in the series.
func (s *Series[T]) Len() int { return len(s.days) }

// At returns the i-th date and value, in chronological order.
func (s *Series[T]) At(i int) (Date, T) { return s.days[i], s.values[i] }

// Values returns an iterator over all date/value pairs in the series, in chronological order.
func (s *Series[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range s.days {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

// search returns the position of day in the series, or the position where
// it would be inserted.
func (s *Series[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(s.days, day, Date.Compare)
}

// Get returns the value at 'day' and true or zero value and false.
func (s *Series[T]) Get(day Date) (T, bool) {
	if i, found := s.search(day); found {
		return s.values[i], true
	}
	var zero T
	return zero, false
}

// Floor returns the index of the last date on or before day.
// It returns false if all dates are after day.
func (s *Series[T]) Floor(day Date) (int, bool) {
	i, found := s.search(day)
	if found {
		return i, true
	}
	// i is where day would be inserted, so i-1 is the last entry before it.
	if i == 0 {
		return 0, false
	}
	return i - 1, true
}

// Ceil returns the index of the first date on or after day.
// It returns false if all dates are before day.
func (s *Series[T]) Ceil(day Date) (int, bool) {
	i, _ := s.search(day)
	if i == len(s.days) {
		return 0, false
	}
	return i, true
}

// ValueAsOf returns the value on a given day, or the most recent value before it.
// It returns the value and true if found, otherwise it returns the zero value and false.
func (s *Series[T]) ValueAsOf(day Date) (T, bool) {
	i, ok := s.Floor(day)
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[i], true
}
