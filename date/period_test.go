package date

import (
	"testing"
	"time"
)

func TestPeriod_Range(t *testing.T) {
	testCases := []struct {
		name   string
		period Period
		in     Date
		want   Range
	}{
		{"Daily", Daily, New(2025, time.September, 8), Range{From: New(2025, time.September, 8), To: New(2025, time.September, 8)}},
		{"A Wednesday", Weekly, New(2025, time.September, 10), Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)}},
		{"A Sunday", Weekly, New(2025, time.September, 14), Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)}},
		{"A Monday", Weekly, New(2025, time.September, 8), Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)}},
		{"A leap year", Monthly, New(2024, time.February, 15), Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)}},
		{"Q2", Quarterly, New(2025, time.May, 20), Range{From: New(2025, time.April, 1), To: New(2025, time.June, 30)}},
		{"Q4", Quarterly, New(2025, time.December, 31), Range{From: New(2025, time.October, 1), To: New(2025, time.December, 31)}},
		{"Yearly", Yearly, New(2025, time.September, 8), Range{From: New(2025, time.January, 1), To: New(2025, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.period.Range(tc.in); got != tc.want {
				t.Errorf("%v.Range(%v) = %v, want %v", tc.period, tc.in, got, tc.want)
			}
		})
	}
}

func TestNewRange(t *testing.T) {
	a, b := New(2015, time.January, 10), New(2015, time.June, 10)
	want := Range{From: a, To: b}
	if got := NewRange(b, a); got != want {
		t.Errorf("NewRange(b, a) = %v, want %v", got, want)
	}
	if !want.Contains(a) || !want.Contains(b) || !want.Contains(New(2015, time.March, 1)) {
		t.Errorf("%v.Contains() must include boundaries and inner dates", want)
	}
	if want.Contains(a.Add(-1)) || want.Contains(b.Add(1)) {
		t.Errorf("%v.Contains() must exclude outer dates", want)
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Period
		wantErr bool
	}{
		{"Daily", "daily", Daily, false},
		{"Weekly", "weekly", Weekly, false},
		{"Monthly", "monthly", Monthly, false},
		{"Quarterly", "quarterly", Quarterly, false},
		{"Yearly", "yearly", Yearly, false},
		{"Unknown", "unknown", Daily, true},
		{"Day", "day", Daily, false},
		{"Week", "week", Weekly, false},
		{"Month", "Month", Monthly, false},
		{"Quarter", "quarter", Quarterly, false},
		{"Year", "year", Yearly, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParsePeriod() error = %v, wantErr %v", err, tc.wantErr)
				return
			}
			if got != tc.want {
				t.Errorf("ParsePeriod() = %v, want %v", got, tc.want)
			}
		})
	}
}
