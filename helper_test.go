package cumreturn

import (
	"math"
	"time"

	"github.com/etnz/cumreturn/date"
)

// sample is the history used across tests: five sparse periodic returns over 2015.
func sample() Returns {
	return Returns{
		date.New(2015, time.January, 10):  0.10,
		date.New(2015, time.February, 10): 0.05,
		date.New(2015, time.April, 10):    0.15,
		date.New(2015, time.April, 15):    -0.10,
		date.New(2015, time.June, 10):     -0.12,
	}
}

// d is a helper for test to create a date from const.
func d(month time.Month, day int) date.Date { return date.New(2015, month, day) }

// near reports whether a and b are equal up to floating point rounding.
func near(a, b float64) bool { return math.Abs(a-b) < 1e-12 }
