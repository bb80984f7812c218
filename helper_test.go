package mfolio

import (
	"time"

	"github.com/etnz/mfolio/date"
	"github.com/shopspring/decimal"
)

// INR is a helper for test to create rupees from const
func INR(v float64) Money { return M(v, "INR") }

// day is a helper for test to create dates from const
func day(y, m, d int) date.Date { return date.New(y, time.Month(m), d) }

// series is a helper for test to create an INR price series from day/price pairs.
func series(id, name string, points map[date.Date]float64) *PriceSeries {
	s := NewPriceSeries(id, name, "INR")
	for on, p := range points {
		s.Append(on, decimal.NewFromFloat(p))
	}
	return s
}
