package mfolio

import (
	"slices"
	"time"

	"github.com/etnz/mfolio/date"
)

// Position is the accumulated holding of one instrument.
type Position struct {
	ID        string
	Name      string
	Units     Quantity  // sum of purchased units
	Invested  Money     // sum of purchase price × units
	Price     Money     // latest known price per unit
	PriceDate date.Date // day of Price
	Flows     CashFlows // one outflow per purchase, in processing order
}

// Value returns the current market value of the position.
func (p Position) Value() Money { return p.Price.Mul(p.Units) }

// Gain returns the absolute return: current value minus invested capital.
func (p Position) Gain() Money { return p.Value().Sub(p.Invested) }

// AbsoluteReturn returns the gain relative to the invested capital, 0 if nothing was invested.
func (p Position) AbsoluteReturn() Percent { return p.Gain().Ratio(p.Invested) }

// Return computes the annualized return of the position as if it was sold at asOf for its current value.
func (p Position) Return(asOf time.Time) Result {
	return Solve(valuationFlows(p.Flows, asOf, p.Value()))
}

// valuationFlows sorts flows and closes them with a synthetic inflow of value at asOf.
func valuationFlows(flows CashFlows, asOf time.Time, value Money) CashFlows {
	return flows.Sorted().With(NewCashFlow(asOf, value))
}

func (p Position) clone() Position {
	p.Flows = slices.Clone(p.Flows)
	return p
}
