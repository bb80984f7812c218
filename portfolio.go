package mfolio

import (
	"slices"
	"time"
)

// Portfolio is the immutable set of positions computed from a ledger and a market snapshot.
type Portfolio struct {
	currency  string
	positions []*Position // in order of first appearance in the ledger
	index     map[string]*Position
	skipped   []Skip
}

func newPortfolio(currency string) *Portfolio {
	return &Portfolio{currency: currency, index: make(map[string]*Position)}
}

// Currency returns the currency of the totals, "" for an empty portfolio.
func (p *Portfolio) Currency() string { return p.currency }

// Len returns the number of positions.
func (p *Portfolio) Len() int { return len(p.positions) }

// Positions returns a copy of all positions in order of first appearance.
func (p *Portfolio) Positions() []Position {
	ps := make([]Position, 0, len(p.positions))
	for _, pos := range p.positions {
		ps = append(ps, pos.clone())
	}
	return ps
}

// Position returns a copy of the position in instrument id.
func (p *Portfolio) Position(id string) (Position, bool) {
	pos, ok := p.index[id]
	if !ok {
		return Position{}, false
	}
	return pos.clone(), true
}

// Skipped returns the transactions that were not aggregated.
func (p *Portfolio) Skipped() []Skip { return slices.Clone(p.skipped) }

// Totals is the whole portfolio seen as a single position.
type Totals struct {
	Invested Money
	Value    Money
	Flows    CashFlows // concatenation of every position flows
}

// Totals sums all positions.
func (p *Portfolio) Totals() Totals {
	t := Totals{Invested: M(0, p.currency), Value: M(0, p.currency)}
	for _, pos := range p.positions {
		t.Invested = t.Invested.Add(pos.Invested)
		t.Value = t.Value.Add(pos.Value())
		t.Flows = append(t.Flows, pos.Flows...)
	}
	return t
}

// Gain returns the portfolio absolute return.
func (t Totals) Gain() Money { return t.Value.Sub(t.Invested) }

// AbsoluteReturn returns the gain relative to the invested capital.
func (t Totals) AbsoluteReturn() Percent { return t.Gain().Ratio(t.Invested) }

// Return computes the annualized return of the portfolio as if it was sold at asOf.
func (t Totals) Return(asOf time.Time) Result {
	return Solve(valuationFlows(t.Flows, asOf, t.Value))
}
