package renderer

import (
	"time"

	"github.com/etnz/mfolio"
	"github.com/etnz/mfolio/date"
)

// Holding is a struct to represent the holding data in json.
// Numbers are handled using the exact decimal types (Money, Quantity, etc.)
// So that they already contain basics renderers (SignedString etc.)
type Holding struct {
	// AsOf is the valuation time of the positions.
	AsOf time.Time `json:"asOf"`
	// SortedBy is the name of the sort key of Positions.
	SortedBy  string            `json:"sortedBy"`
	Positions []HoldingPosition `json:"positions"`
	Total     HoldingTotal      `json:"total"`
	// Skipped lists ledger transactions left out of the positions.
	Skipped []HoldingSkip `json:"skipped,omitempty"`
}

// HoldingPosition represents a single fund holding.
type HoldingPosition struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Units     mfolio.Quantity `json:"units"`
	Price     mfolio.Money    `json:"price"`
	PriceDate date.Date       `json:"priceDate"`
	Invested  mfolio.Money    `json:"invested"`
	Value     mfolio.Money    `json:"value"`
	Gain      mfolio.Money    `json:"gain"`
	Absolute  mfolio.Percent  `json:"absolute"`
	Return    mfolio.Result   `json:"xirr"`
	Band      string          `json:"band,omitempty"`
}

// HoldingTotal represents the whole portfolio.
type HoldingTotal struct {
	Invested mfolio.Money   `json:"invested"`
	Value    mfolio.Money   `json:"value"`
	Gain     mfolio.Money   `json:"gain"`
	Absolute mfolio.Percent `json:"absolute"`
	Return   mfolio.Result  `json:"xirr"`
	Band     string         `json:"band,omitempty"`
}

// HoldingSkip represents a transaction that was not aggregated.
type HoldingSkip struct {
	Date   date.Date       `json:"date"`
	ID     string          `json:"id"`
	Units  mfolio.Quantity `json:"units"`
	Reason string          `json:"reason"`
}

// NewHolding creates a new Holding struct from a portfolio valued at asOf.
func NewHolding(p *mfolio.Portfolio, key mfolio.SortKey, bands mfolio.Bands, asOf time.Time) *Holding {
	positions := p.Positions()
	mfolio.SortPositions(positions, key, asOf)

	h := &Holding{
		AsOf:      asOf,
		SortedBy:  key.String(),
		Positions: make([]HoldingPosition, 0, len(positions)),
	}
	for _, pos := range positions {
		ret := pos.Return(asOf)
		h.Positions = append(h.Positions, HoldingPosition{
			ID:        pos.ID,
			Name:      pos.Name,
			Units:     pos.Units,
			Price:     pos.Price,
			PriceDate: pos.PriceDate,
			Invested:  pos.Invested,
			Value:     pos.Value(),
			Gain:      pos.Gain(),
			Absolute:  pos.AbsoluteReturn(),
			Return:    ret,
			Band:      band(bands, ret),
		})
	}

	totals := p.Totals()
	ret := totals.Return(asOf)
	h.Total = HoldingTotal{
		Invested: totals.Invested,
		Value:    totals.Value,
		Gain:     totals.Gain(),
		Absolute: totals.AbsoluteReturn(),
		Return:   ret,
		Band:     band(bands, ret),
	}

	for _, s := range p.Skipped() {
		h.Skipped = append(h.Skipped, HoldingSkip{
			Date:   s.Transaction.Date,
			ID:     s.Transaction.ID,
			Units:  s.Transaction.Units,
			Reason: s.Reason.Error(),
		})
	}
	return h
}

// band classifies r, only when there is a rate to classify.
func band(bands mfolio.Bands, r mfolio.Result) string {
	switch r.Status {
	case mfolio.Converged, mfolio.IterationCap:
		return bands.Classify(r.Rate).Name
	default:
		return ""
	}
}
