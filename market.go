package mfolio

import (
	"maps"
	"slices"

	"github.com/etnz/mfolio/date"
	"github.com/shopspring/decimal"
)

// PriceSeries is the price history of one instrument.
type PriceSeries struct {
	id       string
	name     string
	currency string
	prices   date.History[decimal.Decimal]
}

// NewPriceSeries returns an empty price series for instrument id.
func NewPriceSeries(id, name, currency string) *PriceSeries {
	return &PriceSeries{id: id, name: name, currency: currency}
}

func (s *PriceSeries) ID() string       { return s.id }
func (s *PriceSeries) Name() string     { return s.name }
func (s *PriceSeries) Currency() string { return s.currency }
func (s *PriceSeries) Len() int         { return s.prices.Len() }

// Append records the price on a day, overwriting any previous price for that day.
func (s *PriceSeries) Append(on date.Date, price decimal.Decimal) *PriceSeries {
	s.prices.Append(on, price)
	return s
}

// PriceAt returns the price on that exact day.
func (s *PriceSeries) PriceAt(on date.Date) (Money, bool) {
	p, ok := s.prices.Get(on)
	if !ok {
		return Money{}, false
	}
	return M(p, s.currency), true
}

// Latest returns the most recent price and its day.
func (s *PriceSeries) Latest() (date.Date, Money, bool) {
	if s.prices.Len() == 0 {
		return date.Date{}, Money{}, false
	}
	on, p := s.prices.Latest()
	return on, M(p, s.currency), true
}

// Market is a snapshot of price series indexed by instrument id.
//
// It is built once from fully fetched series and never modified afterwards.
type Market struct {
	index map[string]*PriceSeries
}

// NewMarket returns a market of the given series. A later series replaces an earlier one with the same id.
func NewMarket(series ...*PriceSeries) *Market {
	m := &Market{index: make(map[string]*PriceSeries, len(series))}
	for _, s := range series {
		m.index[s.id] = s
	}
	return m
}

// Series returns the price series of instrument id.
func (m *Market) Series(id string) (*PriceSeries, bool) {
	s, ok := m.index[id]
	return s, ok
}

func (m *Market) Has(id string) bool {
	_, ok := m.index[id]
	return ok
}

// IDs returns the sorted instrument ids of the market.
func (m *Market) IDs() []string { return slices.Sorted(maps.Keys(m.index)) }
