package mfolio

import (
	"fmt"
	"log"
)

// Aggregate groups purchase transactions by instrument into positions, valued with the market snapshot.
//
// Transactions that are invalid, on an unknown instrument or dated on a day without a price
// are skipped and reported by Portfolio.Skipped. The first currency met is the portfolio currency,
// transactions priced in another currency are skipped too. A nil market is an empty market.
func Aggregate(txs []Transaction, m *Market) *Portfolio {
	if m == nil {
		m = NewMarket()
	}
	p := newPortfolio("")
	skip := func(tx Transaction, reason error) {
		log.Printf("skipping transaction %s: %v", tx, reason)
		p.skipped = append(p.skipped, Skip{Transaction: tx, Reason: reason})
	}

	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			skip(tx, err)
			continue
		}
		series, ok := m.Series(tx.ID)
		if !ok {
			skip(tx, fmt.Errorf("%w %q", ErrUnknownInstrument, tx.ID))
			continue
		}
		if p.currency != "" && series.Currency() != p.currency {
			skip(tx, fmt.Errorf("%w: %q is in %s, the portfolio in %s", ErrCurrencyMismatch, tx.ID, series.Currency(), p.currency))
			continue
		}
		price, ok := series.PriceAt(tx.Date)
		if !ok {
			skip(tx, fmt.Errorf("%w for %q on %s", ErrMissingPrice, tx.ID, tx.Date))
			continue
		}

		pos, ok := p.index[tx.ID]
		if !ok {
			// The series latest price is the canonical current price, set once.
			on, latest, _ := series.Latest()
			pos = &Position{
				ID:        tx.ID,
				Name:      series.Name(),
				Units:     Q(0),
				Invested:  M(0, series.Currency()),
				Price:     latest,
				PriceDate: on,
			}
			if p.currency == "" {
				p.currency = series.Currency()
			}
			p.index[tx.ID] = pos
			p.positions = append(p.positions, pos)
		}

		invested := price.Mul(tx.Units)
		pos.Units = pos.Units.Add(tx.Units)
		pos.Invested = pos.Invested.Add(invested)
		pos.Flows = append(pos.Flows, NewCashFlow(tx.Date.Time(), invested.Neg()))
	}
	return p
}
