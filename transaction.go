package mfolio

import (
	"errors"
	"fmt"

	"github.com/etnz/mfolio/date"
)

var (
	// ErrInvalidTransaction reports a ledger row that cannot be a purchase.
	ErrInvalidTransaction = errors.New("invalid transaction")
	// ErrUnknownInstrument reports a transaction on an instrument the market has no prices for.
	ErrUnknownInstrument = errors.New("unknown instrument")
	// ErrMissingPrice reports a transaction dated on a day without a price, usually not settled yet.
	ErrMissingPrice = errors.New("missing price")
	// ErrCurrencyMismatch reports a transaction on an instrument priced in another currency than the portfolio.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrDataSource reports a failure of an external data source.
	ErrDataSource = errors.New("data source failure")
)

// Transaction is a purchase of units of an instrument on a given day.
type Transaction struct {
	Date  date.Date
	ID    string // instrument identifier, a scheme code for mutual funds
	Units Quantity
}

// NewTransaction returns a purchase of units of instrument id on day.
func NewTransaction(day date.Date, id string, units Quantity) Transaction {
	return Transaction{Date: day, ID: id, Units: units}
}

// Validate checks that the transaction is a well formed purchase.
func (t Transaction) Validate() error {
	switch {
	case t.ID == "":
		return fmt.Errorf("%w: missing instrument", ErrInvalidTransaction)
	case t.Date.IsZero():
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	case !t.Units.IsPositive():
		return fmt.Errorf("%w: units %s must be positive", ErrInvalidTransaction, t.Units)
	}
	return nil
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s", t.Date, t.ID, t.Units)
}

// Skip is a transaction left out of the aggregation, and why.
type Skip struct {
	Transaction Transaction
	Reason      error
}
