package mfolio

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/etnz/mfolio/date"
	"github.com/shopspring/decimal"
)

// CashFlow is a dated, signed amount of money.
//
// Outflows (purchases) are negative, inflows (redemptions, valuations) are positive.
type CashFlow struct {
	Time   time.Time `json:"time"`
	Amount Money     `json:"amount"`
}

// NewCashFlow returns a cash flow of amount at t.
func NewCashFlow(t time.Time, amount Money) CashFlow {
	return CashFlow{Time: t, Amount: amount}
}

// CashFlows is a sequence of cash flows, in processing order.
type CashFlows []CashFlow

// Sorted returns a chronologically sorted copy of f. Flows at the same instant keep their relative order.
func (f CashFlows) Sorted() CashFlows {
	s := slices.Clone(f)
	slices.SortStableFunc(s, func(a, b CashFlow) int { return a.Time.Compare(b.Time) })
	return s
}

// With returns a copy of f with extra flows appended.
func (f CashFlows) With(extra ...CashFlow) CashFlows {
	s := make(CashFlows, 0, len(f)+len(extra))
	return append(append(s, f...), extra...)
}

// Sum returns the algebraic sum of all amounts.
func (f CashFlows) Sum() Money {
	var total Money
	for _, c := range f {
		total = total.Add(c.Amount)
	}
	return total
}

// DecodeCashFlows reads one "<date> <amount>" flow per line, fields separated by blanks or a comma.
// Blank lines and lines starting with # are ignored. Flows are returned in input order.
func DecodeCashFlows(r io.Reader, currency string) (CashFlows, error) {
	var flows CashFlows
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool { return r == ' ' || r == '\t' || r == ',' })
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want <date> <amount>, got %q", line, text)
		}
		on, err := date.ParseAny(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		amount, err := decimal.NewFromString(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount %q: %w", line, fields[1], err)
		}
		flows = append(flows, NewCashFlow(on.Time(), M(amount, currency)))
	}
	return flows, scanner.Err()
}
