package renderer

import "github.com/etnz/mfolio"

// CashFlows is a cash flow series with its return.
type CashFlows struct {
	Flows  mfolio.CashFlows `json:"flows"`
	Total  mfolio.Money     `json:"total"`
	Return mfolio.Result    `json:"xirr"`
	Band   string           `json:"band,omitempty"`
}

// NewCashFlows solves flows as given, without sorting them.
func NewCashFlows(flows mfolio.CashFlows, bands mfolio.Bands) *CashFlows {
	ret := mfolio.Solve(flows)
	return &CashFlows{
		Flows:  flows,
		Total:  flows.Sum(),
		Return: ret,
		Band:   band(bands, ret),
	}
}
