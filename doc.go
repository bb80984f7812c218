// Package mfolio tracks a personal mutual fund portfolio.
//
// A ledger of dated fund purchases is aggregated against the NAV history of
// each fund into one Position per fund: units held, invested capital, current
// value, absolute return and annualized return (XIRR).
//
//   - Solve computes the XIRR of irregular cash flows by Newton-Raphson and
//     tells whether it converged.
//   - Aggregate turns transactions and a Market snapshot into a Portfolio,
//     recording the transactions it had to skip and why.
//   - Refresh fetches the ledger and the NAV histories from their sources
//     before aggregating.
//   - Bands classify returns and SortPositions orders positions for display.
//
// The mfo command is the command-line front end of this package.
package mfolio
