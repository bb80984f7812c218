package mfolio

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// TransactionSource supplies the purchase ledger.
type TransactionSource interface {
	Transactions(ctx context.Context) ([]Transaction, error)
}

// PriceProvider supplies the price history of an instrument.
type PriceProvider interface {
	PriceSeries(ctx context.Context, id string) (*PriceSeries, error)
}

// TransactionSink appends a transaction to the ledger.
type TransactionSink interface {
	Submit(ctx context.Context, tx Transaction) error
}

// DefaultConcurrency is the number of price series fetched in parallel by Refresh.
const DefaultConcurrency = 4

// FetchMarket fetches the price series of every id, at most concurrency at a time, and returns
// them as a market snapshot. Any failure fails the whole fetch.
func FetchMarket(ctx context.Context, provider PriceProvider, ids []string, concurrency int) (*Market, error) {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	ids = slices.Compact(slices.Sorted(slices.Values(ids)))

	series := make([]*PriceSeries, len(ids))
	errs := make([]error, len(ids))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}
			s, err := provider.PriceSeries(ctx, id)
			switch {
			case err != nil:
				errs[i] = fmt.Errorf("prices of %q: %w", id, err)
			case s == nil || s.Len() == 0:
				errs[i] = fmt.Errorf("prices of %q: empty series", id)
			default:
				series[i] = s
			}
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	return NewMarket(series...), nil
}

// Refresh rebuilds the portfolio from scratch: it reads the ledger, fetches the prices of every
// instrument in it and only then aggregates.
func Refresh(ctx context.Context, src TransactionSource, provider PriceProvider, concurrency int) (*Portfolio, error) {
	txs, err := src.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: reading ledger: %w", ErrDataSource, err)
	}
	ids := make([]string, 0, len(txs))
	for _, tx := range txs {
		if tx.ID != "" {
			ids = append(ids, tx.ID)
		}
	}
	market, err := FetchMarket(ctx, provider, ids, concurrency)
	if err != nil {
		return nil, err
	}
	return Aggregate(txs, market), nil
}
