// Package sheet connects the transaction ledger kept in a spreadsheet: it reads the sheet
// published as CSV and appends rows through a web script endpoint.
package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/etnz/mfolio"
	"github.com/google/uuid"
)

const DefaultTimeout = 30 * time.Second

// Feed reads the ledger from the CSV export of a published sheet. It implements mfolio.TransactionSource.
type Feed struct {
	url    string
	client *http.Client
	now    func() time.Time
}

// NewFeed returns a feed reading csvURL.
func NewFeed(csvURL string) *Feed {
	return &Feed{url: csvURL, client: &http.Client{Timeout: DefaultTimeout}, now: time.Now}
}

// Transactions downloads and decodes the ledger. A cache buster parameter is added to always
// get the latest version of the sheet.
func (f *Feed) Transactions(ctx context.Context) ([]mfolio.Transaction, error) {
	u, err := url.Parse(f.url)
	if err != nil {
		return nil, fmt.Errorf("invalid sheet url: %w", err)
	}
	q := u.Query()
	q.Set("cb", strconv.FormatInt(f.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", u.Host, u.Path, resp.Status)
	}
	return mfolio.DecodeTransactions(resp.Body)
}

// Script appends transactions to the sheet by posting them to a web script.
// It implements mfolio.TransactionSink.
type Script struct {
	url    string
	client *http.Client
}

// NewScript returns a sink posting to scriptURL.
func NewScript(scriptURL string) *Script {
	return &Script{url: scriptURL, client: &http.Client{Timeout: DefaultTimeout}}
}

// submission is the JSON body posted to the script, all values are strings.
type submission struct {
	Ref   string `json:"ref"`
	Date  string `json:"date"` // yyyy-mm-dd
	ID    string `json:"id"`
	Units string `json:"units"`
}

// Submit posts tx to the script. The script gives no confirmation: only transport failures
// are errors, the response status is merely logged. The sheet is updated asynchronously.
func (s *Script) Submit(ctx context.Context, tx mfolio.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	body, err := json.Marshal(submission{
		Ref:   uuid.NewString(),
		Date:  tx.Date.String(),
		ID:    tx.ID,
		Units: tx.Units.String(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting transaction: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	log.Printf("POST %s %s: %s", tx, body, resp.Status)
	return nil
}

var (
	_ mfolio.TransactionSource = (*Feed)(nil)
	_ mfolio.TransactionSink   = (*Script)(nil)
)
