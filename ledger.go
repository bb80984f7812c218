package mfolio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/etnz/mfolio/date"
)

/*
Ledger CSV layout, as published by the ledger sheet:

	Date,Scheme Code,Units
	05/01/2024,119551,12.345

- the first row is a header and is ignored
- dates are day first (dd/mm/yyyy or dd-mm-yyyy), ISO dates are accepted too
- blank rows and rows with less than 3 columns are ignored
*/

var ledgerHeader = []string{"Date", "Scheme Code", "Units"}

// DecodeTransactions reads a ledger CSV. Rows that cannot be parsed are logged and skipped.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var txs []Transaction
	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ledger: %w", err)
		}
		if line == 1 || len(row) < 3 {
			continue
		}
		tx, err := parseRow(row)
		if err != nil {
			log.Printf("ledger record %d ignored: %v", line, err)
			continue
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func parseRow(row []string) (Transaction, error) {
	on, err := date.ParseAny(row[0])
	if err != nil {
		return Transaction{}, err
	}
	units, err := ParseQuantity(strings.TrimSpace(row[2]))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid units %q: %w", row[2], err)
	}
	tx := NewTransaction(on, strings.TrimSpace(row[1]), units)
	return tx, tx.Validate()
}

// EncodeTransactions writes txs as a ledger CSV, header included.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeader); err != nil {
		return err
	}
	for _, tx := range txs {
		if err := cw.Write(ledgerRow(tx)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LedgerFile is a ledger CSV on the local disk.
type LedgerFile string

// Transactions decodes the ledger file.
func (f LedgerFile) Transactions(_ context.Context) ([]Transaction, error) {
	r, err := os.Open(string(f))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return DecodeTransactions(r)
}

// Submit appends tx to the ledger file, creating it with a header if it does not exist.
func (f LedgerFile) Submit(_ context.Context, tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	_, err := os.Stat(string(f))
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	w, err := os.OpenFile(string(f), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer w.Close()

	cw := csv.NewWriter(w)
	if !exists {
		if err := cw.Write(ledgerHeader); err != nil {
			return err
		}
	}
	if err := cw.Write(ledgerRow(tx)); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func ledgerRow(tx Transaction) []string {
	return []string{tx.Date.Time().Format("02/01/2006"), tx.ID, tx.Units.String()}
}
