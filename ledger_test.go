package mfolio

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

const sampleLedger = `Date,Scheme Code,Units
05/01/2024,119551,12.5

10-02-2024, 120503 ,3
2024-03-01,119551,1.25
short,row
31/02/2024,119551,1
01/03/2024,119551,abc
01/03/2024,119551,-2
01/03/2024,,2
`

func TestDecodeTransactions(t *testing.T) {
	txs, err := DecodeTransactions(strings.NewReader(sampleLedger))
	if err != nil {
		t.Fatalf("DecodeTransactions() unexpected error %v", err)
	}
	want := []struct {
		on    string
		id    string
		units Quantity
	}{
		{"2024-01-05", "119551", Q(12.5)},
		{"2024-02-10", "120503", Q(3)},
		{"2024-03-01", "119551", Q(1.25)},
	}
	if len(txs) != len(want) {
		t.Fatalf("DecodeTransactions() returned %d transactions want %d: %v", len(txs), len(want), txs)
	}
	for i, w := range want {
		got := txs[i]
		if got.Date.String() != w.on || got.ID != w.id || !got.Units.Equal(w.units) {
			t.Errorf("transaction[%d] = %v want %s %s %s", i, got, w.on, w.id, w.units)
		}
	}
}

func TestDecodeTransactions_Malformed(t *testing.T) {
	_, err := DecodeTransactions(strings.NewReader("Date,Scheme,Units\n\"05/01/2024,1,1\n"))
	if err == nil {
		t.Errorf("DecodeTransactions() expected an error on an unterminated quote")
	}
}

func TestEncodeTransactions(t *testing.T) {
	txs := []Transaction{
		NewTransaction(day(2024, 1, 5), "119551", Q(12.5)),
		NewTransaction(day(2024, 11, 20), "120503", Q(3)),
	}
	var b bytes.Buffer
	if err := EncodeTransactions(&b, txs); err != nil {
		t.Fatalf("EncodeTransactions() unexpected error %v", err)
	}
	want := "Date,Scheme Code,Units\n05/01/2024,119551,12.5\n20/11/2024,120503,3\n"
	if b.String() != want {
		t.Errorf("EncodeTransactions() = %q want %q", b.String(), want)
	}
}

func TestLedgerFile(t *testing.T) {
	ctx := context.Background()
	f := LedgerFile(filepath.Join(t.TempDir(), "ledger.csv"))

	if _, err := f.Transactions(ctx); err == nil {
		t.Errorf("Transactions() on a missing file expected an error")
	}
	if err := f.Submit(ctx, NewTransaction(day(2024, 1, 5), "119551", Q(0))); err == nil {
		t.Errorf("Submit() of zero units expected an error")
	}

	for _, tx := range []Transaction{
		NewTransaction(day(2024, 1, 5), "119551", Q(12.5)),
		NewTransaction(day(2024, 2, 5), "119551", Q(2)),
	} {
		if err := f.Submit(ctx, tx); err != nil {
			t.Fatalf("Submit(%v) unexpected error %v", tx, err)
		}
	}

	txs, err := f.Transactions(ctx)
	if err != nil {
		t.Fatalf("Transactions() unexpected error %v", err)
	}
	if len(txs) != 2 || txs[1].Date != day(2024, 2, 5) || !txs[1].Units.Equal(Q(2)) {
		t.Errorf("Transactions() = %v", txs)
	}
}
