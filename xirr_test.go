package mfolio

import (
	"math"
	"testing"
	"time"
)

var t0 = time.Date(2023, time.March, 15, 10, 30, 0, 0, time.UTC)

func TestSolve_OneYear(t *testing.T) {
	for _, r := range []float64{0.05, 0.10, 0.25, -0.10} {
		flows := []CashFlow{
			NewCashFlow(t0, INR(-1000)),
			NewCashFlow(t0.Add(xirrYear), INR(1000*(1+r))),
		}
		got := Solve(flows)
		if got.Status != Converged {
			t.Errorf("Solve(%v) status = %v want converged", r, got.Status)
		}
		if math.Abs(float64(got.Rate)-r*100) > 1e-4 {
			t.Errorf("Solve(%v) = %v want %v", r, got.Rate, r*100)
		}
		if got := XIRR(flows); math.Abs(float64(got)-r*100) > 1e-4 {
			t.Errorf("XIRR(%v) = %v want %v", r, got, r*100)
		}
	}
}

func TestSolve_Insufficient(t *testing.T) {
	tests := []struct {
		name  string
		flows []CashFlow
	}{
		{"nil", nil},
		{"empty", []CashFlow{}},
		{"single", []CashFlow{NewCashFlow(t0, INR(-1000))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Solve(tt.flows)
			if got.Status != Insufficient || got.Rate != 0 {
				t.Errorf("Solve() = %+v want insufficient 0", got)
			}
			if got.Converged() {
				t.Errorf("Solve().Converged() = true")
			}
			if XIRR(tt.flows) != 0 {
				t.Errorf("XIRR() = %v want 0", XIRR(tt.flows))
			}
		})
	}
}

func TestSolve_TimeShiftInvariant(t *testing.T) {
	flows := []CashFlow{
		NewCashFlow(t0, INR(-1000)),
		NewCashFlow(t0.AddDate(0, 3, 0), INR(-500)),
		NewCashFlow(t0.AddDate(0, 9, 12), INR(-250)),
		NewCashFlow(t0.AddDate(2, 0, 0), INR(2100)),
	}
	want := Solve(flows)
	if !want.Converged() {
		t.Fatalf("Solve() = %+v want converged", want)
	}

	for _, shift := range []time.Duration{time.Hour, 1000 * 24 * time.Hour, 365 * 24 * time.Hour * 7} {
		shifted := make([]CashFlow, len(flows))
		for i, f := range flows {
			shifted[i] = NewCashFlow(f.Time.Add(shift), f.Amount)
		}
		got := Solve(shifted)
		if !got.Rate.Equal(want.Rate) || got.Status != want.Status {
			t.Errorf("Solve(shifted by %v) = %+v want %+v", shift, got, want)
		}
	}
}

func TestSolve_TwentyPercent(t *testing.T) {
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	flows := []CashFlow{
		NewCashFlow(now.Add(-xirrYear), INR(-1000)),
		NewCashFlow(now, INR(1200)),
	}
	got := Solve(flows)
	if !got.Converged() || math.Abs(float64(got.Rate)-20) > 0.01 {
		t.Errorf("Solve() = %+v want converged 20%%", got)
	}
	if got.String() != "20.00%" {
		t.Errorf("Solve().String() = %q want %q", got.String(), "20.00%")
	}
}

func TestSolve_OriginIndependent(t *testing.T) {
	// Flows in reverse chronological order: the first flow is the origin, the root is unchanged.
	flows := []CashFlow{
		NewCashFlow(t0.Add(xirrYear), INR(1200)),
		NewCashFlow(t0, INR(-1000)),
	}
	got := Solve(flows)
	if !got.Converged() || math.Abs(float64(got.Rate)-20) > 0.01 {
		t.Errorf("Solve(reversed) = %+v want converged 20%%", got)
	}
}

func TestSolve_Degenerate(t *testing.T) {
	tests := []struct {
		name  string
		flows []CashFlow
	}{
		{"all outflows", []CashFlow{NewCashFlow(t0, INR(-1000)), NewCashFlow(t0.Add(xirrYear), INR(-10))}},
		{"all inflows", []CashFlow{NewCashFlow(t0, INR(1000)), NewCashFlow(t0.Add(xirrYear), INR(10))}},
		{"zeros", []CashFlow{NewCashFlow(t0, INR(0)), NewCashFlow(t0.Add(xirrYear), INR(0))}},
		// every flow on the same day: the derivative vanishes.
		{"same day", []CashFlow{NewCashFlow(t0, INR(-1000)), NewCashFlow(t0, INR(1100))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Solve(tt.flows)
			if got.Status != Degenerate {
				t.Errorf("Solve() = %+v want degenerate", got)
			}
			if got.String() != "n/a" {
				t.Errorf("Solve().String() = %q want n/a", got.String())
			}
			if XIRR(tt.flows) != 0 {
				t.Errorf("XIRR() = %v want 0", XIRR(tt.flows))
			}
		})
	}
}

func TestSolve_NoRootIsNeverNaN(t *testing.T) {
	// NPV(v) = -1000 + 3000v - 2300v² is negative for every discount factor v.
	flows := []CashFlow{
		NewCashFlow(t0, INR(-1000)),
		NewCashFlow(t0.Add(xirrYear), INR(3000)),
		NewCashFlow(t0.Add(2*xirrYear), INR(-2300)),
	}
	got := Solve(flows)
	if got.Converged() {
		t.Errorf("Solve() = %+v, want not converged", got)
	}
	if math.IsNaN(float64(got.Rate)) || math.IsInf(float64(got.Rate), 0) {
		t.Errorf("Solve() rate = %v, want a finite number", got.Rate)
	}
	if x := XIRR(flows); math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
		t.Errorf("XIRR() = %v, want a finite number", x)
	}
}

func TestSolve_LargeLosses(t *testing.T) {
	// A single purchase and its current value: the rate is (value/1000)^(1/years) - 1.
	tests := []struct {
		name  string
		after time.Duration
		value float64
	}{
		{"down 1% in 3 days", 3 * 24 * time.Hour, 990},
		{"down 40% in 30 days", 30 * 24 * time.Hour, 600},
		{"down 90% in a year", xirrYear, 100},
		{"down 0.1% in a year", xirrYear, 999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flows := []CashFlow{
				NewCashFlow(t0, INR(-1000)),
				NewCashFlow(t0.Add(tt.after), INR(tt.value)),
			}
			years := float64(tt.after) / float64(xirrYear)
			want := (math.Pow(tt.value/1000, 1/years) - 1) * 100

			got := Solve(flows)
			if !got.Converged() {
				t.Fatalf("Solve() = %+v want converged to %.4f%%", got, want)
			}
			if math.Abs(float64(got.Rate)-want) > 1e-4 {
				t.Errorf("Solve() = %v want %.4f%%", got.Rate, want)
			}
			if got.Rate <= -100 {
				t.Errorf("Solve() = %v want above -100%%", got.Rate)
			}
		})
	}
}

func TestSolve_IterationCap(t *testing.T) {
	defer func(n int) { xirrMaxIterations = n }(xirrMaxIterations)
	xirrMaxIterations = 2

	// Two Newton steps from 10% get close to 20% but not within precision.
	flows := []CashFlow{
		NewCashFlow(t0, INR(-1000)),
		NewCashFlow(t0.Add(xirrYear), INR(1200)),
	}
	got := Solve(flows)
	if got.Status != IterationCap {
		t.Fatalf("Solve() = %+v want iteration cap", got)
	}
	if got.Iterations != xirrMaxIterations {
		t.Errorf("Solve().Iterations = %d want %d", got.Iterations, xirrMaxIterations)
	}
	if !finite(float64(got.Rate)) || got.Rate < 19 || got.Rate > 20 {
		t.Errorf("Solve().Rate = %v want the last estimate, close to 20%%", got.Rate)
	}
	if x := XIRR(flows); x != got.Rate {
		t.Errorf("XIRR() = %v want the capped estimate %v", x, got.Rate)
	}
	if s := got.String(); s[0] != '~' {
		t.Errorf("Solve().String() = %q want an approximate rate", s)
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{Result{Rate: 12.346, Status: Converged}, "12.35%"},
		{Result{Rate: -3, Status: IterationCap}, "~-3.00%"},
		{Result{Status: Insufficient}, "n/a"},
		{Result{Status: Degenerate}, "n/a"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("%+v.String() = %q want %q", tt.r, got, tt.want)
		}
	}
}
