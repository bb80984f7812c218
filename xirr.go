package mfolio

import (
	"math"
	"time"
)

// xirrMaxIterations caps the Newton-Raphson iterations of Solve.
var xirrMaxIterations = 100

const (
	xirrGuess     = 0.10 // initial rate
	xirrPrecision = 1e-6 // stop when the rate moves less than that

	// xirrYear is the day-count convention: 365.25 days.
	xirrYear = time.Duration(365.25 * float64(24*time.Hour))
)

// Status tells how a return computation ended.
type Status int

const (
	// Insufficient means there were fewer than two cash flows.
	Insufficient Status = iota
	// Converged means the rate is a root of the NPV within precision.
	Converged
	// IterationCap means the iteration limit was reached, the rate is the last estimate.
	IterationCap
	// Degenerate means the problem has no usable root: no sign change, a vanishing
	// derivative or a non-finite estimate.
	Degenerate
)

func (s Status) String() string {
	switch s {
	case Insufficient:
		return "insufficient"
	case Converged:
		return "converged"
	case IterationCap:
		return "iteration cap"
	case Degenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Result is the outcome of Solve.
type Result struct {
	Rate       Percent `json:"rate"` // annualized rate, meaningful for Converged and IterationCap
	Status     Status  `json:"status"`
	Iterations int     `json:"iterations"`
}

// Converged reports whether the rate is a true root.
func (r Result) Converged() bool { return r.Status == Converged }

// String formats the rate: "12.34%" when converged, "~12.34%" for a capped estimate and "n/a" otherwise.
func (r Result) String() string {
	switch r.Status {
	case Converged:
		return r.Rate.String()
	case IterationCap:
		return "~" + r.Rate.String()
	default:
		return "n/a"
	}
}

// Solve computes the extended internal rate of return of flows: the annualized rate r for
// which Σ amount_i / (1+r)^t_i = 0.
//
// t_i is measured in years of 365.25 days from the first flow of the slice, whatever its
// date: flows are not sorted. The root does not depend on that origin, only the Newton-Raphson
// path does, so callers should pass chronological flows.
//
// The rate is searched with Newton-Raphson starting from 10%. A step that would reach -100% or
// below is damped to half the distance to -100%.
func Solve(flows []CashFlow) Result {
	if len(flows) < 2 {
		return Result{Status: Insufficient}
	}

	amounts := make([]float64, len(flows))
	years := make([]float64, len(flows))
	var hasNeg, hasPos bool
	var scale float64 // sum of absolute amounts
	for i, f := range flows {
		amounts[i] = f.Amount.float()
		scale += math.Abs(amounts[i])
		years[i] = float64(f.Time.Sub(flows[0].Time)) / float64(xirrYear)
		hasNeg = hasNeg || amounts[i] < 0
		hasPos = hasPos || amounts[i] > 0
	}
	if !hasNeg || !hasPos {
		return Result{Status: Degenerate}
	}

	rate := xirrGuess
	for i := range xirrMaxIterations {
		base := 1 + rate
		if base <= 0 {
			return Result{Status: Degenerate, Iterations: i}
		}
		var npv, dnpv float64
		for j, amount := range amounts {
			t := years[j]
			discount := math.Pow(base, t)
			npv += amount / discount
			dnpv -= t * amount / (discount * base)
		}
		if dnpv == 0 || !finite(npv) || !finite(dnpv) {
			return Result{Status: Degenerate, Iterations: i}
		}

		next := rate - npv/dnpv
		if !finite(next) {
			return Result{Status: Degenerate, Iterations: i + 1}
		}
		if next <= -1 {
			// Overshot below -100%: move halfway to -1 instead. A damped step is never a convergence.
			rate = (rate - 1) / 2
			continue
		}
		// Near -100% tiny steps do not mean a root: NPV must vanish too.
		if math.Abs(next-rate) < xirrPrecision && math.Abs(npv) <= xirrPrecision*scale {
			return Result{Rate: Percent(next * 100), Status: Converged, Iterations: i + 1}
		}
		rate = next
	}
	return Result{Rate: Percent(rate * 100), Status: IterationCap, Iterations: xirrMaxIterations}
}

// XIRR is the best effort scalar version of Solve: 0 when the rate cannot be computed, and the
// last estimate when the iteration limit was reached.
func XIRR(flows []CashFlow) Percent {
	r := Solve(flows)
	switch r.Status {
	case Converged, IterationCap:
		return r.Rate
	default:
		return 0
	}
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
