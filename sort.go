package mfolio

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// SortKey selects the order of positions in a report.
type SortKey int

const (
	ByName     SortKey = iota // display name, lexicographic
	ByInvested                // invested capital, largest first
	ByGain                    // absolute return, largest first
	ByReturn                  // annualized return, largest first
)

var sortKeyNames = map[SortKey]string{
	ByName:     "name",
	ByInvested: "invested",
	ByGain:     "gain",
	ByReturn:   "xirr",
}

func (k SortKey) String() string {
	if s, ok := sortKeyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

// SortKeys lists the names accepted by ParseSortKey.
func SortKeys() []string {
	names := make([]string, 0, len(sortKeyNames))
	for k := ByName; k <= ByReturn; k++ {
		names = append(names, k.String())
	}
	return names
}

// ParseSortKey parses a sort key name. "return" is accepted for "gain".
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "return" {
		return ByGain, nil
	}
	for k, name := range sortKeyNames {
		if name == s {
			return k, nil
		}
	}
	return ByName, fmt.Errorf("unknown sort key %q, want one of %s", s, strings.Join(SortKeys(), ", "))
}

// SortPositions sorts ps in place according to key. Annualized returns are valued at asOf and
// computed once per position; positions without a converged return come last.
func SortPositions(ps []Position, key SortKey, asOf time.Time) {
	slices.SortStableFunc(ps, comparator(ps, key, asOf))
}

// comparator resolves the comparison function of key.
func comparator(ps []Position, key SortKey, asOf time.Time) func(a, b Position) int {
	switch key {
	case ByInvested:
		return func(a, b Position) int { return b.Invested.Cmp(a.Invested) }
	case ByGain:
		return func(a, b Position) int { return b.Gain().Cmp(a.Gain()) }
	case ByReturn:
		returns := make(map[string]Result, len(ps))
		for _, p := range ps {
			returns[p.ID] = p.Return(asOf)
		}
		return func(a, b Position) int {
			ra, rb := returns[a.ID], returns[b.ID]
			if c := cmp.Compare(rank(rb), rank(ra)); c != 0 {
				return c
			}
			return cmp.Compare(rb.Rate, ra.Rate)
		}
	default:
		return func(a, b Position) int { return strings.Compare(a.Name, b.Name) }
	}
}

// rank orders results by reliability.
func rank(r Result) int {
	switch r.Status {
	case Converged:
		return 2
	case IterationCap:
		return 1
	default:
		return 0
	}
}
