package mfolio

import (
	"errors"
	"fmt"
)

// Band is a named range of annualized returns, from Min included.
type Band struct {
	Name string
	Min  Percent
}

// Bands partitions returns into bands ordered by strictly decreasing Min.
// The last band also holds every return below its Min.
type Bands []Band

// DefaultBands is the classification used when none is configured.
var DefaultBands = Bands{
	{Name: "excellent", Min: 25},
	{Name: "good", Min: 15},
	{Name: "positive", Min: 0},
	{Name: "negative", Min: -100},
}

// Validate checks that bands are not empty, named, and ordered.
func (b Bands) Validate() error {
	if len(b) == 0 {
		return errors.New("no return band")
	}
	for i, band := range b {
		if band.Name == "" {
			return fmt.Errorf("return band #%d has no name", i+1)
		}
		if i > 0 && band.Min >= b[i-1].Min {
			return fmt.Errorf("return band %q min %v must be lower than %q min %v", band.Name, band.Min, b[i-1].Name, b[i-1].Min)
		}
	}
	return nil
}

// Classify returns the band of the annualized return p: the first band whose Min is lower or equal to p.
func (b Bands) Classify(p Percent) Band {
	for i, band := range b {
		if p >= band.Min || i == len(b)-1 {
			return band
		}
	}
	return Band{}
}
