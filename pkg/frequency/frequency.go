// Package frequency defines the closed set of supported payment frequencies.
package frequency

import "fmt"

// Keys for the six supported payment frequencies.
const (
	Monthly       = "monthly"
	SemiMonthly   = "semi_monthly"
	BiWeekly      = "bi_weekly"
	Weekly        = "weekly"
	RapidBiWeekly = "rapid_biweekly"
	RapidWeekly   = "rapid_weekly"
)

// Descriptor describes one payment frequency convention. MonthlyDivisor is
// nonzero only for the rapid variants, whose payment is the standard monthly
// payment divided by it rather than an independently solved level payment.
type Descriptor struct {
	Key             string
	PaymentsPerYear int
	Label           string
	MonthlyDivisor  int
}

// Rapid reports whether the frequency derives its payment from the standard
// monthly payment.
func (d Descriptor) Rapid() bool {
	return d.MonthlyDivisor > 0
}

// descriptors is the fixed frequency table. Iteration order here determines
// sheet order, summary order, and chart series order everywhere downstream.
var descriptors = []Descriptor{
	{Monthly, 12, "Monthly", 0},
	{SemiMonthly, 24, "Semi-monthly", 0},
	{BiWeekly, 26, "Bi-weekly", 0},
	{Weekly, 52, "Weekly", 0},
	{RapidBiWeekly, 26, "Rapid Bi-weekly", 2},
	{RapidWeekly, 52, "Rapid Weekly", 4},
}

// All returns the supported frequencies in display order.
func All() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Lookup returns the descriptor for the given frequency key.
func Lookup(key string) (Descriptor, error) {
	for _, d := range descriptors {
		if d.Key == key {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("unknown payment frequency %q", key)
}
