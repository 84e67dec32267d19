// Package rates converts quoted interest rates between compounding conventions.
package rates

import (
	"math"

	"github.com/mortgagekit/mortgagekit/pkg/constants"
)

// EffectiveAnnualRate converts a nominal annual rate quoted with semi-annual
// compounding into the effective annual rate. The quote is given in percent
// (e.g. 5.49); the result is a fraction. A zero quote yields a zero rate.
func EffectiveAnnualRate(quotedRatePercent float64) float64 {
	j := quotedRatePercent / constants.PercentageMultiplier
	return math.Pow(1+j/constants.SemiAnnualCompoundings, constants.SemiAnnualCompoundings) - 1
}

// PeriodicRate converts an effective annual rate to the equivalent effective
// rate per payment period for paymentsPerYear payments per year.
func PeriodicRate(ear float64, paymentsPerYear int) float64 {
	return math.Pow(1+ear, 1/float64(paymentsPerYear)) - 1
}
