// Package payments computes level loan payments from quoted rates.
package payments

import (
	"math"

	"github.com/mortgagekit/mortgagekit/pkg/rates"
)

// PresentValueAnnuityFactor returns the present value of an ordinary annuity
// paying 1 per period for numPeriods periods at the given periodic rate. At a
// rate of exactly zero the factor is the period count, which is the limit of
// the general formula.
func PresentValueAnnuityFactor(rate float64, numPeriods int) float64 {
	if rate == 0 {
		return float64(numPeriods)
	}
	return (1 - math.Pow(1+rate, -float64(numPeriods))) / rate
}

// LevelPayment returns the fixed periodic payment that fully amortizes
// principal over amortYears at paymentsPerYear payments per year. The rate is
// quoted in percent with semi-annual compounding.
func LevelPayment(principal, quotedRatePercent float64, amortYears, paymentsPerYear int) float64 {
	ear := rates.EffectiveAnnualRate(quotedRatePercent)
	r := rates.PeriodicRate(ear, paymentsPerYear)
	numPeriods := amortYears * paymentsPerYear
	return principal / PresentValueAnnuityFactor(r, numPeriods)
}
