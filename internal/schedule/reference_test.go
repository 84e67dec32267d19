package schedule

import (
	"math"
	"testing"

	"github.com/mortgagekit/mortgagekit/pkg/frequency"
	"github.com/mortgagekit/mortgagekit/pkg/mathutil"
	"github.com/mortgagekit/mortgagekit/pkg/rates"
	"go.uber.org/zap"
)

// ReferenceRow represents a single period from the reference schedule.
type ReferenceRow struct {
	Period       int
	StartBalance float64
	Interest     float64
	Payment      float64
	EndBalance   float64
}

// getReferenceMonthlySchedule returns authoritative monthly schedule data for
// a $500,000 loan quoted at 5.49% (semi-annual compounding), 25-year
// amortization, 5-year term, worked out by hand from the annuity formulas.
func getReferenceMonthlySchedule() []ReferenceRow {
	return []ReferenceRow{
		{1, 500000.00, 2261.77, 3049.05, 499212.72},
		{2, 499212.72, 2258.21, 3049.05, 498421.88},
		{3, 498421.88, 2254.63, 3049.05, 497627.46},
		{6, 496027.82, 2243.80, 3049.05, 495222.58},
		{12, 491141.36, 2221.69, 3049.05, 490314.01},
		{24, 480962.36, 2175.65, 3049.05, 480088.96},
		{36, 470216.86, 2127.04, 3049.05, 469294.86},
		{48, 458873.34, 2075.73, 3049.05, 457900.02},
		{59, 447921.36, 2026.19, 3049.05, 446898.50},
		{60, 446898.50, 2021.56, 3049.05, 445871.02},
	}
}

func TestDerivedRatesAgainstReference(t *testing.T) {
	ear := rates.EffectiveAnnualRate(5.49)
	if !mathutil.WithinTolerance(ear, 0.0556535, 1e-6) {
		t.Errorf("EffectiveAnnualRate(5.49) = %.7f, expected ~0.0556535", ear)
	}

	r := rates.PeriodicRate(ear, 12)
	if !mathutil.WithinTolerance(r, 0.0045235, 1e-6) {
		t.Errorf("monthly PeriodicRate = %.7f, expected ~0.0045235", r)
	}
}

func TestPaymentAmountsAgainstReference(t *testing.T) {
	planner, err := NewPlanner(zap.NewNop(), testParams())
	if err != nil {
		t.Fatalf("NewPlanner() error = %v", err)
	}

	amounts := planner.PaymentAmounts()
	expected := map[string]float64{
		frequency.Monthly:       3049.05,
		frequency.SemiMonthly:   1522.80,
		frequency.BiWeekly:      1405.54,
		frequency.Weekly:        702.41,
		frequency.RapidBiWeekly: 1524.52,
		frequency.RapidWeekly:   762.26,
	}

	if len(amounts) != len(expected) {
		t.Fatalf("PaymentAmounts() returned %d amounts, expected %d", len(amounts), len(expected))
	}
	for key, want := range expected {
		if got := amounts[key]; got != want {
			t.Errorf("PaymentAmounts()[%s] = %.2f, expected %.2f", key, got, want)
		}
	}

	// Before rounding, the rapid amounts are exact fractions of the
	// standard monthly payment.
	monthly := planner.StandardMonthlyPayment()
	if amounts[frequency.RapidBiWeekly] != mathutil.Round(monthly/2) {
		t.Error("rapid bi-weekly amount is not the rounded half of the monthly payment")
	}
	if amounts[frequency.RapidWeekly] != mathutil.Round(monthly/4) {
		t.Error("rapid weekly amount is not the rounded quarter of the monthly payment")
	}
}

func TestMonthlyScheduleAgainstReference(t *testing.T) {
	planner, err := NewPlanner(zap.NewNop(), testParams())
	if err != nil {
		t.Fatalf("NewPlanner() error = %v", err)
	}

	sched, err := planner.BuildSchedule(frequency.Monthly)
	if err != nil {
		t.Fatalf("BuildSchedule() error = %v", err)
	}
	if len(sched.Rows) != 60 {
		t.Fatalf("schedule has %d rows, expected 60", len(sched.Rows))
	}

	tolerance := 0.01
	for _, ref := range getReferenceMonthlySchedule() {
		row := sched.Rows[ref.Period-1]
		if row.Period != ref.Period {
			t.Fatalf("row at index %d has Period %d", ref.Period-1, row.Period)
		}
		if math.Abs(row.StartBalance-ref.StartBalance) > tolerance {
			t.Errorf("period %d StartBalance = %.2f, expected %.2f", ref.Period, row.StartBalance, ref.StartBalance)
		}
		if math.Abs(row.Interest-ref.Interest) > tolerance {
			t.Errorf("period %d Interest = %.2f, expected %.2f", ref.Period, row.Interest, ref.Interest)
		}
		if math.Abs(row.Payment-ref.Payment) > tolerance {
			t.Errorf("period %d Payment = %.2f, expected %.2f", ref.Period, row.Payment, ref.Payment)
		}
		if math.Abs(row.EndBalance-ref.EndBalance) > tolerance {
			t.Errorf("period %d EndBalance = %.2f, expected %.2f", ref.Period, row.EndBalance, ref.EndBalance)
		}
	}
}
