// Package schedule generates period-by-period amortization schedules for
// each supported payment frequency.
package schedule

import (
	"fmt"

	"github.com/mortgagekit/mortgagekit/internal/config"
	"github.com/mortgagekit/mortgagekit/pkg/constants"
	"github.com/mortgagekit/mortgagekit/pkg/frequency"
	"github.com/mortgagekit/mortgagekit/pkg/mathutil"
	"github.com/mortgagekit/mortgagekit/pkg/payments"
	"github.com/mortgagekit/mortgagekit/pkg/rates"
	"go.uber.org/zap"
)

// Row holds the values for one payment period.
type Row struct {
	Period       int
	StartBalance float64
	Interest     float64
	Payment      float64
	EndBalance   float64
}

// Schedule is the amortization table for one payment frequency over the
// loan's term. Label and PaymentsPerYear are metadata for exporters; they
// take no part in the computation.
type Schedule struct {
	FrequencyKey    string
	Label           string
	PaymentsPerYear int
	Rows            []Row
}

// Planner generates amortization schedules for one set of loan parameters.
// The effective annual rate and the standard monthly payment depend only on
// the parameters, so they are computed once at construction and reused
// across all six frequency schedules. A Planner is immutable after
// construction and safe to share.
type Planner struct {
	params         config.LoanParameters
	ear            float64
	monthlyPayment float64
	balanceEpsilon float64
	logger         *zap.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithBalanceEpsilon overrides the remaining-balance floor at which a
// schedule terminates early. The default is one cent.
func WithBalanceEpsilon(epsilon float64) Option {
	return func(p *Planner) {
		p.balanceEpsilon = epsilon
	}
}

// NewPlanner validates the loan parameters and creates a planner instance.
func NewPlanner(logger *zap.Logger, params config.LoanParameters, opts ...Option) (*Planner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid loan parameters: %w", err)
	}

	p := &Planner{
		params: params,
		ear:    rates.EffectiveAnnualRate(params.QuotedRatePercent),
		monthlyPayment: payments.LevelPayment(
			params.Principal, params.QuotedRatePercent,
			params.AmortizationYears, constants.MonthsPerYear),
		balanceEpsilon: constants.DefaultBalanceEpsilon,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Params returns the validated loan parameters the planner was built from.
func (p *Planner) Params() config.LoanParameters {
	return p.params
}

// StandardMonthlyPayment returns the unrounded level monthly payment over
// the full amortization period. The rapid payment amounts derive from it.
func (p *Planner) StandardMonthlyPayment() float64 {
	return p.monthlyPayment
}

// payment returns the unrounded per-period payment for one frequency.
func (p *Planner) payment(desc frequency.Descriptor) float64 {
	if desc.Rapid() {
		return p.monthlyPayment / float64(desc.MonthlyDivisor)
	}
	return payments.LevelPayment(
		p.params.Principal, p.params.QuotedRatePercent,
		p.params.AmortizationYears, desc.PaymentsPerYear)
}

// PaymentAmounts returns the per-period payment for every supported
// frequency, rounded to cents for reporting.
func (p *Planner) PaymentAmounts() map[string]float64 {
	all := frequency.All()
	amounts := make(map[string]float64, len(all))
	for _, desc := range all {
		amounts[desc.Key] = mathutil.Round(p.payment(desc))
	}
	return amounts
}

// BuildSchedule generates the amortization table for the given frequency
// over the loan's term. Rows are ordered by period starting at 1, the
// balance sequence never increases and never goes negative, and the table
// has at most termYears*paymentsPerYear rows. The only error is an unknown
// frequency key.
func (p *Planner) BuildSchedule(freqKey string) (*Schedule, error) {
	desc, err := frequency.Lookup(freqKey)
	if err != nil {
		return nil, err
	}

	r := rates.PeriodicRate(p.ear, desc.PaymentsPerYear)
	payment := p.payment(desc)
	numTermPeriods := p.params.TermYears * desc.PaymentsPerYear

	sched := &Schedule{
		FrequencyKey:    desc.Key,
		Label:           desc.Label,
		PaymentsPerYear: desc.PaymentsPerYear,
		Rows:            make([]Row, 0, numTermPeriods),
	}

	balance := p.params.Principal
	for period := 1; period <= numTermPeriods; period++ {
		interest := balance * r
		principalPortion := payment - interest

		if principalPortion > balance {
			// The scheduled payment would overpay the remaining balance, so
			// the final payment is capped at the balance plus its interest.
			sched.Rows = append(sched.Rows, Row{
				Period:       period,
				StartBalance: balance,
				Interest:     interest,
				Payment:      balance + interest,
				EndBalance:   0,
			})
			p.logger.Debug(fmt.Sprintf("%s: capped final payment at period %d to %.2f",
				desc.Key, period, balance+interest),
				zap.String("op", "schedule.BuildSchedule"),
			)
			break
		}

		end := balance - principalPortion
		sched.Rows = append(sched.Rows, Row{
			Period:       period,
			StartBalance: balance,
			Interest:     interest,
			Payment:      payment,
			EndBalance:   end,
		})
		balance = end

		if balance <= p.balanceEpsilon {
			p.logger.Debug(fmt.Sprintf("%s: balance %.6f at period %d is below payoff floor, stopping",
				desc.Key, balance, period),
				zap.String("op", "schedule.BuildSchedule"),
			)
			break
		}
	}

	return sched, nil
}

// AllSchedules builds one schedule per supported frequency in display order.
func (p *Planner) AllSchedules() ([]*Schedule, error) {
	all := frequency.All()
	schedules := make([]*Schedule, 0, len(all))
	for _, desc := range all {
		sched, err := p.BuildSchedule(desc.Key)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, sched)
	}
	return schedules, nil
}
