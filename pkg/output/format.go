// Package output provides utilities for formatting and displaying payment
// summaries.
package output

import (
	"fmt"

	"github.com/mortgagekit/mortgagekit/internal/schedule"
	"github.com/mortgagekit/mortgagekit/pkg/frequency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table
// of the per-period payment for each frequency.
func PrettyFormat(planner *schedule.Planner) {
	p := message.NewPrinter(language.English)
	amounts := planner.PaymentAmounts()
	fmt.Printf("Frequency       | Payments/Year | Payment\n")
	fmt.Printf("_________       | _____________ | _______\n")
	for _, desc := range frequency.All() {
		fmt.Printf("%-15s | %13d | %s\n",
			desc.Label, desc.PaymentsPerYear, p.Sprintf("$%.2f", amounts[desc.Key]))
	}
}

// CsvFormat outputs the payment summary as machine-readable CSV.
func CsvFormat(planner *schedule.Planner) {
	amounts := planner.PaymentAmounts()
	fmt.Println("frequency,paymentsPerYear,payment")
	for _, desc := range frequency.All() {
		fmt.Printf("%s,%d,%.2f\n", desc.Key, desc.PaymentsPerYear, amounts[desc.Key])
	}
}
