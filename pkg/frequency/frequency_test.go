package frequency

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name                    string
		key                     string
		expectedPaymentsPerYear int
		expectedLabel           string
		expectedRapid           bool
	}{
		{"Monthly", Monthly, 12, "Monthly", false},
		{"Semi-monthly", SemiMonthly, 24, "Semi-monthly", false},
		{"Bi-weekly", BiWeekly, 26, "Bi-weekly", false},
		{"Weekly", Weekly, 52, "Weekly", false},
		{"Rapid bi-weekly", RapidBiWeekly, 26, "Rapid Bi-weekly", true},
		{"Rapid weekly", RapidWeekly, 52, "Rapid Weekly", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Lookup(tt.key)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.key, err)
			}
			if d.PaymentsPerYear != tt.expectedPaymentsPerYear {
				t.Errorf("PaymentsPerYear = %d, expected %d", d.PaymentsPerYear, tt.expectedPaymentsPerYear)
			}
			if d.Label != tt.expectedLabel {
				t.Errorf("Label = %q, expected %q", d.Label, tt.expectedLabel)
			}
			if d.Rapid() != tt.expectedRapid {
				t.Errorf("Rapid() = %v, expected %v", d.Rapid(), tt.expectedRapid)
			}
		})
	}
}

func TestLookupUnknownKey(t *testing.T) {
	for _, key := range []string{"daily", "MONTHLY", "", "biweekly"} {
		if _, err := Lookup(key); err == nil {
			t.Errorf("Lookup(%q) expected error, got nil", key)
		}
	}
}

func TestAllOrderAndDivisors(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("All() returned %d frequencies, expected 6", len(all))
	}

	expectedOrder := []string{Monthly, SemiMonthly, BiWeekly, Weekly, RapidBiWeekly, RapidWeekly}
	for i, key := range expectedOrder {
		if all[i].Key != key {
			t.Errorf("All()[%d].Key = %q, expected %q", i, all[i].Key, key)
		}
	}

	divisors := map[string]int{RapidBiWeekly: 2, RapidWeekly: 4}
	for _, d := range all {
		if d.MonthlyDivisor != divisors[d.Key] {
			t.Errorf("%s MonthlyDivisor = %d, expected %d", d.Key, d.MonthlyDivisor, divisors[d.Key])
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].PaymentsPerYear = 99
	fresh, err := Lookup(Monthly)
	if err != nil {
		t.Fatalf("Lookup(Monthly) error = %v", err)
	}
	if fresh.PaymentsPerYear != 12 {
		t.Errorf("mutating All() result leaked into the table: PaymentsPerYear = %d", fresh.PaymentsPerYear)
	}
}
