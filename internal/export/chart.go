package export

import (
	"fmt"
	"os"

	"github.com/mortgagekit/mortgagekit/internal/schedule"
	chart "github.com/wcharczuk/go-chart/v2"
)

// WriteBalanceChart renders ending balance against period for all schedules
// on a single PNG line chart at path, one labeled series per frequency.
func WriteBalanceChart(path string, schedules []*schedule.Schedule) error {
	if len(schedules) == 0 {
		return fmt.Errorf("no schedules to chart")
	}
	if err := ensureParentDir(path); err != nil {
		return err
	}

	series := make([]chart.Series, 0, len(schedules))
	for _, sched := range schedules {
		xValues := make([]float64, len(sched.Rows))
		yValues := make([]float64, len(sched.Rows))
		for i, row := range sched.Rows {
			xValues[i] = float64(row.Period)
			yValues[i] = row.EndBalance
		}
		series = append(series, chart.ContinuousSeries{
			Name:    sched.Label,
			XValues: xValues,
			YValues: yValues,
		})
	}

	graph := chart.Chart{
		Title: "Loan Balance Decline by Payment Frequency",
		XAxis: chart.XAxis{
			Name: "Period",
		},
		YAxis: chart.YAxis{
			Name: "Ending Balance ($)",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file %s: %v", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render balance chart: %v", err)
	}
	return nil
}
