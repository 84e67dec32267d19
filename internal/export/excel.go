// Package export renders amortization schedules to spreadsheet and chart
// files. All computation has completed by the time these run; the exporters
// only consume finished schedules.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mortgagekit/mortgagekit/internal/schedule"
	"github.com/xuri/excelize/v2"
)

var workbookHeader = []interface{}{"Period", "StartBalance", "Interest", "Payment", "EndBalance"}

// WriteWorkbook writes one sheet per schedule to an xlsx workbook at path,
// using each schedule's display label as the sheet name. The parent
// directory is created if it does not exist.
func WriteWorkbook(path string, schedules []*schedule.Schedule) error {
	if len(schedules) == 0 {
		return fmt.Errorf("no schedules to export")
	}
	if err := ensureParentDir(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	for i, sched := range schedules {
		if i == 0 {
			// A new workbook starts with one default sheet; rename it
			// rather than leaving it empty.
			if err := f.SetSheetName(f.GetSheetName(0), sched.Label); err != nil {
				return fmt.Errorf("failed to name sheet %s: %v", sched.Label, err)
			}
		} else {
			if _, err := f.NewSheet(sched.Label); err != nil {
				return fmt.Errorf("failed to create sheet %s: %v", sched.Label, err)
			}
		}

		if err := f.SetSheetRow(sched.Label, "A1", &workbookHeader); err != nil {
			return fmt.Errorf("failed to write header on sheet %s: %v", sched.Label, err)
		}
		for j, row := range sched.Rows {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return fmt.Errorf("failed to compute cell for row %d: %v", j+2, err)
			}
			values := []interface{}{row.Period, row.StartBalance, row.Interest, row.Payment, row.EndBalance}
			if err := f.SetSheetRow(sched.Label, cell, &values); err != nil {
				return fmt.Errorf("failed to write row %d on sheet %s: %v", j+2, sched.Label, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook %s: %v", path, err)
	}
	return nil
}

func ensureParentDir(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %v", dir, err)
		}
	}
	return nil
}
