package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// WriteSummaryXLSX serialises the summary as a workbook with one sheet per
// aggregation, ready for download.
func WriteSummaryXLSX(w io.Writer, summary Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeRegionSheet(f, summary.ByRegion); err != nil {
		return err
	}
	if err := writeYearSheet(f, "OR by Year", "OR (EUR)", summary.ORByYear); err != nil {
		return err
	}
	if err := writeYearSheet(f, "OI by Year", "OI (EUR)", summary.OIByYear); err != nil {
		return err
	}
	if err := writeMetricSheet(f, summary.CPIvsCPS); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("reports: drop default sheet: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("reports: write workbook: %w", err)
	}
	return nil
}

func writeRegionSheet(f *excelize.File, rows []RegionTotal) error {
	const sheet = "By Region"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("reports: create sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, "Region", "Amount (EUR)", "CPI (EUR)", "CPS (EUR)"); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row.Region, row.Amount, row.CPI, row.CPS); err != nil {
			return err
		}
	}
	return nil
}

func writeYearSheet(f *excelize.File, sheet, valueHeader string, rows []YearTotal) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("reports: create sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, "Year", valueHeader); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row.Year, row.Total); err != nil {
			return err
		}
	}
	return nil
}

func writeMetricSheet(f *excelize.File, rows []MetricTotal) error {
	const sheet = "CPI vs CPS"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("reports: create sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, "Metric", "EUR"); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row.Metric, row.Total); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNo int, values ...interface{}) error {
	cell := fmt.Sprintf("A%d", rowNo)
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("reports: write row %d of %s: %w", rowNo, sheet, err)
	}
	return nil
}

// WriteRegionCSV emits the per-region totals as CSV.
func WriteRegionCSV(w io.Writer, rows []RegionTotal) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Region", "Amount (EUR)", "CPI (EUR)", "CPS (EUR)"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write([]string{
			row.Region,
			formatFloat(row.Amount),
			formatFloat(row.CPI),
			formatFloat(row.CPS),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
