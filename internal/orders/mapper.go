package orders

import (
	"strconv"
	"time"
)

// Column positions within workbook.RecordColumns.
const (
	colID = iota
	colDateOfRequest
	colSalesMan
	colRegion
	colCustomerName
	colCustomerPONo
	colSalesforceRef
	colSONo
	colAmount
	colTotalDiscount
	colCPI
	colCPS
	colDefinition
	colDateOfDelivery
	colDateOfInvoice
	colNote
	colCreatedAt
	colUpdatedAt

	colCount
)

const dateLayout = "2006-01-02"

func recordToRow(rec Record) []string {
	row := make([]string, colCount)
	row[colID] = rec.ID
	row[colDateOfRequest] = formatDate(rec.DateOfRequest)
	row[colSalesMan] = rec.SalesMan
	row[colRegion] = rec.Region
	row[colCustomerName] = rec.CustomerName
	row[colCustomerPONo] = rec.CustomerPONo
	row[colSalesforceRef] = rec.SalesforceRef
	row[colSONo] = rec.SONo
	row[colAmount] = formatAmount(rec.Amount)
	row[colTotalDiscount] = formatAmount(rec.TotalDiscount)
	row[colCPI] = formatAmount(rec.CPI)
	row[colCPS] = formatAmount(rec.CPS)
	row[colDefinition] = rec.Definition
	row[colDateOfDelivery] = formatOptionalDate(rec.DateOfDelivery)
	row[colDateOfInvoice] = formatOptionalDate(rec.DateOfInvoice)
	row[colNote] = rec.Note
	row[colCreatedAt] = rec.CreatedAt.Format(time.RFC3339)
	row[colUpdatedAt] = rec.UpdatedAt.Format(time.RFC3339)
	return row
}

// rowToRecord converts a sheet row. Cells edited by hand in Excel may hold
// anything, so numeric and date parsing is lenient: unparseable values come
// back as zero values rather than failing the whole read.
func rowToRecord(row []string) Record {
	return Record{
		ID:             cell(row, colID),
		DateOfRequest:  parseDate(cell(row, colDateOfRequest)),
		SalesMan:       cell(row, colSalesMan),
		Region:         cell(row, colRegion),
		CustomerName:   cell(row, colCustomerName),
		CustomerPONo:   cell(row, colCustomerPONo),
		SalesforceRef:  cell(row, colSalesforceRef),
		SONo:           cell(row, colSONo),
		Amount:         parseAmount(cell(row, colAmount)),
		TotalDiscount:  parseAmount(cell(row, colTotalDiscount)),
		CPI:            parseAmount(cell(row, colCPI)),
		CPS:            parseAmount(cell(row, colCPS)),
		Definition:     cell(row, colDefinition),
		DateOfDelivery: parseOptionalDate(cell(row, colDateOfDelivery)),
		DateOfInvoice:  parseOptionalDate(cell(row, colDateOfInvoice)),
		Note:           cell(row, colNote),
		CreatedAt:      parseTimestamp(cell(row, colCreatedAt)),
		UpdatedAt:      parseTimestamp(cell(row, colUpdatedAt)),
	}
}

// cell reads a column, tolerating the short rows excelize returns when
// trailing cells are empty.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	// The zoneless layout covers timestamps written as isoformat seconds by
	// the tool that produced existing workbooks.
	for _, layout := range []string{dateLayout, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseOptionalDate(s string) *time.Time {
	t := parseDate(s)
	if t.IsZero() {
		return nil
	}
	return &t
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return parseDate(s)
}
