package orders

import (
	"time"
)

// Record is a single sales order row in the Records sheet. Amounts are in
// EUR. CPI and CPS are the two cost components the business tracks; CPI is
// always derived from Amount and CPS, never accepted from the caller.
type Record struct {
	ID             string     `json:"record_id"`
	DateOfRequest  time.Time  `json:"date_of_request"`
	SalesMan       string     `json:"salesman"`
	Region         string     `json:"region"`
	CustomerName   string     `json:"customer_name"`
	CustomerPONo   string     `json:"customer_po_no"`
	SalesforceRef  string     `json:"salesforce_reference"`
	SONo           string     `json:"so_no"`
	Amount         float64    `json:"amount_eur"`
	TotalDiscount  float64    `json:"total_discount_pct"`
	CPI            float64    `json:"cpi_eur"`
	CPS            float64    `json:"cps_eur"`
	Definition     string     `json:"definition,omitempty"`
	DateOfDelivery *time.Time `json:"date_of_delivery,omitempty"`
	DateOfInvoice  *time.Time `json:"date_of_invoice,omitempty"`
	Note           string     `json:"note,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Invoiced reports whether the record carries a date of invoice.
func (r Record) Invoiced() bool {
	return r.DateOfInvoice != nil && !r.DateOfInvoice.IsZero()
}
