package orders

// RecordForm carries the full set of fields submitted by the entry form.
// Create and update both take the whole form; CPI is derived server side.
// Dates travel as YYYY-MM-DD strings.
type RecordForm struct {
	DateOfRequest  string  `json:"date_of_request" validate:"required,datetime=2006-01-02"`
	SalesMan       string  `json:"salesman" validate:"required,max=100"`
	CustomerName   string  `json:"customer_name" validate:"required,max=200"`
	CustomerPONo   string  `json:"customer_po_no" validate:"required,max=100"`
	SalesforceRef  string  `json:"salesforce_reference" validate:"required,max=100"`
	SONo           string  `json:"so_no" validate:"required,max=100"`
	Amount         float64 `json:"amount_eur" validate:"gte=0"`
	TotalDiscount  float64 `json:"total_discount_pct" validate:"gte=0,lte=100"`
	CPS            float64 `json:"cps_eur" validate:"gte=0"`
	Definition     string  `json:"definition"`
	DateOfDelivery string  `json:"date_of_delivery" validate:"omitempty,datetime=2006-01-02"`
	DateOfInvoice  string  `json:"date_of_invoice" validate:"omitempty,datetime=2006-01-02"`
	Note           string  `json:"note"`
}

// LookupQuery selects a record by SO No or, failing that, Customer PO No.
type LookupQuery struct {
	SONo         string `json:"so_no"`
	CustomerPONo string `json:"customer_po_no"`
}

// RecordList wraps a list response.
type RecordList struct {
	Items []Record `json:"items"`
}
