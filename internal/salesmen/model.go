package salesmen

// Region is the sales territory a salesman reports into. The values match
// the Data sheet of the workbook verbatim.
type Region string

const (
	RegionNorthern   Region = "CPI Northern"
	RegionSouthern   Region = "CPI Southern"
	RegionUnassigned Region = "Unassigned"
)

// Valid reports whether the region is one of the known territories.
func (r Region) Valid() bool {
	switch r {
	case RegionNorthern, RegionSouthern, RegionUnassigned:
		return true
	}
	return false
}

// Salesman maps a name to its region.
type Salesman struct {
	Name   string `json:"name" validate:"required,max=100"`
	Region Region `json:"region"`
}

// SalesmanList wraps list requests and responses.
type SalesmanList struct {
	Items []Salesman `json:"items"`
}
