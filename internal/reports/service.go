// Package reports aggregates sales order records into the summary views the
// business reviews: totals per region, order-received and order-invoiced
// totals per year, and CPI against CPS overall.
package reports

import (
	"context"
	"sort"

	"golang.org/x/sync/singleflight"

	"github.com/ordertrack/ordertrack/internal/orders"
)

// RecordSource supplies the full record set. Reports always read everything;
// nothing is cached between requests.
type RecordSource interface {
	List(ctx context.Context) ([]orders.Record, error)
}

// RegionTotal sums the amounts of one region.
type RegionTotal struct {
	Region string  `json:"region"`
	Amount float64 `json:"amount_eur"`
	CPI    float64 `json:"cpi_eur"`
	CPS    float64 `json:"cps_eur"`
}

// YearTotal sums one report category for one calendar year.
type YearTotal struct {
	Year  int     `json:"year"`
	Total float64 `json:"total_eur"`
}

// MetricTotal is a grand total of a single metric.
type MetricTotal struct {
	Metric string  `json:"metric"`
	Total  float64 `json:"total_eur"`
}

// Summary is the full report payload.
type Summary struct {
	ByRegion []RegionTotal `json:"by_region"`
	ORByYear []YearTotal   `json:"or_by_year"`
	OIByYear []YearTotal   `json:"oi_by_year"`
	CPIvsCPS []MetricTotal `json:"cpi_vs_cps"`
}

// Service computes report summaries.
type Service struct {
	source RecordSource
	group  singleflight.Group
}

// NewService builds a Service instance.
func NewService(source RecordSource) *Service {
	return &Service{source: source}
}

// Summary recomputes the full report from the current records. Concurrent
// callers share one computation; the result is not retained afterwards.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	v, err, _ := s.group.Do("summary", func() (interface{}, error) {
		records, err := s.source.List(ctx)
		if err != nil {
			return nil, err
		}
		return build(records), nil
	})
	if err != nil {
		return Summary{}, err
	}
	return v.(Summary), nil
}

func build(records []orders.Record) Summary {
	byRegion := map[string]*RegionTotal{}
	orByYear := map[int]float64{}
	oiByYear := map[int]float64{}
	var totalCPI, totalCPS float64

	for _, rec := range records {
		region := rec.Region
		if region == "" {
			region = "Unassigned"
		}
		rt, ok := byRegion[region]
		if !ok {
			rt = &RegionTotal{Region: region}
			byRegion[region] = rt
		}
		rt.Amount += rec.Amount
		rt.CPI += rec.CPI
		rt.CPS += rec.CPS

		totalCPI += rec.CPI
		totalCPS += rec.CPS

		// Order Received groups by the year of the request date. Rows with
		// an unreadable date stay out of the yearly breakdown.
		if !rec.DateOfRequest.IsZero() {
			orByYear[rec.DateOfRequest.Year()] += rec.Amount
		}

		// Order Invoiced counts only invoiced records, by invoice year.
		if rec.Invoiced() {
			oiByYear[rec.DateOfInvoice.Year()] += rec.CPI + rec.CPS
		}
	}

	return Summary{
		ByRegion: sortedRegions(byRegion),
		ORByYear: sortedYears(orByYear),
		OIByYear: sortedYears(oiByYear),
		CPIvsCPS: []MetricTotal{
			{Metric: "CPI (EUR)", Total: totalCPI},
			{Metric: "CPS (EUR)", Total: totalCPS},
		},
	}
}

func sortedRegions(m map[string]*RegionTotal) []RegionTotal {
	out := make([]RegionTotal, 0, len(m))
	for _, rt := range m {
		out = append(out, *rt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out
}

func sortedYears(m map[int]float64) []YearTotal {
	out := make([]YearTotal, 0, len(m))
	for year, total := range m {
		out = append(out, YearTotal{Year: year, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
