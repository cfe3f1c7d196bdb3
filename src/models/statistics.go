package models

// SummaryEntry is one (label, value) pair of a summary table.
type SummaryEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// SummaryTable is an ordered sequence of summary entries. Ordering is
// meaningful: frequency tables are count-descending, time series are
// chronological. Tables are built fresh on every aggregation call.
type SummaryTable []SummaryEntry

// Statistics is the full aggregate view over one record set.
type Statistics struct {
	TotalOrders      int     `json:"total_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalShippingFee float64 `json:"total_shipping_fee"`

	// Frequency tables, count-descending. Store, city and sales rep are
	// truncated to the top entries; status keeps every label.
	StatusCounts   SummaryTable `json:"status_counts"`
	StoreCounts    SummaryTable `json:"store_counts"`
	CityCounts     SummaryTable `json:"city_counts"`
	SalesRepCounts SummaryTable `json:"sales_rep_counts"`

	// Time series, chronological. Keyed by the delivery-success date,
	// falling back to the settlement date; records with neither are
	// excluded here but still counted in the totals above.
	MonthlyRevenue SummaryTable `json:"monthly_revenue"`
	DailyOrders    SummaryTable `json:"daily_orders"`
}

// UnknownLabel groups records whose categorical value is empty. Kept in
// Vietnamese so chart collaborators render the same label as the
// source-sheet locale.
const UnknownLabel = "Không xác định"
