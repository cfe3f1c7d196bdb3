package processors

import (
	"sort"
	"time"

	"github.com/username/orderlens/src/models"
	"github.com/username/orderlens/src/utils"
)

// statisticsProcessorImpl implements the StatisticsProcessor interface.
type statisticsProcessorImpl struct {
	topLimit int
}

// NewStatisticsProcessor creates a new StatisticsProcessor. topLimit
// caps the store/city/sales-rep frequency tables; non-positive values
// fall back to 15.
func NewStatisticsProcessor(topLimit int) StatisticsProcessor {
	if topLimit <= 0 {
		topLimit = 15
	}
	return &statisticsProcessorImpl{topLimit: topLimit}
}

// Summarize recomputes every aggregate from scratch; nothing is cached
// or mutated, so rapid repeated calls over the same records are safe.
func (p *statisticsProcessorImpl) Summarize(records []models.OrderRecord) *models.Statistics {
	stats := &models.Statistics{TotalOrders: len(records)}

	status := newAccumulator()
	stores := newAccumulator()
	cities := newAccumulator()
	reps := newAccumulator()
	monthlyRevenue := newAccumulator()
	dailyOrders := newAccumulator()

	for _, r := range records {
		revenue := r.Number(models.FieldRevenue)
		stats.TotalRevenue += revenue
		stats.TotalShippingFee += r.Number(models.FieldShippingFee)

		status.add(labelOf(r, models.FieldStatus), 1)
		stores.add(labelOf(r, models.FieldStoreName), 1)
		cities.add(labelOf(r, models.FieldCity), 1)
		reps.add(labelOf(r, models.FieldSalesRep), 1)

		// Delivery-success date preferred, settlement date as fallback.
		// Records with neither stay in the totals but not the series.
		relevant, ok := r.Date(models.FieldDeliveredDate)
		if !ok {
			relevant, ok = r.Date(models.FieldSettlementDate)
		}
		if ok {
			monthlyRevenue.add(utils.FormatMonth(relevant), revenue)
			dailyOrders.add(utils.FormatDay(relevant), 1)
		}
	}

	stats.StatusCounts = status.byCountDesc(0)
	stats.StoreCounts = stores.byCountDesc(p.topLimit)
	stats.CityCounts = cities.byCountDesc(p.topLimit)
	stats.SalesRepCounts = reps.byCountDesc(p.topLimit)
	stats.MonthlyRevenue = monthlyRevenue.chronological(utils.MonthFormat)
	stats.DailyOrders = dailyOrders.chronological(utils.DayFormat)

	return stats
}

func labelOf(r models.OrderRecord, key string) string {
	if v := r.Text(key); v != "" {
		return v
	}
	return models.UnknownLabel
}

// accumulator groups values by label while remembering encounter order,
// so descending sorts stay stable on ties.
type accumulator struct {
	order  []string
	totals map[string]float64
}

func newAccumulator() *accumulator {
	return &accumulator{totals: make(map[string]float64)}
}

func (a *accumulator) add(label string, v float64) {
	if _, seen := a.totals[label]; !seen {
		a.order = append(a.order, label)
	}
	a.totals[label] += v
}

// byCountDesc returns the entries sorted by value descending, ties kept
// in encounter order, truncated to limit when limit > 0.
func (a *accumulator) byCountDesc(limit int) models.SummaryTable {
	table := a.table()
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Value > table[j].Value
	})
	if limit > 0 && len(table) > limit {
		table = table[:limit]
	}
	return table
}

// chronological returns the entries sorted by the date reconstructed
// from each label with the given layout, not by lexical label order.
// Labels that fail to parse sort last in encounter order.
func (a *accumulator) chronological(layout string) models.SummaryTable {
	table := a.table()
	sort.SliceStable(table, func(i, j int) bool {
		ti, iok := parseLabel(table[i].Label, layout)
		tj, jok := parseLabel(table[j].Label, layout)
		if iok != jok {
			return iok
		}
		return ti.Before(tj)
	})
	return table
}

func (a *accumulator) table() models.SummaryTable {
	table := make(models.SummaryTable, 0, len(a.order))
	for _, label := range a.order {
		table = append(table, models.SummaryEntry{Label: label, Value: a.totals[label]})
	}
	return table
}

func parseLabel(label, layout string) (time.Time, bool) {
	t, err := time.ParseInLocation(layout, label, time.Local)
	return t, err == nil
}
