package processors

import (
	"fmt"
	"sort"
	"time"

	"github.com/username/orderlens/src/models"
	"github.com/username/orderlens/src/utils"
)

// bucketProcessorImpl implements the BucketProcessor interface.
type bucketProcessorImpl struct{}

// NewBucketProcessor creates a new BucketProcessor.
func NewBucketProcessor() BucketProcessor {
	return &bucketProcessorImpl{}
}

// SummarizeBucketed filters by store and date range, then groups revenue
// by time bucket. Records lacking a valid date in the bucket field are
// excluded from bucketing. Buckets come back sorted by the date of their
// first contributing record, ascending.
func (p *bucketProcessorImpl) SummarizeBucketed(records []models.OrderRecord, req BucketRequest) (models.SummaryTable, error) {
	if models.ClassOf(req.BucketField) != models.FieldDate {
		return nil, fmt.Errorf("%w: %q is not a date field", ErrInvalidDateRange, req.BucketField)
	}
	switch req.GroupBy {
	case GroupDay, GroupWeek, GroupMonth:
	case GroupCustom:
		if req.Start.IsZero() || req.End.IsZero() {
			return nil, fmt.Errorf("%w: custom grouping requires both start and end dates", ErrInvalidDateRange)
		}
		if dayOf(req.Start).After(dayOf(req.End)) {
			return nil, fmt.Errorf("%w: start date is after end date", ErrInvalidDateRange)
		}
	default:
		return nil, fmt.Errorf("%w: unknown group mode %q", ErrInvalidDateRange, req.GroupBy)
	}

	type bucket struct {
		first time.Time // date of the first contributing record
		total float64
	}
	order := make([]string, 0)
	buckets := make(map[string]*bucket)

	for _, r := range records {
		if req.Store != "" && req.Store != StoreAll && r.Text(models.FieldStoreName) != req.Store {
			continue
		}
		date, ok := r.Date(req.BucketField)
		if !ok {
			continue
		}
		if req.GroupBy == GroupCustom {
			d := dayOf(date)
			if d.Before(dayOf(req.Start)) || d.After(dayOf(req.End)) {
				continue
			}
		}

		key := bucketKey(date, req.GroupBy)
		b, exists := buckets[key]
		if !exists {
			b = &bucket{first: date}
			buckets[key] = b
			order = append(order, key)
		}
		b.total += r.Number(models.FieldRevenue)
	}

	if len(buckets) == 0 {
		return nil, ErrNoMatchingData
	}

	sort.SliceStable(order, func(i, j int) bool {
		return buckets[order[i]].first.Before(buckets[order[j]].first)
	})

	table := make(models.SummaryTable, 0, len(order))
	for _, key := range order {
		table = append(table, models.SummaryEntry{Label: key, Value: buckets[key].total})
	}
	return table, nil
}

// bucketKey formats the grouping key: day and custom use dd/MM/yyyy,
// week uses ww/yyyy with ISO week numbering, month uses MM/yyyy.
func bucketKey(t time.Time, mode GroupMode) string {
	switch mode {
	case GroupWeek:
		isoYear, isoWeek := t.ISOWeek()
		return fmt.Sprintf("%02d/%04d", isoWeek, isoYear)
	case GroupMonth:
		return utils.FormatMonth(t)
	default:
		return utils.FormatDay(t)
	}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
