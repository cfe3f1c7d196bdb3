package processors

import (
	"errors"
	"time"

	"github.com/username/orderlens/src/models"
)

// GroupMode selects the time bucket for SummarizeBucketed.
type GroupMode string

const (
	GroupDay    GroupMode = "day"
	GroupWeek   GroupMode = "week"
	GroupMonth  GroupMode = "month"
	GroupCustom GroupMode = "custom"
)

// StoreAll disables store filtering in a bucket request.
const StoreAll = "all"

// BucketRequest parameterizes one bucketed summarization call.
type BucketRequest struct {
	// BucketField is the date-class canonical key records are bucketed
	// on, e.g. models.FieldDeliveredDate.
	BucketField string
	GroupBy     GroupMode
	// Store filters records by exact store name; empty or StoreAll
	// passes every record through.
	Store string
	// Start/End bound the inclusive date range for GroupCustom. Ignored
	// for the other modes, where the range is implicitly the min/max
	// observed date.
	Start, End time.Time
}

var (
	// ErrInvalidDateRange is a validation failure of the request itself.
	ErrInvalidDateRange = errors.New("invalid custom date range")
	// ErrNoMatchingData reports an empty record set after filtering,
	// distinct from a request validation failure.
	ErrNoMatchingData = errors.New("no data matches the requested filters")
)

// StatisticsProcessor computes the full aggregate view over a record set.
type StatisticsProcessor interface {
	Summarize(records []models.OrderRecord) *models.Statistics
}

// BucketProcessor computes a revenue summary table grouped by time bucket.
type BucketProcessor interface {
	SummarizeBucketed(records []models.OrderRecord, req BucketRequest) (models.SummaryTable, error)
}
