package services

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/username/orderlens/src/models"
	"github.com/username/orderlens/src/parsers"
	"github.com/username/orderlens/src/processors"
)

var (
	// ErrParsingFailed wraps sheet-level parse failures.
	ErrParsingFailed = errors.New("error parsing uploaded file")
	// ErrBuildFailed wraps structural failures building the record set.
	ErrBuildFailed = errors.New("error building records from sheet")
	// ErrUploadInProgress rejects a second upload while one is being
	// processed; the client should retry once the first resolves.
	ErrUploadInProgress = errors.New("an upload is already being processed")
	// ErrNoData means no sheet has been ingested yet (or state was reset).
	ErrNoData = errors.New("no data has been uploaded")
)

// UploadResult is the response of one successful ingestion.
type UploadResult struct {
	UploadID    string              `json:"upload_id"`
	FileName    string              `json:"file_name"`
	RecordCount int                 `json:"record_count"`
	Build       *parsers.BuildReport `json:"build"`
	Statistics  *models.Statistics  `json:"statistics"`
}

// FilterCriteria selects a derived view of the record set by exact
// match; empty fields match everything. Filtering never mutates the raw
// set.
type FilterCriteria struct {
	Status   string
	Store    string
	City     string
	SalesRep string
}

// ReportService owns the application state (the raw record set and its
// build report) and computes derived statistics views on demand.
type ReportService interface {
	ProcessUpload(fileReader io.Reader, filename string) (*UploadResult, error)
	Records() ([]models.OrderRecord, *parsers.BuildReport, error)
	GetStatistics(filter FilterCriteria) (*models.Statistics, error)
	GetBucketedSummary(req processors.BucketRequest) (models.SummaryTable, error)
	Reset()
}

// ExportService renders the current record view into a workbook for
// download.
type ExportService interface {
	BuildWorkbook(records []models.OrderRecord, columns []models.Column) (*excelize.File, error)
}
