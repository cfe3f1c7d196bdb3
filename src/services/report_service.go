package services

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/username/orderlens/src/logger"
	"github.com/username/orderlens/src/models"
	"github.com/username/orderlens/src/parsers"
	"github.com/username/orderlens/src/processors"
)

const (
	ckStatistics = "res_statistics_%s" // keyed by filter fingerprint

	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

// appState is the immutable snapshot produced by one successful upload.
// It is swapped in atomically; a failed upload leaves the previous
// snapshot untouched.
type appState struct {
	uploadID string
	fileName string
	records  []models.OrderRecord
	build    *parsers.BuildReport
	loadedAt time.Time
}

type reportServiceImpl struct {
	statsProcessor  processors.StatisticsProcessor
	bucketProcessor processors.BucketProcessor
	reportCache     *cache.Cache

	mu        sync.Mutex
	state     *appState
	uploading bool
}

func NewReportService(
	statsProcessor processors.StatisticsProcessor,
	bucketProcessor processors.BucketProcessor,
	reportCache *cache.Cache,
) ReportService {
	return &reportServiceImpl{
		statsProcessor:  statsProcessor,
		bucketProcessor: bucketProcessor,
		reportCache:     reportCache,
	}
}

func (s *reportServiceImpl) ProcessUpload(fileReader io.Reader, filename string) (*UploadResult, error) {
	s.mu.Lock()
	if s.uploading {
		s.mu.Unlock()
		return nil, ErrUploadInProgress
	}
	s.uploading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.uploading = false
		s.mu.Unlock()
	}()

	uploadID := uuid.NewString()
	startTime := time.Now()
	logger.L.Info("ProcessUpload START", "uploadID", uploadID, "filename", filename)

	parser, err := parsers.GetParser(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}

	sheet, err := parser.Parse(fileReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}

	records, build, err := parsers.BuildRecords(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildFailed, err)
	}

	// Swap the snapshot only now that the whole build succeeded, so a
	// bad file can never leave partial state behind.
	s.mu.Lock()
	s.state = &appState{
		uploadID: uploadID,
		fileName: filename,
		records:  records,
		build:    build,
		loadedAt: startTime,
	}
	s.mu.Unlock()
	s.reportCache.Flush()

	stats := s.statsProcessor.Summarize(records)
	s.reportCache.Set(fmt.Sprintf(ckStatistics, FilterCriteria{}.fingerprint()), stats, DefaultCacheExpiration)

	logger.L.Info("ProcessUpload END",
		"uploadID", uploadID,
		"records", len(records),
		"dateIssues", build.DateIssues,
		"duration", time.Since(startTime))

	return &UploadResult{
		UploadID:    uploadID,
		FileName:    filename,
		RecordCount: len(records),
		Build:       build,
		Statistics:  stats,
	}, nil
}

func (s *reportServiceImpl) Records() ([]models.OrderRecord, *parsers.BuildReport, error) {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()
	if state == nil {
		return nil, nil, ErrNoData
	}
	return state.records, state.build, nil
}

func (s *reportServiceImpl) GetStatistics(filter FilterCriteria) (*models.Statistics, error) {
	records, _, err := s.Records()
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf(ckStatistics, filter.fingerprint())
	if cached, found := s.reportCache.Get(cacheKey); found {
		logger.L.Debug("Cache hit for statistics", "filter", filter)
		return cached.(*models.Statistics), nil
	}

	stats := s.statsProcessor.Summarize(filterRecords(records, filter))
	s.reportCache.Set(cacheKey, stats, DefaultCacheExpiration)
	return stats, nil
}

func (s *reportServiceImpl) GetBucketedSummary(req processors.BucketRequest) (models.SummaryTable, error) {
	records, _, err := s.Records()
	if err != nil {
		return nil, err
	}
	// Bucketed summaries are recomputed fully per call; the request
	// space is too wide to cache usefully.
	return s.bucketProcessor.SummarizeBucketed(records, req)
}

func (s *reportServiceImpl) Reset() {
	s.mu.Lock()
	s.state = nil
	s.mu.Unlock()
	s.reportCache.Flush()
	logger.L.Info("Application state reset, all records discarded")
}

// filterRecords derives a new view; the raw set is never altered.
func filterRecords(records []models.OrderRecord, f FilterCriteria) []models.OrderRecord {
	if f == (FilterCriteria{}) {
		return records
	}
	filtered := make([]models.OrderRecord, 0, len(records))
	for _, r := range records {
		if f.Status != "" && r.Text(models.FieldStatus) != f.Status {
			continue
		}
		if f.Store != "" && r.Text(models.FieldStoreName) != f.Store {
			continue
		}
		if f.City != "" && r.Text(models.FieldCity) != f.City {
			continue
		}
		if f.SalesRep != "" && r.Text(models.FieldSalesRep) != f.SalesRep {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func (f FilterCriteria) fingerprint() string {
	return fmt.Sprintf("%s|%s|%s|%s", f.Status, f.Store, f.City, f.SalesRep)
}
