package services

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/orderlens/src/logger"
	"github.com/username/orderlens/src/models"
	"github.com/username/orderlens/src/processors"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

const sampleCSV = "Ngày đối soát,Trạng thái,Tên cửa hàng,Doanh thu\n" +
	"15/03/2024,Thành công,Shop A,100\n" +
	"16/03/2024,Thành công,Shop B,200\n" +
	"17/03/2024,Đã hủy,Shop A,50\n"

func newTestService() ReportService {
	return NewReportService(
		processors.NewStatisticsProcessor(15),
		processors.NewBucketProcessor(),
		cache.New(time.Minute, time.Minute),
	)
}

func TestProcessUpload(t *testing.T) {
	svc := newTestService()

	result, err := svc.ProcessUpload(strings.NewReader(sampleCSV), "orders.csv")
	require.NoError(t, err)

	assert.NotEmpty(t, result.UploadID)
	assert.Equal(t, "orders.csv", result.FileName)
	assert.Equal(t, 3, result.RecordCount)
	require.NotNil(t, result.Build)
	assert.Equal(t, []string{"Shop A", "Shop B"}, result.Build.DistinctStores)
	require.NotNil(t, result.Statistics)
	assert.Equal(t, 350.0, result.Statistics.TotalRevenue)

	records, build, err := svc.Records()
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Len(t, build.Columns, 4)
}

func TestProcessUploadErrors(t *testing.T) {
	svc := newTestService()

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := svc.ProcessUpload(strings.NewReader(sampleCSV), "orders.pdf")
		assert.ErrorIs(t, err, ErrParsingFailed)
	})

	t.Run("header only sheet", func(t *testing.T) {
		_, err := svc.ProcessUpload(strings.NewReader("Trạng thái\n"), "orders.csv")
		assert.ErrorIs(t, err, ErrBuildFailed)
	})
}

func TestProcessUploadFailureKeepsPreviousState(t *testing.T) {
	svc := newTestService()

	_, err := svc.ProcessUpload(strings.NewReader(sampleCSV), "orders.csv")
	require.NoError(t, err)

	_, err = svc.ProcessUpload(strings.NewReader("Trạng thái\n"), "bad.csv")
	require.ErrorIs(t, err, ErrBuildFailed)

	records, _, err := svc.Records()
	require.NoError(t, err)
	assert.Len(t, records, 3, "failed upload must not clobber the previous snapshot")
}

func TestRecordsBeforeAnyUpload(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Records()
	assert.ErrorIs(t, err, ErrNoData)

	_, err = svc.GetStatistics(FilterCriteria{})
	assert.ErrorIs(t, err, ErrNoData)

	_, err = svc.GetBucketedSummary(processors.BucketRequest{
		BucketField: models.FieldSettlementDate,
		GroupBy:     processors.GroupDay,
	})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestGetStatisticsFilteredViews(t *testing.T) {
	svc := newTestService()
	_, err := svc.ProcessUpload(strings.NewReader(sampleCSV), "orders.csv")
	require.NoError(t, err)

	all, err := svc.GetStatistics(FilterCriteria{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalOrders)

	byStatus, err := svc.GetStatistics(FilterCriteria{Status: "Thành công"})
	require.NoError(t, err)
	assert.Equal(t, 2, byStatus.TotalOrders)
	assert.Equal(t, 300.0, byStatus.TotalRevenue)

	byStore, err := svc.GetStatistics(FilterCriteria{Store: "Shop A", Status: "Đã hủy"})
	require.NoError(t, err)
	assert.Equal(t, 1, byStore.TotalOrders)

	none, err := svc.GetStatistics(FilterCriteria{Store: "Shop Z"})
	require.NoError(t, err)
	assert.Zero(t, none.TotalOrders)

	// The unfiltered view is untouched by filtered queries.
	again, err := svc.GetStatistics(FilterCriteria{})
	require.NoError(t, err)
	assert.Equal(t, 3, again.TotalOrders)
}

func TestGetStatisticsCachesPerFilter(t *testing.T) {
	svc := newTestService()
	_, err := svc.ProcessUpload(strings.NewReader(sampleCSV), "orders.csv")
	require.NoError(t, err)

	first, err := svc.GetStatistics(FilterCriteria{Status: "Thành công"})
	require.NoError(t, err)
	second, err := svc.GetStatistics(FilterCriteria{Status: "Thành công"})
	require.NoError(t, err)
	assert.Same(t, first, second, "repeated identical queries should hit the cache")

	other, err := svc.GetStatistics(FilterCriteria{Status: "Đã hủy"})
	require.NoError(t, err)
	assert.NotSame(t, first, other)
}

func TestUploadInvalidatesCachedStatistics(t *testing.T) {
	svc := newTestService()
	_, err := svc.ProcessUpload(strings.NewReader(sampleCSV), "orders.csv")
	require.NoError(t, err)

	before, err := svc.GetStatistics(FilterCriteria{})
	require.NoError(t, err)
	assert.Equal(t, 3, before.TotalOrders)

	smaller := "Trạng thái,Doanh thu\nThành công,40\n"
	_, err = svc.ProcessUpload(strings.NewReader(smaller), "orders.csv")
	require.NoError(t, err)

	after, err := svc.GetStatistics(FilterCriteria{})
	require.NoError(t, err)
	assert.Equal(t, 1, after.TotalOrders)
	assert.Equal(t, 40.0, after.TotalRevenue)
}

func TestGetBucketedSummary(t *testing.T) {
	svc := newTestService()
	_, err := svc.ProcessUpload(strings.NewReader(sampleCSV), "orders.csv")
	require.NoError(t, err)

	table, err := svc.GetBucketedSummary(processors.BucketRequest{
		BucketField: models.FieldSettlementDate,
		GroupBy:     processors.GroupMonth,
		Store:       processors.StoreAll,
	})
	require.NoError(t, err)
	assert.Equal(t, models.SummaryTable{{Label: "03/2024", Value: 350}}, table)
}

func TestReset(t *testing.T) {
	svc := newTestService()
	_, err := svc.ProcessUpload(strings.NewReader(sampleCSV), "orders.csv")
	require.NoError(t, err)

	svc.Reset()

	_, _, err = svc.Records()
	assert.ErrorIs(t, err, ErrNoData)
}
