package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/username/orderlens/src/logger"
	"github.com/username/orderlens/src/models"
	"github.com/username/orderlens/src/processors"
	"github.com/username/orderlens/src/services"
	"github.com/username/orderlens/src/utils"
)

type StatisticsHandler struct {
	reportService services.ReportService
}

func NewStatisticsHandler(service services.ReportService) *StatisticsHandler {
	return &StatisticsHandler{reportService: service}
}

// HandleGetStatistics returns the full aggregate view over the current
// (optionally filtered) record set, with ETag support so chart
// collaborators can skip unchanged payloads.
func (h *StatisticsHandler) HandleGetStatistics(w http.ResponseWriter, r *http.Request) {
	filter := services.FilterCriteria{
		Status:   r.URL.Query().Get("status"),
		Store:    r.URL.Query().Get("store"),
		City:     r.URL.Query().Get("city"),
		SalesRep: r.URL.Query().Get("sales_rep"),
	}

	stats, err := h.reportService.GetStatistics(filter)
	if err != nil {
		if errors.Is(err, services.ErrNoData) {
			utils.SendJSONError(w, "No data has been uploaded yet.", http.StatusNotFound)
			return
		}
		logger.L.Error("Error computing statistics", "error", err)
		utils.SendJSONError(w, "Error computing statistics.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "no-cache, private")
	if etag, etagErr := utils.GenerateETag(stats); etagErr == nil && etag != "" {
		quotedETag := fmt.Sprintf("%q", etag)
		w.Header().Set("ETag", quotedETag)
		for _, clientETag := range strings.Split(r.Header.Get("If-None-Match"), ",") {
			if strings.TrimSpace(clientETag) == quotedETag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	} else if etagErr != nil {
		logger.L.Warn("Proceeding without ETag check due to ETag generation error", "error", etagErr)
	}

	utils.SendJSON(w, stats, http.StatusOK)
}

// HandleGetBucketedSummary returns revenue grouped by time bucket.
// Query params: group_by (day|week|month|custom), store (name or "all"),
// date_field (date-class canonical key, default ngay_giao_thanh_cong),
// start/end (dd/MM/yyyy, custom mode only).
func (h *StatisticsHandler) HandleGetBucketedSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := processors.BucketRequest{
		BucketField: q.Get("date_field"),
		GroupBy:     processors.GroupMode(q.Get("group_by")),
		Store:       q.Get("store"),
	}
	if req.BucketField == "" {
		req.BucketField = models.FieldDeliveredDate
	}
	if req.GroupBy == "" {
		req.GroupBy = processors.GroupDay
	}
	if req.Store == "" {
		req.Store = processors.StoreAll
	}

	var err error
	if req.GroupBy == processors.GroupCustom {
		if req.Start, err = utils.ParseDayString(q.Get("start")); err != nil {
			utils.SendJSONError(w, "Invalid 'start' date, expected dd/MM/yyyy.", http.StatusBadRequest)
			return
		}
		if req.End, err = utils.ParseDayString(q.Get("end")); err != nil {
			utils.SendJSONError(w, "Invalid 'end' date, expected dd/MM/yyyy.", http.StatusBadRequest)
			return
		}
	}

	table, err := h.reportService.GetBucketedSummary(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoData):
			utils.SendJSONError(w, "No data has been uploaded yet.", http.StatusNotFound)
		case errors.Is(err, processors.ErrInvalidDateRange):
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, processors.ErrNoMatchingData):
			utils.SendJSONError(w, "No data matches the requested filters.", http.StatusNotFound)
		default:
			logger.L.Error("Error computing bucketed summary", "error", err)
			utils.SendJSONError(w, "Error computing bucketed summary.", http.StatusInternalServerError)
		}
		return
	}

	utils.SendJSON(w, map[string]any{
		"group_by": req.GroupBy,
		"store":    req.Store,
		"buckets":  table,
	}, http.StatusOK)
}
