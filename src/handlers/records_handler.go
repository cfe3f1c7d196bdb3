package handlers

import (
	"errors"
	"net/http"

	"github.com/username/orderlens/src/logger"
	"github.com/username/orderlens/src/models"
	"github.com/username/orderlens/src/services"
	"github.com/username/orderlens/src/utils"
)

type RecordsHandler struct {
	reportService services.ReportService
}

func NewRecordsHandler(service services.ReportService) *RecordsHandler {
	return &RecordsHandler{reportService: service}
}

type recordsResponse struct {
	Columns        []models.Column      `json:"columns"`
	DistinctStores []string             `json:"distinct_stores"`
	Records        []models.OrderRecord `json:"records"`
}

// HandleGetRecords returns the canonical record sequence plus column
// metadata for grid collaborators.
func (h *RecordsHandler) HandleGetRecords(w http.ResponseWriter, r *http.Request) {
	records, build, err := h.reportService.Records()
	if err != nil {
		if errors.Is(err, services.ErrNoData) {
			utils.SendJSONError(w, "No data has been uploaded yet.", http.StatusNotFound)
			return
		}
		logger.L.Error("Error retrieving records", "error", err)
		utils.SendJSONError(w, "Error retrieving records.", http.StatusInternalServerError)
		return
	}

	resp := recordsResponse{
		Columns:        build.Columns,
		DistinctStores: build.DistinctStores,
		Records:        records,
	}
	if resp.DistinctStores == nil {
		resp.DistinctStores = []string{}
	}
	utils.SendJSON(w, resp, http.StatusOK)
}

// HandleReset discards all ingested data.
func (h *RecordsHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.reportService.Reset()
	utils.SendJSON(w, map[string]string{"message": "all records discarded"}, http.StatusOK)
}
