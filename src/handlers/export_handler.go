package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/username/orderlens/src/logger"
	"github.com/username/orderlens/src/services"
	"github.com/username/orderlens/src/utils"
)

type ExportHandler struct {
	reportService services.ReportService
	exportService services.ExportService
}

func NewExportHandler(reportService services.ReportService, exportService services.ExportService) *ExportHandler {
	return &ExportHandler{
		reportService: reportService,
		exportService: exportService,
	}
}

// HandleExportRecords streams the current record set as an XLSX
// download, with date fields rendered per their display hints.
func (h *ExportHandler) HandleExportRecords(w http.ResponseWriter, r *http.Request) {
	records, build, err := h.reportService.Records()
	if err != nil {
		if errors.Is(err, services.ErrNoData) {
			utils.SendJSONError(w, "No data has been uploaded yet.", http.StatusNotFound)
			return
		}
		logger.L.Error("Error retrieving records for export", "error", err)
		utils.SendJSONError(w, "Error retrieving records for export.", http.StatusInternalServerError)
		return
	}

	workbook, err := h.exportService.BuildWorkbook(records, build.Columns)
	if err != nil {
		logger.L.Error("Error building export workbook", "error", err)
		utils.SendJSONError(w, "Error building export workbook.", http.StatusInternalServerError)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("BaoCao_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := workbook.Write(w); err != nil {
		logger.L.Error("Error streaming export workbook", "error", err)
	}
}
