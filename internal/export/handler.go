package export

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/quizforge-lambda/internal/apperror"
	"github.com/saulo-duarte/quizforge-lambda/internal/config"
	"github.com/saulo-duarte/quizforge-lambda/internal/googlesheets"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type exportResponse struct {
	OK      bool                       `json:"ok"`
	Updates *googlesheets.AppendResult `json:"updates"`
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ExportRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, config.MaxBodyBytes)).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid export request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log = log.WithField("sheet", req.SheetURLOrID)

	result, err := h.service.Export(r.Context(), req)
	if err != nil {
		status := apperror.HTTPStatus(err)
		if status == http.StatusBadRequest {
			log.WithError(err).Warn("Export rejected")
		} else {
			log.WithError(err).Error("Failed to export to Google Sheets")
		}
		config.Error(w, status, errorMessage(err))
		return
	}

	log.WithField("sheet_id", result.SpreadsheetID).Infof("Exported %d rows at row %d", result.UpdatedRows, result.StartRow)
	config.JSON(w, http.StatusOK, exportResponse{OK: true, Updates: result})
}

func errorMessage(err error) string {
	var extErr *apperror.ExternalServiceError
	if errors.As(err, &extErr) {
		return "Failed to export to Google Sheets: " + extErr.Msg
	}
	return err.Error()
}
