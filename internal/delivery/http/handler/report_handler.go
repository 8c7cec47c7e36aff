package handler

import (
	"net/http"

	"unibooking/internal/delivery/dto"
	"unibooking/internal/delivery/http/middleware"
	"unibooking/internal/usecase"
	"unibooking/pkg/response"
	"unibooking/pkg/validator"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

// Query returns filtered booking rows across all kinds
// @Summary Query bookings report
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Param employee query string false "Employee name filter"
// @Param kind query string false "Booking kind" Enums(hotel, flight, transfer, visa)
// @Success 200 {object} response.Response
// @Router /reports [get]
func (h *ReportHandler) Query(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	query := h.parseQuery(r)
	if err := h.validator.Validate(query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.reportUsecase.Query(r.Context(), actor, query)
	if err != nil {
		if writeFieldErrors(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report built successfully", report)
}

// Export streams the report as a file download
// @Summary Export bookings report
// @Tags Reports
// @Security BearerAuth
// @Produce octet-stream
// @Param format query string true "Export format" Enums(csv, xlsx, pdf)
// @Success 200 {file} file
// @Router /reports/export [get]
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	query := h.parseQuery(r)
	if err := h.validator.Validate(query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	data, contentType, filename, err := h.reportUsecase.Export(r.Context(), actor, query, r.URL.Query().Get("format"))
	if err != nil {
		if writeFieldErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrUnsupportedFormat:
			response.Error(w, http.StatusBadRequest, "Unsupported export format, use csv, xlsx or pdf", nil)
		default:
			response.InternalServerError(w, "Failed to export report")
		}
		return
	}

	response.File(w, contentType, filename, data)
}

func (h *ReportHandler) parseQuery(r *http.Request) *dto.ReportQuery {
	q := r.URL.Query()
	return &dto.ReportQuery{
		From:     q.Get("from"),
		To:       q.Get("to"),
		Employee: q.Get("employee"),
		Kind:     q.Get("kind"),
	}
}
