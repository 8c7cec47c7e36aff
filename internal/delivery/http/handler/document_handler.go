package handler

import (
	"errors"
	"net/http"

	"unibooking/internal/service"
	"unibooking/internal/usecase"
	"unibooking/pkg/response"
)

type DocumentHandler struct {
	documentUsecase usecase.DocumentUsecase
}

func NewDocumentHandler(documentUsecase usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{documentUsecase: documentUsecase}
}

// Parse extracts booking field suggestions from an uploaded provider
// voucher (PDF or DOCX). Nothing is persisted.
// @Summary Parse a provider voucher
// @Tags Documents
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /documents/parse [post]
func (h *DocumentHandler) Parse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	file, err := formFile(r, "document")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document file", nil)
		return
	}
	if file == nil {
		response.Error(w, http.StatusBadRequest, "Document file is required", nil)
		return
	}

	result, err := h.documentUsecase.Parse(r.Context(), file.Filename, file.Data)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedDocument) {
			response.Error(w, http.StatusBadRequest, "Unsupported document type, upload a PDF or DOCX", nil)
			return
		}
		response.InternalServerError(w, "Failed to parse document")
		return
	}

	response.Success(w, http.StatusOK, "Document parsed successfully", result)
}
