package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"unibooking/internal/delivery/dto"
	"unibooking/internal/delivery/http/middleware"
	"unibooking/internal/usecase"
	"unibooking/pkg/response"
	"unibooking/pkg/validator"
)

type CardHandler struct {
	cardUsecase usecase.CardUsecase
	validator   *validator.CustomValidator
}

func NewCardHandler(cardUsecase usecase.CardUsecase, validator *validator.CustomValidator) *CardHandler {
	return &CardHandler{
		cardUsecase: cardUsecase,
		validator:   validator,
	}
}

// Create opens a new booking card
// @Summary Create booking card
// @Tags Cards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCardRequest true "Card Request"
// @Success 201 {object} response.Response
// @Router /cards [post]
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	card, err := h.cardUsecase.Create(r.Context(), actor, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create booking card")
		return
	}

	response.Success(w, http.StatusCreated, "Booking card created successfully", card)
}

// Search lists booking cards matching a free-text query
// @Summary Search booking cards
// @Tags Cards
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search query"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /cards [get]
func (h *CardHandler) Search(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.cardUsecase.Search(r.Context(), actor, r.URL.Query().Get("q"), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to search booking cards")
		return
	}

	response.Success(w, http.StatusOK, "Booking cards retrieved successfully", result)
}

// Detail returns one card with all bookings and derived totals
// @Summary Get booking card detail
// @Tags Cards
// @Security BearerAuth
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cards/{id} [get]
func (h *CardHandler) Detail(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid card ID", nil)
		return
	}

	detail, err := h.cardUsecase.Detail(r.Context(), actor, id)
	if err != nil {
		switch err {
		case usecase.ErrCardNotFound:
			response.NotFound(w, "Booking card not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You don't have access to this booking card")
		default:
			response.InternalServerError(w, "Failed to get booking card")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking card retrieved successfully", detail)
}

// Delete removes one card and all of its bookings
// @Summary Delete booking card
// @Tags Cards
// @Security BearerAuth
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cards/{id} [delete]
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid card ID", nil)
		return
	}

	if err := h.cardUsecase.Delete(r.Context(), actor, id); err != nil {
		switch err {
		case usecase.ErrCardNotFound:
			response.NotFound(w, "Booking card not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You don't have access to this booking card")
		default:
			response.InternalServerError(w, "Failed to delete booking card")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking card deleted successfully", nil)
}

// BulkDelete removes a batch of cards
// @Summary Bulk delete booking cards
// @Tags Cards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BulkDeleteCardsRequest true "Card IDs"
// @Success 200 {object} response.Response
// @Router /cards/bulk-delete [post]
func (h *CardHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.BulkDeleteCardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	affected, err := h.cardUsecase.BulkDelete(r.Context(), actor, req.IDs)
	if err != nil {
		response.InternalServerError(w, "Failed to delete booking cards")
		return
	}

	response.Success(w, http.StatusOK, "Booking cards deleted successfully", map[string]int64{"deleted": affected})
}

// ExportCSV streams the selected cards as a CSV download
// @Summary Export booking cards as CSV
// @Tags Cards
// @Security BearerAuth
// @Accept json
// @Produce text/csv
// @Param request body dto.BulkDeleteCardsRequest true "Card IDs"
// @Success 200 {file} file
// @Router /cards/export [post]
func (h *CardHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.BulkDeleteCardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	data, err := h.cardUsecase.ExportCSV(r.Context(), actor, req.IDs)
	if err != nil {
		response.InternalServerError(w, "Failed to export booking cards")
		return
	}

	response.File(w, "text/csv", "booking-cards.csv", data)
}
