package handler

import (
	"encoding/json"
	"net/http"

	"unibooking/internal/delivery/dto"
	"unibooking/internal/delivery/http/middleware"
	"unibooking/internal/usecase"
	"unibooking/pkg/response"
	"unibooking/pkg/validator"
)

type TransferHandler struct {
	transferUsecase usecase.TransferBookingUsecase
	validator       *validator.CustomValidator
}

func NewTransferHandler(transferUsecase usecase.TransferBookingUsecase, validator *validator.CustomValidator) *TransferHandler {
	return &TransferHandler{
		transferUsecase: transferUsecase,
		validator:       validator,
	}
}

// Create records a ground transfer on a booking card
// @Summary Create transfer booking
// @Tags Transfers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param cardId path string true "Card ID"
// @Param request body dto.CreateTransferBookingRequest true "Transfer Booking Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cards/{cardId}/transfers [post]
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	cardID, err := pathUUID(r, "cardId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid card ID", nil)
		return
	}

	var req dto.CreateTransferBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.transferUsecase.Create(r.Context(), actor, cardID, &req)
	if err != nil {
		if writeFieldErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrCardNotFound:
			response.NotFound(w, "Booking card not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You don't have access to this booking card")
		default:
			response.InternalServerError(w, "Failed to create transfer booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Transfer booking created successfully", booking)
}

// Get returns one transfer booking
// @Summary Get transfer booking
// @Tags Transfers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transfer booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transfers/{id} [get]
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.transferUsecase.Get(r.Context(), actor, id)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Transfer booking not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You don't have access to this booking")
		default:
			response.InternalServerError(w, "Failed to get transfer booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Transfer booking retrieved successfully", booking)
}
