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

type HotelHandler struct {
	hotelUsecase usecase.HotelBookingUsecase
	validator    *validator.CustomValidator
}

func NewHotelHandler(hotelUsecase usecase.HotelBookingUsecase, validator *validator.CustomValidator) *HotelHandler {
	return &HotelHandler{
		hotelUsecase: hotelUsecase,
		validator:    validator,
	}
}

// Create records a hotel stay on a booking card
// @Summary Create hotel booking
// @Tags Hotels
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param cardId path string true "Card ID"
// @Param request body dto.CreateHotelBookingRequest true "Hotel Booking Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cards/{cardId}/hotels [post]
func (h *HotelHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req dto.CreateHotelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.hotelUsecase.Create(r.Context(), actor, cardID, &req)
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
			response.InternalServerError(w, "Failed to create hotel booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Hotel booking created successfully", booking)
}

// Get returns a hotel booking with its rooms and payment ledger
// @Summary Get hotel booking
// @Tags Hotels
// @Security BearerAuth
// @Produce json
// @Param id path string true "Hotel booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hotels/{id} [get]
func (h *HotelHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.hotelUsecase.Get(r.Context(), actor, id)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Hotel booking not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You don't have access to this booking")
		default:
			response.InternalServerError(w, "Failed to get hotel booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hotel booking retrieved successfully", booking)
}
