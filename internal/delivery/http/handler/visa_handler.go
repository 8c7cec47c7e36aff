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

type VisaHandler struct {
	visaUsecase usecase.VisaBookingUsecase
	validator   *validator.CustomValidator
}

func NewVisaHandler(visaUsecase usecase.VisaBookingUsecase, validator *validator.CustomValidator) *VisaHandler {
	return &VisaHandler{
		visaUsecase: visaUsecase,
		validator:   validator,
	}
}

// Create records a visa application on a booking card
// @Summary Create visa booking
// @Tags Visas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param cardId path string true "Card ID"
// @Param request body dto.CreateVisaBookingRequest true "Visa Booking Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cards/{cardId}/visas [post]
func (h *VisaHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req dto.CreateVisaBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.visaUsecase.Create(r.Context(), actor, cardID, &req)
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
			response.InternalServerError(w, "Failed to create visa booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Visa booking created successfully", booking)
}

// Get returns one visa booking
// @Summary Get visa booking
// @Tags Visas
// @Security BearerAuth
// @Produce json
// @Param id path string true "Visa booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visas/{id} [get]
func (h *VisaHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.visaUsecase.Get(r.Context(), actor, id)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Visa booking not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You don't have access to this booking")
		default:
			response.InternalServerError(w, "Failed to get visa booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visa booking retrieved successfully", booking)
}
