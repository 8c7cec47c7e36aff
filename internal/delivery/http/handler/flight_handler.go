package handler

import (
	"net/http"

	"unibooking/internal/delivery/dto"
	"unibooking/internal/delivery/http/middleware"
	"unibooking/internal/usecase"
	"unibooking/pkg/response"
	"unibooking/pkg/validator"
)

type FlightHandler struct {
	flightUsecase usecase.FlightBookingUsecase
	validator     *validator.CustomValidator
}

func NewFlightHandler(flightUsecase usecase.FlightBookingUsecase, validator *validator.CustomValidator) *FlightHandler {
	return &FlightHandler{
		flightUsecase: flightUsecase,
		validator:     validator,
	}
}

// Create records a flight on a booking card. Multipart because the
// payment proof and issued ticket travel with the form.
// @Summary Create flight booking
// @Tags Flights
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param cardId path string true "Card ID"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cards/{cardId}/flights [post]
func (h *FlightHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	netPrice, err := parseFormDecimal(r, "net_price")
	if err != nil {
		writeFieldErrors(w, err)
		return
	}
	sellPrice, err := parseFormDecimal(r, "sell_price")
	if err != nil {
		writeFieldErrors(w, err)
		return
	}

	req := &dto.CreateFlightBookingRequest{
		Airline:       r.FormValue("airline"),
		PNR:           r.FormValue("pnr"),
		NetPrice:      netPrice,
		SellPrice:     sellPrice,
		PaymentMethod: r.FormValue("payment_method"),
		PaymentLink:   r.FormValue("payment_link"),
	}

	if req.PaymentFile, err = formFile(r, "payment_file"); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment file", nil)
		return
	}
	if req.InvoiceFile, err = formFile(r, "invoice_file"); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid invoice file", nil)
		return
	}
	if req.VoucherFile, err = formFile(r, "voucher_file"); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid voucher file", nil)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.flightUsecase.Create(r.Context(), actor, cardID, req)
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
			response.InternalServerError(w, "Failed to create flight booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Flight booking created successfully", booking)
}

// Get returns one flight booking
// @Summary Get flight booking
// @Tags Flights
// @Security BearerAuth
// @Produce json
// @Param id path string true "Flight booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /flights/{id} [get]
func (h *FlightHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.flightUsecase.Get(r.Context(), actor, id)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Flight booking not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You don't have access to this booking")
		default:
			response.InternalServerError(w, "Failed to get flight booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Flight booking retrieved successfully", booking)
}
