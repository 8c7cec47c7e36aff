package handler

import (
	"errors"
	"net/http"

	"unibooking/internal/delivery/http/middleware"
	"unibooking/internal/service"
	"unibooking/internal/usecase"
	"unibooking/pkg/response"

	"github.com/gorilla/mux"
)

type VoucherHandler struct {
	voucherUsecase usecase.VoucherUsecase
}

func NewVoucherHandler(voucherUsecase usecase.VoucherUsecase) *VoucherHandler {
	return &VoucherHandler{voucherUsecase: voucherUsecase}
}

// Download renders a booking's voucher as a PDF
// @Summary Download voucher PDF
// @Tags Vouchers
// @Security BearerAuth
// @Produce application/pdf
// @Param kind path string true "Booking kind" Enums(hotel, flight, transfer, visa)
// @Param id path string true "Booking ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Response
// @Router /vouchers/{kind}/{id} [get]
func (h *VoucherHandler) Download(w http.ResponseWriter, r *http.Request) {
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

	pdf, filename, err := h.voucherUsecase.Render(r.Context(), actor, mux.Vars(r)["kind"], id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownVoucherKind):
			response.Error(w, http.StatusBadRequest, "Unknown voucher kind", nil)
		case errors.Is(err, usecase.ErrBookingNotFound):
			response.NotFound(w, "Booking not found")
		case errors.Is(err, usecase.ErrForbidden):
			response.Forbidden(w, "You don't have access to this booking")
		case errors.Is(err, service.ErrRender):
			response.InternalServerError(w, "Failed to render voucher")
		default:
			response.InternalServerError(w, "Failed to download voucher")
		}
		return
	}

	response.File(w, "application/pdf", filename, pdf)
}
