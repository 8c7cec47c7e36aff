package handler

import (
	"net/http"
	"time"

	"unibooking/internal/delivery/dto"
	"unibooking/internal/delivery/http/middleware"
	"unibooking/internal/usecase"
	"unibooking/pkg/response"
	"unibooking/pkg/validator"

	"github.com/shopspring/decimal"
)

// PaymentHandler exposes the hotel payment ledger. Record and edit are
// multipart endpoints because they carry receipt attachments alongside
// the form fields.
type PaymentHandler struct {
	paymentUsecase usecase.HotelPaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.HotelPaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

// GetLedger returns the payment stream plus derived totals
// @Summary Get payment ledger
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Hotel booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hotels/{id}/payments [get]
func (h *PaymentHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookingID, err := pathUUID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	ledger, err := h.paymentUsecase.GetLedger(r.Context(), actor, bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Hotel booking not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You don't have access to this booking")
		default:
			response.InternalServerError(w, "Failed to get payment ledger")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment ledger retrieved successfully", ledger)
}

// Record adds one payment to a booking's ledger
// @Summary Record payment
// @Tags Payments
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Hotel booking ID"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /hotels/{id}/payments [post]
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookingID, err := pathUUID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	req, err := h.parseRecordForm(r)
	if err != nil {
		if writeFieldErrors(w, err) {
			return
		}
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.paymentUsecase.RecordPayment(r.Context(), actor, bookingID, req)
	if err != nil {
		if writeFieldErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Hotel booking not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You don't have access to this booking")
		default:
			response.InternalServerError(w, "Failed to record payment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Payment recorded successfully", result)
}

// Edit changes a payment inside its 24-hour window (admin only)
// @Summary Edit payment
// @Tags Payments
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /payments/{id} [put]
func (h *PaymentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	paymentID, err := pathUUID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	req, err := h.parseEditForm(r)
	if err != nil {
		if writeFieldErrors(w, err) {
			return
		}
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.EditPayment(r.Context(), actor, paymentID, req)
	if err != nil {
		if writeFieldErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrPaymentNotFound:
			response.NotFound(w, "Payment not found")
		case usecase.ErrAdminOnly:
			response.Forbidden(w, err.Error())
		case usecase.ErrEditWindowClosed:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to edit payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment updated successfully", payment)
}

// Delete removes a payment inside its 24-hour window (admin only)
// @Summary Delete payment
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /payments/{id} [delete]
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	paymentID, err := pathUUID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	if err := h.paymentUsecase.DeletePayment(r.Context(), actor, paymentID); err != nil {
		switch err {
		case usecase.ErrPaymentNotFound:
			response.NotFound(w, "Payment not found")
		case usecase.ErrAdminOnly:
			response.Forbidden(w, err.Error())
		case usecase.ErrEditWindowClosed:
			response.Forbidden(w, err.Error())
		case usecase.ErrFirstPaymentLocked:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to delete payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment deleted successfully", nil)
}

func (h *PaymentHandler) parseRecordForm(r *http.Request) (*dto.RecordPaymentRequest, error) {
	paidAmount, err := parseFormDecimal(r, "paid_amount")
	if err != nil {
		return nil, err
	}
	installmentDate, err := parseFormDate(r, "installment_date")
	if err != nil {
		return nil, err
	}
	netPrice, err := parseFormDecimalPtr(r, "net_price")
	if err != nil {
		return nil, err
	}
	sellPrice, err := parseFormDecimalPtr(r, "sell_price")
	if err != nil {
		return nil, err
	}

	req := &dto.RecordPaymentRequest{
		PaidAmount:      paidAmount,
		Method:          r.FormValue("method"),
		InstallmentDate: installmentDate,
		PaymentLink:     r.FormValue("payment_link"),
		NetPrice:        netPrice,
		SellPrice:       sellPrice,
	}

	if req.BankFile, err = formFile(r, "bank_file"); err != nil {
		return nil, err
	}
	if req.InvoiceFile, err = formFile(r, "invoice_file"); err != nil {
		return nil, err
	}
	if req.VoucherOriginal, err = formFile(r, "voucher_original"); err != nil {
		return nil, err
	}
	return req, nil
}

func (h *PaymentHandler) parseEditForm(r *http.Request) (*dto.EditPaymentRequest, error) {
	paidAmount, err := parseFormDecimal(r, "paid_amount")
	if err != nil {
		return nil, err
	}
	installmentDate, err := parseFormDate(r, "installment_date")
	if err != nil {
		return nil, err
	}
	netPrice, err := parseFormDecimalPtr(r, "net_price")
	if err != nil {
		return nil, err
	}
	sellPrice, err := parseFormDecimalPtr(r, "sell_price")
	if err != nil {
		return nil, err
	}

	req := &dto.EditPaymentRequest{
		PaidAmount:      paidAmount,
		Method:          r.FormValue("method"),
		InstallmentDate: installmentDate,
		PaymentLink:     r.FormValue("payment_link"),
		NetPrice:        netPrice,
		SellPrice:       sellPrice,
	}

	if req.BankFile, err = formFile(r, "bank_file"); err != nil {
		return nil, err
	}
	return req, nil
}

func parseFormDecimal(r *http.Request, field string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(r.FormValue(field))
	if err != nil {
		return decimal.Zero, usecase.FieldError(field, "must be a decimal number")
	}
	return value, nil
}

func parseFormDecimalPtr(r *http.Request, field string) (*decimal.Decimal, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, usecase.FieldError(field, "must be a decimal number")
	}
	return &value, nil
}

func parseFormDate(r *http.Request, field string) (*time.Time, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, usecase.FieldError(field, "must be a date in format 2006-01-02")
	}
	return &t, nil
}
