package converter

import (
	"time"

	"unibooking/internal/delivery/dto"
	"unibooking/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment, now time.Time) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	response := &dto.PaymentResponse{
		ID:              payment.ID,
		BookingHotelID:  payment.BookingHotelID,
		EmployeeName:    payment.EmployeeName,
		NetPrice:        payment.NetPrice,
		SellPrice:       payment.SellPrice,
		PaidAmount:      payment.PaidAmount,
		Method:          string(payment.Method),
		PaymentLink:     payment.PaymentLink,
		BankFile:        payment.BankFile,
		InvoiceFile:     payment.InvoiceFile,
		VoucherOriginal: payment.VoucherOriginal,
		IsEditable:      payment.IsEditable(now),
		CreatedAt:       payment.CreatedAt,
	}
	if payment.InstallmentDate != nil {
		response.InstallmentDate = payment.InstallmentDate.Format("2006-01-02")
	}
	return response
}

// PaymentsToResponses converts a slice of Payment entities, newest last
func PaymentsToResponses(payments []entity.Payment, now time.Time) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *PaymentToResponse(&payments[i], now)
	}
	return responses
}

// LedgerToResponse builds the read-side ledger view: payments plus
// derived totals, recomputed from the loaded stream.
func LedgerToResponse(booking *entity.HotelBooking, now time.Time) *dto.PaymentLedgerResponse {
	return &dto.PaymentLedgerResponse{
		BookingID: booking.ID,
		Sell:      booking.Sell,
		Net:       booking.Net,
		Profit:    booking.Profit(),
		TotalPaid: booking.TotalPaid(),
		Remaining: booking.Remaining(),
		Payments:  PaymentsToResponses(booking.Payments, now),
	}
}
