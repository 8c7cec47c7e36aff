package converter

import (
	"unibooking/internal/delivery/dto"
	"unibooking/internal/domain/entity"
)

func TransferBookingToResponse(booking *entity.TransferBooking) *dto.TransferBookingResponse {
	if booking == nil {
		return nil
	}
	resp := &dto.TransferBookingResponse{
		ID:           booking.ID,
		CardID:       booking.CardID,
		BookingRef:   booking.BookingRef,
		VoucherCode:  booking.VoucherCode,
		EmployeeName: booking.EmployeeName,
		Pickup:       booking.Pickup,
		Dropoff:      booking.Dropoff,
		CreatedAt:    booking.CreatedAt,
	}
	if booking.Date != nil {
		resp.Date = booking.Date.Format("2006-01-02")
	}
	return resp
}

func TransferBookingsToResponses(bookings []entity.TransferBooking) []dto.TransferBookingResponse {
	responses := make([]dto.TransferBookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *TransferBookingToResponse(&bookings[i])
	}
	return responses
}
