package converter

import (
	"unibooking/internal/delivery/dto"
	"unibooking/internal/domain/entity"
)

func VisaBookingToResponse(booking *entity.VisaBooking) *dto.VisaBookingResponse {
	if booking == nil {
		return nil
	}
	return &dto.VisaBookingResponse{
		ID:           booking.ID,
		CardID:       booking.CardID,
		BookingRef:   booking.BookingRef,
		VoucherCode:  booking.VoucherCode,
		EmployeeName: booking.EmployeeName,
		VisaType:     booking.VisaType,
		Nationality:  booking.Nationality,
		CreatedAt:    booking.CreatedAt,
	}
}

func VisaBookingsToResponses(bookings []entity.VisaBooking) []dto.VisaBookingResponse {
	responses := make([]dto.VisaBookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *VisaBookingToResponse(&bookings[i])
	}
	return responses
}
