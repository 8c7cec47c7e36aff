package converter

import (
	"unibooking/internal/delivery/dto"
	"unibooking/internal/domain/entity"
)

func FlightBookingToResponse(booking *entity.FlightBooking) *dto.FlightBookingResponse {
	if booking == nil {
		return nil
	}
	return &dto.FlightBookingResponse{
		ID:            booking.ID,
		CardID:        booking.CardID,
		BookingCode:   booking.BookingCode,
		Airline:       booking.Airline,
		PNR:           booking.PNR,
		NetPrice:      booking.NetPrice,
		SellPrice:     booking.SellPrice,
		Profit:        booking.Profit(),
		PaymentMethod: string(booking.PaymentMethod),
		PaymentLink:   booking.PaymentLink,
		PaymentFile:   booking.PaymentFile,
		InvoiceFile:   booking.InvoiceFile,
		VoucherFile:   booking.VoucherFile,
		EmployeeName:  booking.EmployeeName,
		CreatedAt:     booking.CreatedAt,
	}
}

func FlightBookingsToResponses(bookings []entity.FlightBooking) []dto.FlightBookingResponse {
	responses := make([]dto.FlightBookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *FlightBookingToResponse(&bookings[i])
	}
	return responses
}
