package converter

import (
	"time"

	"unibooking/internal/delivery/dto"
	"unibooking/internal/domain/entity"
)

// HotelBookingToResponse converts a HotelBooking entity with its loaded
// rooms and payments into a response DTO, computing derived totals.
func HotelBookingToResponse(booking *entity.HotelBooking, now time.Time) *dto.HotelBookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.HotelBookingResponse{
		ID:                      booking.ID,
		CardID:                  booking.CardID,
		BookingRef:              booking.BookingRef,
		VoucherCode:             booking.VoucherCode,
		EmployeeName:            booking.EmployeeName,
		HotelName:               booking.HotelName,
		HotelAddress:            booking.HotelAddress,
		Country:                 booking.Country,
		RoomType:                booking.RoomType,
		MealPlan:                booking.MealPlan,
		ProviderName:            booking.ProviderName,
		Nights:                  booking.Nights,
		RoomsCount:              booking.RoomsCount,
		CancellationPolicy:      string(booking.CancellationPolicy),
		CancellationPenaltyType: string(booking.CancellationPenaltyType),
		Net:                     booking.Net,
		Sell:                    booking.Sell,
		Profit:                  booking.Profit(),
		TotalPaid:               booking.TotalPaid(),
		Remaining:               booking.Remaining(),
		CreatedAt:               booking.CreatedAt,
	}
	if booking.Checkin != nil {
		response.Checkin = booking.Checkin.Format("2006-01-02")
	}
	if booking.Checkout != nil {
		response.Checkout = booking.Checkout.Format("2006-01-02")
	}
	if booking.RefundableUntil != nil {
		response.RefundableUntil = booking.RefundableUntil.Format("2006-01-02")
	}
	if booking.CancellationPenaltyValue.Valid {
		v := booking.CancellationPenaltyValue.Decimal
		response.CancellationPenaltyValue = &v
	}
	for i := range booking.Rooms {
		response.Rooms = append(response.Rooms, dto.RoomResponse{
			ID:         booking.Rooms[i].ID,
			GuestNames: booking.Rooms[i].GuestNames,
		})
	}
	response.Payments = PaymentsToResponses(booking.Payments, now)
	return response
}

// HotelBookingsToResponses converts a slice of HotelBooking entities
func HotelBookingsToResponses(bookings []entity.HotelBooking, now time.Time) []dto.HotelBookingResponse {
	responses := make([]dto.HotelBookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *HotelBookingToResponse(&bookings[i], now)
	}
	return responses
}
