package converter

import (
	"time"

	"unibooking/internal/delivery/dto"
	"unibooking/internal/domain/entity"
)

// CardToResponse converts a BookingCard entity to its summary DTO
func CardToResponse(card *entity.BookingCard) *dto.CardResponse {
	if card == nil {
		return nil
	}
	return &dto.CardResponse{
		ID:           card.ID,
		UBCode:       card.UBCode,
		CustomerName: card.CustomerName,
		Mobile:       card.Mobile,
		Nationality:  card.Nationality,
		Country:      card.Country,
		CreatedByID:  card.CreatedByID,
		CreatedAt:    card.CreatedAt,
	}
}

// CardsToResponses converts a slice of BookingCard entities
func CardsToResponses(cards []entity.BookingCard) []dto.CardResponse {
	responses := make([]dto.CardResponse, len(cards))
	for i := range cards {
		responses[i] = *CardToResponse(&cards[i])
	}
	return responses
}

// CardToDetailResponse builds the full card view: identity, every
// attached booking, and the derived money totals computed from the
// loaded children on this read.
func CardToDetailResponse(card *entity.BookingCard, now time.Time) *dto.CardDetailResponse {
	if card == nil {
		return nil
	}
	return &dto.CardDetailResponse{
		Card: *CardToResponse(card),
		Totals: dto.CardTotals{
			TotalSell:      card.TotalSell(),
			TotalNet:       card.TotalNet(),
			TotalPaid:      card.TotalPaid(),
			TotalRemaining: card.TotalRemaining(),
			TotalProfit:    card.TotalProfit(),
		},
		HotelBookings:    HotelBookingsToResponses(card.HotelBookings, now),
		FlightBookings:   FlightBookingsToResponses(card.FlightBookings),
		TransferBookings: TransferBookingsToResponses(card.TransferBookings),
		VisaBookings:     VisaBookingsToResponses(card.VisaBookings),
	}
}
