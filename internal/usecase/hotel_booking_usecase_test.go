package usecase

import (
	"testing"

	"unibooking/internal/delivery/dto"
	"unibooking/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCancellationPolicy(t *testing.T) {
	penalty := decimal.NewFromInt(50)

	tests := []struct {
		name      string
		booking   *entity.HotelBooking
		req       dto.CreateHotelBookingRequest
		wantField string
	}{
		{
			name:    "refundable with deadline before checkin",
			booking: &entity.HotelBooking{Checkin: datePtr(2026, 10, 1)},
			req: dto.CreateHotelBookingRequest{
				CancellationPolicy: "refundable",
				RefundableUntil:    "2026-09-25",
			},
		},
		{
			name:    "refundable without deadline",
			booking: &entity.HotelBooking{Checkin: datePtr(2026, 10, 1)},
			req: dto.CreateHotelBookingRequest{
				CancellationPolicy: "refundable",
			},
			wantField: "refundable_until",
		},
		{
			name:    "refundable deadline after checkin",
			booking: &entity.HotelBooking{Checkin: datePtr(2026, 10, 1)},
			req: dto.CreateHotelBookingRequest{
				CancellationPolicy: "refundable",
				RefundableUntil:    "2026-10-05",
			},
			wantField: "refundable_until",
		},
		{
			name:    "refundable deadline on checkin day",
			booking: &entity.HotelBooking{Checkin: datePtr(2026, 10, 1)},
			req: dto.CreateHotelBookingRequest{
				CancellationPolicy: "refundable",
				RefundableUntil:    "2026-10-01",
			},
			wantField: "refundable_until",
		},
		{
			name:    "penalty deadline after checkin",
			booking: &entity.HotelBooking{Checkin: datePtr(2026, 10, 1)},
			req: dto.CreateHotelBookingRequest{
				CancellationPolicy:       "refundable_with_penalty",
				RefundableUntil:          "2026-10-02",
				CancellationPenaltyValue: &penalty,
				CancellationPenaltyType:  "percent",
			},
			wantField: "refundable_until",
		},
		{
			name:    "penalty stay missing penalty fields",
			booking: &entity.HotelBooking{Checkin: datePtr(2026, 10, 1)},
			req: dto.CreateHotelBookingRequest{
				CancellationPolicy: "refundable_with_penalty",
				RefundableUntil:    "2026-09-25",
			},
			wantField: "cancellation_penalty_value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := applyCancellationPolicy(tt.booking, &tt.req)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tt.wantField)
		})
	}
}

func TestApplyCancellationPolicyNonRefundableDropsFields(t *testing.T) {
	penalty := decimal.NewFromInt(50)
	booking := &entity.HotelBooking{Checkin: datePtr(2026, 10, 1)}
	req := dto.CreateHotelBookingRequest{
		CancellationPolicy:       "non_refundable",
		RefundableUntil:          "2026-09-25",
		CancellationPenaltyValue: &penalty,
		CancellationPenaltyType:  "percent",
	}

	require.NoError(t, applyCancellationPolicy(booking, &req))
	assert.Nil(t, booking.RefundableUntil)
	assert.False(t, booking.CancellationPenaltyValue.Valid)
	assert.Empty(t, string(booking.CancellationPenaltyType))
}
