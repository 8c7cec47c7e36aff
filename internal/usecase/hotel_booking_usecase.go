package usecase

import (
	"context"
	"errors"
	"time"

	"unibooking/internal/converter"
	"unibooking/internal/delivery/dto"
	"unibooking/internal/domain/entity"
	"unibooking/internal/domain/repository"
	"unibooking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

// voucherCodeAttempts bounds retries when the random suffix collides
// with an existing voucher code.
const voucherCodeAttempts = 5

type HotelBookingUsecase interface {
	Create(ctx context.Context, actor *entity.Actor, cardID uuid.UUID, req *dto.CreateHotelBookingRequest) (*dto.HotelBookingResponse, error)
	Get(ctx context.Context, actor *entity.Actor, id uuid.UUID) (*dto.HotelBookingResponse, error)
}

type hotelBookingUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	cardRepo  repository.BookingCardRepository
	hotelRepo repository.HotelBookingRepository
}

func NewHotelBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cardRepo repository.BookingCardRepository,
	hotelRepo repository.HotelBookingRepository,
) HotelBookingUsecase {
	return &hotelBookingUsecase{
		db:        db,
		log:       log,
		cardRepo:  cardRepo,
		hotelRepo: hotelRepo,
	}
}

func (u *hotelBookingUsecase) Create(ctx context.Context, actor *entity.Actor, cardID uuid.UUID, req *dto.CreateHotelBookingRequest) (*dto.HotelBookingResponse, error) {
	ownerID, err := u.cardRepo.FindOwnerID(u.db.WithContext(ctx), cardID)
	if err != nil {
		u.log.Warnf("Failed to resolve card owner: %+v", err)
		return nil, err
	}
	if ownerID == nil {
		return nil, ErrCardNotFound
	}
	if !actor.IsAdmin && *ownerID != actor.ID {
		return nil, ErrForbidden
	}

	checkin, err := parseDate(req.Checkin)
	if err != nil {
		return nil, FieldError("checkin", "invalid date, use YYYY-MM-DD")
	}
	checkout, err := parseDate(req.Checkout)
	if err != nil {
		return nil, FieldError("checkout", "invalid date, use YYYY-MM-DD")
	}
	if checkin != nil && checkout != nil && !checkout.After(*checkin) {
		return nil, FieldError("checkout", "check-out must be after check-in")
	}

	booking := &entity.HotelBooking{
		CardID:       cardID,
		BookingRef:   req.BookingRef,
		EmployeeName: actor.Name,
		HotelName:    req.HotelName,
		HotelAddress: req.HotelAddress,
		Country:      req.Country,
		RoomType:     req.RoomType,
		MealPlan:     req.MealPlan,
		ProviderName: req.ProviderName,
		Checkin:      checkin,
		Checkout:     checkout,
		RoomsCount:   req.RoomsCount,
	}
	if booking.RoomsCount < 1 {
		booking.RoomsCount = 1
	}
	if checkin != nil && checkout != nil {
		booking.Nights = int(checkout.Sub(*checkin).Hours() / 24)
	}

	if err := applyCancellationPolicy(booking, req); err != nil {
		return nil, err
	}

	for _, room := range req.Rooms {
		booking.Rooms = append(booking.Rooms, entity.Room{GuestNames: room.GuestNames})
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		createErr := createWithRetry(tx, "voucher_code", voucherCodeAttempts, func() error {
			booking.VoucherCode = service.GenerateVoucherCode(service.VoucherPrefixHotel, req.BookingRef, time.Now())
			return u.hotelRepo.Create(tx, booking)
		})
		if createErr != nil {
			u.log.Warnf("Failed to create hotel booking: %+v", createErr)
		}
		return createErr
	})
	if err != nil {
		return nil, err
	}

	return converter.HotelBookingToResponse(booking, time.Now()), nil
}

func (u *hotelBookingUsecase) Get(ctx context.Context, actor *entity.Actor, id uuid.UUID) (*dto.HotelBookingResponse, error) {
	booking, err := u.hotelRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find hotel booking: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !actor.IsAdmin && booking.Card.CreatedByID != actor.ID {
		return nil, ErrForbidden
	}

	return converter.HotelBookingToResponse(booking, time.Now()), nil
}

// applyCancellationPolicy validates the policy fields as a group and
// writes them onto the booking. A refundable stay needs its deadline,
// which must fall before check-in; a penalty stay additionally needs
// the penalty value and its unit;
// a non-refundable stay carries none of them.
func applyCancellationPolicy(booking *entity.HotelBooking, req *dto.CreateHotelBookingRequest) error {
	policy := entity.CancellationPolicy(req.CancellationPolicy)
	if policy == "" {
		policy = entity.PolicyRefundable
	}

	refundableUntil, err := parseDate(req.RefundableUntil)
	if err != nil {
		return FieldError("refundable_until", "invalid date, use YYYY-MM-DD")
	}

	fields := map[string]string{}
	switch policy {
	case entity.PolicyRefundable:
		if refundableUntil == nil {
			fields["refundable_until"] = "refundable deadline is required for a refundable stay"
		} else if booking.Checkin != nil && !refundableUntil.Before(*booking.Checkin) {
			fields["refundable_until"] = "refundable deadline must be before the check-in date"
		}
	case entity.PolicyRefundableWithPenalty:
		if refundableUntil == nil {
			fields["refundable_until"] = "refundable deadline is required for a penalty stay"
		} else if booking.Checkin != nil && !refundableUntil.Before(*booking.Checkin) {
			fields["refundable_until"] = "refundable deadline must be before the check-in date"
		}
		if req.CancellationPenaltyValue == nil {
			fields["cancellation_penalty_value"] = "penalty value is required for a penalty stay"
		}
		if req.CancellationPenaltyType == "" {
			fields["cancellation_penalty_type"] = "penalty type is required for a penalty stay"
		}
	case entity.PolicyNonRefundable:
		// deadline and penalty have no meaning here; drop them
		refundableUntil = nil
		req.CancellationPenaltyValue = nil
		req.CancellationPenaltyType = ""
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	booking.CancellationPolicy = policy
	booking.RefundableUntil = refundableUntil
	booking.CancellationPenaltyType = entity.PenaltyType(req.CancellationPenaltyType)
	if req.CancellationPenaltyValue != nil {
		booking.CancellationPenaltyValue.Valid = true
		booking.CancellationPenaltyValue.Decimal = *req.CancellationPenaltyValue
	}
	return nil
}
