package usecase

import (
	"context"
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

type TransferBookingUsecase interface {
	Create(ctx context.Context, actor *entity.Actor, cardID uuid.UUID, req *dto.CreateTransferBookingRequest) (*dto.TransferBookingResponse, error)
	Get(ctx context.Context, actor *entity.Actor, id uuid.UUID) (*dto.TransferBookingResponse, error)
}

type transferBookingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cardRepo     repository.BookingCardRepository
	transferRepo repository.TransferBookingRepository
}

func NewTransferBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cardRepo repository.BookingCardRepository,
	transferRepo repository.TransferBookingRepository,
) TransferBookingUsecase {
	return &transferBookingUsecase{
		db:           db,
		log:          log,
		cardRepo:     cardRepo,
		transferRepo: transferRepo,
	}
}

func (u *transferBookingUsecase) Create(ctx context.Context, actor *entity.Actor, cardID uuid.UUID, req *dto.CreateTransferBookingRequest) (*dto.TransferBookingResponse, error) {
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

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, FieldError("date", "invalid date, use YYYY-MM-DD")
	}

	booking := &entity.TransferBooking{
		CardID:       cardID,
		BookingRef:   req.BookingRef,
		EmployeeName: actor.Name,
		Pickup:       req.Pickup,
		Dropoff:      req.Dropoff,
		Date:         date,
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		createErr := createWithRetry(tx, "voucher_code", voucherCodeAttempts, func() error {
			booking.VoucherCode = service.GenerateVoucherCode(service.VoucherPrefixTransfer, req.BookingRef, time.Now())
			return u.transferRepo.Create(tx, booking)
		})
		if createErr != nil {
			u.log.Warnf("Failed to create transfer booking: %+v", createErr)
		}
		return createErr
	})
	if err != nil {
		return nil, err
	}

	return converter.TransferBookingToResponse(booking), nil
}

func (u *transferBookingUsecase) Get(ctx context.Context, actor *entity.Actor, id uuid.UUID) (*dto.TransferBookingResponse, error) {
	booking, err := u.transferRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find transfer booking: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !actor.IsAdmin && booking.Card.CreatedByID != actor.ID {
		return nil, ErrForbidden
	}

	return converter.TransferBookingToResponse(booking), nil
}
