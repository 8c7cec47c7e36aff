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

type VisaBookingUsecase interface {
	Create(ctx context.Context, actor *entity.Actor, cardID uuid.UUID, req *dto.CreateVisaBookingRequest) (*dto.VisaBookingResponse, error)
	Get(ctx context.Context, actor *entity.Actor, id uuid.UUID) (*dto.VisaBookingResponse, error)
}

type visaBookingUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	cardRepo repository.BookingCardRepository
	visaRepo repository.VisaBookingRepository
}

func NewVisaBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cardRepo repository.BookingCardRepository,
	visaRepo repository.VisaBookingRepository,
) VisaBookingUsecase {
	return &visaBookingUsecase{
		db:       db,
		log:      log,
		cardRepo: cardRepo,
		visaRepo: visaRepo,
	}
}

func (u *visaBookingUsecase) Create(ctx context.Context, actor *entity.Actor, cardID uuid.UUID, req *dto.CreateVisaBookingRequest) (*dto.VisaBookingResponse, error) {
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

	booking := &entity.VisaBooking{
		CardID:       cardID,
		BookingRef:   req.BookingRef,
		EmployeeName: actor.Name,
		VisaType:     req.VisaType,
		Nationality:  req.Nationality,
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		createErr := createWithRetry(tx, "voucher_code", voucherCodeAttempts, func() error {
			booking.VoucherCode = service.GenerateVoucherCode(service.VoucherPrefixVisa, req.BookingRef, time.Now())
			return u.visaRepo.Create(tx, booking)
		})
		if createErr != nil {
			u.log.Warnf("Failed to create visa booking: %+v", createErr)
		}
		return createErr
	})
	if err != nil {
		return nil, err
	}

	return converter.VisaBookingToResponse(booking), nil
}

func (u *visaBookingUsecase) Get(ctx context.Context, actor *entity.Actor, id uuid.UUID) (*dto.VisaBookingResponse, error) {
	booking, err := u.visaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find visa booking: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !actor.IsAdmin && booking.Card.CreatedByID != actor.ID {
		return nil, ErrForbidden
	}

	return converter.VisaBookingToResponse(booking), nil
}
