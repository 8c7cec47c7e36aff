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

type FlightBookingUsecase interface {
	Create(ctx context.Context, actor *entity.Actor, cardID uuid.UUID, req *dto.CreateFlightBookingRequest) (*dto.FlightBookingResponse, error)
	Get(ctx context.Context, actor *entity.Actor, id uuid.UUID) (*dto.FlightBookingResponse, error)
}

type flightBookingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	cardRepo    repository.BookingCardRepository
	flightRepo  repository.FlightBookingRepository
	attachments *service.AttachmentStore
}

func NewFlightBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cardRepo repository.BookingCardRepository,
	flightRepo repository.FlightBookingRepository,
	attachments *service.AttachmentStore,
) FlightBookingUsecase {
	return &flightBookingUsecase{
		db:          db,
		log:         log,
		cardRepo:    cardRepo,
		flightRepo:  flightRepo,
		attachments: attachments,
	}
}

// Create records a flight. Flights carry their full price up front, so
// the method-specific proof is checked here rather than in a ledger.
func (u *flightBookingUsecase) Create(ctx context.Context, actor *entity.Actor, cardID uuid.UUID, req *dto.CreateFlightBookingRequest) (*dto.FlightBookingResponse, error) {
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

	method := entity.PaymentMethod(req.PaymentMethod)
	switch method {
	case entity.MethodLink:
		if req.PaymentLink == "" {
			return nil, FieldError("payment_link", "payment link is required for link payments")
		}
	case entity.MethodBank, entity.MethodCash:
		if req.PaymentFile == nil {
			return nil, FieldError("payment_file", "receipt attachment is required for bank or cash payments")
		}
	}
	if req.SellPrice.LessThan(req.NetPrice) {
		return nil, FieldError("sell_price", "sell price must not be below net price")
	}

	booking := &entity.FlightBooking{
		ID:            uuid.New(),
		CardID:        cardID,
		BookingCode:   service.GenerateFlightCode(req.PNR, actor.Name, time.Now()),
		Airline:       req.Airline,
		PNR:           req.PNR,
		NetPrice:      req.NetPrice,
		SellPrice:     req.SellPrice,
		PaymentMethod: method,
		PaymentLink:   req.PaymentLink,
		EmployeeName:  actor.Name,
	}

	if err := u.storeAttachment(booking, "payment_file", req.PaymentFile, &booking.PaymentFile); err != nil {
		return nil, err
	}
	if err := u.storeAttachment(booking, "invoice_file", req.InvoiceFile, &booking.InvoiceFile); err != nil {
		return nil, err
	}
	if err := u.storeAttachment(booking, "voucher_file", req.VoucherFile, &booking.VoucherFile); err != nil {
		return nil, err
	}

	if err := u.flightRepo.Create(u.db.WithContext(ctx), booking); err != nil {
		u.log.Warnf("Failed to create flight booking: %+v", err)
		return nil, err
	}

	return converter.FlightBookingToResponse(booking), nil
}

func (u *flightBookingUsecase) Get(ctx context.Context, actor *entity.Actor, id uuid.UUID) (*dto.FlightBookingResponse, error) {
	booking, err := u.flightRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find flight booking: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !actor.IsAdmin && booking.Card.CreatedByID != actor.ID {
		return nil, ErrForbidden
	}

	return converter.FlightBookingToResponse(booking), nil
}

func (u *flightBookingUsecase) storeAttachment(booking *entity.FlightBooking, field string, file *dto.FileUpload, target *string) error {
	if file == nil {
		return nil
	}
	key, err := u.attachments.Save("flight", booking.ID.String(), field, file.Filename, file.Data)
	if err != nil {
		u.log.Warnf("Failed to store %s attachment: %+v", field, err)
		return err
	}
	*target = key
	return nil
}
