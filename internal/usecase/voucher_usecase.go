package usecase

import (
	"context"
	"errors"
	"fmt"

	"unibooking/internal/domain/entity"
	"unibooking/internal/domain/repository"
	"unibooking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrUnknownVoucherKind = errors.New("unknown voucher kind")

// VoucherUsecase renders printable voucher PDFs. The QR payload is the
// voucher's own public URL so a scan leads back to this endpoint.
type VoucherUsecase interface {
	Render(ctx context.Context, actor *entity.Actor, kind string, id uuid.UUID) ([]byte, string, error)
}

type voucherUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	hotelRepo    repository.HotelBookingRepository
	flightRepo   repository.FlightBookingRepository
	transferRepo repository.TransferBookingRepository
	visaRepo     repository.VisaBookingRepository
	renderer     *service.VoucherRenderer
	baseURL      string
}

func NewVoucherUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hotelRepo repository.HotelBookingRepository,
	flightRepo repository.FlightBookingRepository,
	transferRepo repository.TransferBookingRepository,
	visaRepo repository.VisaBookingRepository,
	renderer *service.VoucherRenderer,
	baseURL string,
) VoucherUsecase {
	return &voucherUsecase{
		db:           db,
		log:          log,
		hotelRepo:    hotelRepo,
		flightRepo:   flightRepo,
		transferRepo: transferRepo,
		visaRepo:     visaRepo,
		renderer:     renderer,
		baseURL:      baseURL,
	}
}

func (u *voucherUsecase) Render(ctx context.Context, actor *entity.Actor, kind string, id uuid.UUID) ([]byte, string, error) {
	db := u.db.WithContext(ctx)
	qr := fmt.Sprintf("%s/api/v1/vouchers/%s/%s", u.baseURL, kind, id.String())

	switch kind {
	case entity.KindHotel:
		booking, err := u.hotelRepo.FindByID(db, id)
		if err != nil {
			return nil, "", err
		}
		if booking == nil {
			return nil, "", ErrBookingNotFound
		}
		if err := u.authorize(actor, booking.Card.CreatedByID); err != nil {
			return nil, "", err
		}
		pdf, err := u.renderer.RenderHotel(booking, qr)
		return pdf, booking.VoucherCode + ".pdf", err

	case entity.KindFlight:
		booking, err := u.flightRepo.FindByID(db, id)
		if err != nil {
			return nil, "", err
		}
		if booking == nil {
			return nil, "", ErrBookingNotFound
		}
		if err := u.authorize(actor, booking.Card.CreatedByID); err != nil {
			return nil, "", err
		}
		pdf, err := u.renderer.RenderFlight(booking, qr)
		return pdf, booking.BookingCode + ".pdf", err

	case entity.KindTransfer:
		booking, err := u.transferRepo.FindByID(db, id)
		if err != nil {
			return nil, "", err
		}
		if booking == nil {
			return nil, "", ErrBookingNotFound
		}
		if err := u.authorize(actor, booking.Card.CreatedByID); err != nil {
			return nil, "", err
		}
		pdf, err := u.renderer.RenderTransfer(booking, qr)
		return pdf, booking.VoucherCode + ".pdf", err

	case entity.KindVisa:
		booking, err := u.visaRepo.FindByID(db, id)
		if err != nil {
			return nil, "", err
		}
		if booking == nil {
			return nil, "", ErrBookingNotFound
		}
		if err := u.authorize(actor, booking.Card.CreatedByID); err != nil {
			return nil, "", err
		}
		pdf, err := u.renderer.RenderVisa(booking, qr)
		return pdf, booking.VoucherCode + ".pdf", err
	}

	return nil, "", ErrUnknownVoucherKind
}

func (u *voucherUsecase) authorize(actor *entity.Actor, ownerID uuid.UUID) error {
	if !actor.IsAdmin && ownerID != actor.ID {
		return ErrForbidden
	}
	return nil
}
