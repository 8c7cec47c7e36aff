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
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrEditWindowClosed   = errors.New("payment is older than 24 hours and can no longer be changed")
	ErrAdminOnly          = errors.New("only an administrator can change recorded payments")
	ErrFirstPaymentLocked = errors.New("the price-setting payment cannot be deleted while later payments exist")
)

// HotelPaymentUsecase is the write path of the hotel payment ledger.
// Every mutation runs inside a transaction that locks the booking row,
// so validation and write see the same payment stream.
type HotelPaymentUsecase interface {
	GetLedger(ctx context.Context, actor *entity.Actor, bookingID uuid.UUID) (*dto.PaymentLedgerResponse, error)
	RecordPayment(ctx context.Context, actor *entity.Actor, bookingID uuid.UUID, req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error)
	EditPayment(ctx context.Context, actor *entity.Actor, paymentID uuid.UUID, req *dto.EditPaymentRequest) (*dto.PaymentResponse, error)
	DeletePayment(ctx context.Context, actor *entity.Actor, paymentID uuid.UUID) error
}

type hotelPaymentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	hotelRepo    repository.HotelBookingRepository
	paymentRepo  repository.PaymentRepository
	cardRepo     repository.BookingCardRepository
	auditService service.AuditService
	attachments  *service.AttachmentStore
}

func NewHotelPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hotelRepo repository.HotelBookingRepository,
	paymentRepo repository.PaymentRepository,
	cardRepo repository.BookingCardRepository,
	auditService service.AuditService,
	attachments *service.AttachmentStore,
) HotelPaymentUsecase {
	return &hotelPaymentUsecase{
		db:           db,
		log:          log,
		hotelRepo:    hotelRepo,
		paymentRepo:  paymentRepo,
		cardRepo:     cardRepo,
		auditService: auditService,
		attachments:  attachments,
	}
}

func (u *hotelPaymentUsecase) GetLedger(ctx context.Context, actor *entity.Actor, bookingID uuid.UUID) (*dto.PaymentLedgerResponse, error) {
	booking, err := u.hotelRepo.FindByID(u.db.WithContext(ctx), bookingID)
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

	return converter.LedgerToResponse(booking, time.Now()), nil
}

func (u *hotelPaymentUsecase) RecordPayment(ctx context.Context, actor *entity.Actor, bookingID uuid.UUID, req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	var resp *dto.RecordPaymentResponse

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := u.hotelRepo.FindByIDForUpdate(tx, bookingID)
		if err != nil {
			u.log.Warnf("Failed to lock hotel booking: %+v", err)
			return err
		}
		if booking == nil {
			return ErrBookingNotFound
		}

		ownerID, err := u.cardRepo.FindOwnerID(tx, booking.CardID)
		if err != nil {
			return err
		}
		if ownerID == nil {
			return ErrCardNotFound
		}
		if !actor.IsAdmin && *ownerID != actor.ID {
			return ErrForbidden
		}

		entry := &ledgerEntry{
			PaidAmount:         req.PaidAmount,
			Method:             entity.PaymentMethod(req.Method),
			InstallmentDate:    req.InstallmentDate,
			PaymentLink:        req.PaymentLink,
			NetPrice:           req.NetPrice,
			SellPrice:          req.SellPrice,
			HasBankFile:        req.BankFile != nil,
			HasInvoiceFile:     req.InvoiceFile != nil,
			HasVoucherOriginal: req.VoucherOriginal != nil,
		}

		result, err := validateLedgerEntry(booking, booking.Payments, entry, false)
		if err != nil {
			return err
		}

		payment := &entity.Payment{
			ID:              uuid.New(),
			BookingHotelID:  booking.ID,
			EmployeeName:    actor.Name,
			PaidAmount:      req.PaidAmount,
			Method:          entity.PaymentMethod(req.Method),
			InstallmentDate: req.InstallmentDate,
			PaymentLink:     req.PaymentLink,
		}
		if result.IsFirst {
			payment.NetPrice = *req.NetPrice
			payment.SellPrice = *req.SellPrice
		} else {
			payment.NetPrice = booking.Net
			payment.SellPrice = booking.Sell
		}

		// Attachments are written only after validation passed, so a
		// rejected submission leaves no blobs behind.
		if err := u.storeAttachment(payment, "bank_file", req.BankFile, &payment.BankFile); err != nil {
			return err
		}
		if err := u.storeAttachment(payment, "invoice_file", req.InvoiceFile, &payment.InvoiceFile); err != nil {
			return err
		}
		if err := u.storeAttachment(payment, "voucher_original", req.VoucherOriginal, &payment.VoucherOriginal); err != nil {
			return err
		}

		if err := u.paymentRepo.Create(tx, payment); err != nil {
			u.log.Warnf("Failed to create payment: %+v", err)
			return err
		}

		if result.IsFirst {
			if err := u.hotelRepo.UpdatePrices(tx, booking.ID, *req.NetPrice, *req.SellPrice); err != nil {
				u.log.Warnf("Failed to set booking prices from first payment: %+v", err)
				return err
			}
		}

		if err := u.auditService.Log(tx, actor.ID, entity.AuditActionPaymentRecord, "payment", payment.ID.String(), nil, paymentAuditValue(payment)); err != nil {
			return err
		}

		resp = &dto.RecordPaymentResponse{
			Payment:        *converter.PaymentToResponse(payment, time.Now()),
			RemainingAfter: result.RemainingAfter,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (u *hotelPaymentUsecase) EditPayment(ctx context.Context, actor *entity.Actor, paymentID uuid.UUID, req *dto.EditPaymentRequest) (*dto.PaymentResponse, error) {
	if !actor.IsAdmin {
		return nil, ErrAdminOnly
	}

	var resp *dto.PaymentResponse

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payment, err := u.paymentRepo.FindByID(tx, paymentID)
		if err != nil {
			u.log.Warnf("Failed to find payment: %+v", err)
			return err
		}
		if payment == nil {
			return ErrPaymentNotFound
		}
		if !payment.IsEditable(time.Now()) {
			return ErrEditWindowClosed
		}

		booking, err := u.hotelRepo.FindByIDForUpdate(tx, payment.BookingHotelID)
		if err != nil {
			u.log.Warnf("Failed to lock hotel booking: %+v", err)
			return err
		}
		if booking == nil {
			return ErrBookingNotFound
		}

		isFirst := len(booking.Payments) > 0 && booking.Payments[0].ID == payment.ID
		others := make([]entity.Payment, 0, len(booking.Payments))
		for i := range booking.Payments {
			if booking.Payments[i].ID != payment.ID {
				others = append(others, booking.Payments[i])
			}
		}

		entry := &ledgerEntry{
			PaidAmount:      req.PaidAmount,
			Method:          entity.PaymentMethod(req.Method),
			InstallmentDate: req.InstallmentDate,
			PaymentLink:     req.PaymentLink,
			NetPrice:        req.NetPrice,
			SellPrice:       req.SellPrice,
			HasBankFile:     req.BankFile != nil || payment.BankFile != "",
		}
		if isFirst {
			// Pricing defaults to the stored snapshot; the invoice and
			// original voucher persist from the original submission.
			if entry.NetPrice == nil {
				net := payment.NetPrice
				entry.NetPrice = &net
			}
			if entry.SellPrice == nil {
				sell := payment.SellPrice
				entry.SellPrice = &sell
			}
			entry.HasInvoiceFile = payment.InvoiceFile != ""
			entry.HasVoucherOriginal = payment.VoucherOriginal != ""
		}

		result, err := validateLedgerEntry(booking, others, entry, isFirst)
		if err != nil {
			return err
		}

		oldValue := paymentAuditValue(payment)

		payment.PaidAmount = req.PaidAmount
		payment.Method = entity.PaymentMethod(req.Method)
		payment.InstallmentDate = req.InstallmentDate
		payment.PaymentLink = req.PaymentLink
		if isFirst {
			payment.NetPrice = *entry.NetPrice
			payment.SellPrice = *entry.SellPrice
		}

		if err := u.storeAttachment(payment, "bank_file", req.BankFile, &payment.BankFile); err != nil {
			return err
		}

		if err := u.paymentRepo.Update(tx, payment); err != nil {
			u.log.Warnf("Failed to update payment: %+v", err)
			return err
		}

		if result.IsFirst {
			if err := u.hotelRepo.UpdatePrices(tx, booking.ID, payment.NetPrice, payment.SellPrice); err != nil {
				u.log.Warnf("Failed to refresh booking prices from edited payment: %+v", err)
				return err
			}
		}

		if err := u.auditService.Log(tx, actor.ID, entity.AuditActionPaymentEdit, "payment", payment.ID.String(), oldValue, paymentAuditValue(payment)); err != nil {
			return err
		}

		resp = converter.PaymentToResponse(payment, time.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (u *hotelPaymentUsecase) DeletePayment(ctx context.Context, actor *entity.Actor, paymentID uuid.UUID) error {
	if !actor.IsAdmin {
		return ErrAdminOnly
	}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payment, err := u.paymentRepo.FindByID(tx, paymentID)
		if err != nil {
			u.log.Warnf("Failed to find payment: %+v", err)
			return err
		}
		if payment == nil {
			return ErrPaymentNotFound
		}
		if !payment.IsEditable(time.Now()) {
			return ErrEditWindowClosed
		}

		booking, err := u.hotelRepo.FindByIDForUpdate(tx, payment.BookingHotelID)
		if err != nil {
			u.log.Warnf("Failed to lock hotel booking: %+v", err)
			return err
		}
		if booking == nil {
			return ErrBookingNotFound
		}

		isFirst := len(booking.Payments) > 0 && booking.Payments[0].ID == payment.ID
		if isFirst && len(booking.Payments) > 1 {
			return ErrFirstPaymentLocked
		}

		affected, err := u.paymentRepo.Delete(tx, payment.ID)
		if err != nil {
			u.log.Warnf("Failed to delete payment: %+v", err)
			return err
		}
		if affected == 0 {
			return ErrPaymentNotFound
		}

		// Deleting the sole payment re-opens the booking: prices unset,
		// the next payment becomes the price-setting one again.
		if isFirst {
			if err := u.hotelRepo.UpdatePrices(tx, booking.ID, decimal.Zero, decimal.Zero); err != nil {
				u.log.Warnf("Failed to reset booking prices: %+v", err)
				return err
			}
		}

		return u.auditService.Log(tx, actor.ID, entity.AuditActionPaymentDelete, "payment", payment.ID.String(), paymentAuditValue(payment), nil)
	})
	if err != nil {
		return err
	}

	// Blobs go only once the row delete has committed; a rollback must
	// leave the payment's attachments intact.
	if err := u.attachments.Delete("payment", paymentID.String()); err != nil {
		u.log.Warnf("Failed to delete payment attachments: %+v", err)
	}
	return nil
}

func (u *hotelPaymentUsecase) storeAttachment(payment *entity.Payment, field string, file *dto.FileUpload, target *string) error {
	if file == nil {
		return nil
	}
	key, err := u.attachments.Save("payment", payment.ID.String(), field, file.Filename, file.Data)
	if err != nil {
		u.log.Warnf("Failed to store %s attachment: %+v", field, err)
		return err
	}
	*target = key
	return nil
}

func paymentAuditValue(p *entity.Payment) map[string]interface{} {
	value := map[string]interface{}{
		"paid_amount": p.PaidAmount.String(),
		"method":      string(p.Method),
		"net_price":   p.NetPrice.String(),
		"sell_price":  p.SellPrice.String(),
	}
	if p.InstallmentDate != nil {
		value["installment_date"] = p.InstallmentDate.Format("2006-01-02")
	}
	return value
}
