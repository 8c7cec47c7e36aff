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

var (
	ErrCardNotFound = errors.New("booking card not found")
	ErrForbidden    = errors.New("not allowed to access this resource")
)

// cardCodeAttempts bounds the retry loop on UB code collisions. The
// code carries 7 random alphanumerics, so two collisions in a row
// already means something is wrong with the generator.
const cardCodeAttempts = 5

type CardUsecase interface {
	Create(ctx context.Context, actor *entity.Actor, req *dto.CreateCardRequest) (*dto.CardResponse, error)
	Search(ctx context.Context, actor *entity.Actor, q string, page, limit int) (*dto.CardListResponse, error)
	Detail(ctx context.Context, actor *entity.Actor, id uuid.UUID) (*dto.CardDetailResponse, error)
	Delete(ctx context.Context, actor *entity.Actor, id uuid.UUID) error
	BulkDelete(ctx context.Context, actor *entity.Actor, ids []uuid.UUID) (int64, error)
	ExportCSV(ctx context.Context, actor *entity.Actor, ids []uuid.UUID) ([]byte, error)
}

type cardUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cardRepo     repository.BookingCardRepository
	auditService service.AuditService
	exporter     *service.ReportExporter
}

func NewCardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cardRepo repository.BookingCardRepository,
	auditService service.AuditService,
	exporter *service.ReportExporter,
) CardUsecase {
	return &cardUsecase{
		db:           db,
		log:          log,
		cardRepo:     cardRepo,
		auditService: auditService,
		exporter:     exporter,
	}
}

func (u *cardUsecase) Create(ctx context.Context, actor *entity.Actor, req *dto.CreateCardRequest) (*dto.CardResponse, error) {
	card := &entity.BookingCard{
		CustomerName: req.CustomerName,
		Mobile:       req.Mobile,
		Nationality:  req.Nationality,
		Country:      req.Country,
		CreatedByID:  actor.ID,
	}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		createErr := createWithRetry(tx, "ub_code", cardCodeAttempts, func() error {
			card.UBCode = service.GenerateCardCode(time.Now())
			return u.cardRepo.Create(tx, card)
		})
		if createErr != nil {
			u.log.Warnf("Failed to create booking card: %+v", createErr)
			return createErr
		}

		return u.auditService.Log(tx, actor.ID, entity.AuditActionCardCreate, "booking_card", card.ID.String(), nil, map[string]interface{}{
			"ub_code":       card.UBCode,
			"customer_name": card.CustomerName,
		})
	})
	if err != nil {
		return nil, err
	}

	return converter.CardToResponse(card), nil
}

func (u *cardUsecase) Search(ctx context.Context, actor *entity.Actor, q string, page, limit int) (*dto.CardListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	cards, total, err := u.cardRepo.Search(u.db.WithContext(ctx), u.ownerFilter(actor), q, (page-1)*limit, limit)
	if err != nil {
		u.log.Warnf("Failed to search booking cards: %+v", err)
		return nil, err
	}

	return &dto.CardListResponse{
		Cards: converter.CardsToResponses(cards),
		Total: total,
	}, nil
}

func (u *cardUsecase) Detail(ctx context.Context, actor *entity.Actor, id uuid.UUID) (*dto.CardDetailResponse, error) {
	card, err := u.cardRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find booking card: %+v", err)
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	if !actor.IsAdmin && card.CreatedByID != actor.ID {
		return nil, ErrForbidden
	}

	return converter.CardToDetailResponse(card, time.Now()), nil
}

func (u *cardUsecase) Delete(ctx context.Context, actor *entity.Actor, id uuid.UUID) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownerID, err := u.cardRepo.FindOwnerID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to resolve card owner: %+v", err)
			return err
		}
		if ownerID == nil {
			return ErrCardNotFound
		}
		if !actor.IsAdmin && *ownerID != actor.ID {
			return ErrForbidden
		}

		affected, err := u.cardRepo.Delete(tx, id)
		if err != nil {
			u.log.Warnf("Failed to delete booking card: %+v", err)
			return err
		}
		if affected == 0 {
			return ErrCardNotFound
		}

		return u.auditService.Log(tx, actor.ID, entity.AuditActionCardDelete, "booking_card", id.String(), nil, nil)
	})
}

func (u *cardUsecase) BulkDelete(ctx context.Context, actor *entity.Actor, ids []uuid.UUID) (int64, error) {
	var affected int64
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		affected, err = u.cardRepo.DeleteByIDs(tx, u.ownerFilter(actor), ids)
		if err != nil {
			u.log.Warnf("Failed to bulk delete booking cards: %+v", err)
			return err
		}

		for _, id := range ids {
			if err := u.auditService.Log(tx, actor.ID, entity.AuditActionCardDelete, "booking_card", id.String(), nil, nil); err != nil {
				return err
			}
		}
		return nil
	})
	return affected, err
}

func (u *cardUsecase) ExportCSV(ctx context.Context, actor *entity.Actor, ids []uuid.UUID) ([]byte, error) {
	cards, err := u.cardRepo.FindByIDs(u.db.WithContext(ctx), u.ownerFilter(actor), ids)
	if err != nil {
		u.log.Warnf("Failed to load booking cards for export: %+v", err)
		return nil, err
	}
	return u.exporter.CardsCSV(cards)
}

// ownerFilter scopes queries to the actor's own cards unless they are
// an administrator.
func (u *cardUsecase) ownerFilter(actor *entity.Actor) *uuid.UUID {
	if actor.IsAdmin {
		return nil
	}
	id := actor.ID
	return &id
}
