package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"unibooking/internal/delivery/dto"
	"unibooking/internal/domain/entity"
	"unibooking/internal/domain/repository"
	"unibooking/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// reportLimit caps each kind's contribution to a report query.
const reportLimit = 1000

type ReportUsecase interface {
	Query(ctx context.Context, actor *entity.Actor, query *dto.ReportQuery) (*dto.ReportResponse, error)
	// Export renders the same rows as Query in the requested format and
	// returns the payload with its content type and a filename.
	Export(ctx context.Context, actor *entity.Actor, query *dto.ReportQuery, format string) ([]byte, string, string, error)
}

type reportUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	hotelRepo    repository.HotelBookingRepository
	flightRepo   repository.FlightBookingRepository
	transferRepo repository.TransferBookingRepository
	visaRepo     repository.VisaBookingRepository
	exporter     *service.ReportExporter
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hotelRepo repository.HotelBookingRepository,
	flightRepo repository.FlightBookingRepository,
	transferRepo repository.TransferBookingRepository,
	visaRepo repository.VisaBookingRepository,
	exporter *service.ReportExporter,
) ReportUsecase {
	return &reportUsecase{
		db:           db,
		log:          log,
		hotelRepo:    hotelRepo,
		flightRepo:   flightRepo,
		transferRepo: transferRepo,
		visaRepo:     visaRepo,
		exporter:     exporter,
	}
}

func (u *reportUsecase) Query(ctx context.Context, actor *entity.Actor, query *dto.ReportQuery) (*dto.ReportResponse, error) {
	rows, err := u.collect(ctx, actor, query)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	responses := make([]dto.ReportRowResponse, len(rows))
	for i, r := range rows {
		counts[r.Kind]++
		responses[i] = dto.ReportRowResponse{
			Kind:      r.Kind,
			Ref:       r.Ref,
			Voucher:   r.Voucher,
			Employee:  r.Employee,
			Customer:  r.Customer,
			CreatedAt: r.CreatedAt,
			Extra:     r.Extra,
		}
	}

	return &dto.ReportResponse{
		Rows:   responses,
		Counts: counts,
		Total:  len(rows),
	}, nil
}

func (u *reportUsecase) Export(ctx context.Context, actor *entity.Actor, query *dto.ReportQuery, format string) ([]byte, string, string, error) {
	rows, err := u.collect(ctx, actor, query)
	if err != nil {
		return nil, "", "", err
	}

	stamp := time.Now().Format("20060102")
	switch format {
	case "csv":
		data, err := u.exporter.CSV(rows)
		return data, "text/csv", "bookings-" + stamp + ".csv", err
	case "xlsx":
		data, err := u.exporter.XLSX(rows)
		return data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "bookings-" + stamp + ".xlsx", err
	case "pdf":
		data, err := u.exporter.PDF(rows, actor.Name)
		return data, "application/pdf", "bookings-" + stamp + ".pdf", err
	}
	return nil, "", "", ErrUnsupportedFormat
}

func (u *reportUsecase) collect(ctx context.Context, actor *entity.Actor, query *dto.ReportQuery) ([]service.ReportRow, error) {
	filter, err := u.buildFilter(actor, query)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)
	var rows []service.ReportRow

	if filter.Kind == "" || filter.Kind == entity.KindHotel {
		hotels, err := u.hotelRepo.ListFiltered(db, filter, reportLimit)
		if err != nil {
			u.log.Warnf("Failed to list hotel bookings for report: %+v", err)
			return nil, err
		}
		for i := range hotels {
			b := &hotels[i]
			rows = append(rows, service.ReportRow{
				Kind:      entity.KindHotel,
				Ref:       b.BookingRef,
				Voucher:   b.VoucherCode,
				Employee:  b.EmployeeName,
				Customer:  b.Card.CustomerName,
				CreatedAt: b.CreatedAt,
				Extra:     hotelExtra(b),
			})
		}
	}

	if filter.Kind == "" || filter.Kind == entity.KindFlight {
		flights, err := u.flightRepo.ListFiltered(db, filter, reportLimit)
		if err != nil {
			u.log.Warnf("Failed to list flight bookings for report: %+v", err)
			return nil, err
		}
		for i := range flights {
			b := &flights[i]
			rows = append(rows, service.ReportRow{
				Kind:      entity.KindFlight,
				Ref:       b.PNR,
				Voucher:   b.BookingCode,
				Employee:  b.EmployeeName,
				Customer:  b.Card.CustomerName,
				CreatedAt: b.CreatedAt,
				Extra:     b.Airline,
			})
		}
	}

	if filter.Kind == "" || filter.Kind == entity.KindTransfer {
		transfers, err := u.transferRepo.ListFiltered(db, filter, reportLimit)
		if err != nil {
			u.log.Warnf("Failed to list transfer bookings for report: %+v", err)
			return nil, err
		}
		for i := range transfers {
			b := &transfers[i]
			rows = append(rows, service.ReportRow{
				Kind:      entity.KindTransfer,
				Ref:       b.BookingRef,
				Voucher:   b.VoucherCode,
				Employee:  b.EmployeeName,
				Customer:  b.Card.CustomerName,
				CreatedAt: b.CreatedAt,
				Extra:     b.Pickup + " to " + b.Dropoff,
			})
		}
	}

	if filter.Kind == "" || filter.Kind == entity.KindVisa {
		visas, err := u.visaRepo.ListFiltered(db, filter, reportLimit)
		if err != nil {
			u.log.Warnf("Failed to list visa bookings for report: %+v", err)
			return nil, err
		}
		for i := range visas {
			b := &visas[i]
			rows = append(rows, service.ReportRow{
				Kind:      entity.KindVisa,
				Ref:       b.BookingRef,
				Voucher:   b.VoucherCode,
				Employee:  b.EmployeeName,
				Customer:  b.Card.CustomerName,
				CreatedAt: b.CreatedAt,
				Extra:     b.VisaType + " / " + b.Nationality,
			})
		}
	}

	return rows, nil
}

func (u *reportUsecase) buildFilter(actor *entity.Actor, query *dto.ReportQuery) (*entity.ReportFilter, error) {
	from, err := parseDate(query.From)
	if err != nil {
		return nil, FieldError("from", "invalid date, use YYYY-MM-DD")
	}
	to, err := parseDate(query.To)
	if err != nil {
		return nil, FieldError("to", "invalid date, use YYYY-MM-DD")
	}

	filter := &entity.ReportFilter{
		From:     from,
		To:       to,
		Employee: query.Employee,
		Kind:     query.Kind,
	}
	if !actor.IsAdmin {
		id := actor.ID
		filter.OwnerID = &id
	}
	return filter, nil
}

func hotelExtra(b *entity.HotelBooking) string {
	extra := b.HotelName
	if b.Checkin != nil && b.Checkout != nil {
		extra = fmt.Sprintf("%s %s to %s", b.HotelName, b.Checkin.Format("2006-01-02"), b.Checkout.Format("2006-01-02"))
	}
	return extra
}
