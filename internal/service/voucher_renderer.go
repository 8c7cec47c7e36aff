package service

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"unibooking/internal/domain/entity"

	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"
)

// ErrRender marks a PDF generation failure. It is distinct from a
// missing record: the booking exists, only the artifact failed.
var ErrRender = errors.New("voucher render failed")

// VoucherRenderer turns a booking record plus a QR payload (the
// voucher's own URL) into a printable PDF.
type VoucherRenderer struct {
	log *logrus.Logger
}

func NewVoucherRenderer(log *logrus.Logger) *VoucherRenderer {
	return &VoucherRenderer{log: log}
}

func (r *VoucherRenderer) RenderHotel(b *entity.HotelBooking, qrPayload string) ([]byte, error) {
	rows := [][2]string{
		{"Voucher Code", b.VoucherCode},
		{"Booking Ref", b.BookingRef},
		{"Customer", b.Card.CustomerName},
		{"Hotel", b.HotelName},
		{"Address", b.HotelAddress},
		{"Country", b.Country},
		{"Room Type", b.RoomType},
		{"Meal Plan", b.MealPlan},
		{"Provider", b.ProviderName},
		{"Check-in", formatDate(b.Checkin)},
		{"Check-out", formatDate(b.Checkout)},
		{"Nights", fmt.Sprintf("%d", b.Nights)},
		{"Rooms", fmt.Sprintf("%d", b.RoomsCount)},
		{"Cancellation", string(b.CancellationPolicy)},
		{"Issued By", b.EmployeeName},
	}
	for i, room := range b.Rooms {
		rows = append(rows, [2]string{fmt.Sprintf("Room %d Guests", i+1), room.GuestNames})
	}
	return r.render("Hotel Voucher", rows, qrPayload)
}

func (r *VoucherRenderer) RenderFlight(b *entity.FlightBooking, qrPayload string) ([]byte, error) {
	rows := [][2]string{
		{"Booking Code", b.BookingCode},
		{"Customer", b.Card.CustomerName},
		{"Airline", b.Airline},
		{"PNR", b.PNR},
		{"Sell Price", b.SellPrice.StringFixed(2)},
		{"Issued By", b.EmployeeName},
	}
	return r.render("Flight Voucher", rows, qrPayload)
}

func (r *VoucherRenderer) RenderTransfer(b *entity.TransferBooking, qrPayload string) ([]byte, error) {
	rows := [][2]string{
		{"Voucher Code", b.VoucherCode},
		{"Booking Ref", b.BookingRef},
		{"Customer", b.Card.CustomerName},
		{"Pickup", b.Pickup},
		{"Dropoff", b.Dropoff},
		{"Date", formatDate(b.Date)},
		{"Issued By", b.EmployeeName},
	}
	return r.render("Transfer Voucher", rows, qrPayload)
}

func (r *VoucherRenderer) RenderVisa(b *entity.VisaBooking, qrPayload string) ([]byte, error) {
	rows := [][2]string{
		{"Voucher Code", b.VoucherCode},
		{"Booking Ref", b.BookingRef},
		{"Customer", b.Card.CustomerName},
		{"Visa Type", b.VisaType},
		{"Nationality", b.Nationality},
		{"Issued By", b.EmployeeName},
	}
	return r.render("Visa Voucher", rows, qrPayload)
}

func (r *VoucherRenderer) render(title string, rows [][2]string, qrPayload string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Issued "+time.Now().Format("2006-01-02"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, row[1], "1", 1, "L", false, 0, "")
	}

	if qrPayload != "" {
		png, err := qrcode.Encode(qrPayload, qrcode.Medium, 256)
		if err != nil {
			r.log.Warnf("Failed to encode voucher QR: %+v", err)
			return nil, fmt.Errorf("%w: %v", ErrRender, err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("voucher-qr", opts, bytes.NewReader(png))
		pdf.Ln(6)
		pdf.ImageOptions("voucher-qr", pdf.GetX(), pdf.GetY(), 30, 30, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		r.log.Warnf("Failed to render voucher PDF: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
