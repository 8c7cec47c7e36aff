package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"unibooking/internal/domain/entity"

	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ReportRow is one booking flattened for tabular export, regardless of
// kind.
type ReportRow struct {
	Kind      string
	Ref       string
	Voucher   string
	Employee  string
	Customer  string
	CreatedAt time.Time
	Extra     string
}

var reportHeader = []string{"Type", "Booking Ref", "Voucher", "Employee", "Customer", "Created At", "Extra"}

// ReportExporter dumps filtered booking rows as CSV, XLSX or PDF.
// All exports are read-only.
type ReportExporter struct {
	log *logrus.Logger
}

func NewReportExporter(log *logrus.Logger) *ReportExporter {
	return &ReportExporter{log: log}
}

func (e *ReportExporter) CSV(rows []ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{r.Kind, r.Ref, r.Voucher, r.Employee, r.Customer, r.CreatedAt.Format(time.RFC3339), r.Extra}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *ReportExporter) XLSX(rows []ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Reports"
	f.SetSheetName("Sheet1", sheet)

	for i, title := range reportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(len(title) + 2)
		if width < 12 {
			width = 12
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, err
		}
	}

	for i, r := range rows {
		values := []interface{}{r.Kind, r.Ref, r.Voucher, r.Employee, r.Customer, r.CreatedAt.Format(time.RFC3339), r.Extra}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		e.log.Warnf("Failed to write XLSX report: %+v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *ReportExporter) PDF(rows []ReportRow, generatedBy string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Bookings Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated %s by %s", time.Now().Format("2006-01-02 15:04"), generatedBy), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	widths := []float64{20, 35, 45, 35, 45, 35, 60}
	pdf.SetFont("Helvetica", "B", 9)
	for i, title := range reportHeader {
		pdf.CellFormat(widths[i], 7, title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, r := range rows {
		values := []string{r.Kind, r.Ref, r.Voucher, r.Employee, r.Customer, r.CreatedAt.Format("2006-01-02 15:04"), r.Extra}
		for i, v := range values {
			pdf.CellFormat(widths[i], 6, truncate(v, 40), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		e.log.Warnf("Failed to render PDF report: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// CardsCSV exports the bulk card list with per-kind booking counts.
func (e *ReportExporter) CardsCSV(cards []entity.BookingCard) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"ID", "UB Code", "Customer", "Mobile", "Nationality", "Country", "Hotels", "Flights", "Transfers", "Visas", "Created At"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range cards {
		c := &cards[i]
		record := []string{
			c.ID.String(), c.UBCode, c.CustomerName, c.Mobile, c.Nationality, c.Country,
			fmt.Sprintf("%d", len(c.HotelBookings)),
			fmt.Sprintf("%d", len(c.FlightBookings)),
			fmt.Sprintf("%d", len(c.TransferBookings)),
			fmt.Sprintf("%d", len(c.VisaBookings)),
			c.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
