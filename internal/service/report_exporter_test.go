package service

import (
	"bytes"
	"encoding/csv"
	"io"
	"testing"
	"time"

	"unibooking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestExporter() *ReportExporter {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewReportExporter(log)
}

func sampleRows() []ReportRow {
	return []ReportRow{
		{
			Kind:      entity.KindHotel,
			Ref:       "BK-1",
			Voucher:   "H20260215BK-11234",
			Employee:  "Amy Lee",
			Customer:  "John Smith",
			CreatedAt: time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC),
			Extra:     "Grand Plaza, 3 nights",
		},
		{
			Kind:      entity.KindFlight,
			Ref:       "ABC123",
			Voucher:   "F20260215ABC123AMYLE",
			Employee:  "Amy Lee",
			Customer:  "John Smith",
			CreatedAt: time.Date(2026, 2, 16, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestReportExporterCSV(t *testing.T) {
	data, err := newTestExporter().CSV(sampleRows())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Type", "Booking Ref", "Voucher", "Employee", "Customer", "Created At", "Extra"}, records[0])
	assert.Equal(t, "hotel", records[1][0])
	assert.Equal(t, "H20260215BK-11234", records[1][2])
	assert.Equal(t, "2026-02-15T09:00:00Z", records[1][5])
	assert.Equal(t, "flight", records[2][0])
}

func TestReportExporterXLSX(t *testing.T) {
	data, err := newTestExporter().XLSX(sampleRows())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Reports", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Type", header)

	kind, err := f.GetCellValue("Reports", "A2")
	require.NoError(t, err)
	assert.Equal(t, "hotel", kind)
}

func TestReportExporterPDF(t *testing.T) {
	data, err := newTestExporter().PDF(sampleRows(), "Amy Lee")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestReportExporterCardsCSV(t *testing.T) {
	card := entity.BookingCard{
		ID:           uuid.New(),
		UBCode:       "U20260215EMPAB12CD3",
		CustomerName: "John Smith",
		Mobile:       "+100200300",
		Nationality:  "British",
		Country:      "UK",
		CreatedAt:    time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC),
		HotelBookings: []entity.HotelBooking{
			{}, {},
		},
		FlightBookings: []entity.FlightBooking{{}},
	}

	data, err := newTestExporter().CardsCSV([]entity.BookingCard{card})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, card.ID.String(), row[0])
	assert.Equal(t, "U20260215EMPAB12CD3", row[1])
	assert.Equal(t, "2", row[6])  // hotels
	assert.Equal(t, "1", row[7])  // flights
	assert.Equal(t, "0", row[8])  // transfers
	assert.Equal(t, "0", row[9])  // visas
}
