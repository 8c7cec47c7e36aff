package service

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor() *DocumentExtractor {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewDocumentExtractor(log)
}

func TestExtractTextRejectsUnknownTypes(t *testing.T) {
	_, err := newTestExtractor().ExtractText("voucher.txt", []byte("plain text"))
	assert.ErrorIs(t, err, ErrUnsupportedDocument)

	_, err = newTestExtractor().ExtractText("voucher", nil)
	assert.ErrorIs(t, err, ErrUnsupportedDocument)
}

func TestExtractTextDOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document><w:body>` +
		`<w:p><w:r><w:t>Hotel: Grand Plaza</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Nights: 3</w:t></w:r></w:p>` +
		`</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	text, err := newTestExtractor().ExtractText("voucher.docx", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Hotel: Grand Plaza\nNights: 3\n", text)
}

func TestSmartParse(t *testing.T) {
	text := `ACCOMMODATION CONFIRMATION
Booking Ref: ABC-789
Guest: John Smith
Hotel: Grand Plaza Downtown
Country: United Arab Emirates
Meal: Half Board
Room Type: Deluxe Double
Nights: 3
Rooms: 2
Check-in: 12/05/2026
Check-out: 15/05/2026
Provider: Sun Travel DMC
`
	s := newTestExtractor().SmartParse(text)

	assert.Equal(t, "ABC-789", s.BookingRef)
	assert.Equal(t, "John Smith", s.CustomerName)
	assert.Equal(t, "Grand Plaza Downtown", s.HotelName)
	assert.Equal(t, "United Arab Emirates", s.Country)
	assert.Equal(t, "Half Board", s.MealPlan)
	assert.Equal(t, "Deluxe Double", s.RoomType)
	assert.Equal(t, "Sun Travel DMC", s.ProviderName)

	require.NotNil(t, s.Nights)
	assert.Equal(t, 3, *s.Nights)
	require.NotNil(t, s.RoomsCount)
	assert.Equal(t, 2, *s.RoomsCount)

	require.NotNil(t, s.Checkin)
	assert.Equal(t, time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC), *s.Checkin)
	require.NotNil(t, s.Checkout)
	assert.Equal(t, time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC), *s.Checkout)
}

func TestSmartParseTwoDigitDays(t *testing.T) {
	// the whole day number must reach the date parser, not just
	// its last digit
	s := newTestExtractor().SmartParse("Arrival: 28/02/2026\nDeparture: 14/03/2026\n")

	require.NotNil(t, s.Checkin)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), *s.Checkin)
	require.NotNil(t, s.Checkout)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), *s.Checkout)
}

func TestSmartParseEmptyText(t *testing.T) {
	s := newTestExtractor().SmartParse("nothing useful here")

	assert.Empty(t, s.BookingRef)
	assert.Empty(t, s.HotelName)
	assert.Nil(t, s.Nights)
	assert.Nil(t, s.Checkin)
}
