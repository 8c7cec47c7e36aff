package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	ledongpdf "github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
)

// ErrUnsupportedDocument is returned for anything that is not a PDF or
// DOCX upload.
var ErrUnsupportedDocument = errors.New("unsupported document type")

// FieldSuggestions holds best-effort values guessed from an uploaded
// voucher document. Every value is a suggestion that requires explicit
// user confirmation; nothing here is ever written to the store
// directly.
type FieldSuggestions struct {
	BookingRef   string     `json:"booking_ref,omitempty"`
	VoucherCode  string     `json:"voucher_code,omitempty"`
	CustomerName string     `json:"customer_name,omitempty"`
	HotelName    string     `json:"hotel_name,omitempty"`
	HotelAddress string     `json:"hotel_address,omitempty"`
	ProviderName string     `json:"provider_name,omitempty"`
	Country      string     `json:"country,omitempty"`
	MealPlan     string     `json:"meal_plan,omitempty"`
	RoomType     string     `json:"room_type,omitempty"`
	Nights       *int       `json:"nights,omitempty"`
	RoomsCount   *int       `json:"rooms_count,omitempty"`
	Checkin      *time.Time `json:"checkin,omitempty"`
	Checkout     *time.Time `json:"checkout,omitempty"`
}

// DocumentExtractor pulls plain text out of uploaded PDF/DOCX vouchers
// and pattern-matches candidate field values out of it.
type DocumentExtractor struct {
	log *logrus.Logger
}

func NewDocumentExtractor(log *logrus.Logger) *DocumentExtractor {
	return &DocumentExtractor{log: log}
}

// ExtractText dispatches on the filename extension.
func (e *DocumentExtractor) ExtractText(filename string, data []byte) (string, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".pdf"):
		return e.extractPDF(data)
	case strings.HasSuffix(strings.ToLower(filename), ".docx"):
		return e.extractDOCX(data)
	default:
		return "", ErrUnsupportedDocument
	}
}

func (e *DocumentExtractor) extractPDF(data []byte) (string, error) {
	reader, err := ledongpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, textReader); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// extractDOCX walks word/document.xml inside the zip container and
// collects run text, one line per paragraph.
func (e *DocumentExtractor) extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", errors.New("DOCX is missing word/document.xml")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var sb strings.Builder
	decoder := xml.NewDecoder(rc)
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse DOCX xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}

var (
	numericDatePattern = `(\d{1,2}[/-]\d{1,2}[/-]\d{4})`
	wordyDatePattern   = `([A-Za-z]{3}\s?\d{1,2},?\s?\d{4})`

	checkinKeys  = []string{"check in", "check-in", "arrival", "from"}
	checkoutKeys = []string{"check out", "check-out", "departure", "to"}

	dateLayouts = []string{"02/01/2006", "02-01-2006", "01/02/2006", "01-02-2006", "Jan 2 2006", "Jan 02 2006"}
)

// SmartParse guesses booking fields from free text. Purely heuristic:
// label-anchored regexes plus date sniffing around check-in/check-out
// keywords.
func (e *DocumentExtractor) SmartParse(text string) *FieldSuggestions {
	s := &FieldSuggestions{
		BookingRef:   grab(text, `(booking\s*ref|reservation\s*id)\s*[:\-]?\s*([A-Z0-9\-]+)`),
		VoucherCode:  grab(text, `(voucher\s*code|voucher)\s*[:\-]?\s*([A-Z0-9\-]+)`),
		CustomerName: grab(text, `(guest|holder|customer)\s*[:\-]?\s*([A-Za-z \-]+)`),
		HotelName:    grab(text, `(hotel)\s*[:\-]?\s*([A-Za-z0-9 ,\-\.\(\)]+)`),
		HotelAddress: grab(text, `(address)\s*[:\-]?\s*(.+)`),
		ProviderName: grab(text, `(provider|supplier)\s*[:\-]?\s*([A-Za-z0-9 \-]+)`),
		Country:      grab(text, `(country)\s*[:\-]?\s*([A-Za-z \-]+)`),
		MealPlan:     grab(text, `(meal|board)\s*[:\-]?\s*([A-Za-z \-]+)`),
		RoomType:     grab(text, `(room\s*type)\s*[:\-]?\s*(.+)`),
	}

	if v := grab(text, `(nights?)\s*[:\-]?\s*(\d+)`); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Nights = &n
		}
	}
	if v := grab(text, `(rooms?)\s*[:\-]?\s*(\d+)`); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.RoomsCount = &n
		}
	}

	s.Checkin = findDateNear(text, checkinKeys)
	s.Checkout = findDateNear(text, checkoutKeys)
	return s
}

func grab(text, pattern string) string {
	re := regexp.MustCompile(`(?i)` + pattern)
	m := re.FindStringSubmatch(text)
	if len(m) < 3 {
		return ""
	}
	return strings.TrimSpace(strings.TrimRight(m[2], "\r\n"))
}

func findDateNear(text string, keys []string) *time.Time {
	for _, key := range keys {
		for _, datePattern := range []string{numericDatePattern, wordyDatePattern} {
			// lazy gap so the date pattern sees the whole day number
			re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(key) + `.{0,20}?` + datePattern)
			if m := re.FindStringSubmatch(text); len(m) > 1 {
				if d := normalizeDate(m[1]); d != nil {
					return d
				}
			}
		}
	}
	return nil
}

func normalizeDate(s string) *time.Time {
	s = strings.ReplaceAll(s, ",", "")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
