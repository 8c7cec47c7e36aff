package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking kinds used by report filtering and voucher rendering
const (
	KindHotel    = "hotel"
	KindFlight   = "flight"
	KindTransfer = "transfer"
	KindVisa     = "visa"
)

// ReportFilter narrows report queries. OwnerID is set for non-admin
// actors so staff only ever see their own cards' bookings.
type ReportFilter struct {
	From     *time.Time
	To       *time.Time
	Employee string
	Kind     string
	OwnerID  *uuid.UUID
}
