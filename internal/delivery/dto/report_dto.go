package dto

import "time"

// ReportQuery carries the parsed report filters.
type ReportQuery struct {
	From     string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string `json:"to" validate:"omitempty,datetime=2006-01-02"`
	Employee string `json:"employee"`
	Kind     string `json:"kind" validate:"omitempty,oneof=hotel flight transfer visa"`
}

type ReportRowResponse struct {
	Kind      string    `json:"kind"`
	Ref       string    `json:"ref,omitempty"`
	Voucher   string    `json:"voucher,omitempty"`
	Employee  string    `json:"employee,omitempty"`
	Customer  string    `json:"customer,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Extra     string    `json:"extra,omitempty"`
}

type ReportResponse struct {
	Rows   []ReportRowResponse `json:"rows"`
	Counts map[string]int      `json:"counts"`
	Total  int                 `json:"total"`
}
