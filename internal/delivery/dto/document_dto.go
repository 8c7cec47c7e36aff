package dto

import "unibooking/internal/service"

// ParseDocumentResponse returns the heuristic field guesses from an
// uploaded voucher plus a snippet of the raw extracted text. The
// suggestions are never persisted; the client must submit a regular
// booking form after the user confirms them.
type ParseDocumentResponse struct {
	Suggestions *service.FieldSuggestions `json:"suggestions"`
	RawText     string                    `json:"raw_text"`
}
