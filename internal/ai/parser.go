// Package ai wraps the receipt/statement extraction provider behind a
// narrow interface.
package ai

import "context"

// ParsedReceipt is what extraction pulls out of a receipt image.
type ParsedReceipt struct {
	Merchant string           `json:"merchant"`
	Total    float64          `json:"total"`
	Date     string           `json:"date,omitempty"`
	Category string           `json:"category,omitempty"`
	Items    []ParsedLineItem `json:"items,omitempty"`
}

type ParsedLineItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Parser extracts structured data from an uploaded receipt image.
type Parser interface {
	ParseReceipt(ctx context.Context, imageBase64, mimeType string) (*ParsedReceipt, error)
}
