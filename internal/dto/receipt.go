package dto

import (
	"github.com/centshift/centshift_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReceiptFieldsResponse is the four-field JSON object returned by the scan
// endpoint. Callers review it and explicitly convert it into a
// transaction; nothing is persisted by scanning.
type ReceiptFieldsResponse struct {
	Total       decimal.Decimal `json:"total"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

// ToReceiptFieldsResponse converts extracted receipt fields to their DTO.
func ToReceiptFieldsResponse(fields *domain.ReceiptFields) ReceiptFieldsResponse {
	return ReceiptFieldsResponse{
		Total:       fields.Total,
		Date:        fields.Date.Format(TransactionDateLayout),
		Description: fields.Description,
		Category:    fields.Category,
	}
}
