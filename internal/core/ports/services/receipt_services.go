package services

import (
	"context"

	"github.com/centshift/centshift_backend/internal/core/domain"
)

// ReceiptAnalyzer is the capability boundary around the external AI model.
// Implementations send the image to a vision model and return the raw
// extraction result; they hold no shared state, so independent images may
// be analyzed concurrently. The single production implementation lives in
// internal/adapters/ai/gemini; tests substitute a stub.
type ReceiptAnalyzer interface {
	// AnalyzeReceipt extracts transaction fields from a receipt image.
	// Failures carry a distinct apperrors sentinel: ErrAINotConfigured,
	// ErrAIUpstream or ErrAIMalformedResponse.
	AnalyzeReceipt(ctx context.Context, imageBytes []byte, mimeType string) (*domain.ReceiptFields, error)
}

// ReceiptSvcFacade exposes receipt scanning to the HTTP layer.
type ReceiptSvcFacade interface {
	// ScanReceipt runs the analyzer and applies the lenient field
	// defaults (zero total, today's date, empty description, Other
	// category) for anything the model omitted.
	ScanReceipt(ctx context.Context, imageBytes []byte, mimeType string) (*domain.ReceiptFields, error)
}
