package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/centshift/centshift_backend/internal/core/domain"
	portssvc "github.com/centshift/centshift_backend/internal/core/ports/services"
)

// defaultReceiptCategory is used when the model omits the category field.
const defaultReceiptCategory = "Other"

// receiptService implements the ReceiptSvcFacade interface
type receiptService struct {
	BaseService
	analyzer portssvc.ReceiptAnalyzer
	now      func() time.Time
}

// ReceiptServiceOption is a functional option for configuring the receipt service
type ReceiptServiceOption func(*receiptService)

// WithClock overrides the clock used for date defaulting. Tests use this
// to make the "default to today" behavior deterministic.
func WithClock(now func() time.Time) ReceiptServiceOption {
	return func(s *receiptService) {
		s.now = now
	}
}

// NewReceiptService creates a new receipt scanning service around the
// given analyzer.
func NewReceiptService(analyzer portssvc.ReceiptAnalyzer, options ...ReceiptServiceOption) portssvc.ReceiptSvcFacade {
	svc := &receiptService{
		analyzer: analyzer,
		now:      time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure receiptService implements the ReceiptSvcFacade interface
var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// ScanReceipt runs the analyzer on the image and normalizes the result.
// Extraction failures propagate with their distinct reasons; missing
// individual fields are defaulted leniently instead of failing the scan.
func (s *receiptService) ScanReceipt(ctx context.Context, imageBytes []byte, mimeType string) (*domain.ReceiptFields, error) {
	fields, err := s.analyzer.AnalyzeReceipt(ctx, imageBytes, mimeType)
	if err != nil {
		s.LogError(ctx, err, "Receipt analysis failed",
			slog.String("mime_type", mimeType),
			slog.Int("image_bytes", len(imageBytes)))
		return nil, fmt.Errorf("receipt analysis failed: %w", err)
	}

	normalized := *fields
	if normalized.Date.IsZero() {
		normalized.Date = s.now().UTC().Truncate(24 * time.Hour)
	}
	if normalized.Category == "" {
		normalized.Category = defaultReceiptCategory
	}

	s.LogInfo(ctx, "Receipt analyzed",
		slog.String("category", normalized.Category),
		slog.String("total", normalized.Total.String()))
	return &normalized, nil
}
