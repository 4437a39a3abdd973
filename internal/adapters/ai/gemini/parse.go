package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/centshift/centshift_backend/internal/apperrors"
	"github.com/centshift/centshift_backend/internal/core/domain"
	"github.com/centshift/centshift_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// receiptPayload mirrors the JSON object the prompt asks the model for.
// Total is kept raw because models occasionally quote numbers despite
// instructions.
type receiptPayload struct {
	Total       json.RawMessage `json:"total"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

// parseReceiptResponse turns the model's text answer into receipt fields.
// Markdown fences are stripped first; anything that still fails to parse
// as JSON is a malformed response. Missing or unusable individual fields
// are left at their zero values for the caller to default, never a hard
// failure.
func parseReceiptResponse(raw string) (*domain.ReceiptFields, error) {
	clean := stripModelFences(raw)

	var payload receiptPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrAIMalformedResponse, err)
	}

	fields := &domain.ReceiptFields{
		Description: payload.Description,
		Category:    payload.Category,
	}

	if total := strings.Trim(strings.TrimSpace(string(payload.Total)), `"`); total != "" && total != "null" {
		if parsed, err := decimal.NewFromString(total); err == nil {
			fields.Total = parsed
		}
	}

	if payload.Date != "" {
		if parsed, err := time.Parse(dto.TransactionDateLayout, payload.Date); err == nil {
			fields.Date = parsed
		}
	}

	return fields, nil
}

// stripModelFences removes markdown code-fence wrapping if the model
// ignored the raw-JSON instruction. It is a no-op on unfenced payloads,
// so stripping is idempotent and lossless for the JSON itself.
func stripModelFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json). A single-line payload has
		// no newline after the opening fence, so drop just the fence token.
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSpace(s)
	}

	// Remove trailing ``` if present.
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
