// Package gemini implements the ReceiptAnalyzer capability on top of the
// Google Gemini vision model.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/centshift/centshift_backend/internal/apperrors"
	"github.com/centshift/centshift_backend/internal/core/domain"
	portssvc "github.com/centshift/centshift_backend/internal/core/ports/services"
	"google.golang.org/genai"
)

// DefaultModelName is the Gemini model used when none is configured.
const DefaultModelName = "gemini-2.0-flash"

// Analyzer sends receipt images to Gemini and parses the structured
// response. It holds no mutable state; one network call per invocation,
// no retry. Callers own timeouts via ctx.
type Analyzer struct {
	apiKey string
	model  string
}

// NewAnalyzer creates a Gemini-backed receipt analyzer. The API key is an
// explicit dependency, never read from ambient process state; an empty
// key produces a working value whose calls fail with ErrAINotConfigured,
// so the rest of the app can start without a key.
func NewAnalyzer(apiKey, model string) *Analyzer {
	if model == "" {
		model = DefaultModelName
	}
	return &Analyzer{apiKey: apiKey, model: model}
}

// Ensure Analyzer implements the capability port
var _ portssvc.ReceiptAnalyzer = (*Analyzer)(nil)

// AnalyzeReceipt sends the image to Gemini with a fixed instruction prompt
// and parses the model's JSON answer into receipt fields.
func (a *Analyzer) AnalyzeReceipt(ctx context.Context, imageBytes []byte, mimeType string) (*domain.ReceiptFields, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("%w: missing Gemini API key", apperrors.ErrAINotConfigured)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      a.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create genai client: %v", apperrors.ErrAIUpstream, err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: receiptPrompt()},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     imageBytes,
					},
				},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, a.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: generate content: %v", apperrors.ErrAIUpstream, err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("%w: empty response from model", apperrors.ErrAIUpstream)
	}

	return parseReceiptResponse(rawText)
}

// receiptPrompt builds the fixed instruction prompt. It requests exactly
// four fields as raw JSON and constrains the category to the fixed set.
func receiptPrompt() string {
	var b strings.Builder
	b.WriteString("Analyze this receipt image and extract the following data in strict JSON format:\n\n")
	b.WriteString("1. \"total\": The total amount paid (number).\n")
	b.WriteString("2. \"date\": Date in YYYY-MM-DD format (use today's date if not visible).\n")
	b.WriteString("3. \"description\": Merchant name or brief summary.\n")
	b.WriteString("4. \"category\": Choose exactly ONE from this list:\n")
	b.WriteString("   [\"" + strings.Join(domain.ReceiptCategories, "\", \"") + "\"]\n\n")
	b.WriteString("Return ONLY the raw JSON object. No markdown formatting (like ```json), just the object.\n")
	return b.String()
}
