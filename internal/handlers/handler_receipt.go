package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/centshift/centshift_backend/internal/apperrors"
	portssvc "github.com/centshift/centshift_backend/internal/core/ports/services"
	"github.com/centshift/centshift_backend/internal/dto"
	"github.com/centshift/centshift_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// allowedReceiptContentTypes is the set of image content types accepted by
// the scan endpoint. Anything else is rejected before extraction runs.
var allowedReceiptContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/heic": true,
	"image/jpg":  true,
}

// receiptHandler handles HTTP requests related to receipt scanning.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

// newReceiptHandler creates a new receiptHandler.
func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{
		receiptService: rs,
	}
}

// registerReceiptRoutes registers the receipt scanning route. Extra
// middleware (rate limiting) is applied by the caller.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade, extra ...gin.HandlerFunc) {
	h := newReceiptHandler(receiptService)

	transactions := rg.Group("/transactions")
	handlerChain := append(extra, h.scanReceipt)
	transactions.POST("/scan", handlerChain...)
}

// scanReceipt godoc
// @Summary Scan a receipt image
// @Description Sends the uploaded image to the AI model and returns the extracted {total, date, description, category} fields. Nothing is persisted.
// @Tags transactions
// @Accept  mpfd
// @Produce  json
// @Param   file formData file true "Receipt image (jpeg, jpg, png or heic)"
// @Success 200 {object} dto.ReceiptFieldsResponse
// @Failure 400 {object} map[string]string "Missing file or unsupported content type"
// @Failure 500 {object} map[string]string "Extraction failure with its reason"
// @Router /transactions/scan [post]
func (h *receiptHandler) scanReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Missing receipt file in scan request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'file' form field"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedReceiptContentTypes[contentType] {
		logger.Warn("Rejected receipt upload with unsupported content type", slog.String("content_type", contentType))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Only JPG/PNG/HEIC allowed."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded receipt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded receipt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	fields, err := h.receiptService.ScanReceipt(c.Request.Context(), imageBytes, contentType)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAINotConfigured):
			logger.Error("Receipt scan attempted without configured AI service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "AI service is not configured"})
		case errors.Is(err, apperrors.ErrAIMalformedResponse):
			logger.Error("AI returned unparsable receipt data", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "AI returned unparsable data"})
		case errors.Is(err, apperrors.ErrAIUpstream):
			logger.Error("AI upstream call failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "AI analysis failed: " + err.Error()})
		default:
			logger.Error("Receipt scan failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Receipt scan failed"})
		}
		return
	}

	logger.Info("Receipt scanned successfully",
		slog.String("category", fields.Category),
		slog.Int("image_bytes", len(imageBytes)))
	c.JSON(http.StatusOK, dto.ToReceiptFieldsResponse(fields))
}
