package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/handyline/handyline-api/libs/go/db"
	"github.com/handyline/handyline-api/libs/go/helpers"
	"github.com/handyline/handyline-api/libs/go/logger"
	"github.com/handyline/handyline-api/libs/go/middleware"
	"github.com/handyline/handyline-api/libs/go/quote"
	"github.com/handyline/handyline-api/libs/go/services"
	"github.com/handyline/handyline-api/libs/go/types/api/responses"
	"github.com/handyline/handyline-api/libs/go/types/business"
	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// BelowMinimumResponse is returned when an order does not reach the minimum total
type BelowMinimumResponse struct {
	Error    string                       `json:"error"`
	Estimate *responses.EstimateResponse `json:"estimate"`
}

// sendError is a helper function that combines logging and error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
		zap.Int("status", statusCode),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if statusCode >= http.StatusInternalServerError {
		logger.L().Error(message, fields...)
	} else {
		logger.L().Info(message, fields...)
	}

	c.JSON(statusCode, ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// HandleError maps service errors onto HTTP responses.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var validationErr *services.ValidationError
	var belowMinimum *services.BelowMinimumError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, validationErr)
	case errors.As(err, &belowMinimum):
		c.JSON(http.StatusUnprocessableEntity, BelowMinimumResponse{
			Error:    fmt.Sprintf("Orders must total at least %s", helpers.FormatCurrency(belowMinimum.Estimate.MinimumOrderTotal)),
			Estimate: belowMinimum.Estimate,
		})
	case errors.Is(err, db.ErrInvoiceNotFound):
		sendError(c, http.StatusNotFound, "Invoice not found", err)
	case errors.Is(err, quote.ErrSessionNotFound):
		sendError(c, http.StatusNotFound, "Quote session not found", err)
	case errors.Is(err, quote.ErrItemNotFound):
		sendError(c, http.StatusNotFound, "Line item not found", err)
	case errors.Is(err, quote.ErrUnknownSection):
		sendError(c, http.StatusNotFound, "Unknown section", err)
	case errors.Is(err, quote.ErrEnhancementInFlight):
		sendError(c, http.StatusConflict, "A line item is still being generated", err)
	case errors.Is(err, quote.ErrSectionFull):
		sendError(c, http.StatusConflict, "This section cannot hold more line items", err)
	case errors.Is(err, quote.ErrSessionLimit):
		sendError(c, http.StatusServiceUnavailable, "Too many open quotes, please try again later", err)
	case errors.Is(err, quote.ErrEmptyRawInput):
		sendError(c, http.StatusBadRequest, "Line item has no description to enhance", err)
	case errors.Is(err, db.ErrMalformedInvoice):
		sendError(c, http.StatusBadGateway, "Invoice could not be rendered", err)
	case errors.Is(err, services.ErrAttachmentTooLarge):
		sendError(c, http.StatusRequestEntityTooLarge, "Attachment exceeds the 10 MB limit", err)
	case errors.Is(err, services.ErrUnsupportedAttachment):
		sendError(c, http.StatusUnsupportedMediaType, "Only image attachments are supported", err)
	case errors.Is(err, services.ErrEnhancementTimeout), errors.Is(err, context.DeadlineExceeded):
		sendError(c, http.StatusGatewayTimeout, services.EnhancementErrorMessage(err), err)
	case errors.Is(err, services.ErrPersistence):
		sendError(c, http.StatusInternalServerError, "Failed to save invoice, please try again", err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// bindJSON decodes the request body, answering 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

// sectionParam resolves the :section path parameter.
func sectionParam(c *gin.Context) (business.SectionKind, error) {
	kind, err := business.ParseSectionKind(c.Param("section"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", quote.ErrUnknownSection, err)
	}
	return kind, nil
}
