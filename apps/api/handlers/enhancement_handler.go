package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/handyline/handyline-api/libs/go/interfaces"
	"github.com/handyline/handyline-api/libs/go/services"
	"github.com/handyline/handyline-api/libs/go/types/api/params"
	"github.com/handyline/handyline-api/libs/go/types/api/requests"
	"github.com/handyline/handyline-api/libs/go/types/business"
)

// EnhancementHandler runs a single line item through the generator
type EnhancementHandler struct {
	enhancer interfaces.LineItemEnhancer
}

func NewEnhancementHandler(enhancer interfaces.LineItemEnhancer) *EnhancementHandler {
	return &EnhancementHandler{enhancer: enhancer}
}

// EnhanceLineItem godoc
// @Summary Generate a line item description
// @Description Expands a rough description into a professional line item and extracts its total. Waits at most 30 seconds.
// @Tags line-items
// @Accept json
// @Produce json
// @Param request body requests.EnhanceLineItemRequest true "Line item"
// @Success 200 {object} responses.EnhancementResult
// @Failure 400 {object} services.ValidationError
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /line-items/enhance [post]
func (h *EnhancementHandler) EnhanceLineItem(c *gin.Context) {
	var req requests.EnhanceLineItemRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.enhancer.Enhance(c.Request.Context(), params.EnhanceParams{
		Section:        business.SectionKind(strings.ToLower(strings.TrimSpace(req.Section))),
		RawInput:       req.RawInput,
		AttachmentURLs: req.AttachmentURLs,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, result)
	case services.IsValidationError(err), errors.Is(err, services.ErrEnhancementTimeout):
		HandleError(c, err)
	default:
		sendError(c, http.StatusBadGateway, services.EnhancementErrorMessage(err), err)
	}
}
