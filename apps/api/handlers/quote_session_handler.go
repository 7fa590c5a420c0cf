package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/handyline/handyline-api/libs/go/interfaces"
	"github.com/handyline/handyline-api/libs/go/types/api/params"
	"github.com/handyline/handyline-api/libs/go/types/api/requests"
	"github.com/handyline/handyline-api/libs/go/types/api/responses"
)

// QuoteSessionHandler exposes the in-progress quote editor
type QuoteSessionHandler struct {
	sessions interfaces.QuoteSessionService
}

func NewQuoteSessionHandler(sessions interfaces.QuoteSessionService) *QuoteSessionHandler {
	return &QuoteSessionHandler{sessions: sessions}
}

// CreateSession godoc
// @Summary Start a quote
// @Description Creates an authoring session with one empty line item in every section
// @Tags quote-sessions
// @Produce json
// @Success 201 {object} quote.Snapshot
// @Failure 429 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /quote-sessions [post]
func (h *QuoteSessionHandler) CreateSession(c *gin.Context) {
	snap, err := h.sessions.CreateSession()
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// GetSession godoc
// @Summary Get a quote session
// @Description Returns the current state of every section and line item, including pending enhancements
// @Tags quote-sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} quote.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /quote-sessions/{session_id} [get]
func (h *QuoteSessionHandler) GetSession(c *gin.Context) {
	snap, err := h.sessions.GetSession(c.Param("session_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// SetSectionState godoc
// @Summary Expand or collapse a section
// @Tags quote-sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param section path string true "Section" Enums(labor, materials, equipment)
// @Param request body requests.SectionStateRequest true "Section state"
// @Success 200 {object} quote.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /quote-sessions/{session_id}/sections/{section} [patch]
func (h *QuoteSessionHandler) SetSectionState(c *gin.Context) {
	section, err := sectionParam(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	var req requests.SectionStateRequest
	if !bindJSON(c, &req) {
		return
	}

	sessionID := c.Param("session_id")
	if err := h.sessions.SetExpanded(sessionID, section, req.Expanded); err != nil {
		HandleError(c, err)
		return
	}
	h.respondWithSnapshot(c, http.StatusOK, sessionID)
}

// AddItem godoc
// @Summary Add a line item
// @Tags quote-sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param section path string true "Section" Enums(labor, materials, equipment)
// @Param request body requests.LineItemRequest false "Initial description"
// @Success 201 {object} quote.LineItem
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /quote-sessions/{session_id}/sections/{section}/items [post]
func (h *QuoteSessionHandler) AddItem(c *gin.Context) {
	section, err := sectionParam(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	var req requests.LineItemRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	item, err := h.sessions.AddItem(c.Param("session_id"), section, req.RawInput)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem godoc
// @Summary Edit a line item description
// @Description Replaces the rough description. Generated content is kept until the next enhancement.
// @Tags quote-sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param section path string true "Section" Enums(labor, materials, equipment)
// @Param item_id path string true "Line item ID"
// @Param request body requests.LineItemRequest true "Description"
// @Success 200 {object} quote.LineItem
// @Failure 404 {object} ErrorResponse
// @Router /quote-sessions/{session_id}/sections/{section}/items/{item_id} [put]
func (h *QuoteSessionHandler) UpdateItem(c *gin.Context) {
	section, err := sectionParam(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	var req requests.LineItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.sessions.UpdateItem(c.Param("session_id"), section, c.Param("item_id"), req.RawInput)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// RemoveItem godoc
// @Summary Remove a line item
// @Description Removes the item unless it is the last one in its section
// @Tags quote-sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Param section path string true "Section" Enums(labor, materials, equipment)
// @Param item_id path string true "Line item ID"
// @Success 200 {object} responses.RemoveItemResponse
// @Failure 404 {object} ErrorResponse
// @Router /quote-sessions/{session_id}/sections/{section}/items/{item_id} [delete]
func (h *QuoteSessionHandler) RemoveItem(c *gin.Context) {
	section, err := sectionParam(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	sessionID := c.Param("session_id")
	removed, err := h.sessions.RemoveItem(sessionID, section, c.Param("item_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	snap, err := h.sessions.GetSession(sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses.RemoveItemResponse{Removed: removed, Snapshot: snap})
}

// EnhanceItem godoc
// @Summary Generate a line item description in the background
// @Description Marks the item pending and returns immediately. Poll the session for the result.
// @Tags quote-sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param section path string true "Section" Enums(labor, materials, equipment)
// @Param item_id path string true "Line item ID"
// @Param request body requests.EnhanceItemRequest false "Attachments"
// @Success 202 {object} quote.LineItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /quote-sessions/{session_id}/sections/{section}/items/{item_id}/enhance [post]
func (h *QuoteSessionHandler) EnhanceItem(c *gin.Context) {
	section, err := sectionParam(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	var req requests.EnhanceItemRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	item, err := h.sessions.EnhanceItem(params.EnhanceItemParams{
		SessionID:      c.Param("session_id"),
		Section:        section,
		ItemID:         c.Param("item_id"),
		AttachmentURLs: req.AttachmentURLs,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, item)
}

// EnhanceAll godoc
// @Summary Generate every line item with a description
// @Tags quote-sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 202 {object} responses.EnhanceAllResponse
// @Failure 404 {object} ErrorResponse
// @Router /quote-sessions/{session_id}/enhance [post]
func (h *QuoteSessionHandler) EnhanceAll(c *gin.Context) {
	sessionID := c.Param("session_id")
	started, err := h.sessions.EnhanceAll(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	snap, err := h.sessions.GetSession(sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, responses.EnhanceAllResponse{Started: started, Snapshot: snap})
}

// SubmitSession godoc
// @Summary Submit a quote
// @Description Assembles the invoice from every item with content and persists it
// @Tags quote-sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body requests.SubmitSessionRequest true "Customer"
// @Success 201 {object} responses.InvoiceCreatedResponse
// @Failure 400 {object} services.ValidationError
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quote-sessions/{session_id}/submit [post]
func (h *QuoteSessionHandler) SubmitSession(c *gin.Context) {
	var req requests.SubmitSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.sessions.SubmitSession(c.Request.Context(), c.Param("session_id"), req.CustomerInfo.ToCustomerInfo())
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, responses.InvoiceCreatedResponse{ID: id})
}

func (h *QuoteSessionHandler) respondWithSnapshot(c *gin.Context, status int, sessionID string) {
	snap, err := h.sessions.GetSession(sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(status, snap)
}

// bindOptionalJSON is bindJSON that accepts an empty body.
func bindOptionalJSON(c *gin.Context, dst interface{}) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}
