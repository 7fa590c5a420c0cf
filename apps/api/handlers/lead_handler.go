package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/handyline/handyline-api/libs/go/interfaces"
	"github.com/handyline/handyline-api/libs/go/types/api/requests"
	"github.com/handyline/handyline-api/libs/go/types/api/responses"
	"github.com/handyline/handyline-api/libs/go/types/business"
)

// LeadHandler accepts contact and quote request forms
type LeadHandler struct {
	leads interfaces.LeadService
}

func NewLeadHandler(leads interfaces.LeadService) *LeadHandler {
	return &LeadHandler{leads: leads}
}

// CreateLead godoc
// @Summary Submit a lead
// @Description Queues the lead for the CRM and answers without waiting for it
// @Tags leads
// @Accept json
// @Produce json
// @Param request body requests.CreateLeadRequest true "Lead"
// @Success 202 {object} responses.AcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req requests.CreateLeadRequest
	if !bindJSON(c, &req) {
		return
	}

	h.leads.Dispatch(c.Request.Context(), business.Lead{
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		Address:         strings.TrimSpace(req.Address),
		ServiceCategory: req.ServiceCategory,
		Message:         req.Message,
		Source:          req.Source,
	})
	c.JSON(http.StatusAccepted, responses.AcceptedResponse{Status: "accepted"})
}
