package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/handyline/handyline-api/libs/go/interfaces"
	"github.com/handyline/handyline-api/libs/go/types/api/params"
	"github.com/handyline/handyline-api/libs/go/types/api/requests"
	"github.com/handyline/handyline-api/libs/go/types/business"
)

// OrderHandler prices and accepts fixed-price orders
type OrderHandler struct {
	orders interfaces.OrderService
}

func NewOrderHandler(orders interfaces.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Estimate godoc
// @Summary Price an order form selection
// @Description Replays the quantity changes and returns the min/max totals and whether the minimum order is met
// @Tags orders
// @Accept json
// @Produce json
// @Param request body requests.EstimateRequest true "Selections"
// @Success 200 {object} responses.EstimateResponse
// @Failure 400 {object} ErrorResponse
// @Router /orders/estimate [post]
func (h *OrderHandler) Estimate(c *gin.Context) {
	var req requests.EstimateRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.orders.Estimate(req.Selections))
}

// CreateOrder godoc
// @Summary Place an order
// @Description Accepts an order that reaches the minimum total and forwards it to the CRM
// @Tags orders
// @Accept json
// @Produce json
// @Param request body requests.CreateOrderRequest true "Order"
// @Success 202 {object} responses.OrderResponse
// @Failure 400 {object} services.ValidationError
// @Failure 422 {object} BelowMinimumResponse
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req requests.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.orders.PlaceOrder(c.Request.Context(), params.PlaceOrderParams{
		Customer: business.CustomerInfo{
			Name:    req.Name,
			Address: req.Address,
			Phone:   req.Phone,
			Email:   req.Email,
			Notes:   req.Notes,
		},
		Selections:    req.Selections,
		PreferredDate: req.PreferredDate,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}
