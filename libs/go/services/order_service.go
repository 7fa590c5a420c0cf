package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/handyline/handyline-api/libs/go/catalog"
	"github.com/handyline/handyline-api/libs/go/constants"
	"github.com/handyline/handyline-api/libs/go/helpers"
	"github.com/handyline/handyline-api/libs/go/interfaces"
	"github.com/handyline/handyline-api/libs/go/logger"
	"github.com/handyline/handyline-api/libs/go/pricing"
	"github.com/handyline/handyline-api/libs/go/types/api/params"
	"github.com/handyline/handyline-api/libs/go/types/api/responses"
	"github.com/handyline/handyline-api/libs/go/types/business"
)

// OrderAccepted is the status of an order handed to the CRM.
const OrderAccepted = "accepted"

// BelowMinimumError carries the estimate of an order that did not reach the
// minimum total.
type BelowMinimumError struct {
	Estimate *responses.EstimateResponse
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("%s: minimum %s, estimated %s",
		ErrBelowMinimum, helpers.FormatAmount(pricing.MinimumOrderTotal()), helpers.FormatAmount(e.Estimate.MinTotal))
}

func (e *BelowMinimumError) Is(target error) bool { return target == ErrBelowMinimum }

// OrderService prices catalog selections and places fixed-price orders.
type OrderService struct {
	prices catalog.Lookup
	leads  interfaces.LeadService
	logger *logger.StructuredLogger
}

func NewOrderService(prices catalog.Lookup, leads interfaces.LeadService) *OrderService {
	return &OrderService{
		prices: prices,
		leads:  leads,
		logger: logger.NewStructuredLogger(logger.ComponentLead),
	}
}

// Estimate replays the quantity changes into a fresh ledger and prices it.
func (s *OrderService) Estimate(selections []params.SelectionDelta) *responses.EstimateResponse {
	ledger, unknown := s.buildLedger(selections)
	totals := ledger.ComputeTotals(s.prices)
	return &responses.EstimateResponse{
		Selections:        ledger.Entries(),
		UnknownServices:   unknown,
		MinTotal:          totals.MinTotal,
		MaxTotal:          totals.MaxTotal,
		MinimumOrderTotal: pricing.MinimumOrderTotal(),
		MeetsMinimum:      pricing.MeetsMinimum(totals),
	}
}

// PlaceOrder validates the customer, enforces the minimum order total and
// hands the order to the CRM as a lead.
func (s *OrderService) PlaceOrder(ctx context.Context, p params.PlaceOrderParams) (*responses.OrderResponse, error) {
	estimate := s.Estimate(p.Selections)

	ve := &ValidationError{}
	validateCustomerInto(ve, p.Customer)
	if len(estimate.Selections) == 0 {
		ve.add("selections", "at least one service is required")
	}
	if err := ve.orNil(); err != nil {
		return nil, err
	}
	if !estimate.MeetsMinimum {
		return nil, &BelowMinimumError{Estimate: estimate}
	}

	customer := trimCustomer(p.Customer)
	lead := business.Lead{
		Name:            customer.Name,
		Email:           customer.Email,
		Phone:           customer.Phone,
		Address:         customer.Address,
		ServiceCategory: s.categories(estimate.Selections),
		Message:         customer.Notes,
		Status:          constants.LeadStatusOrdered,
		Source:          constants.LeadSourceOrder,
		Details: map[string]string{
			"services":       describeSelections(estimate.Selections),
			"estimate_range": fmt.Sprintf("%s - %s", helpers.FormatCurrency(estimate.MinTotal), helpers.FormatCurrency(estimate.MaxTotal)),
		},
	}
	if p.PreferredDate != "" {
		lead.Details["preferred_date"] = p.PreferredDate
	}
	s.leads.Dispatch(ctx, lead)

	s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"services":  len(estimate.Selections),
		"min_total": estimate.MinTotal.String(),
	}).Info("Order accepted")

	return &responses.OrderResponse{Status: OrderAccepted, Estimate: estimate}, nil
}

func (s *OrderService) buildLedger(selections []params.SelectionDelta) (*pricing.Ledger, []string) {
	ledger := pricing.NewLedger()
	var unknown []string
	seen := make(map[string]bool)
	for _, sel := range selections {
		name := strings.TrimSpace(sel.ServiceName)
		if name == "" {
			continue
		}
		if _, ok := s.prices.Lookup(name); !ok && !seen[name] {
			seen[name] = true
			unknown = append(unknown, name)
		}
		ledger.SetQuantity(name, sel.Delta)
	}
	return ledger, unknown
}

func (s *OrderService) categories(selections []pricing.Selection) string {
	var out []string
	seen := make(map[string]bool)
	for _, sel := range selections {
		entry, ok := s.prices.Lookup(sel.ServiceName)
		if !ok || seen[entry.Category] {
			continue
		}
		seen[entry.Category] = true
		out = append(out, entry.Category)
	}
	return strings.Join(out, ", ")
}

func describeSelections(selections []pricing.Selection) string {
	parts := make([]string, 0, len(selections))
	for _, sel := range selections {
		parts = append(parts, fmt.Sprintf("%s x%d", sel.ServiceName, sel.Quantity))
	}
	return strings.Join(parts, "; ")
}
