package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/handyline/handyline-api/libs/go/constants"
	"github.com/handyline/handyline-api/libs/go/logger"
	"github.com/handyline/handyline-api/libs/go/pricing"
	"go.uber.org/zap"
)

const defaultMaxBodySize = 64 * 1024

var (
	nameRule = ValidationRule{
		Field:     "name",
		Type:      "string",
		Required:  true,
		MinLength: 2,
		MaxLength: 100,
		Sanitize:  true,
	}
	emailRule = ValidationRule{
		Field:     "email",
		Type:      "email",
		Required:  true,
		MaxLength: 255,
		Sanitize:  true,
	}
	phoneRule = ValidationRule{
		Field:    "phone",
		Type:     "phone",
		Required: true,
		Sanitize: true,
	}
	sectionValues = []string{constants.SectionLabor, constants.SectionMaterials, constants.SectionEquipment}
)

// CreateLeadValidation covers the contact and quote request forms
var CreateLeadValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules: []ValidationRule{
		nameRule,
		emailRule,
		phoneRule,
		{
			Field:     "address",
			Type:      "string",
			MaxLength: 255,
			Sanitize:  true,
		},
		{
			Field:     "service_category",
			Type:      "string",
			MaxLength: 100,
			Sanitize:  true,
		},
		{
			Field:     "message",
			Type:      "string",
			MaxLength: 2000,
			Sanitize:  true,
		},
		{
			Field:         "source",
			Type:          "string",
			Required:      true,
			AllowedValues: []string{constants.LeadSourceContact, constants.LeadSourceQuote},
		},
	},
}

// CreateOrderValidation covers the fixed-price order form
var CreateOrderValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules: []ValidationRule{
		nameRule,
		emailRule,
		phoneRule,
		{
			Field:     "address",
			Type:      "string",
			Required:  true,
			MaxLength: 255,
			Sanitize:  true,
		},
		{
			Field:   "preferred_date",
			Type:    "string",
			Pattern: DateRegex,
		},
		{
			Field:     "notes",
			Type:      "string",
			MaxLength: 2000,
			Sanitize:  true,
		},
		{
			Field:    "selections",
			Type:     "array",
			Required: true,
			MaxItems: 100,
			Custom:   validateSelections,
		},
	},
}

// EstimateValidation covers the live order estimate
var EstimateValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules: []ValidationRule{
		{
			Field:    "selections",
			Type:     "array",
			Required: true,
			MaxItems: 100,
			Custom:   validateSelections,
		},
	},
}

// EnhanceLineItemValidation covers the stateless enhancement call
var EnhanceLineItemValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules: []ValidationRule{
		{
			Field:         "section",
			Type:          "string",
			Required:      true,
			AllowedValues: sectionValues,
		},
		{
			Field:     "raw_input",
			Type:      "string",
			Required:  true,
			MaxLength: 4000,
			Sanitize:  true,
		},
		{
			Field:    "attachment_urls",
			Type:     "array",
			MaxItems: 5,
			Custom:   validateURLList,
		},
	},
}

// QuoteFormatValidation covers ?format= on the rendered quote
var QuoteFormatValidation = ValidationConfig{
	Rules: []ValidationRule{
		{
			Field:         "format",
			Type:          "string",
			AllowedValues: []string{"text", "html"},
		},
	},
}

func validateSelections(value interface{}) error {
	items, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("selections must be an array")
	}
	for i, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			return fmt.Errorf("selections[%d] must be an object", i)
		}
		name, _ := item["service_name"].(string)
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("selections[%d].service_name is required", i)
		}
		deltaRule := ValidationRule{Type: "int", Min: float64Ptr(-pricing.MaxQuantity), Max: float64Ptr(pricing.MaxQuantity)}
		if err := validateNumber(item["delta"], deltaRule); err != nil {
			return fmt.Errorf("selections[%d].delta %s", i, err.Error())
		}
	}
	return nil
}

func validateURLList(value interface{}) error {
	items, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("must be an array")
	}
	for i, raw := range items {
		if err := validatePattern(raw, ValidationRule{MaxLength: 2048}, URLRegex, "must be a valid URL"); err != nil {
			return fmt.Errorf("attachment_urls[%d] %s", i, err.Error())
		}
	}
	return nil
}

// ValidateQueryParams creates validation for URL query parameters
func ValidateQueryParams(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := make(map[string]interface{})
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}

		if errs := validateFields(params, config.Rules, config.AllowUnknownFields); len(errs) > 0 {
			logger.L().Debug("Query validation failed",
				zap.Any("errors", errs),
				zap.String("path", c.Request.URL.Path),
				zap.String("correlation_id", GetCorrelationID(c)),
			)
			c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrors{Errors: errs})
			return
		}

		c.Set("validatedQuery", params)
		c.Next()
	}
}
