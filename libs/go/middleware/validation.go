package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

// ValidationRule defines a single validation rule
type ValidationRule struct {
	Field         string                  // Field name to validate
	Required      bool                    // Whether the field is required
	Type          string                  // Expected type: string, number, boolean, email, phone, url, array, object
	MinLength     int                     // Minimum length for strings
	MaxLength     int                     // Maximum length for strings
	Pattern       *regexp.Regexp          // Pattern the string must match
	Min           *float64                // Minimum value for numbers
	Max           *float64                // Maximum value for numbers
	MaxItems      int                     // Maximum length for arrays
	AllowedValues []string                // List of allowed values
	Sanitize      bool                    // Whether to strip control characters
	Custom        func(interface{}) error // Custom validation function
}

// ValidationConfig holds validation rules for an endpoint
type ValidationConfig struct {
	Rules              []ValidationRule
	MaxBodySize        int64 // Maximum request body size in bytes
	AllowUnknownFields bool  // Whether to allow fields not in rules
}

// Common regex patterns
var (
	EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	PhoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-.]{7,20}$`)
	URLRegex   = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
	DateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError is a single invalid field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the 400 response body
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// ValidateInput creates a validation middleware with the given configuration
func ValidateInput(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.MaxBodySize > 0 {
			if c.Request.ContentLength > config.MaxBodySize {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
					"error": fmt.Sprintf("Request body too large. Maximum size: %d bytes", config.MaxBodySize),
				})
				return
			}
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxBodySize)
		}

		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Invalid JSON in request body",
			})
			return
		}

		if errs := validateFields(body, config.Rules, config.AllowUnknownFields); len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrors{Errors: errs})
			return
		}

		// Handlers bind the sanitized body
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request body"})
			return
		}
		c.Set("validatedBody", body)
		c.Request.Body = NewBodyReader(bodyBytes)

		c.Next()
	}
}

// validateFields validates the fields according to the rules
func validateFields(data map[string]interface{}, rules []ValidationRule, allowUnknown bool) []ValidationError {
	var errs []ValidationError
	known := make(map[string]bool, len(rules))

	for _, rule := range rules {
		known[rule.Field] = true
		value, exists := data[rule.Field]

		if rule.Required && (!exists || value == nil || isBlank(value)) {
			errs = append(errs, ValidationError{
				Field:   rule.Field,
				Message: fmt.Sprintf("%s is required", rule.Field),
			})
			continue
		}
		if !exists || value == nil {
			continue
		}
		// Optional strings may be sent empty
		if !rule.Required && isBlank(value) {
			continue
		}

		if err := validateValue(value, rule); err != nil {
			errs = append(errs, ValidationError{Field: rule.Field, Message: err.Error()})
			continue
		}
		if rule.Sanitize {
			if str, ok := value.(string); ok {
				data[rule.Field] = sanitizeString(str)
			}
		}
		if rule.Custom != nil {
			if err := rule.Custom(value); err != nil {
				errs = append(errs, ValidationError{Field: rule.Field, Message: err.Error()})
			}
		}
	}

	if !allowUnknown {
		for field := range data {
			if !known[field] {
				errs = append(errs, ValidationError{Field: field, Message: "unknown field"})
			}
		}
	}
	return errs
}

func validateValue(value interface{}, rule ValidationRule) error {
	switch rule.Type {
	case "string":
		return validateString(value, rule)
	case "number", "int":
		return validateNumber(value, rule)
	case "boolean", "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("must be a boolean")
		}
	case "email":
		return validatePattern(value, rule, EmailRegex, "must be a valid email address")
	case "phone":
		return validatePattern(value, rule, PhoneRegex, "must be a valid phone number")
	case "url":
		return validatePattern(value, rule, URLRegex, "must be a valid URL")
	case "array":
		items, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("must be an array")
		}
		if rule.MaxItems > 0 && len(items) > rule.MaxItems {
			return fmt.Errorf("must contain at most %d items", rule.MaxItems)
		}
	case "object":
		if _, ok := value.(map[string]interface{}); !ok {
			return fmt.Errorf("must be an object")
		}
	}
	return nil
}

func isBlank(value interface{}) bool {
	str, ok := value.(string)
	return ok && strings.TrimSpace(str) == ""
}

func validateString(value interface{}, rule ValidationRule) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}

	length := utf8.RuneCountInString(strings.TrimSpace(str))
	if rule.MinLength > 0 && length < rule.MinLength {
		return fmt.Errorf("must be at least %d characters long", rule.MinLength)
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return fmt.Errorf("must be at most %d characters long", rule.MaxLength)
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(str) {
		return fmt.Errorf("invalid format")
	}
	if len(rule.AllowedValues) > 0 {
		for _, v := range rule.AllowedValues {
			if str == v {
				return nil
			}
		}
		return fmt.Errorf("must be one of: %s", strings.Join(rule.AllowedValues, ", "))
	}
	return nil
}

func validatePattern(value interface{}, rule ValidationRule, re *regexp.Regexp, message string) error {
	if err := validateString(value, ValidationRule{MaxLength: rule.MaxLength}); err != nil {
		return err
	}
	if !re.MatchString(strings.TrimSpace(value.(string))) {
		return fmt.Errorf("%s", message)
	}
	return nil
}

// JSON numbers decode as float64
func validateNumber(value interface{}, rule ValidationRule) error {
	num, ok := value.(float64)
	if !ok {
		return fmt.Errorf("must be a number")
	}
	if rule.Type == "int" && num != float64(int64(num)) {
		return fmt.Errorf("must be a whole number")
	}
	if rule.Min != nil && num < *rule.Min {
		return fmt.Errorf("must be at least %v", *rule.Min)
	}
	if rule.Max != nil && num > *rule.Max {
		return fmt.Errorf("must be at most %v", *rule.Max)
	}
	return nil
}

// sanitizeString drops control characters other than newlines and tabs and
// trims surrounding whitespace. Output escaping is left to the renderers.
func sanitizeString(input string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, input)
	return strings.TrimSpace(cleaned)
}

func float64Ptr(f float64) *float64 {
	return &f
}
