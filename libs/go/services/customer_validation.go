package services

import (
	"regexp"
	"strings"

	"github.com/handyline/handyline-api/libs/go/types/business"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-.]{7,20}$`)
)

// ValidateCustomer checks the fields every quote and order needs.
func ValidateCustomer(c business.CustomerInfo) error {
	ve := &ValidationError{}
	validateCustomerInto(ve, c)
	return ve.orNil()
}

func validateCustomerInto(ve *ValidationError, c business.CustomerInfo) {
	if strings.TrimSpace(c.Name) == "" {
		ve.add("name", "name is required")
	}
	if strings.TrimSpace(c.Address) == "" {
		ve.add("address", "address is required")
	}
	switch phone := strings.TrimSpace(c.Phone); {
	case phone == "":
		ve.add("phone", "phone is required")
	case !phoneRegex.MatchString(phone):
		ve.add("phone", "phone must be a valid phone number")
	}
	switch email := strings.TrimSpace(c.Email); {
	case email == "":
		ve.add("email", "email is required")
	case !emailRegex.MatchString(email):
		ve.add("email", "email must be a valid email address")
	}
}

func trimCustomer(c business.CustomerInfo) business.CustomerInfo {
	return business.CustomerInfo{
		Name:    strings.TrimSpace(c.Name),
		Address: strings.TrimSpace(c.Address),
		Phone:   strings.TrimSpace(c.Phone),
		Email:   strings.TrimSpace(c.Email),
		Company: strings.TrimSpace(c.Company),
		Notes:   strings.TrimSpace(c.Notes),
	}
}
