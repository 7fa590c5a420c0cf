package business

import "time"

// Lead is the flat record forwarded to the CRM board.
type Lead struct {
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Address         string            `json:"address,omitempty"`
	ServiceCategory string            `json:"service_category,omitempty"`
	Message         string            `json:"message,omitempty"`
	Status          string            `json:"status"`
	Source          string            `json:"source"`
	Details         map[string]string `json:"details,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}
