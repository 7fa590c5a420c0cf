// Package crm forwards leads to the board-based CRM webhook.
package crm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpClient "github.com/handyline/handyline-api/libs/go/client/http"
	"github.com/handyline/handyline-api/libs/go/types/business"
)

// Client posts lead items onto a CRM board.
type Client struct {
	http    *httpClient.HTTPClient
	boardID string
	token   string
}

// NewClient returns a CRM client. The HTTP client's base URL is the webhook URL.
func NewClient(client *httpClient.HTTPClient, boardID, token string) *Client {
	return &Client{http: client, boardID: boardID, token: token}
}

// boardItem is the payload accepted by the board webhook.
type boardItem struct {
	BoardID      string            `json:"board_id"`
	ItemName     string            `json:"item_name"`
	ColumnValues map[string]string `json:"column_values"`
}

func toBoardItem(boardID string, lead business.Lead) boardItem {
	cols := map[string]string{
		"email":   lead.Email,
		"phone":   lead.Phone,
		"status":  lead.Status,
		"source":  lead.Source,
		"created": lead.CreatedAt.UTC().Format(time.RFC3339),
	}
	if lead.Address != "" {
		cols["address"] = lead.Address
	}
	if lead.ServiceCategory != "" {
		cols["category"] = lead.ServiceCategory
	}
	if lead.Message != "" {
		cols["message"] = lead.Message
	}
	for k, v := range lead.Details {
		if _, taken := cols[k]; !taken {
			cols[k] = v
		}
	}
	return boardItem{BoardID: boardID, ItemName: lead.Name, ColumnValues: cols}
}

// CreateLead adds the lead to the board.
func (c *Client) CreateLead(ctx context.Context, lead business.Lead) error {
	opts := []httpClient.RequestOption{}
	if c.token != "" {
		opts = append(opts, httpClient.WithBearerToken(c.token))
	}

	resp, err := c.http.Post(ctx, "", toBoardItem(c.boardID, lead), opts...)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("failed to create CRM lead: %w", err)
	}
	return nil
}

// IsRetryable reports whether a CreateLead error is worth redelivering.
// Rejected payloads (4xx other than 408/429) are not.
func IsRetryable(err error) bool {
	var httpErr *httpClient.HTTPError
	if !errors.As(err, &httpErr) {
		return err != nil
	}
	switch {
	case httpErr.StatusCode == http.StatusRequestTimeout, httpErr.StatusCode == http.StatusTooManyRequests:
		return true
	case httpErr.StatusCode >= 500:
		return true
	default:
		return false
	}
}
