package books

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Client talks to the accounting platform's REST API. Authentication is a
// bearer access token supplied per call; token lifecycle lives elsewhere.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError carries the upstream status and message through to callers.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("books API error [%d]: %s", e.StatusCode, e.Message)
}

// Bill is a vendor bill as the accounting platform returns it. The
// billed-for-month custom field carries the accounting-period attribution.
type Bill struct {
	BillID         string          `json:"bill_id"`
	VendorName     string          `json:"vendor_name"`
	BillNumber     string          `json:"bill_number"`
	Date           string          `json:"date"` // "2006-01-02"
	SubTotal       decimal.Decimal `json:"sub_total"`
	Total          decimal.Decimal `json:"total"`
	BilledForMonth string          `json:"cf_billed_for_month_unformatted"` // "2006-01-02"
}

type billListResponse struct {
	Code        int    `json:"code"`
	Message     string `json:"message"`
	Bills       []Bill `json:"bills"`
	PageContext struct {
		HasMorePage bool `json:"has_more_page"`
	} `json:"page_context"`
}

// ListBills pages through all vendor bills.
func (c *Client) ListBills(ctx context.Context, apiDomain, accessToken, organizationID string) ([]Bill, error) {
	var all []Bill
	page := 1
	for {
		endpoint := fmt.Sprintf("%s/books/v3/bills?organization_id=%s&page=%d",
			apiDomain, url.QueryEscape(organizationID), page)

		var resp billListResponse
		if err := c.get(ctx, endpoint, accessToken, &resp); err != nil {
			return nil, err
		}
		if resp.Code != 0 {
			return nil, &APIError{StatusCode: http.StatusOK, Message: resp.Message}
		}

		all = append(all, resp.Bills...)
		if !resp.PageContext.HasMorePage {
			break
		}
		page++
	}
	return all, nil
}

func (c *Client) get(ctx context.Context, endpoint, accessToken string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call books API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode books response: %w", err)
	}
	return nil
}
