package peoplehub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the HR platform's REST API.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("peoplehub API error [%d]: %s", e.StatusCode, e.Message)
}

// Employee is an HR record as the platform returns it.
type Employee struct {
	EmployeeID   string `json:"EmployeeID"`
	FirstName    string `json:"FirstName"`
	LastName     string `json:"LastName"`
	EmailID      string `json:"EmailID"`
	Department   string `json:"Department"`
	Designation  string `json:"Designation"`
	DateOfJoin   string `json:"Dateofjoining"` // "02-Jan-2006"
	DateOfExit   string `json:"Dateofexit,omitempty"`
	EmployeeCode string `json:"EmployeeCode"`
}

// LeaveRecord is an approved or pending leave entry.
type LeaveRecord struct {
	RecordID     string  `json:"record_id"`
	EmployeeCode string  `json:"EmployeeCode"`
	From         string  `json:"From"` // "02-Jan-2006"
	To           string  `json:"To"`
	Status       string  `json:"ApprovalStatus"` // "Approved", "Pending", "Rejected"
	Days         float64 `json:"Daystaken"`
}

type employeeListResponse struct {
	Response struct {
		Result  []map[string]Employee `json:"result"`
		Message string                `json:"message"`
		Status  int                   `json:"status"`
	} `json:"response"`
}

type leaveListResponse struct {
	Response struct {
		Result  []LeaveRecord `json:"result"`
		Message string        `json:"message"`
		Status  int           `json:"status"`
	} `json:"response"`
}

// ListEmployees fetches all employee records.
func (c *Client) ListEmployees(ctx context.Context, apiDomain, accessToken string) ([]Employee, error) {
	endpoint := apiDomain + "/people/api/forms/employee/getRecords"

	var resp employeeListResponse
	if err := c.get(ctx, endpoint, accessToken, &resp); err != nil {
		return nil, err
	}
	if resp.Response.Status != 0 {
		return nil, &APIError{StatusCode: http.StatusOK, Message: resp.Response.Message}
	}

	var employees []Employee
	for _, record := range resp.Response.Result {
		for _, e := range record {
			employees = append(employees, e)
		}
	}
	return employees, nil
}

// ListLeaves fetches leave records.
func (c *Client) ListLeaves(ctx context.Context, apiDomain, accessToken string) ([]LeaveRecord, error) {
	endpoint := apiDomain + "/people/api/forms/leave/getRecords"

	var resp leaveListResponse
	if err := c.get(ctx, endpoint, accessToken, &resp); err != nil {
		return nil, err
	}
	if resp.Response.Status != 0 {
		return nil, &APIError{StatusCode: http.StatusOK, Message: resp.Response.Message}
	}
	return resp.Response.Result, nil
}

func (c *Client) get(ctx context.Context, endpoint, accessToken string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call peoplehub API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode peoplehub response: %w", err)
	}
	return nil
}
