// Package clickup is a minimal client for the two ClickUp v2 operations this
// system consumes: list tasks by status filter, and create a task.
package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"busrent/pkg/config"
)

type Client struct {
	baseURL  string
	token    string
	listID   string
	statuses []string
	hc       *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:  cfg.ClickUpBaseURL,
		token:    cfg.ClickUpToken,
		listID:   cfg.ClickUpListID,
		statuses: cfg.OccupiedStatuses,
		hc: &http.Client{
			Timeout: cfg.StoreTimeout,
		},
	}
}

// ListTasks fetches the open tasks on the rental list whose status is one of
// the occupying statuses. Filtering happens server-side via query parameters;
// closed tasks are excluded.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	query := url.Values{}
	for _, status := range c.statuses {
		query.Add("statuses[]", status)
	}
	query.Set("include_closed", "false")

	path := fmt.Sprintf("/list/%s/task?%s", c.listID, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("clickup: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clickup: list tasks request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("clickup: failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("clickup: list tasks returned status %d: %s", resp.StatusCode, errorSnippet(body))
	}

	var listResp taskListResponse
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, fmt.Errorf("clickup: failed to decode task list: %w", err)
	}

	return listResp.Tasks, nil
}

// CreateTask submits a reservation draft to the rental list and returns the
// store-assigned identifier and URL.
func (c *Client) CreateTask(ctx context.Context, draft TaskDraft) (*CreatedTask, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("clickup: failed to marshal task draft: %w", err)
	}

	path := fmt.Sprintf("/list/%s/task", c.listID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("clickup: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clickup: create task request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("clickup: failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("clickup: create task returned status %d: %s", resp.StatusCode, errorSnippet(body))
	}

	var created CreatedTask
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("clickup: failed to decode created task: %w", err)
	}

	return &created, nil
}

// Ping verifies the rental list is reachable with the configured token. Used
// by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	path := fmt.Sprintf("/list/%s", c.listID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("clickup: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("clickup: ping request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("clickup: ping returned status %d", resp.StatusCode)
	}
	return nil
}

// errorSnippet pulls a short printable error out of an API response body.
func errorSnippet(body []byte) string {
	var apiErr struct {
		Err string `json:"err"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Err != "" {
		return apiErr.Err
	}
	const maxLen = 200
	if len(body) > maxLen {
		body = body[:maxLen]
	}
	return string(body)
}
