// Package client provides the tabulad API client for the tabulactl CLI.
//
// The TabulaAPIClient wraps the Resty HTTP client with tabula-specific
// functionality:
//   - Connection Management: timeout configuration and retries on connection errors
//   - Request/Response Handling: JSON encoding and mode-aware decoding of parse results
//   - Logging: Resty's own logs and per-request debug lines go through internal/logging
//
// SUPPORTED OPERATIONS:
//   - Health: daemon status, version, uptime and accepted parse modes
//   - Parse: project raw CLI output remotely in any table.Mode
//   - Render: turn records or a table back into box table text
package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/concave-dev/tabula/cmd/tabulactl/config"
	"github.com/concave-dev/tabula/cmd/tabulactl/utils"
	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/table"
	"github.com/go-resty/resty/v2"
)

// Health mirrors the daemon's /health response.
type Health struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Version   string    `json:"version" yaml:"version"`
	Uptime    string    `json:"uptime" yaml:"uptime"`
	Modes     []string  `json:"modes" yaml:"modes"`
}

// parseResponse is the /parse envelope. Data is decoded once Mode is known.
type parseResponse struct {
	Status string          `json:"status"`
	Mode   string          `json:"mode"`
	Data   json.RawMessage `json:"data"`
	Count  int             `json:"count"`
}

// renderResponse is the /render envelope.
type renderResponse struct {
	Status string `json:"status"`
	Data   string `json:"data"`
}

// errorResponse is the body of every 4xx/5xx reply.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// TabulaAPIClient talks to a tabulad instance.
type TabulaAPIClient struct {
	client  *resty.Client
	baseURL string
}

// NewTabulaAPIClient creates a client for the daemon at apiAddr (host:port)
// with a per-request timeout in seconds.
func NewTabulaAPIClient(apiAddr string, timeout int) *TabulaAPIClient {
	client := resty.New()

	baseURL := fmt.Sprintf("http://%s/api/v1", apiAddr)

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(utils.RestyLogger{})

	client.
		SetTimeout(time.Duration(timeout)*time.Second).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("tabulactl/%s", config.Version))

	// Only retry on connection errors, not HTTP errors
	client.
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil
		})

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("API request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &TabulaAPIClient{
		client:  client,
		baseURL: baseURL,
	}
}

// CreateAPIClient creates a client from the global CLI configuration.
func CreateAPIClient() *TabulaAPIClient {
	return NewTabulaAPIClient(config.Global.APIAddr, config.Global.Timeout)
}

// BaseURL returns the API root the client sends requests to.
func (api *TabulaAPIClient) BaseURL() string {
	return api.baseURL
}

// GetHealth fetches the daemon's health.
func (api *TabulaAPIClient) GetHealth() (*Health, error) {
	var health Health

	resp, err := api.client.R().
		SetResult(&health).
		Get("/health")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return &health, nil
}

// Parse sends raw CLI output to the daemon and returns it projected in mode.
func (api *TabulaAPIClient) Parse(output string, mode table.Mode) (*table.Projection, error) {
	var response parseResponse

	resp, err := api.client.R().
		SetBody(map[string]string{"output": output, "mode": string(mode)}).
		SetResult(&response).
		Post("/parse")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return decodeProjection(table.Mode(response.Mode), response.Data)
}

// RenderRecords renders records as a list table (ModeList) or merges them
// into a show table (ModeShow).
func (api *TabulaAPIClient) RenderRecords(mode table.Mode, records []table.Record) (string, error) {
	return api.render(map[string]any{"mode": string(mode), "records": records})
}

// RenderTable renders a parsed table.
func (api *TabulaAPIClient) RenderTable(t table.Table) (string, error) {
	return api.render(map[string]any{"mode": string(table.ModeTable), "table": t})
}

func (api *TabulaAPIClient) render(body map[string]any) (string, error) {
	var response renderResponse

	resp, err := api.client.R().
		SetBody(body).
		SetResult(&response).
		Post("/render")
	if err != nil {
		return "", fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}
	if err := checkStatus(resp); err != nil {
		return "", err
	}

	return response.Data, nil
}

// checkStatus turns non-200 replies into errors carrying the daemon's message.
func checkStatus(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	var apiErr errorResponse
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Error != "" {
		if apiErr.Details != "" {
			return fmt.Errorf("API request failed with status %d: %s: %s", resp.StatusCode(), apiErr.Error, apiErr.Details)
		}
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), apiErr.Error)
	}
	return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.String())
}

// decodeProjection rebuilds a Projection from the mode-specific data payload.
func decodeProjection(mode table.Mode, data json.RawMessage) (*table.Projection, error) {
	p := &table.Projection{Mode: mode}

	var err error
	switch mode {
	case table.ModeTable:
		var t table.Table
		err = json.Unmarshal(data, &t)
		p.Table = &t
	case table.ModeList, table.ModeFields:
		err = json.Unmarshal(data, &p.Records)
	case table.ModeShow:
		var obj table.Record
		if string(data) != "null" {
			err = json.Unmarshal(data, &obj)
		}
		p.Object = &obj
	case table.ModeRaw:
		err = json.Unmarshal(data, &p.Raw)
	default:
		return nil, fmt.Errorf("unexpected parse mode in response: %q", mode)
	}
	if err != nil {
		return nil, fmt.Errorf("unexpected response format for %s parse: %w", mode, err)
	}
	return p, nil
}
