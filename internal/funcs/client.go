package funcs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/hellofixo/fixit-admin/internal/config"
	"github.com/hellofixo/fixit-admin/internal/httperr"
)

// Client calls the externally deployed workflow functions. Each call is
// a single POST with the caller's bearer token forwarded; there is no
// retry and no local state, the function owns the whole workflow.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.FunctionsBaseURL,
		apiKey:  cfg.FunctionsAPIKey,
		http:    http.DefaultClient,
	}
}

// NewClientWith is used by tests to point at a local server.
func NewClientWith(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, http: httpClient}
}

// --------- Requests ---------

type AssignTechnicianInput struct {
	BookingID    string `json:"booking_id"`
	TechnicianID string `json:"technician_id"`
	MapURL       string `json:"map_url"`
}

type VerificationDecisionInput struct {
	TechnicianID string `json:"technician_id"`
	Decision     string `json:"decision"` // approve | reject
	Remarks      string `json:"remarks"`
}

// --------- Calls ---------

func (c *Client) AssignTechnician(
	ctx context.Context,
	token string,
	in AssignTechnicianInput,
) error {
	return c.post(ctx, token, "/assign-technician", in)
}

func (c *Client) SubmitVerificationDecision(
	ctx context.Context,
	token string,
	in VerificationDecisionInput,
) error {
	return c.post(ctx, token, "/verify-technician", in)
}

func (c *Client) post(
	ctx context.Context,
	token string,
	path string,
	body any,
) error {

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+path,
		bytes.NewReader(payload),
	)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		return httperr.RemoteError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(text)),
		}
	}

	return nil
}
