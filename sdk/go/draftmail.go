// Package draftmail is a small Go client for the DraftMail HTTP API.
//
// Usage:
//
//	client := draftmail.NewClient(draftmail.Config{BaseURL: "http://localhost:5000"})
//	text, err := client.Generate(ctx, draftmail.GenerateRequest{
//		Subject: "Project Kickoff",
//		Tone:    "friendly",
//		Purpose: "introduce the team",
//	})
package draftmail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Config holds the configuration for the DraftMail client.
type Config struct {
	// BaseURL is the root URL of the DraftMail server.
	BaseURL string

	// HTTPClient is an optional custom HTTP client.
	// If nil, a default client with a 90s timeout is used (draft
	// generation waits on the upstream completion provider).
	HTTPClient *http.Client
}

func (c *Config) defaults() {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 90 * time.Second}
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
}

// Client is the DraftMail SDK client.
type Client struct {
	cfg Config
}

// NewClient creates a new DraftMail client with the given configuration.
func NewClient(cfg Config) *Client {
	cfg.defaults()
	return &Client{cfg: cfg}
}

// Generate asks the server to draft an email and returns the generated text.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("draftmail: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/generate-email", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("draftmail: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	body, err := c.do(httpReq)
	if err != nil {
		return "", err
	}

	var resp GenerateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("draftmail: failed to parse response: %w", err)
	}
	return resp.Email, nil
}

// Send relays a finished email, with an optional attachment, through the
// server's mail provider.
func (c *Client) Send(ctx context.Context, req SendRequest) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	_ = form.WriteField("recipient", req.Recipient)
	_ = form.WriteField("subject", req.Subject)
	_ = form.WriteField("emailBody", req.Body)

	if req.AttachmentName != "" {
		part, err := form.CreateFormFile("attachment", req.AttachmentName)
		if err != nil {
			return fmt.Errorf("draftmail: failed to build form: %w", err)
		}
		if _, err := part.Write(req.AttachmentData); err != nil {
			return fmt.Errorf("draftmail: failed to build form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("draftmail: failed to build form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/send-email", &buf)
	if err != nil {
		return fmt.Errorf("draftmail: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", form.FormDataContentType())

	if _, err := c.do(httpReq); err != nil {
		return err
	}
	return nil
}

// Health reports whether the server answers its liveness probe.
func (c *Client) Health(ctx context.Context) (bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/health", nil)
	if err != nil {
		return false, fmt.Errorf("draftmail: failed to create request: %w", err)
	}

	body, err := c.do(httpReq)
	if err != nil {
		return false, err
	}

	var resp HealthResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, fmt.Errorf("draftmail: failed to parse response: %w", err)
	}
	return resp.Status == "healthy", nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("draftmail: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("draftmail: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseAPIError(resp.StatusCode, body)
	}
	return body, nil
}
