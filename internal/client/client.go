package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/24KD1A0503/jn/internal/models"
)

// DefaultTimeout bounds every request when the caller does not pick one.
const DefaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

type Health struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
	Port      any    `json:"port"`
}

type SOSRequest struct {
	Timestamp string           `json:"timestamp"`
	Location  *models.Location `json:"location,omitempty"`
	Type      string           `json:"type"`
}

type SOSAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	AlertID string `json:"alertId"`
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) Login(ctx context.Context, username, password string, role models.Role) (*models.Session, error) {
	body := map[string]string{"username": username, "password": password, "role": string(role)}
	var sess models.Session
	if err := c.call(ctx, http.MethodPost, "/api/auth/login", "", body, &sess, "Login failed"); err != nil {
		return nil, err
	}
	return &sess, nil
}

// TestConnection probes /health. It does not touch credentials.
func (c *Client) TestConnection(ctx context.Context) (*Health, error) {
	raw, err := c.do(ctx, http.MethodGet, "/health", "", nil, "Health check failed")
	if err != nil {
		return nil, err
	}
	var h Health
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	return &h, nil
}

func (c *Client) Dashboard(ctx context.Context, token string) (*models.DashboardView, error) {
	var v models.DashboardView
	if err := c.call(ctx, http.MethodGet, "/api/dashboard", token, nil, &v, "Failed to load dashboard"); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) SendSOS(ctx context.Context, req SOSRequest) (*SOSAck, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/emergency/sos", "", req, "Failed to send SOS alert")
	if err != nil {
		return nil, err
	}
	var ack SOSAck
	if err := json.Unmarshal(raw, &ack); err != nil {
		return nil, fmt.Errorf("decode sos ack: %w", err)
	}
	return &ack, nil
}

// call performs a request whose success body is {success, data} and
// decodes data into out.
func (c *Client) call(ctx context.Context, method, path, token string, in, out any, fallback string) error {
	raw, err := c.do(ctx, method, path, token, in, fallback)
	if err != nil {
		return err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return &APIError{Status: http.StatusOK, Message: orDefault(env.Message, fallback)}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path, token string, in any, fallback string) ([]byte, error) {
	url := c.baseURL + path

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classify(c.baseURL, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, classify(c.baseURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		_ = json.Unmarshal(raw, &env)
		return nil, &APIError{Status: resp.StatusCode, Message: orDefault(env.Message, fallback)}
	}
	return raw, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
