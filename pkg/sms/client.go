package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iwantdrugsxd/mind-ease/config"
)

const (
	twilioBaseURL  = "https://api.twilio.com/2010-04-01"
	defaultTimeout = 10 * time.Second
)

// Client provides SMS sending functionality via the Twilio REST API.
type Client struct {
	httpClient *http.Client
	accountSID string
	authToken  string
	from       string
	enabled    bool
}

// NewFromConfig creates a new SMS client from the application configuration.
// If SMS is disabled, returns a client that no-ops on all operations.
func NewFromConfig(cfg config.SMSConfig) (*Client, error) {
	if !cfg.Enabled {
		return &Client{enabled: false}, nil
	}

	if cfg.Twilio.AccountSID == "" || cfg.Twilio.AuthToken == "" {
		return nil, fmt.Errorf("twilio credentials required when SMS enabled")
	}
	if cfg.Twilio.FromNumber == "" {
		return nil, fmt.Errorf("twilio from number required when SMS enabled")
	}

	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		accountSID: cfg.Twilio.AccountSID,
		authToken:  cfg.Twilio.AuthToken,
		from:       cfg.Twilio.FromNumber,
		enabled:    true,
	}, nil
}

// Send delivers a plain text message to the given phone number (E.164 format).
// If SMS is disabled, this is a no-op and returns nil.
func (c *Client) Send(ctx context.Context, to, body string) error {
	if !c.enabled {
		// No-op when disabled (useful for development)
		return nil
	}

	if to == "" {
		return fmt.Errorf("recipient phone number is required")
	}
	if body == "" {
		return fmt.Errorf("message body is required")
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioBaseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build twilio request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("twilio send failed: status %d: %s", resp.StatusCode, string(payload))
	}

	return nil
}

// IsEnabled returns whether SMS sending is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}
