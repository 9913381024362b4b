package sms

import (
	"context"
	"testing"

	"github.com/iwantdrugsxd/mind-ease/config"
)

func TestNewFromConfig_Disabled(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: false,
	}

	client, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if client.IsEnabled() {
		t.Error("Expected client to be disabled")
	}
}

func TestNewFromConfig_EnabledWithoutCredentials(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		Twilio: config.TwilioConfig{
			AccountSID: "",
			AuthToken:  "",
			FromNumber: "+15005550006",
		},
	}

	_, err := NewFromConfig(cfg)
	if err == nil {
		t.Error("Expected error when credentials are missing")
	}
}

func TestNewFromConfig_EnabledWithoutFromNumber(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		Twilio: config.TwilioConfig{
			AccountSID: "ACtest",
			AuthToken:  "test-token",
			FromNumber: "",
		},
	}

	_, err := NewFromConfig(cfg)
	if err == nil {
		t.Error("Expected error when from number is missing")
	}
}

func TestNewFromConfig_EnabledWithCredentials(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		Twilio: config.TwilioConfig{
			AccountSID: "ACtest",
			AuthToken:  "test-token",
			FromNumber: "+15005550006",
		},
	}

	client, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if !client.IsEnabled() {
		t.Error("Expected client to be enabled")
	}
}

func TestSend_DisabledClient(t *testing.T) {
	client := &Client{enabled: false}

	err := client.Send(context.Background(), "+15551234567", "hello")
	if err != nil {
		t.Errorf("Expected no error for disabled client, got: %v", err)
	}
}

func TestSend_Validation(t *testing.T) {
	client := &Client{enabled: true}

	tests := []struct {
		name        string
		to          string
		body        string
		expectError bool
	}{
		{
			name:        "empty recipient",
			to:          "",
			body:        "hello",
			expectError: true,
		},
		{
			name:        "empty body",
			to:          "+15551234567",
			body:        "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.Send(context.Background(), tt.to, tt.body)
			if tt.expectError && err == nil {
				t.Error("Expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestIsEnabled(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
	}{
		{"enabled client", true},
		{"disabled client", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &Client{enabled: tt.enabled}
			if client.IsEnabled() != tt.enabled {
				t.Errorf("Expected IsEnabled() = %v, got %v", tt.enabled, client.IsEnabled())
			}
		})
	}
}
