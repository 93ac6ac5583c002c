package api

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/avtools/tamscout/internal/models"
	"golang.org/x/net/publicsuffix"
)

// ListWebhooks fetches all webhook registrations from the store.
// The webhook listing is not paginated in current store versions.
func (c *Client) ListWebhooks() ([]models.Webhook, error) {
	var hooks []models.Webhook
	if _, err := c.getJSON("/service/webhooks", "", &hooks); err != nil {
		return nil, fmt.Errorf("failed to list webhooks: %w", err)
	}
	return hooks, nil
}

// RegisterWebhook creates or replaces the registration for hook.URL.
// Stores key registrations by receiver URL, so re-registering the same URL
// updates the event list in place.
func (c *Client) RegisterWebhook(hook models.Webhook) error {
	if err := validateWebhookURL(hook.URL); err != nil {
		return err
	}
	if len(hook.Events) == 0 {
		return fmt.Errorf("webhook must subscribe to at least one event type")
	}
	if err := c.doJSON("POST", "/service/webhooks", hook); err != nil {
		return fmt.Errorf("failed to register webhook: %w", err)
	}
	return nil
}

// DeleteWebhook removes the registration for receiverURL. Per the TAMS API
// a registration is deleted by posting it back with an empty event list.
func (c *Client) DeleteWebhook(receiverURL string) error {
	hook := models.Webhook{URL: receiverURL, Events: []string{}}
	if err := c.doJSON("POST", "/service/webhooks", hook); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	return nil
}

// WebhookRootDomain returns the effective TLD+1 of a webhook receiver URL,
// e.g. "https://hooks.eu-west.example.co.uk/tams" -> "example.co.uk".
// The dashboard groups registrations by it.
func WebhookRootDomain(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("invalid webhook URL: %w", err)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("webhook URL %q has no host", rawURL)
	}
	if net.ParseIP(host) != nil {
		return host, nil
	}

	root, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Single-label hosts like localhost have no registrable domain;
		// fall back to the host itself.
		return host, nil
	}
	return root, nil
}

// validateWebhookURL checks a receiver URL is absolute http(s) with a host.
func validateWebhookURL(rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return fmt.Errorf("invalid webhook URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("webhook URL must be http or https, got %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("webhook URL %q has no host", rawURL)
	}
	return nil
}
