package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/avtools/tamscout/internal/api"
	"github.com/avtools/tamscout/internal/models"
)

// sanitizeInput removes null bytes and other invisible control characters
func sanitizeInput(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 || (r < 32 && r != '\t' && r != '\n' && r != '\r') {
			return -1
		}
		return r
	}, s)
}

// PromptForWebhook collects a webhook registration interactively.
// Returns cancelled=true when the user aborts the form.
func PromptForWebhook() (*models.Webhook, bool, error) {
	var (
		receiverURL string
		apiKeyName  string
		apiKeyValue string
		events      []string
	)

	options := make([]huh.Option[string], 0, len(models.WebhookEventTypes))
	for _, ev := range models.WebhookEventTypes {
		options = append(options, huh.NewOption(ev, ev))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Receiver URL").
				Description("https endpoint the store should deliver events to").
				Placeholder("https://hooks.example.com/tams").
				Value(&receiverURL).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return fmt.Errorf("receiver URL cannot be empty")
					}
					if _, err := api.WebhookRootDomain(s); err != nil {
						return err
					}
					return nil
				}),
			huh.NewInput().
				Title("API key name").
				Description("optional header name sent back on delivery").
				Value(&apiKeyName),
			huh.NewInput().
				Title("API key value").
				EchoMode(huh.EchoModePassword).
				Value(&apiKeyValue),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Event types").
				Description("at least one required").
				Options(options...).
				Value(&events).
				Validate(func(selected []string) error {
					if len(selected) == 0 {
						return fmt.Errorf("select at least one event type")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, true, nil
		}
		return nil, false, fmt.Errorf("webhook form failed: %w", err)
	}

	hook := &models.Webhook{
		URL:         strings.TrimSpace(sanitizeInput(receiverURL)),
		APIKeyName:  strings.TrimSpace(sanitizeInput(apiKeyName)),
		APIKeyValue: strings.TrimSpace(sanitizeInput(apiKeyValue)),
		Events:      events,
	}
	return hook, false, nil
}

// ConfirmDelete asks before removing a webhook registration.
func ConfirmDelete(receiverURL string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete webhook?").
				Description(receiverURL).
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirm form failed: %w", err)
	}
	return confirmed, nil
}

// PromptForEndpoint asks for a store URL when none is configured.
func PromptForEndpoint(recent []string) (string, error) {
	var endpoint string

	input := huh.NewInput().
		Title("TAMS store URL").
		Description("e.g. https://store.example/x-tams/v6.0").
		Placeholder("https://").
		Value(&endpoint).
		Validate(func(s string) error {
			s = strings.TrimSpace(s)
			if s == "" {
				return fmt.Errorf("store URL cannot be empty")
			}
			if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
				return fmt.Errorf("store URL must start with http:// or https://")
			}
			return nil
		})

	if len(recent) > 0 {
		input = input.Suggestions(recent)
	}

	form := huh.NewForm(huh.NewGroup(input))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("endpoint prompt cancelled: %w", err)
	}
	return strings.TrimSpace(sanitizeInput(endpoint)), nil
}
