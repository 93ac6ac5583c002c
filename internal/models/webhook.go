package models

// Webhook is a TAMS webhook registration: the receiver URL plus the event
// types the store should deliver to it. Registrations are keyed by URL; the
// API key pair is optional and sent back to the receiver on delivery.
type Webhook struct {
	URL         string   `json:"url"`
	APIKeyName  string   `json:"api_key_name,omitempty"`
	APIKeyValue string   `json:"api_key_value,omitempty"`
	Events      []string `json:"events"`
}

// Event types a TAMS store can deliver to a webhook receiver.
var WebhookEventTypes = []string{
	"flows/created",
	"flows/updated",
	"flows/deleted",
	"flows/segments_added",
	"flows/segments_deleted",
	"sources/created",
	"sources/updated",
	"sources/deleted",
}
