package api

import (
	"fmt"

	"github.com/avtools/tamscout/internal/models"
)

// GetServiceInfo fetches the store's self-description. Used as the startup
// connectivity check and for the dashboard header.
func (c *Client) GetServiceInfo() (*models.ServiceInfo, error) {
	var info models.ServiceInfo
	if _, err := c.getJSON("/service", "", &info); err != nil {
		return nil, fmt.Errorf("failed to get service info: %w", err)
	}
	return &info, nil
}
