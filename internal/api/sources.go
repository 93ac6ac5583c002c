package api

import (
	"fmt"
	"net/url"

	"github.com/avtools/tamscout/internal/models"
	"github.com/avtools/tamscout/internal/paging"
)

// SourcesPage is one page of the source listing plus its pagination state.
type SourcesPage struct {
	Sources []models.Source
	Page    paging.Page
}

// ListSources fetches one page of sources. Pass opts.WithPage(cursor) with a
// cursor from a previous page to navigate.
func (c *Client) ListSources(opts paging.FilterOptions) (*SourcesPage, error) {
	var sources []models.Source
	page, err := c.getJSON("/sources", opts.Encode(), &sources)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	return &SourcesPage{Sources: sources, Page: page}, nil
}

// GetSource fetches a single source by ID.
func (c *Client) GetSource(id string) (*models.Source, error) {
	var source models.Source
	if _, err := c.getJSON("/sources/"+url.PathEscape(id), "", &source); err != nil {
		return nil, fmt.Errorf("failed to get source %s: %w", id, err)
	}
	return &source, nil
}
