package api

import (
	"fmt"
	"net/url"

	"github.com/avtools/tamscout/internal/models"
	"github.com/avtools/tamscout/internal/paging"
)

// FlowsPage is one page of the flow listing plus its pagination state.
type FlowsPage struct {
	Flows []models.Flow
	Page  paging.Page
}

// SegmentsPage is one page of a flow's segment listing plus its pagination
// state. The echoed timerange in Page.Meta tells which part of the flow this
// page covers.
type SegmentsPage struct {
	Segments []models.FlowSegment
	Page     paging.Page
}

// ListFlows fetches one page of flows. Filter to a single source with
// opts.Custom["source_id"].
func (c *Client) ListFlows(opts paging.FilterOptions) (*FlowsPage, error) {
	var flows []models.Flow
	page, err := c.getJSON("/flows", opts.Encode(), &flows)
	if err != nil {
		return nil, fmt.Errorf("failed to list flows: %w", err)
	}
	return &FlowsPage{Flows: flows, Page: page}, nil
}

// GetFlow fetches a single flow by ID.
func (c *Client) GetFlow(id string) (*models.Flow, error) {
	var flow models.Flow
	if _, err := c.getJSON("/flows/"+url.PathEscape(id), "", &flow); err != nil {
		return nil, fmt.Errorf("failed to get flow %s: %w", id, err)
	}
	return &flow, nil
}

// ListFlowSegments fetches one page of a flow's segments. Use opts.Timerange
// to scope the listing and opts.Page to resume from a cursor.
func (c *Client) ListFlowSegments(flowID string, opts paging.FilterOptions) (*SegmentsPage, error) {
	var segments []models.FlowSegment
	path := "/flows/" + url.PathEscape(flowID) + "/segments"
	page, err := c.getJSON(path, opts.Encode(), &segments)
	if err != nil {
		return nil, fmt.Errorf("failed to list segments of flow %s: %w", flowID, err)
	}
	return &SegmentsPage{Segments: segments, Page: page}, nil
}
