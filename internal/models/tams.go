package models

// Source represents a TAMS source: the abstract content a set of flows
// renders. IDs are UUIDs assigned by the store.
type Source struct {
	ID          string            `json:"id"`
	Format      string            `json:"format"`
	Label       string            `json:"label,omitempty"`
	Description string            `json:"description,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
	Created     string            `json:"created,omitempty"`
	Updated     string            `json:"updated,omitempty"`
	Collection  []CollectionItem  `json:"source_collection,omitempty"`
}

// CollectionItem is a reference to a member of a source or flow collection.
type CollectionItem struct {
	ID   string `json:"id"`
	Role string `json:"role,omitempty"`
}

// Flow represents a TAMS flow: one concrete rendition of a source, made of
// timerange-addressed segments.
type Flow struct {
	ID             string            `json:"id"`
	SourceID       string            `json:"source_id"`
	Format         string            `json:"format"`
	Codec          string            `json:"codec,omitempty"`
	Label          string            `json:"label,omitempty"`
	Description    string            `json:"description,omitempty"`
	Container      string            `json:"container,omitempty"`
	AvgBitRate     int64             `json:"avg_bit_rate,omitempty"`
	MaxBitRate     int64             `json:"max_bit_rate,omitempty"`
	Tags           map[string]string `json:"tags,omitempty"`
	Created        string            `json:"created,omitempty"`
	Updated        string            `json:"updated,omitempty"`
	EssenceParams  *EssenceParams    `json:"essence_parameters,omitempty"`
	ReadOnly       bool              `json:"read_only,omitempty"`
	SegmentsURL    string            `json:"segments_url,omitempty"`
	TimerangeAvail string            `json:"available_timerange,omitempty"`
}

// EssenceParams carries the media-technical subset of a flow description the
// dashboard actually displays.
type EssenceParams struct {
	FrameWidth  int    `json:"frame_width,omitempty"`
	FrameHeight int    `json:"frame_height,omitempty"`
	FrameRate   string `json:"frame_rate,omitempty"`
	SampleRate  int    `json:"sample_rate,omitempty"`
	Channels    int    `json:"channels,omitempty"`
	BitDepth    int    `json:"bit_depth,omitempty"`
}

// FlowSegment is one timerange-addressed chunk of a flow's essence.
type FlowSegment struct {
	ObjectID     string   `json:"object_id"`
	Timerange    string   `json:"timerange"`
	TSOffset     string   `json:"ts_offset,omitempty"`
	LastDuration string   `json:"last_duration,omitempty"`
	SampleOffset int64    `json:"sample_offset,omitempty"`
	SampleCount  int64    `json:"sample_count,omitempty"`
	GetURLs      []GetURL `json:"get_urls,omitempty"`
}

// GetURL is a retrieval location for a segment's media object.
type GetURL struct {
	URL   string `json:"url"`
	Label string `json:"label,omitempty"`
}

// ServiceInfo is the store's self-description from GET /service.
type ServiceInfo struct {
	Name             string `json:"name,omitempty"`
	Description      string `json:"description,omitempty"`
	Type             string `json:"type,omitempty"`
	APIVersion       string `json:"api_version,omitempty"`
	ServiceVersion   string `json:"service_version,omitempty"`
	MediaStore       any    `json:"media_store,omitempty"`
	EventStreamMechs []any  `json:"event_stream_mechanisms,omitempty"`
}
