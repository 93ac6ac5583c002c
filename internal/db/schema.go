package db

const createEventsTable = `
CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    event_type TEXT NOT NULL,
    source_id TEXT,
    flow_id TEXT,
    timerange TEXT,
    received_at TEXT NOT NULL,
    payload TEXT
);

CREATE INDEX IF NOT EXISTS idx_events_type ON events(event_type);
CREATE INDEX IF NOT EXISTS idx_events_flow ON events(flow_id);
CREATE INDEX IF NOT EXISTS idx_events_source ON events(source_id);
CREATE INDEX IF NOT EXISTS idx_events_received ON events(received_at);
`

const createEndpointsTable = `
CREATE TABLE IF NOT EXISTS endpoints (
    url TEXT PRIMARY KEY,
    label TEXT,
    last_used TEXT NOT NULL
);
`

const insertEvent = `
INSERT OR REPLACE INTO events (
    id, event_type, source_id, flow_id, timerange, received_at, payload
) VALUES (?, ?, ?, ?, ?, ?, ?)
`

const selectEvents = `
SELECT id, event_type,
    COALESCE(source_id, ''),
    COALESCE(flow_id, ''),
    COALESCE(timerange, ''),
    received_at,
    COALESCE(payload, '')
FROM events
ORDER BY received_at DESC
LIMIT ?
`

const countEvents = `SELECT COUNT(*) FROM events`

// pruneEvents keeps the newest ? rows and removes the rest.
const pruneEvents = `
DELETE FROM events
WHERE id NOT IN (
    SELECT id FROM events ORDER BY received_at DESC LIMIT ?
)
`

const upsertEndpoint = `
INSERT INTO endpoints (url, label, last_used) VALUES (?, ?, ?)
ON CONFLICT(url) DO UPDATE SET label = excluded.label, last_used = excluded.last_used
`

const selectEndpoints = `
SELECT url, COALESCE(label, ''), last_used
FROM endpoints
ORDER BY last_used DESC
LIMIT ?
`
