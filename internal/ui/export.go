package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/avtools/tamscout/internal/models"
	"github.com/avtools/tamscout/internal/qr"
)

// statusDuration is how long transient status messages stay visible.
const statusDuration = 4 * time.Second

// sanitizeFilename replaces path-hostile characters in identifiers.
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-", " ", "-")
	return replacer.Replace(s)
}

// SaveFlowQR writes a QR code PNG pointing at a flow's API URL and returns
// the filename.
func SaveFlowQR(baseURL, flowID string) (string, error) {
	filename := fmt.Sprintf("flow-%s-%s.png", sanitizeFilename(flowID), time.Now().Format("2006-01-02"))
	if err := qr.WritePNG(baseURL+"/flows/"+flowID, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// SaveSegmentQR writes a QR code PNG for a segment's media URL and returns
// the filename.
func SaveSegmentQR(mediaURL, objectID string) (string, error) {
	filename := fmt.Sprintf("segment-%s-%s.png", sanitizeFilename(objectID), time.Now().Format("2006-01-02"))
	if err := qr.WritePNG(mediaURL, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// ExportEventsMarkdown writes the event history to a markdown file and
// returns the filename.
func ExportEventsMarkdown(records []models.EventRecord) (string, error) {
	filename := fmt.Sprintf("events-%s.md", time.Now().Format("2006-01-02-150405"))

	var sb strings.Builder
	sb.WriteString("# Event History\n\n")
	sb.WriteString(fmt.Sprintf("**Events:** %d\n", len(records)))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	sb.WriteString("| Received | Type | Flow | Source | Timerange |\n")
	sb.WriteString("|----------|------|------|--------|-----------|\n")
	for _, r := range records {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			r.ReceivedAt.Format("2006-01-02 15:04:05"), r.EventType, r.FlowID, r.SourceID, r.Timerange))
	}

	if err := os.WriteFile(filename, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write markdown file: %w", err)
	}
	return filename, nil
}
