package storage

import "context"

// ReportStore archives rendered Markdown reports. Archival is best-effort
// from the caller's point of view: a failed save never blocks report
// delivery.
type ReportStore interface {
	// SaveReport persists the Markdown document under objectName and
	// returns the location (path or URL) where it was stored.
	SaveReport(ctx context.Context, objectName, markdown string) (string, error)
}
