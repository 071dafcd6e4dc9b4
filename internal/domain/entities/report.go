package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Report describes a rendered Markdown document handed to the storage layer.
// The document itself is ephemeral; only the archive location survives the
// request.
type Report struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	Language  string    `json:"language"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewReport creates a report descriptor with a unique filename
func NewReport(language string) *Report {
	id := uuid.New()
	return &Report{
		ID:        id,
		Filename:  fmt.Sprintf("meeting-report-%s.md", id),
		Language:  language,
		CreatedAt: time.Now(),
	}
}
