package meeting

import (
	"github.com/roxanekm/report-generator/internal/domain/entities"
)

// NotesResponse is the JSON representation of a generated meeting report.
type NotesResponse struct {
	ReportID  string   `json:"report_id"`
	Filename  string   `json:"filename"`
	Language  string   `json:"language"`
	Location  string   `json:"location,omitempty"`
	Summary   string   `json:"summary"`
	Topics    string   `json:"topics"`
	Decisions []string `json:"decisions"`
	Actions   []string `json:"actions"`
	Markdown  string   `json:"markdown"`
}

func NewNotesResponse(report *entities.Report, notes *entities.MeetingNotes, markdown string) *NotesResponse {
	return &NotesResponse{
		ReportID:  report.ID.String(),
		Filename:  report.Filename,
		Language:  report.Language,
		Location:  report.Location,
		Summary:   notes.Summary,
		Topics:    notes.Topics,
		Decisions: notes.Decisions,
		Actions:   notes.Actions,
		Markdown:  markdown,
	}
}
