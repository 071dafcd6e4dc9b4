package entities

// MeetingNotes is the structured result of one pipeline run.
// It is a value object: built once by the notes service, consumed once
// by the renderer, never mutated or shared across requests.
type MeetingNotes struct {
	Transcript string   `json:"transcript"`
	Summary    string   `json:"summary"`
	Topics     string   `json:"topics"`
	Decisions  []string `json:"decisions"`
	Actions    []string `json:"actions"`
}

// NewMeetingNotes creates meeting notes, normalizing nil slices so JSON
// output always carries arrays
func NewMeetingNotes(transcript, summary, topics string, decisions, actions []string) *MeetingNotes {
	if decisions == nil {
		decisions = make([]string, 0)
	}
	if actions == nil {
		actions = make([]string, 0)
	}
	return &MeetingNotes{
		Transcript: transcript,
		Summary:    summary,
		Topics:     topics,
		Decisions:  decisions,
		Actions:    actions,
	}
}

// IsEmpty reports whether the pipeline produced no usable summary
func (n *MeetingNotes) IsEmpty() bool {
	return n.Summary == ""
}
