package notes

import (
	"strings"
	"testing"

	"github.com/roxanekm/report-generator/internal/domain/entities"
)

func sampleNotes() *entities.MeetingNotes {
	return entities.NewMeetingNotes(
		"We discussed the budget in detail.",
		"Budget was discussed. It was agreed to cut costs.",
		"Budget was discussed. It was agreed to cut costs.",
		[]string{"It was agreed to cut costs."},
		[]string{"Follow up with finance."},
	)
}

func TestRenderMarkdown_EnglishTemplate(t *testing.T) {
	for _, lang := range []string{"en", "", "de", "vi"} {
		md := RenderMarkdown(sampleNotes(), lang)

		if !strings.Contains(md, "# Meeting Report") {
			t.Fatalf("lang %q: missing English title in:\n%s", lang, md)
		}
		for _, header := range []string{
			"## Topics Discussed",
			"## Decisions",
			"## Action Items",
			"## Summary",
			"## Full Transcript",
		} {
			if !strings.Contains(md, header) {
				t.Fatalf("lang %q: missing section %q", lang, header)
			}
		}
	}
}

func TestRenderMarkdown_FrenchTemplate(t *testing.T) {
	md := RenderMarkdown(sampleNotes(), "fr-FR")

	if !strings.Contains(md, "# Compte-rendu de réunion") {
		t.Fatalf("missing French title in:\n%s", md)
	}
	for _, header := range []string{
		"## Sujets abordés",
		"## Décisions",
		"## Actions",
		"## Résumé",
		"## Transcription complète",
	} {
		if !strings.Contains(md, header) {
			t.Fatalf("missing section %q", header)
		}
	}
}

func TestRenderMarkdown_SectionOrder(t *testing.T) {
	md := RenderMarkdown(sampleNotes(), "en")

	order := []string{
		"## Topics Discussed",
		"## Decisions",
		"## Action Items",
		"## Summary",
		"## Full Transcript",
	}
	last := -1
	for _, header := range order {
		idx := strings.Index(md, header)
		if idx <= last {
			t.Fatalf("section %q out of order", header)
		}
		last = idx
	}
}

func TestRenderMarkdown_Bullets(t *testing.T) {
	n := entities.NewMeetingNotes(
		"t", "s", "s",
		[]string{"first decision", "second decision"},
		nil,
	)
	md := RenderMarkdown(n, "en")

	if !strings.Contains(md, "- first decision\n- second decision") {
		t.Fatalf("decisions not rendered as bullet list:\n%s", md)
	}
	if !strings.Contains(md, "## Action Items\nNA") {
		t.Fatalf("empty actions should render as NA:\n%s", md)
	}
}

func TestRenderMarkdown_TranscriptVerbatim(t *testing.T) {
	transcript := "Raw transcript,\nwith line breaks & *markdown* chars."
	n := entities.NewMeetingNotes(transcript, "", "", nil, nil)

	if md := RenderMarkdown(n, "en"); !strings.Contains(md, transcript) {
		t.Fatalf("transcript not included verbatim:\n%s", md)
	}
}

func TestRenderMarkdown_Idempotent(t *testing.T) {
	n := sampleNotes()
	if RenderMarkdown(n, "fr") != RenderMarkdown(n, "fr") {
		t.Fatal("rendering the same notes twice produced different output")
	}
}
