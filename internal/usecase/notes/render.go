package notes

import (
	"fmt"
	"strings"

	"github.com/roxanekm/report-generator/internal/domain/entities"
)

const englishTemplate = `# Meeting Report

## Topics Discussed
%s

## Decisions
%s

## Action Items
%s

## Summary
%s

## Full Transcript
%s
`

const frenchTemplate = `# Compte-rendu de réunion

## Sujets abordés
%s

## Décisions
%s

## Actions
%s

## Résumé
%s

## Transcription complète
%s
`

// RenderMarkdown serializes notes into a Markdown report. The French
// template is selected when languageCode starts with "fr"; any other code,
// including empty or unrecognized ones, falls back to English. Output is
// deterministic for a given notes value.
func RenderMarkdown(n *entities.MeetingNotes, languageCode string) string {
	template := englishTemplate
	if strings.HasPrefix(languageCode, "fr") {
		template = frenchTemplate
	}
	return fmt.Sprintf(template,
		n.Topics,
		bulletList(n.Decisions),
		bulletList(n.Actions),
		n.Summary,
		n.Transcript,
	)
}

// bulletList renders entries as a Markdown bullet list, or the literal
// "NA" placeholder when there are none.
func bulletList(items []string) string {
	if len(items) == 0 {
		return "NA"
	}
	return "- " + strings.Join(items, "\n- ")
}
