package notes

import (
	"reflect"
	"testing"
)

func TestDecisionsActions_Classification(t *testing.T) {
	e := NewExtractor(DefaultKeywordRules())
	summary := "Decided to launch next week. Action: follow up with client. Weather was nice."

	decisions, actions := e.DecisionsActions(summary)

	wantDecisions := []string{"Decided to launch next week."}
	wantActions := []string{"Action: follow up with client."}
	if !reflect.DeepEqual(decisions, wantDecisions) {
		t.Fatalf("decisions = %#v, want %#v", decisions, wantDecisions)
	}
	if !reflect.DeepEqual(actions, wantActions) {
		t.Fatalf("actions = %#v, want %#v", actions, wantActions)
	}
}

func TestDecisionsActions_DecisionPrecedence(t *testing.T) {
	e := NewExtractor(DefaultKeywordRules())

	// Matches both keyword sets; must land in decisions only.
	decisions, actions := e.DecisionsActions("We agreed action will follow.")

	if len(decisions) != 1 {
		t.Fatalf("expected 1 decision, got %d", len(decisions))
	}
	if len(actions) != 0 {
		t.Fatalf("expected no actions, got %#v", actions)
	}
}

func TestDecisionsActions_CaseInsensitive(t *testing.T) {
	e := NewExtractor(DefaultKeywordRules())

	decisions, actions := e.DecisionsActions("IT WAS AGREED TO PROCEED. IMPLEMENT THE FIX NOW.")

	if len(decisions) != 1 || len(actions) != 1 {
		t.Fatalf("got %d decisions, %d actions, want 1 and 1", len(decisions), len(actions))
	}
}

func TestDecisionsActions_French(t *testing.T) {
	e := NewExtractor(DefaultKeywordRules())
	summary := "Il a été décidé de reporter le projet. Reste à faire la revue du budget. La réunion était courte."

	decisions, actions := e.DecisionsActions(summary)

	if len(decisions) != 1 {
		t.Fatalf("expected 1 decision, got %#v", decisions)
	}
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %#v", actions)
	}
}

func TestDecisionsActions_SubstringMatching(t *testing.T) {
	e := NewExtractor(DefaultKeywordRules())

	// "faire" matches inside "affaire". Documented behavior of the
	// substring matcher, not a bug to fix silently.
	_, actions := e.DecisionsActions("Une affaire importante a été mentionnée.")

	if len(actions) != 1 {
		t.Fatalf("expected substring match on 'affaire', got %#v", actions)
	}
}

func TestDecisionsActions_OrderPreserved(t *testing.T) {
	e := NewExtractor(DefaultKeywordRules())
	summary := "Agreed on budget. Follow up with HR. Agreed on hiring. Implement the tool."

	decisions, actions := e.DecisionsActions(summary)

	wantDecisions := []string{"Agreed on budget.", "Agreed on hiring."}
	wantActions := []string{"Follow up with HR.", "Implement the tool."}
	if !reflect.DeepEqual(decisions, wantDecisions) {
		t.Fatalf("decisions out of order: %#v", decisions)
	}
	if !reflect.DeepEqual(actions, wantActions) {
		t.Fatalf("actions out of order: %#v", actions)
	}
}

func TestDecisionsActions_EmptySummary(t *testing.T) {
	e := NewExtractor(DefaultKeywordRules())

	decisions, actions := e.DecisionsActions("")

	if decisions != nil || actions != nil {
		t.Fatalf("expected nil slices for empty summary, got %#v / %#v", decisions, actions)
	}
}

func TestNewExtractor_CustomRules(t *testing.T) {
	e := NewExtractor([]KeywordRule{
		{Keyword: "approved", Category: CategoryDecision},
		{Keyword: "ticket", Category: CategoryAction},
		{Keyword: "whatever", Category: KeywordCategory("unknown")},
	})

	decisions, actions := e.DecisionsActions("The plan was approved. Open a ticket tomorrow. Whatever happens next.")

	if len(decisions) != 1 {
		t.Fatalf("expected custom decision keyword to match, got %#v", decisions)
	}
	if len(actions) != 1 {
		t.Fatalf("expected custom action keyword to match, got %#v", actions)
	}
}
