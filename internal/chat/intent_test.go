package chat

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		input string
		want  Intent
	}{
		{"menu", IntentMenu},
		{"  MENU  ", IntentMenu},
		{"take me back to the menu please", IntentMenu},
		{"learn more", IntentLearnMore},
		{"I'd like to learn more!", IntentLearnMore},
		{"can I ask a question?", IntentAskQuestion},
		{"ask", IntentAskQuestion},
		{"thanks!", IntentThanks},
		{"thank you so much", IntentThanks},
		{"I'm done", IntentThanks},
		{"B", IntentAnswer},
		{"rent", IntentAnswer},
		{"", IntentAnswer},
		{"learning is fun", IntentAnswer},
	}

	for _, tt := range tests {
		if got := ClassifyIntent(tt.input); got != tt.want {
			t.Errorf("ClassifyIntent(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestClassifyIntent_MenuWinsOverEverything(t *testing.T) {
	// An input carrying several keywords still exits to the menu.
	if got := ClassifyIntent("thanks, menu please"); got != IntentMenu {
		t.Errorf("ClassifyIntent = %v, want menu", got)
	}
	if got := ClassifyIntent("menu, I have a question"); got != IntentMenu {
		t.Errorf("ClassifyIntent = %v, want menu", got)
	}
}
