package service

import (
	"strings"
	"testing"
	"time"

	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/model"
)

func TestBuildPrompt_Basic(t *testing.T) {
	prompt := BuildPrompt("What should I pack for Lisbon?", nil, nil)

	if !strings.Contains(prompt, "Current date: "+time.Now().Format("2006-01-02")) {
		t.Errorf("prompt missing current date:\n%s", prompt)
	}
	if !strings.HasSuffix(prompt, "\nUser: What should I pack for Lisbon?\nAssistant:") {
		t.Errorf("prompt does not end with the new message:\n%s", prompt)
	}
	if strings.Contains(prompt, "Recent conversation:") {
		t.Errorf("prompt contains history section without history:\n%s", prompt)
	}
}

func TestBuildPrompt_Identity(t *testing.T) {
	user := &model.UserContext{Email: "alice@example.com", Name: "Alice", UserType: "owner"}

	prompt := BuildPrompt("hi", nil, user)

	if !strings.Contains(prompt, "\nUser: Alice (owner)\n") {
		t.Errorf("prompt missing identity line:\n%s", prompt)
	}
}

func TestBuildPrompt_IdentityWithoutName(t *testing.T) {
	user := &model.UserContext{Email: "someone@example.com"}

	prompt := BuildPrompt("hi", nil, user)

	if !strings.Contains(prompt, "\nUser: Guest\n") {
		t.Errorf("prompt missing Guest fallback:\n%s", prompt)
	}
}

func TestBuildPrompt_HistoryTruncation(t *testing.T) {
	history := []model.ChatMessage{
		{Role: model.RoleUser, Content: "turn one"},
		{Role: model.RoleAssistant, Content: "turn two"},
		{Role: model.RoleUser, Content: "turn three"},
		{Role: model.RoleAssistant, Content: "turn four"},
		{Role: model.RoleUser, Content: "turn five"},
	}

	prompt := BuildPrompt("next question", history, nil)

	if strings.Contains(prompt, "turn one") || strings.Contains(prompt, "turn two") {
		t.Errorf("prompt includes history beyond the last %d turns:\n%s", historyTurns, prompt)
	}
	for _, want := range []string{"User: turn three", "Assistant: turn four", "User: turn five"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing history line %q:\n%s", want, prompt)
		}
	}
}
