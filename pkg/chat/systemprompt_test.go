package chat

import (
	"strings"
	"testing"

	"github.com/bitop-dev/chatkit/pkg/ai/catalog"
)

func testModel(t *testing.T) catalog.Model {
	t.Helper()
	m, err := catalog.Default()
	if err != nil {
		t.Fatalf("no default model: %v", err)
	}
	return m
}

func TestBuildSystemPrompt_Basics(t *testing.T) {
	m := testModel(t)
	prompt := BuildSystemPrompt(m, PromptOptions{UserName: "Alice"})

	checks := []string{
		"Bitop Chat",
		"- Model: " + m.Name,
		"- Current date: ",
		"- User name: Alice",
		"Guidelines:",
		"Address the user by name",
	}
	for _, want := range checks {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	// Search policy must not appear when search is disabled.
	if strings.Contains(prompt, "web_search") {
		t.Error("prompt should not mention web_search when search is disabled")
	}
	if strings.Contains(prompt, "Web search policy:") {
		t.Error("prompt should not contain the search policy when search is disabled")
	}
}

func TestBuildSystemPrompt_SearchEnabled(t *testing.T) {
	m := testModel(t)
	prompt := BuildSystemPrompt(m, PromptOptions{UserName: "Alice", SearchEnabled: true})

	checks := []string{
		"Web search policy:",
		"web_search tool at most once per reply",
		"Cite the sources",
	}
	for _, want := range checks {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildSystemPrompt_NoUserName(t *testing.T) {
	m := testModel(t)
	prompt := BuildSystemPrompt(m, PromptOptions{})

	if strings.Contains(prompt, "- User name:") {
		t.Error("user line should be omitted when no name is set")
	}
	if strings.Contains(prompt, "Address the user by name") {
		t.Error("naming guideline should be omitted when no name is set")
	}
}

func TestBuildSystemPrompt_ModelName(t *testing.T) {
	// Every catalogue model's display name must surface verbatim.
	for _, m := range catalog.All() {
		prompt := BuildSystemPrompt(m, PromptOptions{UserName: "Bo"})
		if !strings.Contains(prompt, m.Name) {
			t.Errorf("prompt for model %d missing name %q", m.ID, m.Name)
		}
	}
}
