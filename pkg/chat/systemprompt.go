// Package chat — system prompt construction.
//
// BuildSystemPrompt assembles the system prompt for one conversation from
// its parts:
//   - A fixed product preamble
//   - A conversation metadata block (model, current date, user name)
//   - Behavioral guidelines
//   - The web search policy, when search is enabled
package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bitop-dev/chatkit/pkg/ai/catalog"
)

// PromptOptions controls how the system prompt is assembled.
type PromptOptions struct {
	// UserName is the display name the assistant addresses the user by.
	// When empty, the user line is omitted.
	UserName string

	// SearchEnabled adds the web search policy block. It must be set
	// exactly when the request advertises the web_search tool.
	SearchEnabled bool
}

// BuildSystemPrompt constructs the system prompt for the given model.
// Output is plain text; the embedded current date is the only part that
// varies between calls with identical arguments.
func BuildSystemPrompt(m catalog.Model, opts PromptOptions) string {
	now := time.Now()
	date := fmt.Sprintf("%s, %s %d, %d",
		now.Format("Monday"),
		now.Format("January"),
		now.Day(),
		now.Year(),
	)

	var sb strings.Builder

	sb.WriteString("You are the assistant built into Bitop Chat, a conversational AI application from bitop.dev. You answer questions, help with writing, code, and analysis, and hold natural multi-turn conversations.\n")

	sb.WriteString("\nAbout this conversation:\n")
	fmt.Fprintf(&sb, "- Model: %s\n", m.Name)
	fmt.Fprintf(&sb, "- Current date: %s\n", date)
	if opts.UserName != "" {
		fmt.Fprintf(&sb, "- User name: %s\n", opts.UserName)
	}
	sb.WriteString("- Product: Bitop Chat (https://bitop.dev/chat)\n")

	sb.WriteString("\nGuidelines:\n")
	sb.WriteString(buildGuidelines(opts))

	if opts.SearchEnabled {
		writeSearchPolicy(&sb)
	}

	log.Debug().
		Str("model", m.Name).
		Str("user", opts.UserName).
		Bool("search_enabled", opts.SearchEnabled).
		Msg("chat: built system prompt")

	return sb.String()
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func buildGuidelines(opts PromptOptions) string {
	var lines []string

	lines = append(lines, "Always treat the date above as the current date")
	if opts.UserName != "" {
		lines = append(lines, "Address the user by name when it feels natural")
	}
	lines = append(lines, "Answer directly; lead with the answer before any explanation")
	lines = append(lines, "Use Markdown only where it aids readability (lists, code blocks, tables)")
	lines = append(lines, "Admit uncertainty briefly instead of guessing")
	lines = append(lines, "Be concise; expand only when the user asks for depth")

	var sb strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&sb, "- %s\n", l)
	}
	return sb.String()
}

func writeSearchPolicy(sb *strings.Builder) {
	sb.WriteString("\nWeb search policy:\n")
	sb.WriteString("- You may call the web_search tool at most once per reply\n")
	sb.WriteString("- Search only when the answer depends on current or post-training information\n")
	sb.WriteString("- Cite the sources you used in your reply\n")
	sb.WriteString("- Never search for content the user already provided\n")
}
