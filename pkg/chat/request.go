// Package chat — outbound request assembly.
//
// NewChatRequest turns a catalogue model, a user message, and per-request
// options into the OpenAI-compatible request body the application posts to
// its gateway. Everything here is pure assembly; no I/O happens.
package chat

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/bitop-dev/chatkit/pkg/ai/catalog"
	"github.com/bitop-dev/chatkit/pkg/tools"
)

// Reasoning effort levels accepted by models with a tunable reasoning budget.
const (
	EffortLow    = "low"
	EffortMedium = "medium"
	EffortHigh   = "high"
)

// RequestOptions controls the assembly of one outbound chat request.
type RequestOptions struct {
	// UserName flows into the system prompt.
	UserName string

	// SearchEnabled advertises the web_search tool and adds the matching
	// policy block to the system prompt.
	SearchEnabled bool

	// ReasoningEffort is "", "low", "medium", or "high". Only valid for
	// models whose ReasoningEffort flag is set.
	ReasoningEffort string

	// ImageURLs are attached to the user message as image parts. Only
	// valid for models that accept image input.
	ImageURLs []string
}

// NewChatRequest builds the request body for one user turn. The system
// prompt goes first, then the user message (plain text, or multi-part when
// images are attached).
func NewChatRequest(m catalog.Model, message string, opts RequestOptions) (openai.ChatCompletionRequest, error) {
	if message == "" && len(opts.ImageURLs) == 0 {
		return openai.ChatCompletionRequest{}, fmt.Errorf("chat: empty user message")
	}
	if len(opts.ImageURLs) > 0 && !m.Supports(catalog.ModalityImage) {
		return openai.ChatCompletionRequest{}, fmt.Errorf("chat: model %q does not accept image input", m.Name)
	}
	if opts.ReasoningEffort != "" {
		if !m.ReasoningEffort {
			return openai.ChatCompletionRequest{}, fmt.Errorf("chat: model %q has no tunable reasoning effort", m.Name)
		}
		switch opts.ReasoningEffort {
		case EffortLow, EffortMedium, EffortHigh:
		default:
			return openai.ChatCompletionRequest{}, fmt.Errorf("chat: invalid reasoning effort %q (want low, medium, or high)", opts.ReasoningEffort)
		}
	}

	system := openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleSystem,
		Content: BuildSystemPrompt(m, PromptOptions{
			UserName:      opts.UserName,
			SearchEnabled: opts.SearchEnabled,
		}),
	}

	user := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if len(opts.ImageURLs) == 0 {
		user.Content = message
	} else {
		var parts []openai.ChatMessagePart
		if message != "" {
			parts = append(parts, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeText,
				Text: message,
			})
		}
		for _, u := range opts.ImageURLs {
			parts = append(parts, openai.ChatMessagePart{
				Type:     openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{URL: u},
			})
		}
		user.MultiContent = parts
	}

	req := openai.ChatCompletionRequest{
		Model:    m.UpstreamID,
		Messages: []openai.ChatCompletionMessage{system, user},
	}
	if opts.ReasoningEffort != "" {
		req.ReasoningEffort = opts.ReasoningEffort
	}
	if opts.SearchEnabled {
		req.Tools = []openai.Tool{openAITool(tools.WebSearch())}
	}

	log.Debug().
		Str("model", m.UpstreamID).
		Int("images", len(opts.ImageURLs)).
		Bool("search_enabled", opts.SearchEnabled).
		Str("reasoning_effort", opts.ReasoningEffort).
		Msg("chat: assembled request")

	return req, nil
}

func openAITool(def tools.Definition) openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        def.Name,
			Description: def.Description,
			Parameters:  def.Parameters,
		},
	}
}

// NewRequestID returns a fresh correlation ID for one request/response
// cycle. Purely informational; the gateway assigns its own IDs.
func NewRequestID() string {
	return uuid.NewString()
}
