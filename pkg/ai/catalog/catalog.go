// Package catalog defines the static table of chat models the application can
// route requests to, plus pure lookup and filter helpers over it.
//
// Usage:
//
//	m, ok := catalog.ByID(8)
//	if ok {
//	    fmt.Println(m.UpstreamID) // "google/gemini-2.5-flash"
//	}
package catalog

import (
	"errors"
	"strings"
)

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Modality is an input kind a model accepts.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityImage Modality = "image"
)

// Model holds the static metadata for one selectable chat model.
type Model struct {
	// ID is a small stable integer identifying the row. Never reused.
	ID int `json:"id"`

	// Name is the human-readable display label.
	Name string `json:"name"`

	// UpstreamID is the identifier the gateway expects, vendor-prefixed
	// ("anthropic/claude-sonnet-4.5").
	UpstreamID string `json:"model_id"`

	// Provider is the routing key selecting a gateway implementation.
	Provider string `json:"provider"`

	// Company is the vendor behind the model.
	Company Vendor `json:"company"`

	// Premium is true for models gated to the paid tier.
	Premium bool `json:"premium"`

	// ReasoningEffort is true when the model accepts a tunable
	// reasoning-effort parameter.
	ReasoningEffort bool `json:"reasoning_effort"`

	// InputModalities lists the input kinds the model accepts. Never empty.
	InputModalities []Modality `json:"input_modalities"`

	// IsDefault marks the model used when the user has not picked one.
	// Exactly one row sets it.
	IsDefault bool `json:"is_default,omitempty"`

	// RecentlyUpdated is a presentation hint for the model picker.
	RecentlyUpdated bool `json:"recently_updated,omitempty"`
}

// Supports reports whether the model accepts the given input modality.
func (m Model) Supports(modality Modality) bool {
	for _, im := range m.InputModalities {
		if im == modality {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// ErrNoDefault is returned by Default when no catalogue row is marked
// default. It signals a build-time misconfiguration; callers should fail
// fast rather than substitute a model.
var ErrNoDefault = errors.New("catalog: no default model configured")

// ByID returns the model with the given ID.
func ByID(id int) (Model, bool) {
	for _, m := range catalogue {
		if m.ID == id {
			return m, true
		}
	}
	return Model{}, false
}

// Default returns the catalogue's default model, or ErrNoDefault if no row
// is marked as such.
func Default() (Model, error) {
	for _, m := range catalogue {
		if m.IsDefault {
			return m, nil
		}
	}
	return Model{}, ErrNoDefault
}

// ByProvider returns all models routed through the given provider key, in
// catalogue order.
func ByProvider(provider string) []Model {
	var out []Model
	for _, m := range catalogue {
		if m.Provider == provider {
			out = append(out, m)
		}
	}
	return out
}

// Normal returns the non-premium models in catalogue order.
func Normal() []Model {
	var out []Model
	for _, m := range catalogue {
		if !m.Premium {
			out = append(out, m)
		}
	}
	return out
}

// Premium returns the premium-tier models in catalogue order.
func Premium() []Model {
	var out []Model
	for _, m := range catalogue {
		if m.Premium {
			out = append(out, m)
		}
	}
	return out
}

// ValidID reports whether a model with the given ID exists.
func ValidID(id int) bool {
	_, ok := ByID(id)
	return ok
}

// All returns every model in catalogue order.
func All() []Model {
	out := make([]Model, len(catalogue))
	copy(out, catalogue)
	return out
}

// ByName resolves a user-supplied reference against display names and
// upstream IDs (exact match first, then unique prefix). Matching is
// case-insensitive. Returns false for unknown or ambiguous references.
func ByName(ref string) (Model, bool) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return Model{}, false
	}
	for _, m := range catalogue {
		if strings.ToLower(m.Name) == ref || strings.ToLower(m.UpstreamID) == ref {
			return m, true
		}
	}
	var (
		hit   Model
		count int
	)
	for _, m := range catalogue {
		if strings.HasPrefix(strings.ToLower(m.Name), ref) || strings.HasPrefix(strings.ToLower(m.UpstreamID), ref) {
			hit = m
			count++
		}
	}
	if count == 1 {
		return hit, true
	}
	return Model{}, false
}

// ---------------------------------------------------------------------------
// The catalogue
// ---------------------------------------------------------------------------

// catalogue is the full model table. Ordered; every filter preserves this
// order. Built once at init and treated as read-only from then on.
var catalogue = buildCatalogue()

func buildCatalogue() []Model {
	return []Model{
		// ── Anthropic ──────────────────────────────────────────────────────
		{
			ID: 1, Name: "Claude Haiku 4.5", UpstreamID: "anthropic/claude-haiku-4.5",
			Provider: "openrouter", Company: VendorAnthropic,
			Premium: false, ReasoningEffort: true,
			InputModalities: []Modality{ModalityText, ModalityImage},
		},
		{
			ID: 2, Name: "Claude Sonnet 4.5", UpstreamID: "anthropic/claude-sonnet-4.5",
			Provider: "openrouter", Company: VendorAnthropic,
			Premium: true, ReasoningEffort: true,
			InputModalities: []Modality{ModalityText, ModalityImage},
			RecentlyUpdated: true,
		},
		{
			ID: 3, Name: "Claude Opus 4.1", UpstreamID: "anthropic/claude-opus-4.1",
			Provider: "openrouter", Company: VendorAnthropic,
			Premium: true, ReasoningEffort: true,
			InputModalities: []Modality{ModalityText, ModalityImage},
		},

		// ── OpenAI ────────────────────────────────────────────────────────
		{
			ID: 4, Name: "GPT-4.1 Mini", UpstreamID: "openai/gpt-4.1-mini",
			Provider: "openrouter", Company: VendorOpenAI,
			Premium: false, ReasoningEffort: false,
			InputModalities: []Modality{ModalityText, ModalityImage},
		},
		{
			ID: 5, Name: "GPT-5 Mini", UpstreamID: "openai/gpt-5-mini",
			Provider: "openrouter", Company: VendorOpenAI,
			Premium: false, ReasoningEffort: true,
			InputModalities: []Modality{ModalityText, ModalityImage},
		},
		{
			ID: 6, Name: "GPT-5.1", UpstreamID: "openai/gpt-5.1",
			Provider: "openrouter", Company: VendorOpenAI,
			Premium: true, ReasoningEffort: true,
			InputModalities: []Modality{ModalityText, ModalityImage},
			RecentlyUpdated: true,
		},
		{
			ID: 7, Name: "o4-mini", UpstreamID: "openai/o4-mini",
			Provider: "openrouter", Company: VendorOpenAI,
			Premium: false, ReasoningEffort: true,
			InputModalities: []Modality{ModalityText, ModalityImage},
		},

		// ── Google ────────────────────────────────────────────────────────
		{
			ID: 8, Name: "Gemini 2.5 Flash", UpstreamID: "google/gemini-2.5-flash",
			Provider: "openrouter", Company: VendorGoogle,
			Premium: false, ReasoningEffort: true,
			InputModalities: []Modality{ModalityText, ModalityImage},
			IsDefault:       true,
		},
		{
			ID: 9, Name: "Gemini 2.5 Pro", UpstreamID: "google/gemini-2.5-pro",
			Provider: "openrouter", Company: VendorGoogle,
			Premium: true, ReasoningEffort: true,
			InputModalities: []Modality{ModalityText, ModalityImage},
		},
		{
			ID: 10, Name: "Gemini 2.0 Flash", UpstreamID: "google/gemini-2.0-flash",
			Provider: "openrouter", Company: VendorGoogle,
			Premium: false, ReasoningEffort: false,
			InputModalities: []Modality{ModalityText, ModalityImage},
		},

		// ── xAI ───────────────────────────────────────────────────────────
		{
			ID: 11, Name: "Grok 4", UpstreamID: "x-ai/grok-4",
			Provider: "openrouter", Company: VendorXAI,
			Premium: true, ReasoningEffort: true,
			InputModalities: []Modality{ModalityText, ModalityImage},
		},
		{
			ID: 12, Name: "Grok 3 Mini", UpstreamID: "x-ai/grok-3-mini",
			Provider: "openrouter", Company: VendorXAI,
			Premium: false, ReasoningEffort: true,
			InputModalities: []Modality{ModalityText},
		},
		{
			ID: 13, Name: "Grok Code Fast 1", UpstreamID: "x-ai/grok-code-fast-1",
			Provider: "openrouter", Company: VendorXAI,
			Premium: false, ReasoningEffort: true,
			InputModalities: []Modality{ModalityText},
			RecentlyUpdated: true,
		},
	}
}
