package catalog

import "testing"

func TestInferVendor(t *testing.T) {
	cases := []struct {
		name string
		want Vendor
		ok   bool
	}{
		{"Claude Sonnet 4.5", VendorAnthropic, true},
		{"claude-haiku-4.5", VendorAnthropic, true},
		{"GPT-5.1", VendorOpenAI, true},
		{"o4-mini", VendorOpenAI, true},
		{"gemini-2.5-pro", VendorGoogle, true},
		{"Gemma 3 27B", VendorGoogle, true},
		{"Grok 4", VendorXAI, true},
		{"x-ai/grok-3-mini", VendorXAI, true},
		{"unknown-model-xyz", "", false},
		{"llama-3.3-70b", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := InferVendor(tc.name)
		if ok != tc.ok {
			t.Errorf("InferVendor(%q) ok = %v, want %v", tc.name, ok, tc.ok)
			continue
		}
		if got != tc.want {
			t.Errorf("InferVendor(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestInferVendor_DeclarationOrderWins(t *testing.T) {
	// A name matching several vendors resolves to the first vendor in the
	// pattern table, not the best or longest match.
	got, ok := InferVendor("claude-vs-gpt-comparison")
	if !ok || got != VendorAnthropic {
		t.Errorf("InferVendor(claude-vs-gpt) = %q/%v, want anthropic", got, ok)
	}
}

func TestResolveVendor_ModelWins(t *testing.T) {
	// The Company field is authoritative; a misleading display name must
	// never trigger inference.
	m := Model{ID: 99, Name: "GPT-flavored test model", Company: VendorAnthropic}
	got, ok := ResolveVendor(&m, m.Name)
	if !ok || got != VendorAnthropic {
		t.Errorf("ResolveVendor(model) = %q/%v, want anthropic", got, ok)
	}
}

func TestResolveVendor_CatalogueAgrees(t *testing.T) {
	for _, m := range All() {
		got, ok := ResolveVendor(&m, "")
		if !ok || got != m.Company {
			t.Errorf("ResolveVendor(%q) = %q/%v, want %q", m.Name, got, ok, m.Company)
		}
	}
}

func TestResolveVendor_NilFallsBackToName(t *testing.T) {
	got, ok := ResolveVendor(nil, "Claude Sonnet 4.5")
	if !ok || got != VendorAnthropic {
		t.Errorf("ResolveVendor(nil, name) = %q/%v, want anthropic", got, ok)
	}
	if _, ok := ResolveVendor(nil, "unknown-model-xyz"); ok {
		t.Error("ResolveVendor(nil, unknown) should not resolve")
	}
}
