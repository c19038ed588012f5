package catalog

import "regexp"

// ---------------------------------------------------------------------------
// Vendor
// ---------------------------------------------------------------------------

// Vendor identifies the company behind a model. Closed set; adding a vendor
// means adding a constant, a pattern row, and catalogue entries.
type Vendor string

const (
	VendorAnthropic Vendor = "anthropic"
	VendorOpenAI    Vendor = "openai"
	VendorGoogle    Vendor = "google"
	VendorXAI       Vendor = "xai"
)

// vendorPatterns maps each vendor to the name patterns identifying its
// models. A slice, not a map: inference walks vendors in declaration order
// and returns the first vendor with a matching pattern, so both the vendor
// order and the pattern order within a vendor are tie-breaks.
var vendorPatterns = []struct {
	vendor   Vendor
	patterns []*regexp.Regexp
}{
	{VendorAnthropic, compile("claude", "haiku", "sonnet", "opus", "anthropic")},
	{VendorOpenAI, compile("gpt", `\bo[134]\b`, "openai", "codex")},
	{VendorGoogle, compile("gemini", "gemma", "palm", "bard", "google")},
	{VendorXAI, compile("grok", `\bx-?ai\b`)},
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile("(?i)" + e)
	}
	return out
}

// InferVendor guesses the vendor behind a free-text model name. Returns
// false when no pattern matches.
func InferVendor(name string) (Vendor, bool) {
	for _, vp := range vendorPatterns {
		for _, re := range vp.patterns {
			if re.MatchString(name) {
				return vp.vendor, true
			}
		}
	}
	return "", false
}

// ResolveVendor resolves a vendor from a known model or a free-text name.
// A non-nil model answers from its Company field and never falls back to
// name inference; pass nil to infer from name alone.
func ResolveVendor(m *Model, name string) (Vendor, bool) {
	if m != nil {
		return m.Company, true
	}
	return InferVendor(name)
}
