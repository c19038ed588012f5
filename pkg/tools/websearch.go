package tools

import "fmt"

const (
	defaultSearchResults = 5
	maxSearchResults     = 10
)

// WebSearch returns the definition of the single-use web search tool the
// chat layer advertises when search is enabled for a conversation.
func WebSearch() Definition {
	return Definition{
		Name:        "web_search",
		Description: "Search the web for current information. Returns titles, URLs, and snippets for the top results. Use at most once per reply.",
		Parameters: MustSchema(SimpleSchema{
			Properties: map[string]Property{
				"query":       {Type: "string", Description: "The search query"},
				"max_results": {Type: "integer", Description: "Maximum number of results to return (default: 5, max: 10)"},
			},
			Required: []string{"query"},
		}),
	}
}

// SearchArgs holds the validated arguments of a web_search call.
type SearchArgs struct {
	Query      string
	MaxResults int
}

// ParseSearchArgs validates raw tool-call arguments against the web_search
// schema and extracts them, applying the default and cap for max_results.
func ParseSearchArgs(args map[string]any) (SearchArgs, error) {
	coerced, err := ValidateArgs(WebSearch(), args)
	if err != nil {
		return SearchArgs{}, err
	}

	query, _ := coerced["query"].(string)
	if query == "" {
		return SearchArgs{}, fmt.Errorf("tools: web_search query is required")
	}

	maxResults := defaultSearchResults
	if v, ok := coerced["max_results"]; ok {
		switch n := v.(type) {
		case float64:
			maxResults = int(n)
		case int64:
			maxResults = int(n)
		case int:
			maxResults = n
		}
	}
	if maxResults < 1 {
		maxResults = 1
	}
	if maxResults > maxSearchResults {
		maxResults = maxSearchResults
	}

	return SearchArgs{Query: query, MaxResults: maxResults}, nil
}
