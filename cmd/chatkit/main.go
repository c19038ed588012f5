// Binary chatkit inspects the chat model catalogue and builds the prompts
// and request bodies the chat application sends to its gateway.
//
// Usage:
//
//	chatkit [flags]
//
// Flags:
//
//	-list            list all catalogue models and exit
//	-model <ref>     select a model by numeric ID, display name, or upstream ID
//	                 (alone: show the model; with -prompt/-request: select it)
//	-vendor <name>   infer the vendor behind a free-text model name and exit
//	-prompt          print the system prompt for the selected model
//	-request         print the request body JSON for -message
//	-message <text>  user message for -request
//	-image <url>     attach an image to -request (repeatable)
//	-user <name>     user display name (overrides config)
//	-search          enable the web search tool (overrides config)
//	-effort <level>  reasoning effort: low | medium | high (overrides config)
//	-json            JSON output for -list and -model
//	-config <path>   config file (default: ~/.config/chatkit/config.yaml)
//	-log-level       debug | info | warn | error (overrides config)
//	-log-format      console | json (overrides config)
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/bitop-dev/chatkit/pkg/ai/catalog"
	"github.com/bitop-dev/chatkit/pkg/chat"
	"github.com/bitop-dev/chatkit/pkg/logging"
)

// imageList collects repeated -image flags.
type imageList []string

func (l *imageList) String() string     { return strings.Join(*l, ",") }
func (l *imageList) Set(v string) error { *l = append(*l, v); return nil }

func main() {
	var images imageList
	listFlag := flag.Bool("list", false, "list all catalogue models")
	modelFlag := flag.String("model", "", "model reference (ID, name, or upstream ID)")
	vendorFlag := flag.String("vendor", "", "infer the vendor for a model name")
	promptFlag := flag.Bool("prompt", false, "print the system prompt")
	requestFlag := flag.Bool("request", false, "print the request body JSON")
	messageFlag := flag.String("message", "", "user message for -request")
	flag.Var(&images, "image", "image URL for -request (repeatable)")
	userFlag := flag.String("user", "", "user display name")
	searchFlag := flag.Bool("search", false, "enable the web search tool")
	effortFlag := flag.String("effort", "", "reasoning effort: low | medium | high")
	jsonFlag := flag.Bool("json", false, "JSON output for -list and -model")
	configFlag := flag.String("config", "", "path to config file")
	logLevel := flag.String("log-level", "", "log level: debug | info | warn | error")
	logFormat := flag.String("log-format", "", "log format: console | json")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := loadConfig(*configFlag)

	// CLI flags override config values when set.
	userName := cfg.UserName
	if set["user"] {
		userName = *userFlag
	}
	search := cfg.Search
	if set["search"] {
		search = *searchFlag
	}
	effort := cfg.ReasoningEffort
	if set["effort"] {
		effort = *effortFlag
	}
	level := cfg.LogLevel
	if set["log-level"] {
		level = *logLevel
	}
	format := cfg.LogFormat
	if set["log-format"] {
		format = *logFormat
	}

	if _, err := logging.New(level, format); err != nil {
		fatalf("%v", err)
	}

	switch {
	case *listFlag:
		listModels(*jsonFlag)

	case *vendorFlag != "":
		inferVendor(*vendorFlag)

	case *promptFlag:
		m := selectModel(cfg, *modelFlag)
		fmt.Println(chat.BuildSystemPrompt(m, chat.PromptOptions{
			UserName:      userName,
			SearchEnabled: search,
		}))

	case *requestFlag:
		m := selectModel(cfg, *modelFlag)
		printRequest(m, *messageFlag, chat.RequestOptions{
			UserName:        userName,
			SearchEnabled:   search,
			ReasoningEffort: effort,
			ImageURLs:       images,
		})

	case *modelFlag != "":
		showModel(selectModel(cfg, *modelFlag), *jsonFlag)

	default:
		flag.Usage()
		os.Exit(2)
	}
}

// loadConfig loads the config file. An explicitly given path must exist;
// a missing default file means zero config.
func loadConfig(path string) *chat.FileConfig {
	cfg, err := chat.LoadOptionalConfig(path)
	if err != nil {
		fatalf("%v", err)
	}
	return cfg
}

func selectModel(cfg *chat.FileConfig, ref string) catalog.Model {
	if ref == "" {
		ref = cfg.Model
	}
	m, err := chat.ResolveModelRef(ref)
	if err != nil {
		fatalf("%v", err)
	}
	return m
}

// ---------------------------------------------------------------------------
// Modes
// ---------------------------------------------------------------------------

func listModels(asJSON bool) {
	all := catalog.All()
	if asJSON {
		printJSON(all)
		return
	}
	fmt.Printf("%3s  %-18s  %-30s  %-9s  %-7s  %-10s  %s\n",
		"ID", "NAME", "UPSTREAM", "VENDOR", "TIER", "INPUT", "FLAGS")
	for _, m := range all {
		fmt.Printf("%3d  %-18s  %-30s  %-9s  %-7s  %-10s  %s\n",
			m.ID, m.Name, m.UpstreamID, m.Company, tierOf(m), formatModalities(m), formatFlags(m))
	}
}

func inferVendor(name string) {
	v, ok := catalog.InferVendor(name)
	if !ok {
		fmt.Printf("%s: no match\n", name)
		return
	}
	fmt.Printf("%s: %s\n", name, v)
}

func showModel(m catalog.Model, asJSON bool) {
	if asJSON {
		printJSON(m)
		return
	}
	fmt.Printf("[model] %s — id=%d upstream=%s vendor=%s tier=%s input=%s effort=%v default=%v updated=%v\n",
		m.Name, m.ID, m.UpstreamID, m.Company, tierOf(m), formatModalities(m),
		m.ReasoningEffort, m.IsDefault, m.RecentlyUpdated)
}

func printRequest(m catalog.Model, message string, opts chat.RequestOptions) {
	if message == "" {
		fatalf("-request needs -message")
	}
	req, err := chat.NewChatRequest(m, message, opts)
	if err != nil {
		fatalf("%v", err)
	}
	log.Debug().Str("request_id", chat.NewRequestID()).Msg("chatkit: request assembled")
	printJSON(req)
}

// ---------------------------------------------------------------------------
// Output helpers
// ---------------------------------------------------------------------------

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("encode: %v", err)
	}
	fmt.Println(string(b))
}

func tierOf(m catalog.Model) string {
	if m.Premium {
		return "premium"
	}
	return "normal"
}

func formatModalities(m catalog.Model) string {
	parts := make([]string, len(m.InputModalities))
	for i, im := range m.InputModalities {
		parts[i] = string(im)
	}
	return strings.Join(parts, "+")
}

func formatFlags(m catalog.Model) string {
	var flags []string
	if m.IsDefault {
		flags = append(flags, "default")
	}
	if m.RecentlyUpdated {
		flags = append(flags, "updated")
	}
	return strings.Join(flags, ",")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "chatkit: "+format+"\n", args...)
	os.Exit(1)
}
