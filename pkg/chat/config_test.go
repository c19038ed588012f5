package chat_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitop-dev/chatkit/pkg/chat"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	f := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(f, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestLoadFileConfig_Minimal(t *testing.T) {
	f := writeConfig(t, `
model: GPT-5.1
user_name: Alice
`)
	cfg, err := chat.LoadFileConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "GPT-5.1" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.UserName != "Alice" {
		t.Errorf("user_name = %q", cfg.UserName)
	}
	m, err := cfg.ResolveModel()
	if err != nil {
		t.Fatal(err)
	}
	if m.UpstreamID != "openai/gpt-5.1" {
		t.Errorf("resolved upstream = %q", m.UpstreamID)
	}
}

func TestLoadFileConfig_NoModel_UsesDefault(t *testing.T) {
	f := writeConfig(t, `user_name: Alice`)
	cfg, err := chat.LoadFileConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	m, err := cfg.ResolveModel()
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsDefault {
		t.Errorf("config without model should resolve to the default model, got %q", m.Name)
	}
}

func TestLoadFileConfig_NumericModelRef(t *testing.T) {
	f := writeConfig(t, `model: "3"`)
	cfg, err := chat.LoadFileConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	m, err := cfg.ResolveModel()
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != 3 {
		t.Errorf("resolved id = %d, want 3", m.ID)
	}
}

func TestLoadFileConfig_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_CHAT_USER", "Bo")
	f := writeConfig(t, `user_name: ${TEST_CHAT_USER}`)
	cfg, err := chat.LoadFileConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UserName != "Bo" {
		t.Errorf("env expansion failed, user_name = %q", cfg.UserName)
	}
}

func TestLoadFileConfig_UnknownModel(t *testing.T) {
	f := writeConfig(t, `model: gpt-99-ultra`)
	if _, err := chat.LoadFileConfig(f); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestLoadFileConfig_BadReasoningEffort(t *testing.T) {
	f := writeConfig(t, `reasoning_effort: maximum`)
	if _, err := chat.LoadFileConfig(f); err == nil {
		t.Error("expected error for unknown reasoning_effort")
	}
}

func TestLoadFileConfig_EffortNormalized(t *testing.T) {
	f := writeConfig(t, `reasoning_effort: " High "`)
	cfg, err := chat.LoadFileConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ReasoningEffort != "high" {
		t.Errorf("reasoning_effort = %q, want high", cfg.ReasoningEffort)
	}
}

func TestLoadFileConfig_FileNotFound(t *testing.T) {
	if _, err := chat.LoadFileConfig("/definitely/does/not/exist.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFileConfig_InvalidYAML(t *testing.T) {
	f := writeConfig(t, `{{{not yaml`)
	if _, err := chat.LoadFileConfig(f); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadOptionalConfig_MissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := chat.LoadOptionalConfig("")
	if err != nil {
		t.Fatalf("missing default config should not be an error: %v", err)
	}
	if *cfg != (chat.FileConfig{}) {
		t.Errorf("got %+v, want zero config", cfg)
	}
}

func TestLoadOptionalConfig_DefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "chatkit", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`user_name: Alice`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := chat.LoadOptionalConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UserName != "Alice" {
		t.Errorf("user_name = %q, want Alice", cfg.UserName)
	}
}

func TestLoadOptionalConfig_ExplicitPathMustExist(t *testing.T) {
	if _, err := chat.LoadOptionalConfig("/definitely/does/not/exist.yaml"); err == nil {
		t.Error("expected error for an explicit path that does not exist")
	}
}
