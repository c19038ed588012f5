package logging

import "testing"

func TestNew_Defaults(t *testing.T) {
	if _, err := New("", ""); err != nil {
		t.Fatalf("defaults should work: %v", err)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	if _, err := New("debug", "json"); err != nil {
		t.Fatalf("json format should work: %v", err)
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New("chatty", "console"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNew_BadFormat(t *testing.T) {
	if _, err := New("info", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
