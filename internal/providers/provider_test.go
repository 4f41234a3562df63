package providers

import "testing"

func TestNewRejectsUnknownProvider(t *testing.T) {
	if _, err := New("azure", ClientOptions{}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestSupportedOrderIsFixed(t *testing.T) {
	want := []string{"openai", "openrouter", "anthropic"}
	got := Supported()
	if len(got) != len(want) {
		t.Fatalf("Supported() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Supported()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSupportsListing(t *testing.T) {
	if !SupportsListing("openai") || !SupportsListing("openrouter") {
		t.Fatal("openai and openrouter expose a models endpoint")
	}
	if SupportsListing("anthropic") {
		t.Fatal("anthropic has no models endpoint")
	}
}
