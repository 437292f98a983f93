package timeline

import "testing"

func TestNewRegistryRequiresFallback(t *testing.T) {
	renderers := map[string]Renderer{
		"title_card": stubRenderer{key: "title_card"},
	}

	if _, err := NewRegistry(renderers, "text_narration"); err == nil {
		t.Error("expected error for unregistered fallback key")
	}

	reg, err := NewRegistry(renderers, "title_card")
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	if reg.FallbackKey() != "title_card" {
		t.Errorf("unexpected fallback key: %q", reg.FallbackKey())
	}
}

func TestResolveFallbackDeterminism(t *testing.T) {
	reg := testRegistry(t, "text_narration", "bullet_list")

	fallback := reg.Resolve("text_narration")
	for i := 0; i < 3; i++ {
		got := reg.Resolve("no_such_layout")
		if got != fallback {
			t.Errorf("call %d: unknown key resolved to %v, expected fallback", i, got)
		}
	}

	if got := reg.Resolve("bullet_list"); got.LayoutKey() != "bullet_list" {
		t.Errorf("known key resolved wrong: %v", got)
	}
}

func TestRegistryCopiesInput(t *testing.T) {
	renderers := map[string]Renderer{
		"a": stubRenderer{key: "a"},
	}
	reg, err := NewRegistry(renderers, "a")
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	// Mutating the caller's map must not leak into the registry.
	renderers["b"] = stubRenderer{key: "b"}
	if reg.Has("b") {
		t.Error("registry shares storage with the caller's map")
	}
}

func TestRegistryKeys(t *testing.T) {
	reg := testRegistry(t, "c_layout", "a_layout", "b_layout")
	keys := reg.Keys()
	if len(keys) != 3 || keys[0] != "a_layout" || keys[2] != "c_layout" {
		t.Errorf("expected sorted keys, got %v", keys)
	}
}
