package session

import "testing"

func TestRegistryBindLookupUnbind(t *testing.T) {
	reg := NewRegistry()

	if _, ok := reg.Lookup("c1"); ok {
		t.Fatalf("expected no binding before join")
	}

	reg.Bind("c1", "alice")
	if name, ok := reg.Lookup("c1"); !ok || name != "alice" {
		t.Fatalf("expected alice, got %q ok=%v", name, ok)
	}

	// A later join from the same connection overwrites the name.
	reg.Bind("c1", "alicia")
	if name, _ := reg.Lookup("c1"); name != "alicia" {
		t.Fatalf("expected rebind to win, got %q", name)
	}

	reg.Unbind("c1")
	if _, ok := reg.Lookup("c1"); ok {
		t.Fatalf("expected binding removed")
	}

	// Unbinding an unknown connection is a no-op.
	reg.Unbind("c1")
	reg.Unbind("never-bound")
}

func TestStoreAbsentRoom(t *testing.T) {
	store := NewStore()
	if _, ok := store.State("missing"); ok {
		t.Fatalf("expected no state for untouched room")
	}
}

func TestStoreLastWriteWins(t *testing.T) {
	store := NewStore()

	store.MergeCode("r1", "a")
	store.MergeCode("r1", "b")

	state, ok := store.State("r1")
	if !ok {
		t.Fatalf("expected room created on first write")
	}
	if state.Code != "b" {
		t.Fatalf("expected last write to win, got %q", state.Code)
	}
	if state.Language != "" {
		t.Fatalf("language should be untouched, got %q", state.Language)
	}
}

func TestStoreMergeFieldsIndependently(t *testing.T) {
	store := NewStore()

	store.MergeLanguage("r1", "python")
	store.MergeCode("r1", "print(1)")

	state, _ := store.State("r1")
	if state.Code != "print(1)" || state.Language != "python" {
		t.Fatalf("unexpected state %#v", state)
	}

	store.MergeLanguage("r1", "javascript")
	state, _ = store.State("r1")
	if state.Code != "print(1)" {
		t.Fatalf("code should survive language change, got %q", state.Code)
	}
	if state.Language != "javascript" {
		t.Fatalf("expected javascript, got %q", state.Language)
	}
}
