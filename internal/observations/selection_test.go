package observations

import "testing"

func TestSelectionStartsEmpty(t *testing.T) {
	var s Selection
	if s.Confirmable() {
		t.Fatal("expected empty selection not confirmable")
	}
	text, isCustom := s.Value()
	if text != "" || isCustom {
		t.Fatalf("expected empty value, got %q custom=%v", text, isCustom)
	}
}

func TestSelectPresetClearsCustomText(t *testing.T) {
	var s Selection
	s.SetCustomText("my own finding")
	if err := s.SelectPreset(Presets()[0]); err != nil {
		t.Fatalf("select preset: %v", err)
	}

	text, isCustom := s.Value()
	if isCustom {
		t.Fatal("expected preset selection, got custom")
	}
	if text != Presets()[0] {
		t.Fatalf("expected preset text, got %q", text)
	}
}

func TestSetCustomTextClearsPreset(t *testing.T) {
	var s Selection
	if err := s.SelectPreset(Presets()[3]); err != nil {
		t.Fatalf("select preset: %v", err)
	}
	s.SetCustomText("  observed manual override  ")

	text, isCustom := s.Value()
	if !isCustom {
		t.Fatal("expected custom selection")
	}
	if text != "observed manual override" {
		t.Fatalf("expected trimmed custom text, got %q", text)
	}
}

func TestSelectPresetRejectsUnknownValue(t *testing.T) {
	var s Selection
	if err := s.SelectPreset("not in the catalog"); err != ErrUnknownPreset {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
	if s.Confirmable() {
		t.Fatal("expected selection unchanged after rejected preset")
	}
}

func TestBlankCustomTextClearsSelection(t *testing.T) {
	var s Selection
	s.SetCustomText("something")
	s.SetCustomText("   ")
	if s.Confirmable() {
		t.Fatal("expected whitespace-only text to clear the selection")
	}
}

func TestPresetsCatalog(t *testing.T) {
	all := Presets()
	if len(all) != 10 {
		t.Fatalf("expected 10 presets, got %d", len(all))
	}

	// Mutating the returned slice must not affect the catalog.
	all[0] = "tampered"
	if Presets()[0] == "tampered" {
		t.Fatal("expected Presets to return a copy")
	}

	for _, p := range Presets() {
		if !IsPreset(p) {
			t.Fatalf("catalog entry %q not recognized by IsPreset", p)
		}
	}
	if IsPreset("tampered") {
		t.Fatal("expected IsPreset false for unknown text")
	}
}
