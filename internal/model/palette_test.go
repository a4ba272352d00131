package model

import "testing"

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if p.Len() != 12 {
		t.Fatalf("expected 12 presets, got %d", p.Len())
	}
	first := p.Get(0)
	if first == nil || first.Hex != "#FF6B6B" || first.RGB != (RGB{255, 107, 107}) {
		t.Fatalf("unexpected first preset: %+v", first)
	}
	if p.Get(-1) != nil || p.Get(12) != nil {
		t.Fatalf("expected nil for out-of-range index")
	}
}

func TestPalette_Add(t *testing.T) {
	p, err := NewPalette("#112233")
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}

	if err := p.Add("#AABBCC"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := p.Add("#aabbcc"); err != nil {
		t.Fatalf("Add duplicate: %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("expected duplicates to be ignored, got %v", p.Hexes())
	}
	if got := p.Index("#AaBbCc"); got != 1 {
		t.Fatalf("Index = %d, want 1", got)
	}
	if got := p.Index("#000000"); got != -1 {
		t.Fatalf("Index of missing preset = %d, want -1", got)
	}

	for _, bad := range []string{"112233", "#12345", "#12345g", ""} {
		if err := p.Add(bad); err == nil {
			t.Errorf("Add(%q) returned no error", bad)
		}
	}
}

func TestNewPalette_RejectsInvalid(t *testing.T) {
	if _, err := NewPalette("#FFFFFF", "red"); err == nil {
		t.Fatalf("expected error for invalid preset")
	}
}

func TestDefaultPresets_IsCopy(t *testing.T) {
	a := DefaultPresets()
	a[0] = "#000000"
	if DefaultPresets()[0] != "#FF6B6B" {
		t.Fatalf("DefaultPresets exposed internal slice")
	}
}
