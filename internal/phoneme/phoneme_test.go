package phoneme

import "testing"

func TestEnglishInventoryLookup(t *testing.T) {
	inv := English()
	p, ok := inv.Get("i")
	if !ok {
		t.Fatal("expected symbol \"i\" to exist in English inventory")
	}
	if p.Category != Vowel {
		t.Errorf("expected category Vowel, got %v", p.Category)
	}
	if p.Formants == nil {
		t.Error("expected vowel to carry formant targets")
	}
}

func TestEnglishInventoryUnknownSymbol(t *testing.T) {
	inv := English()
	if _, ok := inv.Get("not-a-symbol"); ok {
		t.Error("expected unknown symbol to be absent")
	}
}

func TestSpanishInventoryLookup(t *testing.T) {
	inv := Spanish()
	p, ok := inv.Get("rr")
	if !ok {
		t.Fatal("expected symbol \"rr\" to exist in Spanish inventory")
	}
	if p.Category != Rhotic {
		t.Errorf("expected category Rhotic, got %v", p.Category)
	}
}

func TestInventorySingleton(t *testing.T) {
	if English() != English() {
		t.Error("expected English() to return the same inventory instance")
	}
	if Spanish() != Spanish() {
		t.Error("expected Spanish() to return the same inventory instance")
	}
}

func TestCategoryString(t *testing.T) {
	cases := map[Category]string{
		Vowel:    "vowel",
		Plosive:  "plosive",
		Silence:  "silence",
		Category(999): "unknown",
	}
	for cat, want := range cases {
		if got := cat.String(); got != want {
			t.Errorf("Category(%d).String() = %q, want %q", cat, got, want)
		}
	}
}

func TestInventoryAllCoversLen(t *testing.T) {
	inv := English()
	if len(inv.All()) != inv.Len() {
		t.Errorf("All() returned %d phonemes, Len() reports %d", len(inv.All()), inv.Len())
	}
}

func TestPauseSymbolIsSilenceEntry(t *testing.T) {
	p, ok := English().Get(Pause)
	if !ok {
		t.Fatal("expected the pause token to be an inventory entry")
	}
	if p.Category != Silence {
		t.Errorf("expected pause token category Silence, got %v", p.Category)
	}
}
