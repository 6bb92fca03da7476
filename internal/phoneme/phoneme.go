// Package phoneme holds the static acoustic database: one immutable
// inventory per supported language, mapping a short ASCII symbol to its
// articulatory/acoustic parameters.
package phoneme

import "sync"

// Category classifies a phoneme by its manner of articulation, which in
// turn selects the excitation model the formant synthesizer applies to it.
type Category int

const (
	Vowel Category = iota
	Diphthong
	Plosive
	Fricative
	Affricate
	Nasal
	Lateral
	Rhotic
	Approximant
	Silence
)

func (c Category) String() string {
	switch c {
	case Vowel:
		return "vowel"
	case Diphthong:
		return "diphthong"
	case Plosive:
		return "plosive"
	case Fricative:
		return "fricative"
	case Affricate:
		return "affricate"
	case Nasal:
		return "nasal"
	case Lateral:
		return "lateral"
	case Rhotic:
		return "rhotic"
	case Approximant:
		return "approximant"
	case Silence:
		return "silence"
	default:
		return "unknown"
	}
}

// Formants carries the first three formant targets and their bandwidths, in
// Hz. Absent (nil) for pure obstruents (plosives, fricatives, affricates).
type Formants struct {
	F1, F2, F3 float64
	B1, B2, B3 float64
}

// NewFormants builds a Formants block using the default bandwidths (60/90/150 Hz).
func NewFormants(f1, f2, f3 float64) Formants {
	return Formants{F1: f1, F2: f2, F3: f3, B1: 60, B2: 90, B3: 150}
}

// Phoneme is a single entry in a language's acoustic database.
type Phoneme struct {
	Symbol     string
	IPA        string
	Category   Category
	DurationMs int
	Formants   *Formants
	Voiced     bool
}

// Pause is the special inter-word-pause symbol recognized by the synthesizer
// and the streaming driver.
const Pause = "_"

// Inventory is an immutable, once-built mapping from symbol to Phoneme for a
// single language.
type Inventory struct {
	language string
	table    map[string]Phoneme
}

func newInventory(language string, phonemes []Phoneme) *Inventory {
	table := make(map[string]Phoneme, len(phonemes))
	for _, p := range phonemes {
		table[p.Symbol] = p
	}
	return &Inventory{language: language, table: table}
}

// Language returns the language tag this inventory was built for.
func (inv *Inventory) Language() string { return inv.language }

// Get looks up a phoneme by symbol.
func (inv *Inventory) Get(symbol string) (Phoneme, bool) {
	p, ok := inv.table[symbol]
	return p, ok
}

// Len returns the number of phonemes in the inventory.
func (inv *Inventory) Len() int { return len(inv.table) }

// All returns every phoneme in the inventory, order unspecified.
func (inv *Inventory) All() []Phoneme {
	out := make([]Phoneme, 0, len(inv.table))
	for _, p := range inv.table {
		out = append(out, p)
	}
	return out
}

var (
	englishOnce sync.Once
	english     *Inventory
	spanishOnce sync.Once
	spanish     *Inventory
)

// English returns the shared English phoneme inventory, building it on first use.
func English() *Inventory {
	englishOnce.Do(func() { english = newInventory("english", englishPhonemes()) })
	return english
}

// Spanish returns the shared Spanish phoneme inventory, building it on first use.
func Spanish() *Inventory {
	spanishOnce.Do(func() { spanish = newInventory("spanish", spanishPhonemes()) })
	return spanish
}
