package parlador

import "github.com/hubenschmidt/parlador/internal/phoneme"

// PhonemeCategory classifies a phoneme by manner of articulation.
type PhonemeCategory = phoneme.Category

const (
	CategoryVowel       = phoneme.Vowel
	CategoryDiphthong   = phoneme.Diphthong
	CategoryPlosive     = phoneme.Plosive
	CategoryFricative   = phoneme.Fricative
	CategoryAffricate   = phoneme.Affricate
	CategoryNasal       = phoneme.Nasal
	CategoryLateral     = phoneme.Lateral
	CategoryRhotic      = phoneme.Rhotic
	CategoryApproximant = phoneme.Approximant
	CategorySilence     = phoneme.Silence
)

// FormantValues carries the first three formant targets and bandwidths.
type FormantValues = phoneme.Formants

// Phoneme is one entry in a language's acoustic inventory.
type Phoneme = phoneme.Phoneme

// PhonemeInventory is an immutable per-language phoneme database.
type PhonemeInventory = phoneme.Inventory

// EnglishInventory returns the English phoneme inventory.
func EnglishInventory() *PhonemeInventory { return phoneme.English() }

// SpanishInventory returns the Spanish phoneme inventory.
func SpanishInventory() *PhonemeInventory { return phoneme.Spanish() }
