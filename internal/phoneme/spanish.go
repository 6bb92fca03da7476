package phoneme

// spanishPhonemes is the static Spanish acoustic database, ported verbatim
// from the reference implementation's phoneme table. Durations and formant
// targets differ from the English inventory even where symbols coincide
// (e.g. the affricate `tS` is 100ms here vs. 110ms in English).
func spanishPhonemes() []Phoneme {
	f := NewFormants
	return []Phoneme{
		// Vowels
		{Symbol: "a", IPA: "a", Category: Vowel, DurationMs: 100, Voiced: true, Formants: fp(f(750, 1200, 2600))},
		{Symbol: "e", IPA: "e", Category: Vowel, DurationMs: 100, Voiced: true, Formants: fp(f(450, 1900, 2500))},
		{Symbol: "i", IPA: "i", Category: Vowel, DurationMs: 100, Voiced: true, Formants: fp(f(270, 2300, 3000))},
		{Symbol: "o", IPA: "o", Category: Vowel, DurationMs: 100, Voiced: true, Formants: fp(f(500, 900, 2500))},
		{Symbol: "u", IPA: "u", Category: Vowel, DurationMs: 100, Voiced: true, Formants: fp(f(300, 800, 2300))},

		// Plosives
		{Symbol: "p", IPA: "p", Category: Plosive, DurationMs: 60, Voiced: false},
		{Symbol: "b", IPA: "b", Category: Plosive, DurationMs: 60, Voiced: true},
		{Symbol: "t", IPA: "t", Category: Plosive, DurationMs: 60, Voiced: false},
		{Symbol: "d", IPA: "d", Category: Plosive, DurationMs: 60, Voiced: true},
		{Symbol: "k", IPA: "k", Category: Plosive, DurationMs: 60, Voiced: false},
		{Symbol: "g", IPA: "g", Category: Plosive, DurationMs: 60, Voiced: true},

		// Fricatives
		{Symbol: "f", IPA: "f", Category: Fricative, DurationMs: 80, Voiced: false},
		{Symbol: "s", IPA: "s", Category: Fricative, DurationMs: 90, Voiced: false},
		{Symbol: "x", IPA: "x", Category: Fricative, DurationMs: 80, Voiced: false},
		{Symbol: "T", IPA: "θ", Category: Fricative, DurationMs: 80, Voiced: false},

		// Affricate
		{Symbol: "tS", IPA: "tʃ", Category: Affricate, DurationMs: 100, Voiced: false},

		// Nasals
		{Symbol: "m", IPA: "m", Category: Nasal, DurationMs: 80, Voiced: true, Formants: fp(f(300, 1000, 2500))},
		{Symbol: "n", IPA: "n", Category: Nasal, DurationMs: 80, Voiced: true, Formants: fp(f(300, 1500, 2500))},
		{Symbol: "J", IPA: "ɲ", Category: Nasal, DurationMs: 80, Voiced: true, Formants: fp(f(300, 1900, 2700))},

		// Laterals
		{Symbol: "l", IPA: "l", Category: Lateral, DurationMs: 70, Voiced: true, Formants: fp(f(350, 1100, 2700))},
		{Symbol: "L", IPA: "ʎ", Category: Lateral, DurationMs: 80, Voiced: true, Formants: fp(f(300, 1900, 2700))},

		// Rhotics
		{Symbol: "r", IPA: "ɾ", Category: Rhotic, DurationMs: 40, Voiced: true, Formants: fp(f(400, 1400, 2200))},
		{Symbol: "rr", IPA: "r", Category: Rhotic, DurationMs: 120, Voiced: true, Formants: fp(f(400, 1400, 2200))},

		// Approximants
		{Symbol: "j", IPA: "j", Category: Approximant, DurationMs: 60, Voiced: true, Formants: fp(f(280, 2300, 3000))},
		{Symbol: "w", IPA: "w", Category: Approximant, DurationMs: 60, Voiced: true, Formants: fp(f(300, 700, 2400))},

		// Silence
		{Symbol: Pause, IPA: "", Category: Silence, DurationMs: 100, Voiced: false},
	}
}
