package phoneme

// englishPhonemes is the static English acoustic database, ported verbatim
// (symbols, IPA forms, formant targets, durations) from the reference
// implementation's phoneme table.
func englishPhonemes() []Phoneme {
	f := NewFormants
	return []Phoneme{
		// Vowels
		{Symbol: "i", IPA: "iː", Category: Vowel, DurationMs: 120, Voiced: true, Formants: fp(f(270, 2290, 3010))},
		{Symbol: "I", IPA: "ɪ", Category: Vowel, DurationMs: 100, Voiced: true, Formants: fp(f(390, 1990, 2550))},
		{Symbol: "e", IPA: "eɪ", Category: Diphthong, DurationMs: 140, Voiced: true, Formants: fp(f(530, 1840, 2480))},
		{Symbol: "E", IPA: "ɛ", Category: Vowel, DurationMs: 100, Voiced: true, Formants: fp(f(610, 1900, 2530))},
		{Symbol: "&", IPA: "æ", Category: Vowel, DurationMs: 120, Voiced: true, Formants: fp(f(660, 1720, 2410))},
		{Symbol: "A", IPA: "ɑː", Category: Vowel, DurationMs: 130, Voiced: true, Formants: fp(f(730, 1090, 2440))},
		{Symbol: "O", IPA: "ɔː", Category: Vowel, DurationMs: 120, Voiced: true, Formants: fp(f(570, 840, 2410))},
		{Symbol: "o", IPA: "oʊ", Category: Diphthong, DurationMs: 140, Voiced: true, Formants: fp(f(450, 1030, 2380))},
		{Symbol: "U", IPA: "ʊ", Category: Vowel, DurationMs: 100, Voiced: true, Formants: fp(f(440, 1020, 2240))},
		{Symbol: "u", IPA: "uː", Category: Vowel, DurationMs: 120, Voiced: true, Formants: fp(f(300, 870, 2240))},
		{Symbol: "@", IPA: "ə", Category: Vowel, DurationMs: 80, Voiced: true, Formants: fp(f(500, 1500, 2500))},
		{Symbol: "3", IPA: "ɜː", Category: Vowel, DurationMs: 120, Voiced: true, Formants: fp(f(580, 1380, 2530))},

		// Diphthongs
		{Symbol: "aI", IPA: "aɪ", Category: Diphthong, DurationMs: 180, Voiced: true, Formants: fp(f(700, 1200, 2600))},
		{Symbol: "aU", IPA: "aʊ", Category: Diphthong, DurationMs: 180, Voiced: true, Formants: fp(f(700, 1000, 2400))},
		{Symbol: "OI", IPA: "ɔɪ", Category: Diphthong, DurationMs: 180, Voiced: true, Formants: fp(f(570, 1000, 2500))},

		// Plosives
		{Symbol: "p", IPA: "p", Category: Plosive, DurationMs: 60, Voiced: false},
		{Symbol: "b", IPA: "b", Category: Plosive, DurationMs: 60, Voiced: true},
		{Symbol: "t", IPA: "t", Category: Plosive, DurationMs: 60, Voiced: false},
		{Symbol: "d", IPA: "d", Category: Plosive, DurationMs: 60, Voiced: true},
		{Symbol: "k", IPA: "k", Category: Plosive, DurationMs: 60, Voiced: false},
		{Symbol: "g", IPA: "g", Category: Plosive, DurationMs: 60, Voiced: true},

		// Fricatives
		{Symbol: "f", IPA: "f", Category: Fricative, DurationMs: 80, Voiced: false},
		{Symbol: "v", IPA: "v", Category: Fricative, DurationMs: 80, Voiced: true},
		{Symbol: "T", IPA: "θ", Category: Fricative, DurationMs: 80, Voiced: false},
		{Symbol: "D", IPA: "ð", Category: Fricative, DurationMs: 80, Voiced: true},
		{Symbol: "s", IPA: "s", Category: Fricative, DurationMs: 90, Voiced: false},
		{Symbol: "z", IPA: "z", Category: Fricative, DurationMs: 90, Voiced: true},
		{Symbol: "S", IPA: "ʃ", Category: Fricative, DurationMs: 100, Voiced: false},
		{Symbol: "Z", IPA: "ʒ", Category: Fricative, DurationMs: 100, Voiced: true},
		{Symbol: "h", IPA: "h", Category: Fricative, DurationMs: 60, Voiced: false},

		// Affricates
		{Symbol: "tS", IPA: "tʃ", Category: Affricate, DurationMs: 110, Voiced: false},
		{Symbol: "dZ", IPA: "dʒ", Category: Affricate, DurationMs: 110, Voiced: true},

		// Nasals
		{Symbol: "m", IPA: "m", Category: Nasal, DurationMs: 80, Voiced: true, Formants: fp(f(300, 1000, 2500))},
		{Symbol: "n", IPA: "n", Category: Nasal, DurationMs: 80, Voiced: true, Formants: fp(f(300, 1500, 2500))},
		{Symbol: "N", IPA: "ŋ", Category: Nasal, DurationMs: 80, Voiced: true, Formants: fp(f(300, 2000, 2500))},

		// Lateral, rhotic, approximants
		{Symbol: "l", IPA: "l", Category: Lateral, DurationMs: 70, Voiced: true, Formants: fp(f(350, 1100, 2700))},
		{Symbol: "r", IPA: "ɹ", Category: Rhotic, DurationMs: 70, Voiced: true, Formants: fp(f(350, 1300, 1700))},
		{Symbol: "w", IPA: "w", Category: Approximant, DurationMs: 60, Voiced: true, Formants: fp(f(300, 700, 2400))},
		{Symbol: "j", IPA: "j", Category: Approximant, DurationMs: 60, Voiced: true, Formants: fp(f(280, 2300, 3000))},

		// Silence
		{Symbol: Pause, IPA: "", Category: Silence, DurationMs: 100, Voiced: false},
	}
}

func fp(f Formants) *Formants { return &f }
