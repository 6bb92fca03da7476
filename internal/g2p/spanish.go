package g2p

func spanishRules() []Rule {
	return []Rule{
		// Spanish vowels (very regular)
		{Pattern: "a", Phonemes: "a", Priority: 1},
		{Pattern: "e", Phonemes: "e", Priority: 1},
		{Pattern: "i", Phonemes: "i", Priority: 1},
		{Pattern: "o", Phonemes: "o", Priority: 1},
		{Pattern: "u", Phonemes: "u", Priority: 1},

		// Accented vowels (same sounds)
		{Pattern: "á", Phonemes: "a", Priority: 1},
		{Pattern: "é", Phonemes: "e", Priority: 1},
		{Pattern: "í", Phonemes: "i", Priority: 1},
		{Pattern: "ó", Phonemes: "o", Priority: 1},
		{Pattern: "ú", Phonemes: "u", Priority: 1},
		{Pattern: "ü", Phonemes: "u", Priority: 1},

		// Consonant combinations
		{Pattern: "ch", Phonemes: "tS", Priority: 20},
		{Pattern: "ll", Phonemes: "L", Priority: 20},
		{Pattern: "rr", Phonemes: "rr", Priority: 20},
		{Pattern: "ñ", Phonemes: "J", Priority: 20},
		{Pattern: "qu", Right: "[ei]", Phonemes: "k", Priority: 20},
		{Pattern: "gu", Right: "[ei]", Phonemes: "g", Priority: 20},

		// C rules
		{Pattern: "c", Right: "[ei]", Phonemes: "T", Priority: 10}, // ceceo
		{Pattern: "c", Phonemes: "k", Priority: 1},

		// G rules
		{Pattern: "g", Right: "[ei]", Phonemes: "x", Priority: 10}, // soft g
		{Pattern: "g", Phonemes: "g", Priority: 1},                 // hard g

		// Single consonants
		{Pattern: "b", Phonemes: "b", Priority: 1},
		{Pattern: "d", Phonemes: "d", Priority: 1},
		{Pattern: "f", Phonemes: "f", Priority: 1},
		{Pattern: "h", Phonemes: "", Priority: 1}, // silent h
		{Pattern: "j", Phonemes: "x", Priority: 1},
		{Pattern: "k", Phonemes: "k", Priority: 1},
		{Pattern: "l", Phonemes: "l", Priority: 1},
		{Pattern: "m", Phonemes: "m", Priority: 1},
		{Pattern: "n", Phonemes: "n", Priority: 1},
		{Pattern: "p", Phonemes: "p", Priority: 1},
		{Pattern: "r", Left: "^", Phonemes: "rr", Priority: 5}, // initial r is trilled
		{Pattern: "r", Phonemes: "r", Priority: 1},
		{Pattern: "s", Phonemes: "s", Priority: 1},
		{Pattern: "t", Phonemes: "t", Priority: 1},
		{Pattern: "v", Phonemes: "b", Priority: 1}, // v = b in Spanish
		{Pattern: "w", Phonemes: "w", Priority: 1},
		{Pattern: "x", Phonemes: "ks", Priority: 1},
		{Pattern: "y", Right: "$", Phonemes: "i", Priority: 10}, // 'y' at end -> /i/
		{Pattern: "y", Phonemes: "j", Priority: 1},              // 'y' elsewhere
		{Pattern: "z", Phonemes: "T", Priority: 1},              // ceceo
	}
}
