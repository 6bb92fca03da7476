package g2p

func englishRules() []Rule {
	return []Rule{
		// Basic vowel rules
		{Pattern: "a", Left: "", Right: "e$", Phonemes: "e", Priority: 10}, // 'a' + word-final 'e' -> /eɪ/
		{Pattern: "a", Left: "", Right: "", Phonemes: "&", Priority: 1},    // default 'a' -> /æ/
		{Pattern: "e", Left: "", Right: "e$", Phonemes: "i", Priority: 10}, // 'ee' at end
		{Pattern: "e", Left: "", Right: "$", Phonemes: "", Priority: 5},    // silent 'e' at end
		{Pattern: "e", Left: "", Right: "", Phonemes: "E", Priority: 1},    // default 'e' -> /ɛ/
		{Pattern: "i", Left: "", Right: "e$", Phonemes: "aI", Priority: 10},
		{Pattern: "i", Left: "", Right: "", Phonemes: "I", Priority: 1},
		{Pattern: "o", Left: "", Right: "e$", Phonemes: "o", Priority: 10},
		{Pattern: "o", Left: "", Right: "", Phonemes: "A", Priority: 1},
		{Pattern: "u", Left: "", Right: "e$", Phonemes: "u", Priority: 10},
		{Pattern: "u", Left: "", Right: "", Phonemes: "@", Priority: 1},

		// Consonant combinations
		{Pattern: "ch", Right: "", Phonemes: "tS", Priority: 20},
		{Pattern: "sh", Right: "", Phonemes: "S", Priority: 20},
		{Pattern: "th", Right: "", Phonemes: "T", Priority: 15},
		{Pattern: "ng", Right: "", Phonemes: "N", Priority: 20},
		{Pattern: "ph", Right: "", Phonemes: "f", Priority: 20},
		{Pattern: "wh", Right: "", Phonemes: "w", Priority: 15},
		{Pattern: "ck", Right: "", Phonemes: "k", Priority: 20},
		{Pattern: "ght", Right: "", Phonemes: "t", Priority: 25},
		{Pattern: "gh", Right: "", Phonemes: "", Priority: 20}, // silent gh

		// Single consonants
		{Pattern: "b", Phonemes: "b", Priority: 1},
		{Pattern: "c", Right: "[ei]", Phonemes: "s", Priority: 10}, // soft c
		{Pattern: "c", Phonemes: "k", Priority: 1},                 // hard c
		{Pattern: "d", Phonemes: "d", Priority: 1},
		{Pattern: "f", Phonemes: "f", Priority: 1},
		{Pattern: "g", Right: "[ei]", Phonemes: "dZ", Priority: 8}, // soft g
		{Pattern: "g", Phonemes: "g", Priority: 1},                 // hard g
		{Pattern: "h", Phonemes: "h", Priority: 1},
		{Pattern: "j", Phonemes: "dZ", Priority: 1},
		{Pattern: "k", Phonemes: "k", Priority: 1},
		{Pattern: "l", Phonemes: "l", Priority: 1},
		{Pattern: "m", Phonemes: "m", Priority: 1},
		{Pattern: "n", Phonemes: "n", Priority: 1},
		{Pattern: "p", Phonemes: "p", Priority: 1},
		{Pattern: "qu", Phonemes: "kw", Priority: 15},
		{Pattern: "r", Phonemes: "r", Priority: 1},
		{Pattern: "s", Phonemes: "s", Priority: 1},
		{Pattern: "t", Phonemes: "t", Priority: 1},
		{Pattern: "v", Phonemes: "v", Priority: 1},
		{Pattern: "w", Phonemes: "w", Priority: 1},
		{Pattern: "x", Phonemes: "ks", Priority: 1},
		{Pattern: "y", Left: "^", Phonemes: "j", Priority: 10}, // 'y' at start -> /j/
		{Pattern: "y", Phonemes: "i", Priority: 1},             // 'y' elsewhere -> /iː/
		{Pattern: "z", Phonemes: "z", Priority: 1},

		// Vowel combinations
		{Pattern: "ea", Phonemes: "i", Priority: 15},
		{Pattern: "ee", Phonemes: "i", Priority: 15},
		{Pattern: "oo", Phonemes: "u", Priority: 15},
		{Pattern: "ou", Phonemes: "aU", Priority: 15},
		{Pattern: "ow", Phonemes: "aU", Priority: 10},
		{Pattern: "oi", Phonemes: "OI", Priority: 15},
		{Pattern: "oy", Phonemes: "OI", Priority: 15},
		{Pattern: "ai", Phonemes: "e", Priority: 15},
		{Pattern: "ay", Phonemes: "e", Priority: 15},
		{Pattern: "au", Phonemes: "O", Priority: 15},
		{Pattern: "aw", Phonemes: "O", Priority: 15},
	}
}

func englishExceptions() map[string]string {
	return map[string]string{
		"the":   "D @",
		"a":     "@",
		"is":    "I z",
		"are":   "A r",
		"was":   "w A z",
		"were":  "w 3 r",
		"have":  "h & v",
		"has":   "h & z",
		"had":   "h & d",
		"do":    "d u",
		"does":  "d @ z",
		"did":   "d I d",
		"to":    "t u",
		"of":    "@ v",
		"for":   "f O r",
		"with":  "w I T",
		"you":   "j u",
		"this":  "D I s",
		"that":  "D & t",
		"one":   "w @ n",
		"two":   "t u",
		"hello": "h E l o",
		"world": "w 3 r l d",
	}
}
