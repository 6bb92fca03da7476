// Package g2p implements the priority/context-ordered grapheme-to-phoneme
// rewrite system: per-language rule sets plus an exception lexicon, applied
// left-to-right over each word.
package g2p

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/hubenschmidt/parlador/internal/metrics"
	"github.com/hubenschmidt/parlador/internal/phoneme"
)

// Rule is one rewrite entry: pattern plus left/right context predicates.
// See checkLeftContext/checkRightContext for the small context DSL.
type Rule struct {
	Pattern  string
	Left     string
	Right    string
	Phonemes string
	Priority int
}

// Converter holds a language's rule buckets (keyed by the first rune of the
// pattern, pre-sorted priority-descending then pattern-length-descending)
// and its exception lexicon. Immutable after construction.
type Converter struct {
	language   string
	buckets    map[rune][]Rule
	exceptions map[string]string
}

func newConverter(language string, rules []Rule, exceptions map[string]string) *Converter {
	buckets := make(map[rune][]Rule)
	for _, r := range rules {
		first := []rune(r.Pattern)[0]
		buckets[first] = append(buckets[first], r)
	}
	for k := range buckets {
		bucket := buckets[k]
		sort.SliceStable(bucket, func(i, j int) bool {
			if bucket[i].Priority != bucket[j].Priority {
				return bucket[i].Priority > bucket[j].Priority
			}
			return len([]rune(bucket[i].Pattern)) > len([]rune(bucket[j].Pattern))
		})
		buckets[k] = bucket
	}
	return &Converter{language: language, buckets: buckets, exceptions: exceptions}
}

var (
	englishOnce      sync.Once
	englishConverter *Converter
	spanishOnce      sync.Once
	spanishConverter *Converter
)

// English returns the shared English G2P converter, building it on first use.
func English() *Converter {
	englishOnce.Do(func() { englishConverter = newConverter("english", englishRules(), englishExceptions()) })
	return englishConverter
}

// Spanish returns the shared Spanish G2P converter, building it on first use.
func Spanish() *Converter {
	spanishOnce.Do(func() { spanishConverter = newConverter("spanish", spanishRules(), nil) })
	return spanishConverter
}

// Convert turns text into a space-delimited phoneme string, with the
// literal token "_" marking word boundaries. Folds to lowercase, keeps only
// letters/apostrophe/hyphen/whitespace, splits on whitespace.
func (c *Converter) Convert(text string) string {
	words := strings.Fields(normalize(text))
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if ph := c.convertWord(w); ph != "" {
			parts = append(parts, ph)
		}
	}
	return strings.Join(parts, " "+phoneme.Pause+" ")
}

// normalize folds to lowercase and strips everything but letters, apostrophe,
// hyphen, and whitespace. Text is NFC-normalized first so accented letters
// arriving as a base rune plus a combining diacritic (NFD, common from some
// input sources) collapse to the single precomposed runes ("á", "ñ", ...)
// the rule tables match against.
func normalize(text string) string {
	text = norm.NFC.String(text)
	var sb strings.Builder
	for _, r := range text {
		r = unicode.ToLower(r)
		if unicode.IsLetter(r) || r == '\'' || r == '-' || unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func (c *Converter) convertWord(word string) string {
	if ph, ok := c.exceptions[word]; ok {
		return ph
	}
	runes := []rune(word)
	var out []string
	pos := 0
	for pos < len(runes) {
		ph, consumed := c.applyRules(runes, pos)
		if ph != "" {
			out = append(out, strings.Fields(ph)...)
		}
		if consumed < 1 {
			consumed = 1
		}
		pos += consumed
	}
	return strings.Join(out, " ")
}

// applyRules finds the first rule (in bucket order) whose pattern matches
// the word starting at pos and whose contexts are satisfied. Returns its
// phonemes and the number of runes consumed, or ("", 1) to skip one rune.
func (c *Converter) applyRules(word []rune, pos int) (string, int) {
	bucket, ok := c.buckets[word[pos]]
	if !ok {
		metrics.G2PRuleMisses.WithLabelValues(c.language).Inc()
		return "", 1
	}
	for _, r := range bucket {
		pattern := []rune(r.Pattern)
		end := pos + len(pattern)
		if end > len(word) {
			continue
		}
		matched := true
		for i, pr := range pattern {
			if word[pos+i] != pr {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if !checkLeftContext(r.Left, pos) {
			continue
		}
		if !checkRightContext(r.Right, word, end) {
			continue
		}
		return r.Phonemes, len(pattern)
	}
	metrics.G2PRuleMisses.WithLabelValues(c.language).Inc()
	return "", 1
}

func checkLeftContext(left string, pos int) bool {
	switch left {
	case "":
		return true
	case "^":
		return pos == 0
	default:
		return true
	}
}

func checkRightContext(right string, word []rune, end int) bool {
	switch right {
	case "":
		return true
	case "$":
		return end == len(word)
	case "[ei]":
		return end < len(word) && (word[end] == 'e' || word[end] == 'i')
	case "e$":
		return end < len(word) && word[end] == 'e' && end+1 == len(word)
	default:
		return true
	}
}

// TextToIPA converts raw text directly to its IPA rendering: G2P-converts
// then maps each ASCII symbol through the inventory's IPA field, "_"
// becoming a space.
func TextToIPA(text string, conv *Converter, inv *phoneme.Inventory) string {
	ascii := conv.Convert(text)
	tokens := strings.Fields(ascii)
	var sb strings.Builder
	for _, t := range tokens {
		if t == phoneme.Pause {
			sb.WriteString(" ")
			continue
		}
		if p, ok := inv.Get(t); ok {
			sb.WriteString(p.IPA)
		}
	}
	return sb.String()
}
