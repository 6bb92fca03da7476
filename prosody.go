package parlador

import "github.com/hubenschmidt/parlador/internal/prosody"

// SentenceType classifies a sentence for prosody assignment.
type SentenceType = prosody.SentenceType

const (
	Statement  = prosody.Statement
	Question   = prosody.Question
	WhQuestion = prosody.WhQuestion
	Exclamation = prosody.Exclamation
	Command    = prosody.Command
)

// Contour is the shape of F0 across a phrase.
type Contour = prosody.Contour

const (
	Flat          = prosody.Flat
	Rising        = prosody.Rising
	Falling       = prosody.Falling
	FallingRising = prosody.FallingRising
	Emphasized    = prosody.Emphasized
)

// ProsodyConfig is the multiplicative pitch/rate/volume/emphasis record
// applied across a phrase or SSML segment.
type ProsodyConfig = prosody.Config

// PhraseSegment is one sentence's text plus the prosody derived from its
// detected sentence type.
type PhraseSegment = prosody.Segment

// AnalyzePhrase splits text into sentences and assigns each a prosody
// configuration.
func AnalyzePhrase(text string) []PhraseSegment { return prosody.Analyze(text) }

// DetectSentenceType classifies a sentence by its punctuation.
func DetectSentenceType(text string) SentenceType { return prosody.DetectSentenceType(text) }
