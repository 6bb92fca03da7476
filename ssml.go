package parlador

import "github.com/hubenschmidt/parlador/internal/ssml"

// SsmlElement is one node of a parsed SSML document.
type SsmlElement = ssml.Element

// SsmlDocument is a parsed SSML tree.
type SsmlDocument = ssml.Document

// SynthesisSegment is one (text, prosody) pair flattened from an SSML
// document, ready to feed the synthesis pipeline.
type SynthesisSegment = ssml.Segment

// BreakStrength is the named pause duration used by an SSML <break> element.
type BreakStrength = ssml.BreakStrength

// EmphasisLevel is the named stress level used by an SSML <emphasis> element.
type EmphasisLevel = ssml.EmphasisLevel

// ParseSsml parses an SSML (or plain-text passthrough) string into a document.
func ParseSsml(input string) (SsmlDocument, error) { return ssml.Parse(input) }

// IsSSML reports whether input looks like an SSML document.
func IsSSML(input string) bool { return ssml.IsSSML(input) }
