package parlador

// AudioOutputType mirrors espeak-ng's output-mode enum, kept for
// source-compatibility with callers migrating off espeak-ng. This engine
// always produces retrieval-mode (in-memory) audio regardless of the value
// passed in.
type AudioOutputType int

const (
	AudioOutputRetrieval AudioOutputType = iota
	AudioOutputPlayback
	AudioOutputSynchronous
)

// EspeakInitialize mirrors espeak_Initialize: it returns the engine's fixed
// sample rate. There is no process-wide engine to initialize — every
// espeak-shim call below constructs a transient Synthesizer — so options,
// bufferLengthMs, and flags are accepted for signature compatibility only
// and otherwise ignored.
func EspeakInitialize(outputType AudioOutputType, bufferLengthMs int, options *string, flags int) (int, error) {
	return SampleRate, nil
}

// EspeakSetVoiceByName mirrors espeak_SetVoiceByName: it validates that
// name resolves to a supported language code.
func EspeakSetVoiceByName(name string) error {
	if _, ok := LanguageFromCode(name); !ok {
		return unsupportedLanguageErr(name)
	}
	return nil
}

// EspeakSynth mirrors espeak_Synth: synthesize text in the given language
// and return raw 16-bit PCM samples.
func EspeakSynth(text, lang string) ([]int16, error) {
	language, ok := LanguageFromCode(lang)
	if !ok {
		return nil, unsupportedLanguageErr(lang)
	}
	audio, err := WithVoiceConfig(NewVoiceConfig(language)).Synthesize(text)
	if err != nil {
		return nil, err
	}
	return audio.Samples, nil
}

// EspeakTextToPhonemes mirrors espeak_TextToPhonemes: convert text to a
// phoneme string in the given language, IPA if requested, ASCII otherwise.
func EspeakTextToPhonemes(text, lang string, ipa bool) (string, error) {
	language, ok := LanguageFromCode(lang)
	if !ok {
		return "", unsupportedLanguageErr(lang)
	}
	format := PhonemeFormatASCII
	if ipa {
		format = PhonemeFormatIPA
	}
	result, err := WithVoiceConfig(NewVoiceConfig(language)).TextToPhonemes(text, format)
	if err != nil {
		return "", err
	}
	return result.Phonemes, nil
}

// EspeakTerminate mirrors espeak_Terminate. It is a no-op: there is no
// engine-lifetime state to tear down.
func EspeakTerminate() {}
