// Command speak is a CLI demonstration of text-to-speech synthesis.
//
// Usage:
//
//	speak "Custom text to speak"
//	speak --language es "Texto en español"
//	speak --rate 200 --pitch 20 "Fast and high pitch"
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hubenschmidt/parlador"
)

func printUsage() {
	fmt.Println("Usage: speak [OPTIONS] [TEXT]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --language, -l <LANG>   Language: en (English) or es (Spanish). Default: en")
	fmt.Println("  --rate, -r <WPM>        Speech rate in words per minute. Default: 175")
	fmt.Println("  --pitch, -p <PITCH>     Pitch adjustment (-100 to 100). Default: 0")
	fmt.Println("  --volume, -v <VOLUME>   Volume (0-200). Default: 100")
	fmt.Println("  --voice <VARIANT>       Voice variant: m1, m2, m3, f1, f2, f3. Default: default")
	fmt.Println("  --output, -o <FILE>     Output file (raw PCM). If not specified, prints info only.")
	fmt.Println("  --help, -h              Show this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println(`  speak "Hello, world!"`)
	fmt.Println(`  speak --language es "¡Hola, mundo!"`)
	fmt.Println(`  speak --rate 200 --pitch 20 "Fast speech"`)
	fmt.Println(`  speak --voice f1 "Female voice"`)
	fmt.Println(`  speak --output output.raw "Hello world"`)
}

func parseVariant(s string) (parlador.Variant, bool) {
	switch strings.ToLower(s) {
	case "default", "d":
		return parlador.DefaultVariant, true
	case "m1", "male1":
		return parlador.Male1, true
	case "m2", "male2":
		return parlador.Male2, true
	case "m3", "male3":
		return parlador.Male3, true
	case "f1", "female1":
		return parlador.Female1, true
	case "f2", "female2":
		return parlador.Female2, true
	case "f3", "female3":
		return parlador.Female3, true
	default:
		return parlador.DefaultVariant, false
	}
}

func main() {
	args := os.Args

	language := parlador.English
	rate := 175
	pitch := 0
	volume := 100
	variant := parlador.DefaultVariant
	outputFile := ""
	var textParts []string

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--help", "-h":
			printUsage()
			return
		case "--language", "-l":
			i++
			if i < len(args) {
				if lang, ok := parlador.LanguageFromCode(args[i]); ok {
					language = lang
				} else {
					fmt.Fprintf(os.Stderr, "Warning: Unknown language '%s', using English\n", args[i])
				}
			}
		case "--rate", "-r":
			i++
			if i < len(args) {
				if v, err := strconv.Atoi(args[i]); err == nil {
					rate = v
				}
			}
		case "--pitch", "-p":
			i++
			if i < len(args) {
				if v, err := strconv.Atoi(args[i]); err == nil {
					pitch = v
				}
			}
		case "--volume", "-v":
			i++
			if i < len(args) {
				if v, err := strconv.Atoi(args[i]); err == nil {
					volume = v
				}
			}
		case "--voice":
			i++
			if i < len(args) {
				if v, ok := parseVariant(args[i]); ok {
					variant = v
				}
			}
		case "--output", "-o":
			i++
			if i < len(args) {
				outputFile = args[i]
			}
		default:
			if !strings.HasPrefix(args[i], "-") {
				textParts = append(textParts, args[i])
			} else {
				fmt.Fprintf(os.Stderr, "Unknown option: %s\n", args[i])
			}
		}
	}

	text := strings.Join(textParts, " ")
	if text == "" {
		if language == parlador.Spanish {
			text = "¡Hola! Esta es una demostración del sintetizador de voz Parlador."
		} else {
			text = "Hello! This is a demonstration of the Parlador speech synthesizer."
		}
	}

	config := parlador.NewVoiceConfig(language).
		WithVariant(variant).
		WithRate(rate).
		WithPitch(pitch).
		WithVolume(volume)

	fmt.Println("Parlador Speech Synthesizer")
	fmt.Println("===========================")
	fmt.Printf("Language: %s\n", language)
	fmt.Printf("Voice: %s\n", variant.Name())
	fmt.Printf("Rate: %d WPM\n", rate)
	fmt.Printf("Pitch: %d\n", pitch)
	fmt.Printf("Volume: %d\n", volume)
	fmt.Println()
	fmt.Printf("Text: %q\n", text)
	fmt.Println()

	synth := parlador.WithVoiceConfig(config)
	audio, err := synth.Synthesize(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "synthesis failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d samples at %d Hz\n", len(audio.Samples), audio.SampleRate)
	fmt.Printf("Duration: %.2f seconds\n", audio.DurationSecs())

	if outputFile != "" {
		if err := writeRawPCM(outputFile, audio.Samples); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write output: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\nAudio saved to: %s\n", outputFile)
		fmt.Println("To convert to WAV, use:")
		fmt.Printf("  sox -r %d -b 16 -e signed -c 1 %s output.wav\n", audio.SampleRate, outputFile)
	}

	fmt.Println("\nDone!")
}

func writeRawPCM(filename string, samples []int16) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		buf[i*2] = byte(s)
		buf[i*2+1] = byte(s >> 8)
	}
	if _, err := file.Write(buf); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}
	return nil
}
