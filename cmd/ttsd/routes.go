package main

import (
	"encoding/binary"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hubenschmidt/parlador"
	"github.com/hubenschmidt/parlador/internal/metrics"
	"github.com/hubenschmidt/parlador/internal/streaming"
	"github.com/hubenschmidt/parlador/internal/wavenc"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func registerRoutes(mux *http.ServeMux, cfg config) {
	mux.HandleFunc("GET /health", withRequestMetrics("/health", handleHealth))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /inventory", withRequestMetrics("/inventory", handleInventory))
	mux.HandleFunc("POST /synthesize", withRequestMetrics("/synthesize", newSynthesizeHandler(cfg)))
	mux.HandleFunc("GET /stream", newStreamHandler(cfg))
}

// statusRecorder wraps http.ResponseWriter to capture the status code a
// handler wrote, defaulting to 200 if the handler never calls WriteHeader.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// withRequestMetrics records a requests_total observation per route/status.
// /stream is excluded since its lifetime is a long-lived WebSocket session,
// not a single request/response pair.
func withRequestMetrics(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type phonemeInfo struct {
	Symbol     string `json:"symbol"`
	IPA        string `json:"ipa"`
	Category   string `json:"category"`
	DurationMs int    `json:"duration_ms"`
	Voiced     bool   `json:"voiced"`
}

func handleInventory(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	language, ok := parlador.LanguageFromCode(orDefault(lang, "en"))
	if !ok {
		http.Error(w, "unsupported language", http.StatusBadRequest)
		return
	}

	var inv *parlador.PhonemeInventory
	if language == parlador.Spanish {
		inv = parlador.SpanishInventory()
	} else {
		inv = parlador.EnglishInventory()
	}

	out := make([]phonemeInfo, 0, inv.Len())
	for _, p := range inv.All() {
		out = append(out, phonemeInfo{
			Symbol: p.Symbol, IPA: p.IPA, Category: p.Category.String(),
			DurationMs: p.DurationMs, Voiced: p.Voiced,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

type synthesizeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Rate     int    `json:"rate"`
	Pitch    int    `json:"pitch"`
	Volume   int    `json:"volume"`
	Prosody  bool   `json:"prosody"`
	SSML     bool   `json:"ssml"`
}

func newSynthesizeHandler(cfg config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		logger := slog.With("request_id", requestID)

		var req synthesizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		language, ok := parlador.LanguageFromCode(orDefault(req.Language, cfg.defaultLanguage))
		if !ok {
			metrics.Errors.WithLabelValues("unsupported_language").Inc()
			http.Error(w, "unsupported language", http.StatusBadRequest)
			return
		}

		voiceCfg := parlador.NewVoiceConfig(language)
		if req.Rate > 0 {
			voiceCfg = voiceCfg.WithRate(req.Rate)
		}
		if req.Pitch != 0 {
			voiceCfg = voiceCfg.WithPitch(req.Pitch)
		}
		if req.Volume > 0 {
			voiceCfg = voiceCfg.WithVolume(req.Volume)
		}
		synth := parlador.WithVoiceConfig(voiceCfg)

		timer := prometheusTimer(language)
		var audio parlador.AudioOutput
		var err error
		switch {
		case req.SSML:
			audio, err = synth.SynthesizeSsml(req.Text)
		case req.Prosody:
			audio, err = synth.SynthesizeWithProsody(req.Text)
		default:
			audio, err = synth.Synthesize(req.Text)
		}
		timer()

		if err != nil {
			logger.Error("synthesis failed", "error", err)
			metrics.Errors.WithLabelValues("synthesis").Inc()
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		phonemeText := req.Text
		if req.SSML {
			if doc, err := parlador.ParseSsml(req.Text); err == nil {
				phonemeText = doc.ToPlainText()
			}
		}
		if res, err := synth.TextToPhonemes(phonemeText, parlador.PhonemeFormatASCII); err == nil {
			metrics.PhonemesEmitted.WithLabelValues(language.Code()).Add(float64(len(strings.Fields(res.Phonemes))))
		}

		w.Header().Set("X-Request-Id", requestID)
		w.Header().Set("X-Sample-Rate", "22050")

		if r.URL.Query().Get("format") == "wav" {
			wavBytes, err := wavenc.Encode(audio.Samples, audio.SampleRate)
			if err != nil {
				http.Error(w, "encode failed", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "audio/wav")
			w.Write(wavBytes)
			return
		}

		w.Header().Set("Content-Type", "audio/l16")
		pcmBytes := make([]byte, len(audio.Samples)*2)
		for i, s := range audio.Samples {
			binary.LittleEndian.PutUint16(pcmBytes[i*2:], uint16(s))
		}
		w.Write(pcmBytes)
	}
}

func newStreamHandler(cfg config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var req synthesizeRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			conn.WriteJSON(map[string]string{"error": "bad request"})
			return
		}

		language, ok := parlador.LanguageFromCode(orDefault(req.Language, cfg.defaultLanguage))
		if !ok {
			conn.WriteJSON(map[string]string{"error": "unsupported language"})
			return
		}

		voiceCfg := parlador.NewVoiceConfig(language)
		streamCfg := streaming.NewConfig().WithChunkSize(cfg.chunkSize).WithVoice(voiceCfg).WithProsody(req.Prosody)

		metrics.StreamsActive.Inc()
		defer metrics.StreamsActive.Dec()

		s := streaming.WithConfig(streamCfg)
		stream := s.OpenStream(req.Text)
		for {
			chunk, ok := stream.Next()
			if !ok {
				break
			}
			pcmBytes := make([]byte, len(chunk.Samples)*2)
			for i, sample := range chunk.Samples {
				binary.LittleEndian.PutUint16(pcmBytes[i*2:], uint16(sample))
			}
			if err := conn.WriteMessage(websocket.BinaryMessage, pcmBytes); err != nil {
				return
			}
			if chunk.IsFinal {
				conn.WriteJSON(map[string]interface{}{"final": true, "progress": chunk.Progress})
				return
			}
		}
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func prometheusTimer(language parlador.Language) func() {
	observer := metrics.SynthesisDuration.WithLabelValues(language.Code())
	start := time.Now()
	return func() {
		observer.Observe(time.Since(start).Seconds())
	}
}
