package main

import "github.com/hubenschmidt/parlador/internal/env"

// config holds the daemon's deployment-level settings, loaded from
// environment variables with sensible fallbacks.
type config struct {
	port            string
	defaultLanguage string
	chunkSize       int
}

func loadConfig() config {
	return config{
		port:            env.Str("TTSD_PORT", "8090"),
		defaultLanguage: env.Str("TTSD_DEFAULT_LANGUAGE", "en"),
		chunkSize:       env.Int("TTSD_CHUNK_SIZE", 1024),
	}
}
