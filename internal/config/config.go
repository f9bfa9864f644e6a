package config

const (
	// DefaultDuration is the paste lifetime used when --duration is not given.
	DefaultDuration = "1d"

	// DefaultLang is the language tag used when --lang is not given.
	DefaultLang = "autodetect"

	// APIKeyEnv is the environment variable holding the Pastery API key.
	APIKeyEnv = "PASTERY_API_KEY"
)
