package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// appConfig holds configuration values parsed from environment variables.
type appConfig struct {
	// AccessKey is the bunny.net API access key.
	AccessKey string `koanf:"access_key" validate:"required"`

	// BaseURL overrides the API endpoint, mainly for testing.
	BaseURL string `koanf:"base_url" validate:"required,url"`

	// Timeout is the per-request timeout in seconds.
	Timeout int `koanf:"timeout" validate:"required,gte=1,lte=300"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
}

// envLoader loads environment variables with the prefix "BUNNYDNS_",
// lower-casing keys and stripping the prefix. Swappable in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "BUNNYDNS_",
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, "BUNNYDNS_")), value
		},
	}), nil)
}

// loadConfig parses environment variables and returns an appConfig.
// It applies default values and runs validation automatically.
func loadConfig() (*appConfig, error) {
	k := koanf.New(".")

	k.Load(structs.Provider(appConfig{
		BaseURL:  "https://api.bunny.net",
		Timeout:  30,
		Env:      "prod",
		LogLevel: "info",
	}, "koanf"), nil)

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg appConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
