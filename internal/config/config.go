// Package config loads CLI configuration from an optional YAML file,
// QBANK_* environment variables, and command-line flags, in that order of
// increasing precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/haxx0rman/qBank/internal/srs"
)

// envPrefix is stripped from environment variables; QBANK_TARGET_SUCCESS_RATE
// maps to the target_success_rate key.
const envPrefix = "QBANK_"

// SchedulerConfig mirrors the scheduler tunables for the config file.
type SchedulerConfig struct {
	MinEase     float64 `koanf:"min_ease" validate:"gt=0"`
	MaxEase     float64 `koanf:"max_ease" validate:"gtefield=MinEase"`
	EaseBonus   float64 `koanf:"ease_bonus" validate:"gte=0"`
	EasePenalty float64 `koanf:"ease_penalty" validate:"gte=0"`
	HardPenalty float64 `koanf:"hard_penalty" validate:"gte=0"`
	MinInterval float64 `koanf:"min_interval" validate:"gt=0"`
	MaxInterval float64 `koanf:"max_interval" validate:"gtefield=MinInterval"`
}

// SessionConfig controls default session sizing.
type SessionConfig struct {
	MaxQuestions  int `koanf:"max_questions" validate:"gte=0"`
	TargetMinutes int `koanf:"target_minutes" validate:"gt=0"`
}

// Config is the full CLI configuration.
type Config struct {
	User              string          `koanf:"user" validate:"required"`
	DB                string          `koanf:"db"`
	BankName          string          `koanf:"bank_name"`
	TargetSuccessRate float64         `koanf:"target_success_rate" validate:"gt=0,lt=1"`
	Session           SessionConfig   `koanf:"session"`
	Scheduler         SchedulerConfig `koanf:"scheduler"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := srs.DefaultParams()
	return Config{
		User:              "default_user",
		BankName:          "My Question Bank",
		TargetSuccessRate: 0.7,
		Session: SessionConfig{
			MaxQuestions:  20,
			TargetMinutes: 30,
		},
		Scheduler: SchedulerConfig{
			MinEase:     p.MinEase,
			MaxEase:     p.MaxEase,
			EaseBonus:   p.EaseBonus,
			EasePenalty: p.EasePenalty,
			HardPenalty: p.HardPenalty,
			MinInterval: p.MinInterval,
			MaxInterval: p.MaxInterval,
		},
	}
}

// SchedulerParams converts the config into scheduler parameters.
func (c Config) SchedulerParams() srs.Params {
	return srs.Params{
		MinEase:     c.Scheduler.MinEase,
		MaxEase:     c.Scheduler.MaxEase,
		EaseBonus:   c.Scheduler.EaseBonus,
		EasePenalty: c.Scheduler.EasePenalty,
		HardPenalty: c.Scheduler.HardPenalty,
		MinInterval: c.Scheduler.MinInterval,
		MaxInterval: c.Scheduler.MaxInterval,
	}
}

// Load merges the config file at path (skipped when empty or missing),
// environment variables, and flags over the defaults, then validates the
// result. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("load config file %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	if flags != nil {
		// Only flags the user actually set; unset flag defaults must not
		// shadow file or env values.
		p := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		})
		if err := k.Load(p, nil); err != nil {
			return Config{}, fmt.Errorf("load flags: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
