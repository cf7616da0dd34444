package main

import (
	"fmt"
	"time"

	"github.com/vovakirdan/autoscroller/internal/config"
	"github.com/vovakirdan/autoscroller/internal/core"
	"github.com/vovakirdan/autoscroller/internal/pattern"
)

// loadRunnerConfig loads the runner config and applies the difficulty preset.
func loadRunnerConfig() (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// loadPatterns returns the catalog from --patterns, or the built-in one.
func loadPatterns() (*pattern.Library, error) {
	if flagPatterns == "" {
		return pattern.Builtin(), nil
	}
	lib, err := pattern.LoadFile(flagPatterns)
	if err != nil {
		return nil, fmt.Errorf("cannot load patterns: %w", err)
	}
	return lib, nil
}

// runtimeConfig builds the fixed-world runtime config from the global flags.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return rt
}
