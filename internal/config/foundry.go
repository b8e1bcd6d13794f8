package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// foundryTOML is the raw foundry.toml structure, profile table only.
type foundryTOML struct {
	Profile map[string]profileTOML `toml:"profile"`
}

type profileTOML struct {
	Src    string   `toml:"src"`
	Test   string   `toml:"test"`
	Script string   `toml:"script"`
	Out    string   `toml:"out"`
	Libs   []string `toml:"libs"`
	Skip   []string `toml:"skip"`
}

// FoundryConfig is the project layout resolved from foundry.toml.
type FoundryConfig struct {
	Src    string
	Test   string
	Script string
	Out    string
	Libs   []string
	// Skip patterns configured in the profile, merged with CLI flags.
	Skip []string
}

// LoadFoundryConfig loads and parses foundry.toml, applying profile
// selection from FOUNDRY_PROFILE and falling back to the default profile's
// conventional layout for unset fields.
func LoadFoundryConfig(projectRoot string) (*FoundryConfig, error) {
	// Load .env files first for variable expansion
	for _, envFile := range []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	} {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	var raw foundryTOML
	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	if _, err := toml.DecodeFile(foundryPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	profile := os.Getenv("FOUNDRY_PROFILE")
	if profile == "" {
		profile = "default"
	}

	selected := raw.Profile[profile]
	defaults := raw.Profile["default"]

	cfg := &FoundryConfig{
		Src:    firstNonEmpty(selected.Src, defaults.Src, "src"),
		Test:   firstNonEmpty(selected.Test, defaults.Test, "test"),
		Script: firstNonEmpty(selected.Script, defaults.Script, "script"),
		Out:    firstNonEmpty(selected.Out, defaults.Out, "out"),
		Libs:   selected.Libs,
		Skip:   selected.Skip,
	}
	if len(cfg.Libs) == 0 {
		cfg.Libs = defaults.Libs
	}
	if len(cfg.Libs) == 0 {
		cfg.Libs = []string{"lib"}
	}
	if len(cfg.Skip) == 0 {
		cfg.Skip = defaults.Skip
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
