package agent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the agent tunables. The transition table itself is fixed;
// only triggers, templates and tick behavior are configurable.
type Config struct {
	DecayAmount      int                 `yaml:"decay_amount"`
	DreamCount       int                 `yaml:"dream_count"`
	TransitionOnTick bool                `yaml:"transition_on_tick"`
	Triggers         []Trigger           `yaml:"triggers"`
	Templates        map[string][]string `yaml:"templates"`
}

func DefaultConfig() Config {
	return Config{
		DecayAmount:      1,
		DreamCount:       3,
		TransitionOnTick: false,
		Triggers:         DefaultTriggers(),
		Templates:        DefaultTemplates(),
	}
}

// LoadConfig reads YAML overrides on top of the defaults. Absent fields keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var overlay struct {
		DecayAmount      *int                `yaml:"decay_amount"`
		DreamCount       *int                `yaml:"dream_count"`
		TransitionOnTick *bool               `yaml:"transition_on_tick"`
		Triggers         []Trigger           `yaml:"triggers"`
		Templates        map[string][]string `yaml:"templates"`
	}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if overlay.DecayAmount != nil {
		cfg.DecayAmount = *overlay.DecayAmount
	}
	if overlay.DreamCount != nil {
		cfg.DreamCount = *overlay.DreamCount
	}
	if overlay.TransitionOnTick != nil {
		cfg.TransitionOnTick = *overlay.TransitionOnTick
	}
	if overlay.Triggers != nil {
		cfg.Triggers = overlay.Triggers
	}
	if overlay.Templates != nil {
		for name, pool := range overlay.Templates {
			cfg.Templates[name] = pool
		}
	}
	return cfg, nil
}
