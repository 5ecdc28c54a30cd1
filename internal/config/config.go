// Package config provides configuration utilities for the application.
package config

import (
	"fmt"

	"github.com/Veraticus/quota-sniper/internal/common"
	"github.com/Veraticus/quota-sniper/internal/extract"
	"github.com/Veraticus/quota-sniper/internal/match"
	"github.com/Veraticus/quota-sniper/internal/model"
	"github.com/spf13/viper"
)

// Config is the tunable part of the engine.
type Config struct {
	Extraction extract.Config
	Search     match.Options
}

// Load reads the "extraction" and "search" sections. Keys left out of the
// config keep their defaults: an administrators list replaces the default
// list rather than extending it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.UnmarshalKey("extraction", &cfg.Extraction); err != nil {
		return nil, fmt.Errorf("%w: extraction: %v", common.ErrInvalidConfig, err)
	}
	if err := v.UnmarshalKey("search", &cfg.Search); err != nil {
		return nil, fmt.Errorf("%w: search: %v", common.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Resolve defaults the same way the engine would.
	cfg.Extraction = extract.NewExtractor(cfg.Extraction).Config()
	cfg.Search = match.New(cfg.Search).Options()

	return &cfg, nil
}

// Validate rejects settings the engine cannot honor and canonicalizes type
// names in the type rules.
func (c *Config) Validate() error {
	for i, rule := range c.Extraction.TypeRules {
		t, err := model.ParseAssetType(string(rule.Type))
		if err != nil {
			return fmt.Errorf("%w: type rule %d: %v", common.ErrInvalidConfig, i, err)
		}
		c.Extraction.TypeRules[i].Type = t
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("%w: type rule %d has no keywords", common.ErrInvalidConfig, i)
		}
	}
	if c.Search.MaxComboSize < 0 {
		return fmt.Errorf("%w: search.max_combo_size must not be negative", common.ErrInvalidConfig)
	}
	if c.Search.MaxCombinations < 0 {
		return fmt.Errorf("%w: search.max_combinations must not be negative", common.ErrInvalidConfig)
	}
	return nil
}
