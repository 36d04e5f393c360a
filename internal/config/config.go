// Package config holds the settings of one conversion run.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/geoknoesis/smt3-rdf/rdf"
)

// Input file names looked up in InputDir.
const (
	DemonFile         = "demon_simple_info.csv"
	FusionRuleFile    = "fusion_basic_rule.csv"
	SpecialFusionFile = "special_fusion.json"
)

// DefaultNamespace is used for every namespace that is not configured.
const DefaultNamespace = "http://example.org/"

// Config is loaded from SMT3RDF_* environment variables, then overridden by
// command-line flags.
type Config struct {
	DemonNamespace      string `env:"SMT3RDF_DEMON_NAMESPACE"       envDefault:"http://example.org/"`
	RaceNamespace       string `env:"SMT3RDF_RACE_NAMESPACE"        envDefault:"http://example.org/"`
	VocabularyNamespace string `env:"SMT3RDF_VOCABULARY_NAMESPACE"  envDefault:"http://example.org/"`
	GameNamespace       string `env:"SMT3RDF_GAME_NAMESPACE"        envDefault:"http://example.org/"`
	BasicRulesNamespace string `env:"SMT3RDF_BASIC_RULES_NAMESPACE" envDefault:"http://example.org/"`

	// Empty template paths select the embedded templates.
	VocabularyTemplate string `env:"SMT3RDF_PATH_VOCABULARY"`
	GameTemplate       string `env:"SMT3RDF_PATH_GAME"`

	OutPath  string `env:"SMT3RDF_OUT_PATH"  envDefault:"./output/"`
	InputDir string `env:"SMT3RDF_INPUT_DIR" envDefault:"."`
	Format   string `env:"SMT3RDF_FORMAT"    envDefault:"turtle"`

	NamedGraphs bool `env:"SMT3RDF_NAMED_GRAPHS" envDefault:"false"`
	Verbose     bool `env:"SMT3RDF_VERBOSE"      envDefault:"false"`
	LogJSON     bool `env:"SMT3RDF_LOG_JSON"     envDefault:"false"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings that can be checked without touching the
// filesystem. Namespaces are validated when they are resolved.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutPath) == "" {
		return errors.New("out path is required")
	}
	if strings.TrimSpace(c.InputDir) == "" {
		return errors.New("input dir is required")
	}
	if _, err := c.OutputFormat(); err != nil {
		return err
	}
	return nil
}

// OutputFormat returns the notation of the race, demon and basic-rules
// artifacts. With named graphs on, triple notations switch to their quad
// variant.
func (c Config) OutputFormat() (rdf.Format, error) {
	format, ok := rdf.ParseFormat(c.Format)
	if !ok {
		return "", fmt.Errorf("%w: %q", rdf.ErrUnsupportedFormat, c.Format)
	}
	if c.NamedGraphs {
		format = format.QuadVariant()
	}
	return format, nil
}
