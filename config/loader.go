package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./deploy/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Dataset); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16281
	}
	if cfg.Resolver.FareTypeAliases == nil {
		cfg.Resolver.FareTypeAliases = DefaultFareTypeAliases()
	}
	if cfg.Resolver.VariantPrefix == "" {
		cfg.Resolver.VariantPrefix = "9"
	}
	if cfg.Resolver.CurrencySymbol == "" {
		cfg.Resolver.CurrencySymbol = "£"
	}
}

// DefaultFareTypeAliases returns the fare-product labels that are synonyms
// of a canonical label in the source tariffs.
func DefaultFareTypeAliases() map[string]string {
	return map[string]string{
		"U19 MySingle": "U19 Single",
		"igo Single":   "U19 Single",
	}
}

// DefaultResolver returns a ResolverConfig with the standard policy knobs,
// for callers that run the engine without a config file (tests, oneshot).
func DefaultResolver() ResolverConfig {
	cfg := AppConfig{}
	applyDefaults(&cfg)
	return cfg.Resolver
}
