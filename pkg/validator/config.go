package validator

import (
	"context"
	"errors"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
)

// Config holds the environment-driven session defaults.
type Config struct {
	DefaultLocale   string `env:"VALIDATOR_DEFAULT_LOCALE" envDefault:"en"`
	Pushy           bool   `env:"VALIDATOR_PUSHY" envDefault:"true"`
	TranslationsDir string `env:"VALIDATOR_TRANSLATIONS_DIR"` // directory of <lang>.yaml catalogs; empty means the embedded ones
}

// LoadConfig reads Config from the environment and checks the locale.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	if _, err := language.Parse(cfg.DefaultLocale); err != nil {
		return Config{}, errors.Join(ErrInvalidLocale, err)
	}
	return cfg, nil
}

// Locale returns the parsed DefaultLocale, or English if it does not parse.
func (c Config) Locale() language.Tag {
	tag, err := language.Parse(c.DefaultLocale)
	if err != nil {
		return language.English
	}
	return tag
}

// LoadCatalog loads the YAML catalogs from cfg.TranslationsDir, or returns
// DefaultCatalog when no directory is configured.
func LoadCatalog(ctx context.Context, cfg Config, opts ...i18n.Option) (*Catalog, error) {
	if cfg.TranslationsDir == "" {
		return DefaultCatalog(), nil
	}
	return NewCatalog(ctx, i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), cfg.TranslationsDir), opts...)
}
