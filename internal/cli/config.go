package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/smarttable/internal/paths"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyItemsByPage    = "items_by_page"
	cfgKeyDisplayedPages = "displayed_pages"
	cfgKeyFilterFunction = "filter_function"
	cfgKeySortFunction   = "sort_function"
	cfgKeySearchDelay    = "search_delay"
	cfgKeySelectMode     = "select_mode"
	cfgKeyLocale         = "locale"
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper on top of types.DefaultConfig. A missing config.yaml is not an
// error.
func loadConfig(flags *rootFlags) (types.Config, error) {
	dir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, sysError("resolve config dir: %w", err)
	}

	def := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyItemsByPage, def.ItemsByPage)
	v.SetDefault(cfgKeyDisplayedPages, def.DisplayedPages)
	v.SetDefault(cfgKeyFilterFunction, def.FilterFunction)
	v.SetDefault(cfgKeySortFunction, def.SortFunction)
	v.SetDefault(cfgKeySearchDelay, def.SearchDelay)
	v.SetDefault(cfgKeySelectMode, def.SelectMode)
	v.SetDefault(cfgKeyLocale, def.Locale)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, sysError("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, sysError("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, userError("invalid config %s: %w", paths.ConfigFile(dir), err)
	}
	return cfg, nil
}

// describeConfig renders cfg for the init command's summary line.
func describeConfig(cfg types.Config) string {
	return fmt.Sprintf("items_by_page=%d displayed_pages=%d search_delay=%s select_mode=%s locale=%s",
		cfg.ItemsByPage, cfg.DisplayedPages, cfg.SearchDelay, cfg.SelectMode, cfg.Locale)
}
