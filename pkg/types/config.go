package types

import (
	"errors"
	"time"
)

// Defaults applied by DefaultConfig.
const (
	DefaultItemsByPage    = 10
	DefaultDisplayedPages = 5
	DefaultSearchDelay    = 400 * time.Millisecond
	DefaultLocale         = "und"
)

// Config is what a table and its adapters read from their environment.
//
// ItemsByPage is the initial page size; zero leaves pagination off until a
// Slice call. FilterFunction and SortFunction name registered functions that
// replace the default matcher and ordering. DisplayedPages, SearchDelay and
// SelectMode feed the pagination, search and row-select adapters. Locale
// drives string collation in GetUniqueValues.
type Config struct {
	ItemsByPage    int           `json:"items_by_page" yaml:"items_by_page" mapstructure:"items_by_page"`
	DisplayedPages int           `json:"displayed_pages" yaml:"displayed_pages" mapstructure:"displayed_pages"`
	FilterFunction string        `json:"filter_function,omitempty" yaml:"filter_function,omitempty" mapstructure:"filter_function"`
	SortFunction   string        `json:"sort_function,omitempty" yaml:"sort_function,omitempty" mapstructure:"sort_function"`
	SearchDelay    time.Duration `json:"search_delay" yaml:"search_delay" mapstructure:"search_delay"`
	SelectMode     string        `json:"select_mode" yaml:"select_mode" mapstructure:"select_mode"`
	Locale         string        `json:"locale" yaml:"locale" mapstructure:"locale"`
}

// DefaultConfig returns the configuration used when nothing is set. The
// table itself starts unpaginated; DefaultItemsByPage is applied by the
// pagination adapter.
func DefaultConfig() Config {
	return Config{
		DisplayedPages: DefaultDisplayedPages,
		SearchDelay:    DefaultSearchDelay,
		SelectMode:     SelectSingle,
		Locale:         DefaultLocale,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.ItemsByPage > 0 {
		c.ItemsByPage = source.ItemsByPage
	}
	if source.DisplayedPages > 0 {
		c.DisplayedPages = source.DisplayedPages
	}
	if source.FilterFunction != "" {
		c.FilterFunction = source.FilterFunction
	}
	if source.SortFunction != "" {
		c.SortFunction = source.SortFunction
	}
	if source.SearchDelay > 0 {
		c.SearchDelay = source.SearchDelay
	}
	if source.SelectMode != "" {
		c.SelectMode = source.SelectMode
	}
	if source.Locale != "" {
		c.Locale = source.Locale
	}
}

// Config validation errors.
var (
	ErrInvalidPageSize       = errors.New("items by page must not be negative")
	ErrInvalidDisplayedPages = errors.New("displayed pages must not be negative")
	ErrInvalidDelay          = errors.New("search delay must not be negative")
	ErrInvalidSelectMode     = errors.New("unknown select mode")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.ItemsByPage < 0 {
		return ErrInvalidPageSize
	}
	if c.DisplayedPages < 0 {
		return ErrInvalidDisplayedPages
	}
	if c.SearchDelay < 0 {
		return ErrInvalidDelay
	}
	switch c.SelectMode {
	case "", SelectSingle, SelectMultiple:
	default:
		return ErrInvalidSelectMode
	}
	return nil
}
