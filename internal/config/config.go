// Package config defines the validated, immutable game parameters shared by
// every component of the core.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/clouds-game/gems/internal/apperrors"
)

// coinDefaultInit mirrors the original catalog's per-player-count default
// bank size, indexed directly by num_players - 1 (1..4 players).
var coinDefaultInit = [4]int{4, 4, 5, 7}

var validate = validator.New()

// Config is a validated, immutable record of game parameters. Construct it
// with New, which fills defaults and validates; do not build a Config value
// literal directly outside this package's tests.
type Config struct {
	NumPlayers            int   `json:"num_players" validate:"gte=1,lte=4"`
	CoinInit              int   `json:"coin_init" validate:"gte=0"`
	CoinGoldInit          int   `json:"coin_gold_init" validate:"gte=0"`
	CoinMaxPerPlayer      int   `json:"coin_max_per_player" validate:"gt=0"`
	CoinMinTake2          int   `json:"coin_min_take2" validate:"gt=0"`
	CardVisiblePerLevel   int   `json:"card_visible_per_level" validate:"gt=0"`
	CardLevels            []int `json:"card_levels" validate:"min=1,dive,gt=0"`
	CardMaxReserved       int   `json:"card_max_reserved" validate:"gt=0"`
}

// CardLevelCount returns the number of distinct tiers.
func (c Config) CardLevelCount() int {
	return len(c.CardLevels)
}

// CardVisibleTotal returns the total visible-grid capacity across all
// levels.
func (c Config) CardVisibleTotal() int {
	return c.CardVisiblePerLevel * c.CardLevelCount()
}

// Option mutates a Config during construction, applied before defaulting
// and validation.
type Option func(*Config)

// WithCoinInit overrides the per-color starting bank size instead of using
// the player-count default.
func WithCoinInit(n int) Option {
	return func(c *Config) { c.CoinInit = n }
}

// WithCardLevels overrides the tier list.
func WithCardLevels(levels []int) Option {
	return func(c *Config) {
		c.CardLevels = append([]int(nil), levels...)
	}
}

// New builds a Config for numPlayers, applying opts, filling the
// player-count-dependent coin default when unset, and validating the
// result. Returns an *apperrors.InvalidConfigError on failure.
func New(numPlayers int, opts ...Option) (Config, error) {
	c := Config{
		NumPlayers:          numPlayers,
		CoinGoldInit:        5,
		CoinMaxPerPlayer:    10,
		CoinMinTake2:        4,
		CardVisiblePerLevel: 4,
		CardLevels:          []int{1, 2, 3},
		CardMaxReserved:     3,
	}
	for _, opt := range opts {
		opt(&c)
	}

	if c.CoinInit == 0 && numPlayers >= 1 && numPlayers <= len(coinDefaultInit) {
		c.CoinInit = coinDefaultInit[numPlayers-1]
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate runs struct-tag validation plus the domain rules that cannot be
// expressed as tags (num_players bounds already cover the common case;
// here we additionally guard against a zero-filled CoinInit slipping
// through a hand-built Config).
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return &apperrors.InvalidConfigError{Field: "Config", Reason: err.Error()}
	}
	if c.CoinInit <= 0 {
		return &apperrors.InvalidConfigError{Field: "CoinInit", Reason: fmt.Sprintf("must be positive, got %d", c.CoinInit)}
	}
	return nil
}
