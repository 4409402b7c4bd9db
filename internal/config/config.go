// Package config loads and validates keysnipe settings.
//
// Settings live in a TOML file. Loading is strict about scope names: an
// unrecognized scope is a configuration error surfaced immediately, not a
// runtime condition.
package config

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dshills/keysnipe/internal/scope"
)

// Case sensitivity modes.
const (
	// CaseSensitive always matches exact case.
	CaseSensitive = "sensitive"

	// CaseSmart is case-insensitive unless the input contains an
	// uppercase character.
	CaseSmart = "smart"
)

// ErrInvalidCase indicates an unrecognized case sensitivity mode.
var ErrInvalidCase = errors.New("config: invalid case mode")

// Settings is the full configuration surface of the snipe engine.
type Settings struct {
	// HighlightAfterJump highlights all matches in scope after a jump.
	HighlightAfterJump bool `toml:"highlight_after_jump"`

	// HighlightIncrementally highlights candidates while keys are typed.
	HighlightIncrementally bool `toml:"highlight_incrementally"`

	// RepeatKeys enables the transient ;/, repeat bindings after a snipe.
	RepeatKeys bool `toml:"repeat_keys"`

	// Scope names the primary search scope.
	Scope string `toml:"scope"`

	// RepeatScope names the scope for repeat commands. Empty means use
	// the primary scope.
	RepeatScope string `toml:"repeat_scope"`

	// SpilloverScope names the wider fallback scope. Empty means none.
	SpilloverScope string `toml:"spillover_scope"`

	// ShowPrompt displays remaining-count and buffered keys while
	// collecting.
	ShowPrompt bool `toml:"show_prompt"`

	// Case selects the case sensitivity mode (sensitive or smart).
	Case string `toml:"case"`

	// FollowViewport scrolls or recenters to keep the landing position
	// visible.
	FollowViewport bool `toml:"follow_viewport"`

	// SkipLeadingWhitespace enables the whitespace-skip heuristics.
	SkipLeadingWhitespace bool `toml:"skip_leading_whitespace"`

	// AllowKeyGrowth lets Tab extend the search by one more character.
	AllowKeyGrowth bool `toml:"allow_key_growth"`

	// Aliases maps a typed character to a pattern fragment. Keys must be
	// single characters.
	Aliases map[string]string `toml:"aliases"`

	// AliasScript is an optional Lua file defining alias(char).
	AliasScript string `toml:"alias_script"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		HighlightAfterJump:     true,
		HighlightIncrementally: true,
		RepeatKeys:             true,
		Scope:                  "line",
		ShowPrompt:             true,
		Case:                   CaseSmart,
		FollowViewport:         true,
		SkipLeadingWhitespace:  true,
		AllowKeyGrowth:         true,
	}
}

// Load reads settings from a TOML file, layered over the defaults.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks scope names, case mode, and alias keys.
func (s Settings) Validate() error {
	if _, err := scope.ParseMode(s.Scope); err != nil {
		return fmt.Errorf("config: scope: %w", err)
	}
	if s.RepeatScope != "" {
		if _, err := scope.ParseMode(s.RepeatScope); err != nil {
			return fmt.Errorf("config: repeat_scope: %w", err)
		}
	}
	if s.SpilloverScope != "" {
		if _, err := scope.ParseMode(s.SpilloverScope); err != nil {
			return fmt.Errorf("config: spillover_scope: %w", err)
		}
	}
	switch s.Case {
	case CaseSensitive, CaseSmart:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCase, s.Case)
	}
	for k := range s.Aliases {
		if len([]rune(k)) != 1 {
			return fmt.Errorf("config: alias key %q must be a single character", k)
		}
	}
	return nil
}

// ScopeResolver builds the scope resolver described by the settings.
func (s Settings) ScopeResolver() (*scope.Resolver, error) {
	primary, err := scope.ParseMode(s.Scope)
	if err != nil {
		return nil, err
	}
	r := scope.NewResolver(primary)

	if s.RepeatScope != "" {
		m, err := scope.ParseMode(s.RepeatScope)
		if err != nil {
			return nil, err
		}
		r.WithRepeat(m)
	}
	if s.SpilloverScope != "" {
		m, err := scope.ParseMode(s.SpilloverScope)
		if err != nil {
			return nil, err
		}
		r.WithSpillover(m)
	}
	return r, nil
}

// AliasMap converts the alias table to rune keys.
func (s Settings) AliasMap() map[rune]string {
	if len(s.Aliases) == 0 {
		return nil
	}
	m := make(map[rune]string, len(s.Aliases))
	for k, v := range s.Aliases {
		runes := []rune(k)
		if len(runes) == 1 {
			m[runes[0]] = v
		}
	}
	return m
}
