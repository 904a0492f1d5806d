// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/matrix"
	"github.com/katalvlaran/lvalign/scoring"
)

// Strategy names accepted in profiles and on the command line.
const (
	strategyGlobal      = "global"
	strategyLocal       = "local"
	strategyLevenshtein = "levenshtein"
)

// defaultProfile is used when --profile is not given.
const defaultProfile = strategyGlobal

var (
	// ErrUnknownProfile is returned when --profile names no built-in or configured profile.
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrUnknownStrategy is returned for a strategy other than global, local or levenshtein.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrUnknownBackend is returned for a backend other than dense or mapped.
	ErrUnknownBackend = errors.New("unknown backend")
)

// Profile is one named scoring configuration for the align command.
type Profile struct {
	Strategy  string
	Match     int64
	Mismatch  int64
	Gap       int64
	Window    int
	Threshold int64
	Backend   string
	Dir       string
}

// builtinProfiles are always available; a config file may override or extend them.
func builtinProfiles() map[string]Profile {
	return map[string]Profile{
		strategyGlobal: {
			Strategy: strategyGlobal,
			Match:    scoring.DefaultMatch,
			Mismatch: scoring.DefaultMismatch,
			Gap:      scoring.DefaultGap,
			Window:   scoring.DefaultWindow,
			Backend:  matrix.InMemory.String(),
		},
		strategyLocal: {
			Strategy: strategyLocal,
			Match:    scoring.DefaultMatch,
			Mismatch: scoring.DefaultMismatch,
			Gap:      scoring.DefaultGap,
			Window:   scoring.DefaultWindow,
			Backend:  matrix.InMemory.String(),
		},
		strategyLevenshtein: {
			Strategy: strategyLevenshtein,
			Match:    0,
			Mismatch: 1,
			Gap:      1,
			Window:   scoring.DefaultWindow,
			Backend:  matrix.InMemory.String(),
		},
	}
}

// fileProfile is the TOML form of a profile. Absent keys inherit from Base,
// which names a built-in profile and defaults to "global".
type fileProfile struct {
	Base      string  `toml:"base"`
	Strategy  *string `toml:"strategy"`
	Match     *int64  `toml:"match"`
	Mismatch  *int64  `toml:"mismatch"`
	Gap       *int64  `toml:"gap"`
	Window    *int    `toml:"window"`
	Threshold *int64  `toml:"threshold"`
	Backend   *string `toml:"backend"`
	Dir       *string `toml:"dir"`
}

// configFile is the root of the TOML document:
//
//	[profile.dna]
//	base = "global"
//	match = -2
//	window = 16
type configFile struct {
	Profiles map[string]fileProfile `toml:"profile"`
}

// loadProfiles returns the built-in profiles merged with those in path.
// An empty path yields the built-ins only. Unknown keys are logged, not fatal.
func loadProfiles(path string, logger *log.Logger) (map[string]Profile, error) {
	profiles := builtinProfiles()
	if path == "" {
		return profiles, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg configFile
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("ignoring unknown config key", "key", key.String(), "file", path)
	}

	builtins := builtinProfiles()
	for name, fp := range cfg.Profiles {
		base := fp.Base
		if base == "" {
			base = defaultProfile
		}
		p, ok := builtins[base]
		if !ok {
			return nil, fmt.Errorf("profile %q: base %q: %w", name, base, ErrUnknownProfile)
		}
		p = fp.apply(p)
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		profiles[name] = p
	}

	return profiles, nil
}

// apply overlays the keys present in fp onto p.
func (fp fileProfile) apply(p Profile) Profile {
	set(&p.Strategy, fp.Strategy)
	set(&p.Match, fp.Match)
	set(&p.Mismatch, fp.Mismatch)
	set(&p.Gap, fp.Gap)
	set(&p.Window, fp.Window)
	set(&p.Threshold, fp.Threshold)
	set(&p.Backend, fp.Backend)
	set(&p.Dir, fp.Dir)

	return p
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// validate rejects unknown strategy and backend names.
func (p Profile) validate() error {
	if !slices.Contains([]string{strategyGlobal, strategyLocal, strategyLevenshtein}, p.Strategy) {
		return fmt.Errorf("%q: %w", p.Strategy, ErrUnknownStrategy)
	}
	if _, err := parseBackend(p.Backend); err != nil {
		return err
	}

	return nil
}

// strategy builds the scoring model described by p.
func (p Profile) strategy() (scoring.Strategy[int64], error) {
	opts := []scoring.Option[int64]{
		scoring.WithPenalty(scoring.Penalty[int64]{Match: p.Match, Mismatch: p.Mismatch, Gap: p.Gap}),
		scoring.WithWindow[int64](p.Window),
		scoring.WithThreshold(p.Threshold),
	}
	switch p.Strategy {
	case strategyGlobal:
		return scoring.NeedlemanWunsch(opts...), nil
	case strategyLocal:
		return scoring.SmithWaterman(opts...), nil
	case strategyLevenshtein:
		return scoring.Levenshtein(opts...), nil
	default:
		return nil, fmt.Errorf("%q: %w", p.Strategy, ErrUnknownStrategy)
	}
}

// storage maps the profile's backend to engine options. A mapped backend
// without a directory uses the system temporary directory.
func (p Profile) storage() ([]align.Option, error) {
	b, err := parseBackend(p.Backend)
	if err != nil {
		return nil, err
	}
	if b != matrix.MemoryMapped {
		return []align.Option{align.WithBackend(b)}, nil
	}
	dir := p.Dir
	if dir == "" {
		dir = os.TempDir()
	}

	return []align.Option{align.WithMapped(dir)}, nil
}

// parseBackend accepts the names printed by matrix.Backend.String.
func parseBackend(name string) (matrix.Backend, error) {
	switch strings.ToLower(name) {
	case "", matrix.InMemory.String():
		return matrix.InMemory, nil
	case matrix.MemoryMapped.String():
		return matrix.MemoryMapped, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownBackend)
	}
}
