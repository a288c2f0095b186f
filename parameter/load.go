package parameter

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pixil98/go-errors"
)

// Environment overrides, applied after the config file
const (
	EnvDashPolicy            = "SHROUD_DASH_POLICY"
	EnvSpawnInterval         = "SHROUD_SPAWN_INTERVAL"
	EnvInvulnerabilityWindow = "SHROUD_INVULNERABILITY_WINDOW"
	EnvMaxHealth             = "SHROUD_MAX_HEALTH"
	EnvShroudEnabled         = "SHROUD_SHROUD_ENABLED"
)

// Decode overlays TOML data onto base, keys absent from data keep their base value
func Decode(data []byte, base Tuning) (Tuning, error) {
	t := base
	// Obstacle tables replace the default layout rather than extend it
	t.Level.Obstacles = nil
	if err := toml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("decoding tuning: %w", err)
	}
	if t.Level.Obstacles == nil {
		t.Level.Obstacles = base.Level.Obstacles
	}
	return t, nil
}

// LoadFile reads a TOML tuning file over base
func LoadFile(path string, base Tuning) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading tuning file: %w", err)
	}
	return Decode(data, base)
}

// ApplyEnv applies SHROUD_* overrides read through getenv (os.Getenv in production)
// Malformed values are all reported, well-formed ones are still applied
func ApplyEnv(t Tuning, getenv func(string) string) (Tuning, error) {
	el := errors.NewErrorList()

	if v := getenv(EnvDashPolicy); v != "" {
		p, err := ParseDashPolicy(v)
		if err != nil {
			el.Add(fmt.Errorf("%s: %w", EnvDashPolicy, err))
		} else {
			t.DashPolicy = p
		}
	}

	if v := getenv(EnvSpawnInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			el.Add(fmt.Errorf("%s: %w", EnvSpawnInterval, err))
		} else {
			t.SpawnInterval = Duration(d)
		}
	}

	if v := getenv(EnvInvulnerabilityWindow); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			el.Add(fmt.Errorf("%s: %w", EnvInvulnerabilityWindow, err))
		} else {
			t.InvulnerabilityWindow = Duration(d)
		}
	}

	if v := getenv(EnvMaxHealth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			el.Add(fmt.Errorf("%s: %w", EnvMaxHealth, err))
		} else {
			t.CharacterMaxHealth = n
		}
	}

	if v := getenv(EnvShroudEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			el.Add(fmt.Errorf("%s: %w", EnvShroudEnabled, err))
		} else {
			t.ShroudEnabled = b
		}
	}

	return t, el.Err()
}

// Load resolves defaults, optional file and environment, then validates
func Load(path string, getenv func(string) string) (Tuning, error) {
	t := DefaultTuning()

	if path != "" {
		var err error
		t, err = LoadFile(path, t)
		if err != nil {
			return t, err
		}
	}

	t, err := ApplyEnv(t, getenv)
	if err != nil {
		return t, fmt.Errorf("environment: %w", err)
	}

	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}
