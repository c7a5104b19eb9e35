// Package config loads and validates the JSON configuration that selects a
// simulation's scenario, integrator and physical parameters.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// InitialConditions is the bulge/core particle's starting state, shared by
// both scenario kinds.
type InitialConditions struct {
	PositionX float64 `json:"positionX"`
	PositionY float64 `json:"positionY"`
	VelocityX float64 `json:"velocityX"`
	VelocityY float64 `json:"velocityY"`
}

// GalaxySettings describes one galaxy's bulge and disk for either the
// Single Galaxy scenario or one entry of a Galaxy Collision scenario.
type GalaxySettings struct {
	NumberOfParticles  int               `json:"Number of particles"`
	BulgeMass          float64           `json:"Bulge mass"`
	BulgeRadius        float64           `json:"Bulge radius"`
	DiskRadius         float64           `json:"Disk radius"`
	MinimumStellarMass float64           `json:"Minimum stellar mass"`
	MaximumStellarMass float64           `json:"Maximum stellar mass"`
	InitialConditions  InitialConditions `json:"Initial conditions"`
}

// SimulationSettings holds the per-scenario object named by the top-level
// Simulation field. Exactly one of SingleGalaxy or GalaxyCollision is used,
// depending on that field's value.
type SimulationSettings struct {
	SingleGalaxy    *GalaxySettings           `json:"Single Galaxy,omitempty"`
	GalaxyCollision map[string]GalaxySettings `json:"Galaxy Collision,omitempty"`
}

// Config is the fully parsed, validated simulation configuration.
type Config struct {
	WindowSize  int                `json:"Window size"`
	FieldOfView float64            `json:"Field of view"`
	Simulation  string             `json:"Simulation"`
	Model       string             `json:"Model"`
	Integrator  string             `json:"Integrator"`
	TimeStep    float64            `json:"Time step"`
	Settings    SimulationSettings `json:"Simulation settings"`
}

const (
	// ScenarioSingleGalaxy and ScenarioGalaxyCollision are the two
	// supported values of Config.Simulation.
	ScenarioSingleGalaxy    = "Single Galaxy"
	ScenarioGalaxyCollision = "Galaxy Collision"

	// ModelNBody is the only supported value of Config.Model; any other
	// (or missing) value defaults to it (spec.md §6).
	ModelNBody = "N-body"

	// IntegratorEuler, IntegratorHeun and IntegratorRK4 are the supported
	// values of Config.Integrator. Unknown values default to Heun.
	IntegratorEuler = "Euler"
	IntegratorHeun  = "Heun"
	IntegratorRK4   = "RK4"
)

// DefaultConfig returns a minimal, valid Single Galaxy configuration,
// mirroring the teacher's DefaultConfig shape: a ready-to-run starting
// point rather than the zero value.
func DefaultConfig() *Config {
	return &Config{
		WindowSize:  900,
		FieldOfView: 60,
		Simulation:  ScenarioSingleGalaxy,
		Model:       ModelNBody,
		Integrator:  IntegratorHeun,
		TimeStep:    1000,
		Settings: SimulationSettings{
			SingleGalaxy: &GalaxySettings{
				NumberOfParticles:  500,
				BulgeMass:          1e6,
				BulgeRadius:        500,
				DiskRadius:         15000,
				MinimumStellarMass: 0.1,
				MaximumStellarMass: 2,
			},
		},
	}
}

// Load reads and validates a configuration file at path. It returns an
// error for a missing file, malformed JSON, or a structurally invalid
// configuration (spec.md §7's "configuration error" class, fatal at
// construction) - unknown Model/Integrator enum values are NOT treated as
// errors here and instead silently default, per spec.md §6.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// applyDefaults resolves unknown Model/Integrator values to their
// documented defaults (spec.md §6: "unknown values default to N-body" /
// "unknown -> Heun").
func (c *Config) applyDefaults() {
	if c.Model != ModelNBody {
		c.Model = ModelNBody
	}
	switch c.Integrator {
	case IntegratorEuler, IntegratorHeun, IntegratorRK4:
	default:
		c.Integrator = IntegratorHeun
	}
}

// Validate checks structural validity: a positive time step, a recognized
// scenario, and a populated settings object for that scenario.
func (c *Config) Validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("invalid window size: %d", c.WindowSize)
	}
	if c.TimeStep <= 0 {
		return fmt.Errorf("invalid time step: %f", c.TimeStep)
	}

	switch c.Simulation {
	case ScenarioSingleGalaxy:
		if c.Settings.SingleGalaxy == nil {
			return fmt.Errorf("simulation %q requires a %q settings object", c.Simulation, c.Simulation)
		}
		if err := c.Settings.SingleGalaxy.validate(); err != nil {
			return err
		}
	case ScenarioGalaxyCollision:
		if len(c.Settings.GalaxyCollision) == 0 {
			return fmt.Errorf("simulation %q requires a non-empty %q settings object", c.Simulation, c.Simulation)
		}
		for key, galaxy := range c.Settings.GalaxyCollision {
			if err := galaxy.validate(); err != nil {
				return fmt.Errorf("galaxy %q: %w", key, err)
			}
		}
	default:
		return fmt.Errorf("unrecognized simulation %q", c.Simulation)
	}

	return nil
}

func (g GalaxySettings) validate() error {
	if g.NumberOfParticles <= 0 {
		return fmt.Errorf("invalid number of particles: %d", g.NumberOfParticles)
	}
	if g.BulgeMass <= 0 {
		return fmt.Errorf("invalid bulge mass: %f", g.BulgeMass)
	}
	if g.DiskRadius < g.BulgeRadius {
		return fmt.Errorf("disk radius %f must not be smaller than bulge radius %f", g.DiskRadius, g.BulgeRadius)
	}
	if g.MaximumStellarMass < g.MinimumStellarMass {
		return fmt.Errorf("maximum stellar mass %f must not be smaller than minimum %f", g.MaximumStellarMass, g.MinimumStellarMass)
	}
	return nil
}

// Clone creates a deep-enough copy of the configuration for safe mutation
// by a caller (e.g. a test adjusting one galaxy's particle count).
func (c *Config) Clone() *Config {
	clone := *c
	if c.Settings.SingleGalaxy != nil {
		galaxy := *c.Settings.SingleGalaxy
		clone.Settings.SingleGalaxy = &galaxy
	}
	if c.Settings.GalaxyCollision != nil {
		clone.Settings.GalaxyCollision = make(map[string]GalaxySettings, len(c.Settings.GalaxyCollision))
		for k, v := range c.Settings.GalaxyCollision {
			clone.Settings.GalaxyCollision[k] = v
		}
	}
	return &clone
}
