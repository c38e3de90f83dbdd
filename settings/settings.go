package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/oomph-ac/blockgame/game"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// ErrNotExist is returned by Load if the settings file does not exist.
var ErrNotExist = errors.New("settings file doesn't exist")

// Settings contains everything that can be configured about a session.
type Settings struct {
	World struct {
		// Generator is the name of the world generator: flat or hills.
		Generator string
		Seed      int64
	}
	Player struct {
		// SpawnX and SpawnZ are the world space column the player spawns in. The player spawns on
		// top of the ground of that column.
		SpawnX, SpawnZ float64
		JumpImpulse    float64
		// MoveSpeed is the horizontal speed of the player in blocks per second.
		MoveSpeed        float64
		MouseSensitivity float64
	}
	Interaction struct {
		Reach   float64
		RayStep float64
		// BreakCooldown and PlaceCooldown are in seconds.
		BreakCooldown, PlaceCooldown float64
	}
	Loop struct {
		// TickRate is the number of ticks run per second.
		TickRate int
	}
	Log struct {
		Level string
		// File is a path logs are written to instead of stderr. Logs are discarded if it is empty
		// and a terminal front-end is running.
		File string
	}
	Metrics struct {
		// Address is the address the metrics endpoint listens on. Metrics are not served if it is empty.
		Address string
	}
	Sentry struct {
		DSN string
	}
	Audio struct {
		Enabled bool
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.World.Generator = "flat"

	s.Player.SpawnX = 0
	s.Player.SpawnZ = -2
	s.Player.JumpImpulse = 0.18
	s.Player.MoveSpeed = 5
	s.Player.MouseSensitivity = 0.08

	s.Interaction.Reach = 5
	s.Interaction.RayStep = 0.05
	s.Interaction.BreakCooldown = game.DefaultActionCooldown
	s.Interaction.PlaceCooldown = game.DefaultActionCooldown

	s.Loop.TickRate = game.DefaultTickRate
	s.Log.Level = "info"
	return s
}

// Validate replaces values that cannot be used with their defaults.
func (s *Settings) Validate() {
	def := DefaultSettings()

	positive := func(v *float64, d float64) {
		if *v <= 0 {
			*v = d
		}
	}
	positive(&s.Player.JumpImpulse, def.Player.JumpImpulse)
	positive(&s.Player.MoveSpeed, def.Player.MoveSpeed)
	positive(&s.Player.MouseSensitivity, def.Player.MouseSensitivity)
	positive(&s.Interaction.Reach, def.Interaction.Reach)
	positive(&s.Interaction.RayStep, def.Interaction.RayStep)
	positive(&s.Interaction.BreakCooldown, def.Interaction.BreakCooldown)
	positive(&s.Interaction.PlaceCooldown, def.Interaction.PlaceCooldown)

	if s.Interaction.RayStep > s.Interaction.Reach {
		s.Interaction.RayStep = def.Interaction.RayStep
	}
	if s.Loop.TickRate <= 0 || s.Loop.TickRate > 1000 {
		s.Loop.TickRate = def.Loop.TickRate
	}
	if _, err := logrus.ParseLevel(s.Log.Level); err != nil {
		s.Log.Level = def.Log.Level
	}
	switch strings.ToLower(s.World.Generator) {
	case "flat", "hills":
	default:
		s.World.Generator = def.World.Generator
	}
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return ErrNotExist if the file does not
// exist. Keys missing from the file keep their default values, and the result is validated.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Settings{}, ErrNotExist
	} else if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	s := DefaultSettings()
	if err = toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	s.Validate()
	return s, nil
}

// LoadOrCreate loads the settings file at the path passed, writing the default settings to it first
// if it does not exist yet.
func LoadOrCreate(path string) (Settings, error) {
	s, err := Load(path)
	if errors.Is(err, ErrNotExist) {
		if err = SaveDefault(path); err != nil {
			return Settings{}, err
		}
		return Load(path)
	}
	return s, err
}
