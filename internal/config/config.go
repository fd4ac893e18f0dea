// Package config loads sus settings from YAML, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aaronzipp/sus-math/internal/game"
)

// DefaultPath is the config file looked up when --config is not given
const DefaultPath = "sus.yaml"

// Config holds all sus configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Todo    TodoConfig    `yaml:"todo"`
	Logging LoggingConfig `yaml:"logging"`
}

// GameConfig configures the math game.
type GameConfig struct {
	MinPlayers      int    `yaml:"min_players"`
	MaxPlayers      int    `yaml:"max_players"`
	TaskTarget      int    `yaml:"task_target"`
	TasksPerPlayer  int    `yaml:"tasks_per_player"`
	ImpostorDivisor int    `yaml:"impostor_divisor"` // impostors = max(1, players/divisor)
	QuestionsFile   string `yaml:"questions_file"`   // empty uses the bundled bank
	Seed            uint64 `yaml:"seed"`             // 0 picks a random seed
}

// TodoConfig configures to-do persistence.
type TodoConfig struct {
	Backend string `yaml:"backend"` // json, sqlite, memory
	Path    string `yaml:"path"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
	File   string `yaml:"file"`   // empty logs to stderr
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Game: GameConfig{
			MinPlayers:      game.MinPlayers,
			MaxPlayers:      game.MaxPlayers,
			TaskTarget:      game.TaskTarget,
			TasksPerPlayer:  game.TasksPerPlayer,
			ImpostorDivisor: game.ImpostorDivisor,
		},
		Todo: TodoConfig{
			Backend: "json",
			Path:    "todos.json",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
// Values from .env and the process environment override the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SUS_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid SUS_SEED %q: %w", v, err)
		}
		c.Game.Seed = seed
	}
	if v := os.Getenv("SUS_QUESTIONS"); v != "" {
		c.Game.QuestionsFile = v
	}
	if v := os.Getenv("SUS_TODO_BACKEND"); v != "" {
		c.Todo.Backend = v
	}
	if v := os.Getenv("SUS_TODO_FILE"); v != "" {
		c.Todo.Path = v
	}
	if v := os.Getenv("SUS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	g := c.Game
	if g.MinPlayers < game.MinPlayers {
		return fmt.Errorf("game.min_players must be at least %d, got %d", game.MinPlayers, g.MinPlayers)
	}
	if g.MaxPlayers < g.MinPlayers {
		return fmt.Errorf("game.max_players (%d) is below game.min_players (%d)", g.MaxPlayers, g.MinPlayers)
	}
	if g.MaxPlayers > game.MaxPlayers {
		return fmt.Errorf("game.max_players must be at most %d, got %d", game.MaxPlayers, g.MaxPlayers)
	}
	if g.TaskTarget < 1 {
		return fmt.Errorf("game.task_target must be positive, got %d", g.TaskTarget)
	}
	if g.TasksPerPlayer < 1 {
		return fmt.Errorf("game.tasks_per_player must be positive, got %d", g.TasksPerPlayer)
	}
	if g.ImpostorDivisor < 2 {
		return fmt.Errorf("game.impostor_divisor must be at least 2, got %d", g.ImpostorDivisor)
	}

	switch c.Todo.Backend {
	case "json", "sqlite", "memory":
	default:
		return fmt.Errorf("todo.backend must be json, sqlite or memory, got %q", c.Todo.Backend)
	}
	if c.Todo.Backend != "memory" && c.Todo.Path == "" {
		return fmt.Errorf("todo.path is required for the %s backend", c.Todo.Backend)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
