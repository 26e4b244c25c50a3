package controller

import (
	"os"

	"github.com/pkg/errors"
	"github.com/they4kman/gridsweep/game"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Rows       int    `yaml:"rows"`
	Cols       int    `yaml:"cols"`
	Difficulty string `yaml:"difficulty"`

	// Seed for the first game; zero picks one from the clock
	Seed int64 `yaml:"seed"`

	// Lives overrides the difficulty's default number of spare lives
	Lives *int `yaml:"lives,omitempty"`

	// Layout replaces random mines with a fixed board, one row per entry,
	// '*' for a mine and '.' for a safe cell
	Layout []string `yaml:"layout,omitempty"`
}

func NewConfig() Config {
	return Config{
		Rows:       9,
		Cols:       9,
		Difficulty: game.Medium.String(),
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	config := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "read config")
	}
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return config, errors.Wrapf(err, "parse config %s", path)
	}
	if _, err := config.difficulty(); err != nil {
		return config, errors.Wrapf(err, "config %s", path)
	}
	return config, nil
}

func (config Config) difficulty() (game.Difficulty, error) {
	return game.ParseDifficulty(config.Difficulty)
}

// lives is one spare life on Medium and none on Hard, unless overridden.
func (config Config) lives(difficulty game.Difficulty) int {
	if config.Lives != nil {
		return *config.Lives
	}
	if difficulty == game.Hard {
		return 0
	}
	return 1
}

func (config Config) newBoard(difficulty game.Difficulty, seed int64) (*game.Board, error) {
	if len(config.Layout) > 0 {
		board, err := game.NewBoardFromLayout(config.Layout)
		return board, errors.Wrap(err, "build board from layout")
	}

	board, err := game.NewBoard(game.BoardConfig{
		Rows:       config.Rows,
		Cols:       config.Cols,
		Difficulty: difficulty,
		Seed:       seed,
	})
	return board, errors.Wrap(err, "build board")
}
