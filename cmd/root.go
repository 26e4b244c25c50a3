package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/gridsweep/controller"
	"github.com/they4kman/gridsweep/game"
)

var (
	sessionConfig = controller.NewConfig()
	configPath    string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "gridsweep",
	Short: "Play Minesweeper in the terminal",
	Long: `gridsweep is a console Minesweeper game.

Run with no arguments to play a 9x9 medium board
	gridsweep

Pick the size and difficulty, and fix the seed to replay a board
	gridsweep -r 16 -c 30 -d hard -s 42
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			game.Log.SetLevel(logrus.DebugLevel)
			controller.Log.SetLevel(logrus.DebugLevel)
		}

		config, err := resolveConfig(cmd.Flags())
		if err != nil {
			return err
		}

		session, err := controller.NewSession(config, os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		return errors.Wrap(session.Play(), "play")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig loads the config file, if any, and lays explicitly set flags
// over it.
func resolveConfig(flags *pflag.FlagSet) (controller.Config, error) {
	if configPath == "" {
		return sessionConfig, nil
	}

	config, err := controller.LoadConfig(configPath)
	if err != nil {
		return config, err
	}
	if flags.Changed("rows") {
		config.Rows = sessionConfig.Rows
	}
	if flags.Changed("cols") {
		config.Cols = sessionConfig.Cols
	}
	if flags.Changed("difficulty") {
		config.Difficulty = sessionConfig.Difficulty
	}
	if flags.Changed("seed") {
		config.Seed = sessionConfig.Seed
	}
	return config, nil
}

type difficultyValue string

func newDifficultyValue(val game.Difficulty, p *string) *difficultyValue {
	*p = val.String()
	return (*difficultyValue)(p)
}

func (value *difficultyValue) String() string {
	return string(*value)
}

func (value *difficultyValue) Set(name string) error {
	difficulty, err := game.ParseDifficulty(name)
	if err != nil {
		return err
	}
	*value = difficultyValue(difficulty.String())
	return nil
}

func (value *difficultyValue) Type() string {
	return "difficulty"
}

func bindFlags(flags *pflag.FlagSet) {
	flags.IntVarP(&sessionConfig.Rows, "rows", "r", sessionConfig.Rows, fmt.Sprintf("Number of board rows (1-%d)", game.MaxRows))
	flags.IntVarP(&sessionConfig.Cols, "cols", "c", sessionConfig.Cols, fmt.Sprintf("Number of board columns (1-%d)", game.MaxCols))
	flags.VarP(newDifficultyValue(game.Medium, &sessionConfig.Difficulty), "difficulty", "d", `Difficulty, controlling mine density and lives.
medium: a quarter of the cells are mines, one spare life
hard: two fifths of the cells are mines, no spare life`)
	flags.Int64VarP(&sessionConfig.Seed, "seed", "s", 0, "Seed for mine placement (0 picks one at random)")
	flags.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

func init() {
	bindFlags(rootCmd.Flags())
}
