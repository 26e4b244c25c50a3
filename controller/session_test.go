package controller

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gridsweep/game"
)

func TestMain(m *testing.M) {
	for _, log := range []*logrus.Logger{Log, game.Log} {
		log.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
		log.SetOutput(io.Discard)
	}
	os.Exit(m.Run())
}

func play(t *testing.T, config Config, input string) (*Session, string) {
	t.Helper()
	var out bytes.Buffer
	session, err := NewSession(config, strings.NewReader(input), &out)
	require.NoError(t, err)
	require.NoError(t, session.Play())
	return session, out.String()
}

func layoutConfig(difficulty string, layout ...string) Config {
	config := NewConfig()
	config.Difficulty = difficulty
	config.Layout = layout
	return config
}

func TestSessionWin(t *testing.T) {
	session, out := play(t, layoutConfig("medium", "*..", "..."), `
1 2 1
1 0 1
2
`)

	assert.Equal(t, Won, session.Outcome())
	assert.Contains(t, out, "You won!!")
	assert.Contains(t, out, "Goodbye champ!")
	assert.True(t, session.Board().IsWon())
}

func TestSessionLoseOnHard(t *testing.T) {
	session, out := play(t, layoutConfig("hard", "*..", "..."), "0 0 1\n")

	assert.Equal(t, Lost, session.Outcome())
	assert.Contains(t, out, "You lost!")

	cell, err := session.Board().StateAt(game.Coordinate{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, game.ExposedMine, cell.State)
}

func TestSessionSecondChance(t *testing.T) {
	session, out := play(t, layoutConfig("medium", "*..", "..."), `
0 0 1
1 2 1
1 0 1
`)

	assert.Contains(t, out, "second chance")
	assert.Equal(t, Won, session.Outcome())
	assert.Equal(t, game.Counters{MineCount: 1, MinesRemaining: 0, FlagsRemaining: 1, CellsToClear: 0}, session.Board().Counters())
}

func TestSessionLivesOverride(t *testing.T) {
	config := layoutConfig("medium", "*..", "...")
	lives := 0
	config.Lives = &lives

	session, _ := play(t, config, "0 0 1\n")
	assert.Equal(t, Lost, session.Outcome())
}

func TestSessionChord(t *testing.T) {
	session, out := play(t, layoutConfig("medium", "*..", "...", "..*"), `
1 1 1
0 0 2
2 2 2
1 1 1
`)

	assert.Contains(t, out, "1- Auto-Expand")
	assert.Contains(t, out, "Hit mines: 0")
	assert.Equal(t, Won, session.Outcome())
}

func TestSessionRefusedChord(t *testing.T) {
	session, out := play(t, layoutConfig("medium", "*..", "...", "..*"), `
1 1 1
1 1 1
`)

	assert.Contains(t, out, "Invalid Expansion!")
	assert.Equal(t, Ongoing, session.Outcome())

	// the busy marker is gone once the action is over
	cell, err := session.Board().StateAt(game.Coordinate{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, game.ExposedNumber, cell.State)
}

func TestSessionShowsBusyCell(t *testing.T) {
	_, out := play(t, layoutConfig("medium", "*..", "..."), "0 1 4\n")

	assert.Contains(t, out, "0 - X -")
	assert.Contains(t, out, "Current state: hidden")
}

func TestSessionBadInput(t *testing.T) {
	session, out := play(t, layoutConfig("medium", "*..", "..."), `
abc 5 5
1 2 1
1 2
1 0 3
1 0 2
1 0 1
`)

	assert.Contains(t, out, "Invalid input")
	assert.Contains(t, out, "Invalid location")
	assert.Contains(t, out, "already cleared")
	assert.Contains(t, out, "Can't do that")
	assert.Contains(t, out, "unmark it first")
	assert.Equal(t, Ongoing, session.Outcome())

	cell, err := session.Board().StateAt(game.Coordinate{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, game.ExposedNumber, cell.State)
	cell, err = session.Board().StateAt(game.Coordinate{Row: 1, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, game.Flagged, cell.State)
}

func TestSessionWrongFlagIsNoWin(t *testing.T) {
	session, _ := play(t, layoutConfig("medium", "*."), "0 1 2\n")

	assert.True(t, session.Board().IsWon())
	assert.Equal(t, Ongoing, session.Outcome())
}

func TestSessionForfeitAndReplay(t *testing.T) {
	session, out := play(t, layoutConfig("medium", "*..", "..."), `
-1 -1
1
-1 -1
q
`)

	assert.Equal(t, 2, strings.Count(out, "Good Luck!"))
	assert.Equal(t, Lost, session.Outcome())
	assert.Contains(t, out, "Goodbye! See you next time.")
}

func TestSessionSeededBoards(t *testing.T) {
	config := NewConfig()
	config.Seed = 99

	first, _ := play(t, config, "-1 -1\n1\n-1 -1\n")
	second, _ := play(t, config, "-1 -1\n")

	assert.Equal(t, int64(99), second.Board().Seed())
	assert.NotEqual(t, int64(99), first.Board().Seed())
}

func TestNewSessionBadDifficulty(t *testing.T) {
	config := NewConfig()
	config.Difficulty = "easy"

	_, err := NewSession(config, strings.NewReader(""), io.Discard)
	assert.Error(t, err)
}

func TestSessionBadDimensions(t *testing.T) {
	config := NewConfig()
	config.Rows = 40

	session, err := NewSession(config, strings.NewReader(""), io.Discard)
	require.NoError(t, err)

	err = session.Play()
	var dimErr game.DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 40, dimErr.Rows)
}
