package controller

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gridsweep/game"
)

var Log = logrus.New()

type Outcome int

const (
	Lost Outcome = iota
	Won
	Ongoing
)

func (outcome Outcome) String() string {
	switch outcome {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "ongoing"
	}
}

// Session runs games on a console until the player stops asking for more.
type Session struct {
	config     Config
	difficulty game.Difficulty

	in  *bufio.Scanner
	out io.Writer
	log *logrus.Entry

	board   *game.Board
	lives   int
	outcome Outcome
	seeds   *rand.Rand

	played, won int
}

func NewSession(config Config, in io.Reader, out io.Writer) (*Session, error) {
	difficulty, err := config.difficulty()
	if err != nil {
		return nil, errors.Wrap(err, "new session")
	}

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Session{
		config:     config,
		difficulty: difficulty,
		in:         scanner,
		out:        out,
		log:        Log.WithField("difficulty", difficulty),
		outcome:    Ongoing,
	}, nil
}

func (s *Session) Board() *game.Board {
	return s.board
}

func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Play runs games back to back. Running out of input ends the session
// without an error.
func (s *Session) Play() error {
	s.println("Hello! Welcome to gridsweep")

	for {
		if err := s.newGame(); err != nil {
			return err
		}

		err := s.run()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		again, err := s.askPlayAgain()
		if err == io.EOF || (err == nil && !again) {
			s.farewell()
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) newGame() error {
	seed := s.config.Seed
	if s.seeds != nil {
		seed = s.seeds.Int63()
	}

	board, err := s.config.newBoard(s.difficulty, seed)
	if err != nil {
		return err
	}
	if s.seeds == nil {
		// derive later seeds from the first one so a whole session replays
		s.seeds = rand.New(rand.NewSource(board.Seed()))
	}

	s.board = board
	s.lives = s.config.lives(s.difficulty)
	s.outcome = Ongoing
	s.played++

	s.log.WithFields(logrus.Fields{
		"rows":  board.Rows(),
		"cols":  board.Cols(),
		"mines": board.Counters().MineCount,
		"seed":  board.Seed(),
		"lives": s.lives,
	}).Info("new game")

	s.println("Good Luck!")
	return nil
}

func (s *Session) run() error {
	for s.outcome == Ongoing {
		if s.hasWon() {
			s.finish(Won)
			break
		}
		if err := s.turn(); err != nil {
			return err
		}
	}

	s.printBoard()
	if s.outcome == Won {
		s.println("You won!! Congrats!!!")
	} else {
		s.println("You lost! Game over... Good luck next time :)")
	}
	return nil
}

// hasWon also rejects wins where the only cells left are safe ones
// hidden under wrong flags.
func (s *Session) hasWon() bool {
	if !s.board.IsWon() {
		return false
	}
	for row := 0; row < s.board.Rows(); row++ {
		for col := 0; col < s.board.Cols(); col++ {
			c := game.Coordinate{Row: row, Col: col}
			cell, _ := s.board.StateAt(c)
			truth, _ := s.board.GroundTruthAt(c)
			if cell.State == game.Flagged && truth == game.Safe {
				return false
			}
		}
	}
	return true
}

func (s *Session) finish(outcome Outcome) {
	s.outcome = outcome
	if outcome == Won {
		s.won++
	}
	s.log.WithFields(logrus.Fields{
		"outcome":  outcome,
		"counters": s.board.Counters(),
	}).Info("game over")
}

func (s *Session) turn() error {
	s.printBoard()
	counters := s.board.Counters()
	s.printf("Total mines: %d, Flags left: %d, Lives left: %d\n", counters.MineCount, counters.FlagsRemaining, s.lives)
	s.printf("Enter location as row and column, (-1 -1) to give up: row (0 - %d), column (0 - %d)\n", s.board.Rows()-1, s.board.Cols()-1)

	row, err := s.readInt()
	if err != nil {
		return err
	}
	col, err := s.readInt()
	if err != nil {
		return err
	}

	if row == -1 && col == -1 {
		s.finish(Lost)
		return nil
	}

	c := game.Coordinate{Row: row, Col: col}
	if !s.board.InBounds(c) {
		s.printf("Invalid location, please pick one between (0, 0) and (%d, %d)\n", s.board.Rows()-1, s.board.Cols()-1)
		return nil
	}

	return s.act(c)
}

func (s *Session) act(c game.Coordinate) error {
	current, err := s.board.StateAt(c)
	if err != nil {
		return err
	}
	if current.State == game.ExposedMine || current.State == game.ExposedBlank {
		s.println("Location is already cleared, please try another location!")
		return nil
	}

	if err := s.board.MarkBusy(c); err != nil {
		return err
	}
	defer s.board.ClearBusy(c)

	s.printBoard()
	s.printf("Location: %v\nCurrent state: %v\n", c, current.State)

	if current.State == game.ExposedNumber {
		choice, err := s.menu("1- Auto-Expand", "2- Go Back")
		if err != nil {
			return err
		}
		if choice == 1 {
			s.expand(c)
		}
		return nil
	}

	choice, err := s.menu("1- Check", "2- Mark", "3- Unmark", "4- Go Back")
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		s.check(c, current.State)
	case 2:
		s.report(s.board.Flag(c))
	case 3:
		s.report(s.board.Unflag(c))
	}
	return nil
}

func (s *Session) check(c game.Coordinate, current game.CellState) {
	if current == game.Flagged {
		s.println("Location is marked, unmark it first to be able to check it.")
		return
	}

	truth, err := s.board.GroundTruthAt(c)
	if err != nil {
		s.report(err)
		return
	}
	if truth == game.Mine {
		if err := s.board.ExposeMine(c); err != nil {
			s.report(err)
			return
		}
		s.hitMines(c, 1)
		return
	}

	_, err = s.board.Reveal(c)
	s.report(err)
}

func (s *Session) expand(c game.Coordinate) {
	hits, err := s.board.ForceExpand(c)
	if errors.Is(err, game.ErrRefusedExpansion) {
		s.println("Invalid Expansion! The flags around this cell don't match its number.")
		return
	}
	if err != nil {
		s.report(err)
		return
	}
	s.printf("Hit mines: %d\n", hits)
	if hits > 0 {
		s.hitMines(c, hits)
	}
}

func (s *Session) hitMines(c game.Coordinate, hits int) {
	s.log.WithFields(logrus.Fields{
		"location": c,
		"hits":     hits,
		"lives":    s.lives,
	}).Info("mine hit")

	if hits > s.lives {
		s.finish(Lost)
		return
	}
	s.lives -= hits
	s.println("You hit a mine... BUT!! You get a second chance!")
}

// report prints a recoverable engine error for the player.
func (s *Session) report(err error) {
	if err == nil {
		return
	}
	var transition game.InvalidTransitionError
	if errors.As(err, &transition) {
		s.printf("Can't do that: %v\n", transition)
		return
	}
	s.printf("%v\n", err)
}

func (s *Session) askPlayAgain() (bool, error) {
	s.println("Press 1 to play again or anything else to quit")
	if !s.in.Scan() {
		return false, s.inputErr()
	}
	return s.in.Text() == "1", nil
}

func (s *Session) farewell() {
	if s.outcome == Won {
		s.println("Goodbye champ! See you next time.")
	} else {
		s.println("Goodbye! See you next time.")
	}
	s.log.WithFields(logrus.Fields{
		"played": s.played,
		"won":    s.won,
	}).Info("session over")
}

func (s *Session) menu(options ...string) (int, error) {
	s.println("Your action:")
	s.println(strings.Join(options, "\n"))
	return s.readInt()
}

// readInt keeps asking until it gets a number or input runs out.
func (s *Session) readInt() (int, error) {
	for s.in.Scan() {
		n, err := strconv.Atoi(s.in.Text())
		if err == nil {
			return n, nil
		}
		s.println("Invalid input. Please enter a number.")
	}
	return 0, s.inputErr()
}

func (s *Session) inputErr() error {
	if err := s.in.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}
	return io.EOF
}

func (s *Session) printBoard() {
	rendered := s.board.Render()
	width := len(strconv.Itoa(max(s.board.Rows(), s.board.Cols()) - 1))

	var b strings.Builder
	for _, line := range rendered {
		for i, symbol := range line {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", width, symbol)
		}
		b.WriteByte('\n')
	}
	io.WriteString(s.out, b.String())
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
