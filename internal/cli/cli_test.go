package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/quirkle-go/internal/model"
	"github.com/mcoot/quirkle-go/internal/services/board"
	"github.com/mcoot/quirkle-go/internal/testutil"
)

type CLISuite struct {
	suite.Suite
	dbPath string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.T().Setenv("QUIRKLE_STORAGE", "")
	s.T().Setenv("QUIRKLE_OUTPUT", "")
	s.T().Setenv("QUIRKLE_LOG_LEVEL", "")
	s.dbPath = filepath.Join(s.T().TempDir(), "results.db")
}

// run executes the CLI in-process against a sqlite store and returns stdout
func (s *CLISuite) run(args ...string) (string, error) {
	cmd := NewRootCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--storage", "sqlite", "--sqlite-path", s.dbPath}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func (s *CLISuite) TestPlayTextOutput() {
	out, err := s.run("play", "--seed", "7", "--players", "2")
	s.Require().NoError(err)

	s.Contains(out, "Seed: 7")
	s.Contains(out, "Strategy: Greedy first-fit")
	s.Contains(out, "Board: 40x20, 6 colors, 2 players, hand 6, 3 sets")
	s.Contains(out, "Player 1:")
	s.Contains(out, "Player 2:")
	s.NotContains(out, "Player 3:")
}

func (s *CLISuite) TestPlayShowsBoard() {
	out, err := s.run("play", "--seed", "7", "--width", "12", "--height", "6", "--max-turns", "3", "--show-board", "--show-frontier")
	s.Require().NoError(err)

	s.Contains(out, "+------------+")
	lines := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") && strings.HasSuffix(line, "|") {
			lines++
			s.Len(line, 14)
		}
	}
	s.Equal(6, lines)
}

func (s *CLISuite) TestPlayJSONMultipleSessions() {
	out, err := s.run("--output", "json", "play", "--seed", "10", "--sessions", "3", "--max-turns", "20")
	s.Require().NoError(err)

	var reports []SessionReport
	s.Require().NoError(json.Unmarshal([]byte(out), &reports))
	s.Require().Len(reports, 3)
	s.Equal(uint64(10), reports[0].Result.Seed)
	s.Equal(uint64(11), reports[1].Result.Seed)
	s.Equal(uint64(12), reports[2].Result.Seed)
}

func (s *CLISuite) TestPlayTrace() {
	out, err := s.run("play", "--seed", "7", "--max-turns", "2", "--trace")
	s.Require().NoError(err)

	s.Contains(out, "turn 0: Player 1 placed")
	s.Contains(out, "session ended (turn_limit)")
}

func (s *CLISuite) TestResultsRoundTrip() {
	out, err := s.run("--output", "json", "play", "--seed", "3", "--max-turns", "10")
	s.Require().NoError(err)
	var report SessionReport
	s.Require().NoError(json.Unmarshal([]byte(out), &report))
	id := string(report.Result.ID)

	out, err = s.run("results", "list")
	s.Require().NoError(err)
	s.Contains(out, id)
	s.Contains(out, "seed=3")

	out, err = s.run("results", "get", id)
	s.Require().NoError(err)
	s.Contains(out, "Session: "+id)

	out, err = s.run("results", "delete", id)
	s.Require().NoError(err)
	s.Contains(out, "Deleted result "+id)

	_, err = s.run("results", "get", id)
	s.ErrorIs(err, model.ErrResultNotFound)

	out, err = s.run("results", "list")
	s.Require().NoError(err)
	s.Contains(out, "No results")
}

func (s *CLISuite) TestInvalidFlags() {
	_, err := s.run("--output", "yaml", "play")
	s.Error(err)

	_, err = s.run("--log-level", "loud", "play")
	s.Error(err)

	_, err = s.run("play", "--sessions", "0")
	s.Error(err)

	_, err = s.run("play", "--colors", "0")
	s.ErrorIs(err, model.ErrInvalidConfig)
}

func (s *CLISuite) TestRenderBoard() {
	b, err := board.New(5, 3, 3, testutil.NopLogger())
	s.Require().NoError(err)

	s.Equal([]string{".....", "..+..", "....."}, RenderBoard(b, true))
	s.Equal([]string{".....", ".....", "....."}, RenderBoard(b, false))

	s.Require().Positive(b.Move(model.Position{X: 2, Y: 1}, model.Tile{Shape: 2, Color: 0}))
	s.Equal([]string{"..+..", ".+C+.", "..+.."}, RenderBoard(b, true))
}
