package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/quirkle-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// SessionReport is a finished session as printed by play
type SessionReport struct {
	Result *model.SessionResult `json:"result"`
	Board  []string             `json:"board,omitempty"` // One string per row
}

// BoardView is the read access RenderBoard needs
type BoardView interface {
	Width() int
	Height() int
	At(pos model.Position) (model.Tile, bool)
	IsOpen(pos model.Position) bool
}

// RenderBoard draws the board one row per string: the shape letter for a
// tile, '.' for an empty cell and, when showFrontier is set, '+' for an open cell
func RenderBoard(b BoardView, showFrontier bool) []string {
	rows := make([]string, b.Height())
	var sb strings.Builder
	for y := range rows {
		sb.Reset()
		for x := 0; x < b.Width(); x++ {
			pos := model.Position{X: x, Y: y}
			if tile, ok := b.At(pos); ok {
				sb.WriteString(model.ShapeSymbol(tile.Shape))
			} else if showFrontier && b.IsOpen(pos) {
				sb.WriteByte('+')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

// PrintEvent writes one line per turn as a session is played
func (o *Output) PrintEvent(e model.Event) {
	switch p := e.Payload.(type) {
	case model.TilePlacedPayload:
		fmt.Fprintf(o.w, "turn %d: %s placed %s at (%d,%d) for %d\n",
			e.Turn, model.PlayerDisplayName(e.Player), p.Tile, p.Position.X, p.Position.Y, p.Score)
	case model.SessionEndedPayload:
		fmt.Fprintf(o.w, "turn %d: session ended (%s)\n", e.Turn, p.Reason)
	default:
		if e.Type == model.EventTurnSkipped {
			fmt.Fprintf(o.w, "turn %d: %s could not place\n", e.Turn, model.PlayerDisplayName(e.Player))
		}
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SessionReport:
		o.printReport(v)
	case []SessionReport:
		for i, r := range v {
			if i > 0 {
				fmt.Fprintln(o.w)
			}
			o.printReport(r)
		}
	case *model.SessionResult:
		o.printResult(v)
	case []*model.SessionResult:
		o.printResultList(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printReport(r SessionReport) {
	o.printResult(r.Result)
	if len(r.Board) > 0 {
		fmt.Fprintln(o.w)
		o.printBoard(r.Board)
	}
}

func (o *Output) printResult(r *model.SessionResult) {
	c := r.Config
	bagDesc := fmt.Sprintf("%d sets", c.NumSets)
	if c.Infinite() {
		bagDesc = "infinite bag"
	}

	fmt.Fprintf(o.w, "Session: %s\n", r.ID)
	fmt.Fprintf(o.w, "Seed: %d\n", r.Seed)
	fmt.Fprintf(o.w, "Strategy: %s\n", model.BotStrategyDisplayName(r.Strategy))
	fmt.Fprintf(o.w, "Board: %dx%d, %d colors, %d players, hand %d, %s\n",
		c.Width, c.Height, c.NumColors, c.NumPlayers, c.HandSize, bagDesc)
	fmt.Fprintf(o.w, "Ended: %s after %d turns, %d tiles placed\n", r.EndReason, r.Turns, r.TilesPlaced)

	fmt.Fprintln(o.w, "\nScores:")
	for _, s := range r.Scores {
		fmt.Fprintf(o.w, "  %s: %d points (%d placed, %d skipped) hand: %s\n",
			model.PlayerDisplayName(s.Player), s.Score, s.Placed, s.Skipped, formatHand(s.Hand))
	}

	if r.Winner >= 0 {
		fmt.Fprintf(o.w, "\nWinner: %s\n", model.PlayerDisplayName(r.Winner))
	} else {
		fmt.Fprintln(o.w, "\nWinner: tie")
	}
}

func (o *Output) printResultList(results []*model.SessionResult) {
	if len(results) == 0 {
		fmt.Fprintln(o.w, "No results")
		return
	}
	for _, r := range results {
		winner := "tie"
		if r.Winner >= 0 {
			winner = model.PlayerDisplayName(r.Winner)
		}
		fmt.Fprintf(o.w, "%s  %s  seed=%d  turns=%d  tiles=%d  %s  winner=%s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Seed, r.Turns, r.TilesPlaced, r.EndReason, winner)
	}
}

func (o *Output) printBoard(rows []string) {
	border := "+" + strings.Repeat("-", len(rows[0])) + "+"
	fmt.Fprintln(o.w, border)
	for _, row := range rows {
		fmt.Fprintf(o.w, "|%s|\n", row)
	}
	fmt.Fprintln(o.w, border)
}

func formatHand(hand []model.Tile) string {
	if len(hand) == 0 {
		return "-"
	}
	parts := make([]string, len(hand))
	for i, t := range hand {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
