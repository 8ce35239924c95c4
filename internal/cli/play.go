package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/quirkle-go/internal/model"
	"github.com/mcoot/quirkle-go/internal/services/game"
)

type playOptions struct {
	config       model.GameConfig
	seed         uint64
	maxTurns     int
	stopOnStall  bool
	strategy     string
	sessions     int
	showBoard    bool
	showFrontier bool
	trace        bool
}

func newPlayCmd() *cobra.Command {
	opts := playOptions{config: model.DefaultGameConfig()}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run one or more bot sessions and store the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.sessions < 1 {
				return fmt.Errorf("--sessions must be at least 1, got %d", opts.sessions)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())

			var reports []SessionReport
			for i := 0; i < opts.sessions; i++ {
				params := game.SessionParams{
					Config:      opts.config,
					MaxTurns:    opts.maxTurns,
					StopOnStall: opts.stopOnStall,
					Strategy:    opts.strategy,
				}
				// Consecutive seeds keep a multi-session run reproducible
				if opts.seed != 0 {
					params.Seed = opts.seed + uint64(i)
				}
				if opts.trace && cfg.Output == "text" {
					params.OnEvent = out.PrintEvent
				}

				result, session, err := app.GameController.RunSession(cmd.Context(), params)
				if err != nil {
					return err
				}

				report := SessionReport{Result: result}
				if opts.showBoard {
					report.Board = RenderBoard(session.Board(), opts.showFrontier)
				}
				reports = append(reports, report)
			}

			if len(reports) == 1 {
				out.Print(reports[0])
			} else {
				out.Print(reports)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.config.Width, "width", opts.config.Width, "Board width")
	flags.IntVar(&opts.config.Height, "height", opts.config.Height, "Board height")
	flags.IntVar(&opts.config.NumColors, "colors", opts.config.NumColors, "Number of colors and shapes, also the max line length")
	flags.IntVar(&opts.config.NumPlayers, "players", opts.config.NumPlayers, "Number of players")
	flags.IntVar(&opts.config.HandSize, "hand-size", opts.config.HandSize, "Tiles held by each player")
	flags.IntVar(&opts.config.NumSets, "sets", opts.config.NumSets, "Copies of each tile in the bag, 0 for an infinite bag")
	flags.Uint64Var(&opts.seed, "seed", 0, "Random seed, 0 picks one")
	flags.IntVar(&opts.maxTurns, "max-turns", 0, fmt.Sprintf("Turn limit, 0 for the default of %d, negative for none", game.DefaultMaxTurns))
	flags.BoolVar(&opts.stopOnStall, "stop-on-stall", false, "End the session once a full rotation places nothing")
	flags.StringVar(&opts.strategy, "strategy", model.BotStrategyGreedy, "Bot strategy")
	flags.IntVar(&opts.sessions, "sessions", 1, "Number of sessions to run")
	flags.BoolVar(&opts.showBoard, "show-board", false, "Print the final board")
	flags.BoolVar(&opts.showFrontier, "show-frontier", false, "Mark open cells with + on the printed board")
	flags.BoolVar(&opts.trace, "trace", false, "Print every turn as it is played (text output only)")

	return cmd
}
