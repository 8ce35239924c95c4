package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/quirkle-go/internal/model"
)

func newResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Stored session results",
	}

	cmd.AddCommand(newResultsListCmd())
	cmd.AddCommand(newResultsGetCmd())
	cmd.AddCommand(newResultsDeleteCmd())

	return cmd
}

func newResultsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored results, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := app.GameController.ListResults(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(results)
			return nil
		},
	}
}

func newResultsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a stored result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.GameController.GetResult(cmd.Context(), model.SessionID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newResultsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.GameController.DeleteResult(cmd.Context(), model.SessionID(args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Deleted result %s", args[0]))
			return nil
		},
	}
}
