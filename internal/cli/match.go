package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go2/internal/api/request"
	"github.com/mcoot/battleship-go2/internal/api/response"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match management commands",
	}

	cmd.AddCommand(newMatchNewCmd())
	cmd.AddCommand(newMatchListCmd())
	cmd.AddCommand(newMatchGetCmd())
	cmd.AddCommand(newMatchDeleteCmd())
	cmd.AddCommand(newMatchPlaceCmd())
	cmd.AddCommand(newMatchRandomizeCmd())
	cmd.AddCommand(newMatchClearCmd())
	cmd.AddCommand(newMatchAttackCmd())
	cmd.AddCommand(newMatchComputerTurnCmd())

	return cmd
}

func matchPath(id string, suffix string) string {
	return "/api/v1/matches/" + id + suffix
}

func newMatchNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a match against the computer",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Match

			if err := client.Post("/api/v1/matches", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newMatchListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.MatchList

			if err := client.Get("/api/v1/matches", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newMatchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Match

			if err := client.Get(matchPath(args[0], ""), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newMatchDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(matchPath(args[0], ""), nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("Match deleted")
			return nil
		},
	}
}

func newMatchPlaceCmd() *cobra.Command {
	var side string

	cmd := &cobra.Command{
		Use:   "place <id> <length> <row> <col> <horizontal|vertical>",
		Short: "Place one ship",
		Long: `Place the next unplaced ship of the given length.

The ship starts at (row, col) and extends right (horizontal) or down
(vertical). Ships may not overlap or touch, even diagonally.`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args[1:4], "length", "row", "col")
			if err != nil {
				return err
			}

			req := request.PlaceShipRequest{
				Side:      side,
				Length:    nums[0],
				Row:       nums[1],
				Col:       nums[2],
				Direction: args[4],
			}
			var result response.Match
			if err := client.Post(matchPath(args[0], "/ships"), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&side, "side", "human", "Side to place for: human, computer")

	return cmd
}

func newMatchRandomizeCmd() *cobra.Command {
	var side string

	cmd := &cobra.Command{
		Use:   "randomize <id>",
		Short: "Replace a side's fleet with a random legal layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Match
			req := request.SideRequest{Side: side}
			if err := client.Post(matchPath(args[0], "/fleet/random"), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&side, "side", "human", "Side to randomize: human, computer")

	return cmd
}

func newMatchClearCmd() *cobra.Command {
	var side string

	cmd := &cobra.Command{
		Use:   "clear <id>",
		Short: "Remove every ship from a side's board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Match
			if err := client.Delete(matchPath(args[0], "/fleet/"+side), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&side, "side", "human", "Side to clear: human, computer")

	return cmd
}

func newMatchAttackCmd() *cobra.Command {
	var side string

	cmd := &cobra.Command{
		Use:   "attack <id> <row> <col>",
		Short: "Fire at a cell of the opponent's board",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args[1:3], "row", "col")
			if err != nil {
				return err
			}

			req := request.AttackRequest{Side: side, Row: nums[0], Col: nums[1]}
			var result response.AttackResponse
			if err := client.Post(matchPath(args[0], "/attacks"), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&side, "side", "human", "Side firing: human, computer")

	return cmd
}

func newMatchComputerTurnCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "computer-turn <id>",
		Short: "Let the computer fire",
		Long: `Let the computer fire one shot, or with --all keep firing until the
turn passes back to the human or the match ends.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout())

			if all {
				var result response.ComputerTurnsResponse
				if err := client.Post(matchPath(args[0], "/computer-turns"), nil, &result); err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			var result response.AttackResponse
			if err := client.Post(matchPath(args[0], "/computer-turn"), nil, &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Keep firing until the computer's turn ends")

	return cmd
}

// parseInts converts positional arguments, naming the first one that is not a number
func parseInts(args []string, names ...string) ([]int, error) {
	nums := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number, got %q", names[i], arg)
		}
		nums[i] = n
	}
	return nums, nil
}
