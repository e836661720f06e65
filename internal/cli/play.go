package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go2/internal/api/response"
	"github.com/mcoot/battleship-go2/internal/factory"
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/commitment"
)

// newLocalApp builds the in-process app the play command runs against
var newLocalApp = func() (*factory.App, error) {
	return factory.New(factory.Config{})
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a match against the computer locally",
		Long: `Play a complete match in this terminal without a server.

Your fleet is laid out at random. Enter shots as "row col" (both 0-9).
A hit lets you fire again; after a miss the computer fires until it misses.
Enter "quit" to give up.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newLocalApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			return playMatch(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func playMatch(ctx context.Context, app *factory.App, in io.Reader, w io.Writer) error {
	out := NewOutput("text", w)

	m, err := app.MatchController.CreateMatch(ctx)
	if err != nil {
		return err
	}
	id := m.ID()
	if m, err = app.MatchController.RandomizeFleet(ctx, id, model.SideHuman); err != nil {
		return err
	}

	out.Print(response.MatchFromModel(m))
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(w, "\nFire at (row col), or quit: ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			fmt.Fprintln(w, "Match abandoned")
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Fprintln(w, "Enter a row and a column, e.g. 3 7")
			continue
		}
		nums, err := parseInts(fields, "row", "col")
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}

		outcome, err := app.MatchController.Attack(ctx, id, model.SideHuman, model.Position{Row: nums[0], Col: nums[1]})
		if err != nil {
			fmt.Fprintf(w, "Could not fire: %s\n", err)
			continue
		}
		out.printOutcome(outcome)

		if !outcome.GameOver && outcome.TurnSwitched {
			outcomes, err := app.BotService.ProcessComputerTurns(ctx, id)
			if err != nil {
				return err
			}
			for _, o := range outcomes {
				out.printOutcome(o)
			}
		}

		if m, err = app.MatchController.GetMatch(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(w)
		out.Print(response.MatchFromModel(m))

		if m.IsOver() {
			return reportResult(w, m.Winner(), m.Commitment(), m.Board(model.SideComputer).Occupied())
		}
	}
}

func reportResult(w io.Writer, winner model.Winner, c *model.FleetCommitment, occupied []model.Position) error {
	switch winner {
	case model.WinnerHuman:
		fmt.Fprintln(w, "\nYou win!")
	case model.WinnerComputer:
		fmt.Fprintln(w, "\nThe computer wins.")
	default:
		fmt.Fprintln(w, "\nIt's a tie.")
	}

	if c == nil {
		return nil
	}
	if err := commitment.Verify(*c, occupied); err != nil {
		return fmt.Errorf("the computer's fleet does not match its commitment: %w", err)
	}
	fmt.Fprintln(w, "Computer fleet matches its commitment")
	return nil
}
