package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go2/internal/api/response"
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/commitment"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <id>",
		Short: "Check the computer's fleet against its commitment",
		Long: `Fetch a finished match and check that the computer's revealed fleet
hashes, with the revealed salt, to the commitment published when the
match was created.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var m response.Match
			if err := client.Get(matchPath(args[0], ""), &m); err != nil {
				return err
			}

			occupied, err := revealedFleet(m)
			if err != nil {
				return err
			}
			if err := commitment.Verify(*m.Commitment, occupied); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("Commitment verified: " + m.Commitment.Root)
			return nil
		},
	}
}

// revealedFleet returns the computer's ship cells once the match has revealed them
func revealedFleet(m response.Match) ([]model.Position, error) {
	if !m.Over {
		return nil, errors.New("match is not over yet: the computer's fleet is still hidden")
	}
	if m.Commitment == nil || m.Commitment.Salt == "" {
		return nil, fmt.Errorf("match %s has no revealed commitment", m.ID)
	}

	var occupied []model.Position
	for _, ship := range m.Computer.Ships {
		occupied = append(occupied, ship.Cells...)
	}
	return occupied, nil
}
