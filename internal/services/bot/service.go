package bot

import (
	"context"
	"log/slog"

	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/match"
)

// MaxBotIterations is a safety limit for the ProcessComputerTurns loop.
// The computer can fire at most once per cell plus one exhausted pass.
const MaxBotIterations = model.CellCount + 1

// Service plays the computer side of a match
type Service struct {
	controller *match.Controller
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(controller *match.Controller, logger *slog.Logger) *Service {
	return &Service{
		controller: controller,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// ProcessComputerTurns plays computer attacks until the turn passes back to
// the human or the match ends. It returns every outcome so callers can
// report what happened.
func (s *Service) ProcessComputerTurns(ctx context.Context, id model.MatchID) ([]model.Outcome, error) {
	var outcomes []model.Outcome

	for i := 0; i < MaxBotIterations; i++ {
		m, err := s.controller.GetMatch(ctx, id)
		if err != nil {
			return outcomes, err
		}
		if m.IsOver() || m.CurrentTurn() != model.SideComputer {
			break
		}

		out, err := s.controller.ComputerTurn(ctx, id)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, out)

		if out.GameOver || out.TurnSwitched {
			break
		}
	}

	if len(outcomes) > 0 {
		s.logger.Debug("computer turns processed",
			slog.String("match_id", string(id)),
			slog.Int("attacks", len(outcomes)),
		)
	}
	return outcomes, nil
}
