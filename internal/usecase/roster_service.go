package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/player"
	"github.com/dreamsquad/fantasy-cricket/internal/domain/team"
)

// RosterService serves franchise rosters for the team builder.
type RosterService struct {
	playerRepo player.Repository
}

func NewRosterService(playerRepo player.Repository) *RosterService {
	return &RosterService{playerRepo: playerRepo}
}

// ListTeams returns all franchises in display order.
func (s *RosterService) ListTeams(_ context.Context) []team.Team {
	return team.All()
}

// ListByTeam returns the roster of one franchise. Every player comes
// back with a derived role and base points filled in.
func (s *RosterService) ListByTeam(ctx context.Context, teamName string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "RosterService.ListByTeam")
	defer span.End()

	if strings.TrimSpace(teamName) == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	franchise, ok := team.Lookup(teamName)
	if !ok {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamName)
	}

	players, err := s.playerRepo.ListByTeam(ctx, franchise.Name)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}
	for i := range players {
		players[i] = players[i].Normalize()
	}

	return players, nil
}
