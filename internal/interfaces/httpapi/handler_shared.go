package httpapi

import (
	"time"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/match"
	"github.com/dreamsquad/fantasy-cricket/internal/domain/player"
	"github.com/dreamsquad/fantasy-cricket/internal/domain/selection"
	"github.com/dreamsquad/fantasy-cricket/internal/domain/team"
	"github.com/dreamsquad/fantasy-cricket/internal/usecase"
)

type matchDTO struct {
	ID            int64  `json:"id"`
	Team1         string `json:"team1"`
	Team2         string `json:"team2"`
	StartsAt      string `json:"startsAt"`
	Venue         string `json:"venue,omitempty"`
	City          string `json:"city,omitempty"`
	Status        string `json:"status"`
	Result        string `json:"result,omitempty"`
	Winner        string `json:"winner,omitempty"`
	ManOfTheMatch string `json:"manOfTheMatch,omitempty"`
}

func matchToDTO(m match.Match, now time.Time) matchDTO {
	return matchDTO{
		ID:            m.ID,
		Team1:         m.Team1,
		Team2:         m.Team2,
		StartsAt:      m.StartsAt.In(match.IST).Format(time.RFC3339),
		Venue:         m.Venue,
		City:          m.City,
		Status:        string(m.StatusAt(now)),
		Result:        m.Result,
		Winner:        m.Winner,
		ManOfTheMatch: m.ManOfTheMatch,
	}
}

func matchesToDTO(matches []match.Match, now time.Time) []matchDTO {
	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m, now))
	}
	return items
}

type matchListDTO struct {
	Upcoming []matchDTO `json:"upcoming"`
	Past     []matchDTO `json:"past"`
}

type teamDTO struct {
	Name           string `json:"name"`
	Short          string `json:"short"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		Name:           t.Name,
		Short:          t.Short,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
	}
}

type playerDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	TeamName       string `json:"teamName"`
	Nationality    string `json:"nationality,omitempty"`
	Handedness     string `json:"handedness,omitempty"`
	Points         int64  `json:"points"`
	ComputedPoints int64  `json:"computedPoints,omitempty"`
	IsCapped       bool   `json:"isCapped"`
	IsCaptain      bool   `json:"isCaptain"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:             p.ID,
		Name:           p.Name,
		Role:           string(p.Role),
		TeamName:       p.TeamName,
		Nationality:    p.Nationality,
		Handedness:     p.Handedness,
		Points:         p.Points,
		ComputedPoints: p.ComputedPoints,
		IsCapped:       p.IsCapped,
		IsCaptain:      p.IsCaptain,
	}
}

func playersToDTO(players []player.Player) []playerDTO {
	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	return items
}

type validationDTO struct {
	Valid      bool           `json:"valid"`
	Errors     []string       `json:"errors"`
	RoleCounts map[string]int `json:"roleCounts"`
	TeamCounts map[string]int `json:"teamCounts"`
}

func validationToDTO(result selection.Result) validationDTO {
	roleCounts := make(map[string]int, len(result.RoleCounts))
	for role, count := range result.RoleCounts {
		roleCounts[string(role)] = count
	}
	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}

	return validationDTO{
		Valid:      result.Valid,
		Errors:     errs,
		RoleCounts: roleCounts,
		TeamCounts: result.TeamCounts,
	}
}

type userTeamDTO struct {
	UserEmail  string        `json:"userEmail"`
	MatchID    int64         `json:"matchId"`
	Players    []playerDTO   `json:"players"`
	Validation validationDTO `json:"validation"`
	UpdatedAt  string        `json:"updatedAt,omitempty"`
}

func userTeamToDTO(t usecase.UserTeam) userTeamDTO {
	dto := userTeamDTO{
		UserEmail:  t.UserEmail,
		MatchID:    t.MatchID,
		Players:    playersToDTO(t.Players),
		Validation: validationToDTO(t.Validation),
	}
	if !t.UpdatedAt.IsZero() {
		dto.UpdatedAt = t.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

type participantDTO struct {
	UserEmail   string      `json:"userEmail"`
	TotalPoints int64       `json:"totalPoints"`
	Players     []playerDTO `json:"players"`
}

func participantsToDTO(participants []usecase.Participant) []participantDTO {
	items := make([]participantDTO, 0, len(participants))
	for _, p := range participants {
		items = append(items, participantDTO{
			UserEmail:   p.UserEmail,
			TotalPoints: p.TotalPoints,
			Players:     playersToDTO(p.Players),
		})
	}
	return items
}

type sessionDTO struct {
	ID              string                 `json:"id"`
	Match           matchDTO               `json:"match"`
	Rosters         map[string][]playerDTO `json:"rosters"`
	Selected        []playerDTO            `json:"selected"`
	Validation      validationDTO          `json:"validation"`
	HasExistingTeam bool                   `json:"hasExistingTeam"`
	ExpiresAt       string                 `json:"expiresAt"`
}

func sessionToDTO(s usecase.Session, now time.Time) sessionDTO {
	rosters := make(map[string][]playerDTO, len(s.Rosters))
	for key, roster := range s.Rosters {
		rosters[key] = playersToDTO(roster)
	}

	return sessionDTO{
		ID:              s.ID,
		Match:           matchToDTO(s.Match, now),
		Rosters:         rosters,
		Selected:        playersToDTO(s.Selected),
		Validation:      validationToDTO(s.Validation),
		HasExistingTeam: s.HasExistingTeam,
		ExpiresAt:       s.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

type saveTeamRequest struct {
	PlayerIDs []int64 `json:"player_ids" validate:"required,len=11,dive,gt=0"`
}

type addSessionPlayerRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gt=0"`
}

type returnSessionPlayerRequest struct {
	TargetTeam string `json:"target_team" validate:"required"`
}

type reorderSessionRequest struct {
	From int `json:"from" validate:"gte=0"`
	To   int `json:"to" validate:"gte=0"`
}
