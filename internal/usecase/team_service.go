package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/match"
	"github.com/dreamsquad/fantasy-cricket/internal/domain/player"
	"github.com/dreamsquad/fantasy-cricket/internal/domain/selection"
	"github.com/dreamsquad/fantasy-cricket/internal/platform/logging"
)

const participantPoolSize = 8

// UserTeam is one user's saved selection for a match, resolved against the
// player store. Players are ordered as saved and carry position-weighted
// points.
type UserTeam struct {
	UserEmail  string
	MatchID    int64
	Players    []player.Player
	Validation selection.Result
	UpdatedAt  time.Time
}

// Participant is one entrant in a match's contest listing.
type Participant struct {
	UserEmail   string
	TotalPoints int64
	Players     []player.Player
}

// TeamService owns saved selections: validation on write, point assignment
// on read.
type TeamService struct {
	selectionRepo selection.Repository
	playerRepo    player.Repository
	matchRepo     match.Repository
	rules         selection.Rules
	logger        *logging.Logger
	now           func() time.Time
}

func NewTeamService(
	selectionRepo selection.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		selectionRepo: selectionRepo,
		playerRepo:    playerRepo,
		matchRepo:     matchRepo,
		rules:         selection.DefaultRules(),
		logger:        logger,
		now:           time.Now,
	}
}

// SaveUserTeam validates and persists an ordered selection. The write is
// all-or-nothing: any rule violation rejects the whole payload and leaves
// the stored selection untouched.
func (s *TeamService) SaveUserTeam(ctx context.Context, userEmail string, matchID int64, playerIDs []int64) (UserTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.SaveUserTeam")
	defer span.End()

	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return UserTeam{}, fmt.Errorf("%w: user email is required", ErrUnauthorized)
	}

	sel := selection.Selection{UserEmail: userEmail, MatchID: matchID, PlayerIDs: playerIDs}
	if err := sel.ValidateBasic(); err != nil {
		return UserTeam{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(playerIDs) != s.rules.MaxPlayers {
		return UserTeam{}, fmt.Errorf("%w: selection must contain exactly %d players, got %d", ErrInvalidInput, s.rules.MaxPlayers, len(playerIDs))
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return UserTeam{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return UserTeam{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	players, err := s.resolvePlayers(ctx, playerIDs, true)
	if err != nil {
		return UserTeam{}, err
	}

	for _, p := range players {
		if !m.HasTeam(p.TeamName) {
			return UserTeam{}, fmt.Errorf("%w: player %s plays for %s, not part of this match", ErrInvalidInput, p.Name, p.TeamName)
		}
	}

	result := selection.Validate(players, s.rules)
	if !result.Valid {
		return UserTeam{}, fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(result.Errors, "; "))
	}

	now := s.now()
	sel.CreatedAt = now
	sel.UpdatedAt = now
	if existing, ok, err := s.selectionRepo.GetByUserAndMatch(ctx, userEmail, matchID); err != nil {
		return UserTeam{}, fmt.Errorf("get selection: %w", err)
	} else if ok {
		sel.CreatedAt = existing.CreatedAt
	}

	if err := s.selectionRepo.Upsert(ctx, sel); err != nil {
		return UserTeam{}, fmt.Errorf("upsert selection: %w", err)
	}

	return UserTeam{
		UserEmail:  userEmail,
		MatchID:    matchID,
		Players:    selection.AssignPoints(players),
		Validation: result,
		UpdatedAt:  sel.UpdatedAt,
	}, nil
}

// GetUserTeam loads a saved selection and resolves it to players. Stored ids
// that no longer resolve are dropped with a warning rather than failing the
// read.
func (s *TeamService) GetUserTeam(ctx context.Context, userEmail string, matchID int64) (UserTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.GetUserTeam")
	defer span.End()

	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return UserTeam{}, fmt.Errorf("%w: user email is required", ErrUnauthorized)
	}
	if matchID <= 0 {
		return UserTeam{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	sel, exists, err := s.selectionRepo.GetByUserAndMatch(ctx, userEmail, matchID)
	if err != nil {
		return UserTeam{}, fmt.Errorf("get selection: %w", err)
	}
	if !exists {
		return UserTeam{}, fmt.Errorf("%w: selection user=%s match=%d", ErrNotFound, userEmail, matchID)
	}

	return s.materialize(ctx, sel)
}

// HasUserTeam reports whether the user already saved a selection for the
// match.
func (s *TeamService) HasUserTeam(ctx context.Context, userEmail string, matchID int64) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.HasUserTeam")
	defer span.End()

	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return false, fmt.Errorf("%w: user email is required", ErrUnauthorized)
	}
	if matchID <= 0 {
		return false, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	_, exists, err := s.selectionRepo.GetByUserAndMatch(ctx, userEmail, matchID)
	if err != nil {
		return false, fmt.Errorf("get selection: %w", err)
	}

	return exists, nil
}

// ParticipantCount returns how many users entered a match.
func (s *TeamService) ParticipantCount(ctx context.Context, matchID int64) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.ParticipantCount")
	defer span.End()

	if matchID <= 0 {
		return 0, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	count, err := s.selectionRepo.CountByMatch(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("count selections by match: %w", err)
	}

	return count, nil
}

// MatchParticipants lists every entrant for a match with their resolved,
// point-weighted selections. Selections are materialized concurrently on a
// bounded pool.
func (s *TeamService) MatchParticipants(ctx context.Context, matchID int64) ([]Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.MatchParticipants")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if _, exists, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	selections, err := s.selectionRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list selections by match: %w", err)
	}
	if len(selections) == 0 {
		return []Participant{}, nil
	}

	pool, err := ants.NewPool(participantPoolSize)
	if err != nil {
		return nil, fmt.Errorf("create participant pool: %w", err)
	}
	defer pool.Release()

	participants := make([]Participant, len(selections))
	errs := make([]error, len(selections))

	var wg sync.WaitGroup
	for i, sel := range selections {
		wg.Add(1)
		i, sel := i, sel
		submitErr := pool.Submit(func() {
			defer wg.Done()
			team, err := s.materialize(ctx, sel)
			if err != nil {
				errs[i] = err
				return
			}
			participants[i] = Participant{
				UserEmail:   team.UserEmail,
				TotalPoints: totalPoints(team.Players),
				Players:     team.Players,
			}
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submit participant task: %w", submitErr)
		}
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].TotalPoints > participants[j].TotalPoints
	})

	return participants, nil
}

func (s *TeamService) materialize(ctx context.Context, sel selection.Selection) (UserTeam, error) {
	players, err := s.resolvePlayers(ctx, sel.PlayerIDs, false)
	if err != nil {
		return UserTeam{}, err
	}

	players = selection.AssignPoints(players)

	return UserTeam{
		UserEmail:  sel.UserEmail,
		MatchID:    sel.MatchID,
		Players:    players,
		Validation: selection.Validate(players, s.rules),
		UpdatedAt:  sel.UpdatedAt,
	}, nil
}

// resolvePlayers fetches players preserving the id order. With strict set,
// an unresolved id is an input error; otherwise it is dropped with a
// warning.
func (s *TeamService) resolvePlayers(ctx context.Context, playerIDs []int64, strict bool) ([]player.Player, error) {
	fetched, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}

	byID := make(map[int64]player.Player, len(fetched))
	for _, p := range fetched {
		byID[p.ID] = p.Normalize()
	}

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := byID[id]
		if !ok {
			if strict {
				return nil, fmt.Errorf("%w: unknown player id %d", ErrInvalidInput, id)
			}
			s.logger.WarnContext(ctx, "dropping unresolved player id from stored selection", "player_id", id)
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func totalPoints(players []player.Player) int64 {
	var total int64
	for _, p := range players {
		total += p.ComputedPoints
	}
	return total
}
