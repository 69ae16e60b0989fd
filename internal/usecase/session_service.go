package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/match"
	"github.com/dreamsquad/fantasy-cricket/internal/domain/player"
	"github.com/dreamsquad/fantasy-cricket/internal/domain/selection"
	"github.com/dreamsquad/fantasy-cricket/internal/domain/team"
	"github.com/dreamsquad/fantasy-cricket/internal/platform/id"
	"github.com/dreamsquad/fantasy-cricket/internal/platform/logging"
)

// Session is a snapshot of one server-held team-building session. Rosters
// hold the players still available per franchise; Selected is the ordered
// pick list with points assigned.
type Session struct {
	ID              string
	UserEmail       string
	Match           match.Match
	Rosters         map[string][]player.Player
	Selected        []player.Player
	Validation      selection.Result
	HasExistingTeam bool
	CreatedAt       time.Time
	ExpiresAt       time.Time
}

type sessionState struct {
	mu      sync.Mutex
	session Session
}

// SessionService keeps team-building state server side. Every mutation is
// atomic against the session: it either fully applies or leaves the session
// untouched.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState

	teamService *TeamService
	matchRepo   match.Repository
	playerRepo  player.Repository
	rules       selection.Rules
	idGen       id.Generator
	ttl         time.Duration
	logger      *logging.Logger
	now         func() time.Time
}

func NewSessionService(
	teamService *TeamService,
	matchRepo match.Repository,
	playerRepo player.Repository,
	idGen id.Generator,
	ttl time.Duration,
	logger *logging.Logger,
) *SessionService {
	if logger == nil {
		logger = logging.Default()
	}
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &SessionService{
		sessions:    make(map[string]*sessionState),
		teamService: teamService,
		matchRepo:   matchRepo,
		playerRepo:  playerRepo,
		rules:       selection.DefaultRules(),
		idGen:       idGen,
		ttl:         ttl,
		logger:      logger,
		now:         time.Now,
	}
}

// Start opens a session for (user, match): both rosters are fetched in
// parallel and any previously saved selection is loaded into the pick list.
func (s *SessionService) Start(ctx context.Context, userEmail string, matchID int64) (Session, error) {
	ctx, span := startUsecaseSpan(ctx, "SessionService.Start")
	defer span.End()

	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return Session{}, fmt.Errorf("%w: user email is required", ErrUnauthorized)
	}
	if matchID <= 0 {
		return Session{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return Session{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return Session{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	rosters := make(map[string][]player.Player, 2)
	var rostersMu sync.Mutex

	p := pool.New().WithErrors().WithContext(ctx)
	for _, teamName := range []string{m.Team1, m.Team2} {
		teamName := teamName
		p.Go(func(ctx context.Context) error {
			players, err := s.playerRepo.ListByTeam(ctx, teamName)
			if err != nil {
				return fmt.Errorf("list players for %s: %w", teamName, err)
			}
			for i := range players {
				players[i] = players[i].Normalize()
			}
			rostersMu.Lock()
			rosters[team.NormalizeName(teamName)] = players
			rostersMu.Unlock()
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return Session{}, err
	}

	sessionID, err := s.idGen.NewID()
	if err != nil {
		return Session{}, fmt.Errorf("generate session id: %w", err)
	}

	now := s.now()
	sess := Session{
		ID:        sessionID,
		UserEmail: userEmail,
		Match:     m,
		Rosters:   rosters,
		Selected:  []player.Player{},
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	existing, hasTeam, err := s.teamService.selectionRepo.GetByUserAndMatch(ctx, userEmail, matchID)
	if err != nil {
		return Session{}, fmt.Errorf("get selection: %w", err)
	}
	if hasTeam {
		sess.HasExistingTeam = true
		players, err := s.teamService.resolvePlayers(ctx, existing.PlayerIDs, false)
		if err != nil {
			return Session{}, err
		}
		for _, pl := range players {
			removeFromRoster(sess.Rosters, pl)
		}
		sess.Selected = players
	}
	refresh(&sess, s.rules)

	s.mu.Lock()
	s.sessions[sess.ID] = &sessionState{session: sess}
	s.mu.Unlock()

	return cloneSession(sess), nil
}

// Get returns a snapshot of the session.
func (s *SessionService) Get(_ context.Context, sessionID string) (Session, error) {
	state, err := s.lookup(sessionID)
	if err != nil {
		return Session{}, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()

	return cloneSession(state.session), nil
}

// AddPlayer moves a player from their franchise roster into the pick list.
// Rule violations reject the add without touching the session.
func (s *SessionService) AddPlayer(ctx context.Context, sessionID string, playerID int64) (Session, error) {
	_, span := startUsecaseSpan(ctx, "SessionService.AddPlayer")
	defer span.End()

	state, err := s.lookup(sessionID)
	if err != nil {
		return Session{}, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	sess := &state.session

	for _, pl := range sess.Selected {
		if pl.ID == playerID {
			return Session{}, fmt.Errorf("%w: player %s is already selected", ErrInvalidInput, pl.Name)
		}
	}

	rosterKey, rosterIdx, pick, found := findInRosters(sess.Rosters, playerID)
	if !found {
		return Session{}, fmt.Errorf("%w: player %d is not available in this match", ErrNotFound, playerID)
	}

	candidate := append(append([]player.Player{}, sess.Selected...), pick)
	result := selection.Validate(candidate, s.rules)
	if !result.Valid {
		return Session{}, fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(result.Errors, "; "))
	}

	roster := sess.Rosters[rosterKey]
	sess.Rosters[rosterKey] = append(roster[:rosterIdx:rosterIdx], roster[rosterIdx+1:]...)
	sess.Selected = candidate
	refresh(sess, s.rules)

	return cloneSession(*sess), nil
}

// ReturnPlayer moves a selected player back onto a roster. The target team
// must be the player's own franchise; a wrong-team drop is rejected and the
// session is left unchanged.
func (s *SessionService) ReturnPlayer(ctx context.Context, sessionID string, playerID int64, targetTeam string) (Session, error) {
	_, span := startUsecaseSpan(ctx, "SessionService.ReturnPlayer")
	defer span.End()

	state, err := s.lookup(sessionID)
	if err != nil {
		return Session{}, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	sess := &state.session

	idx := -1
	for i, pl := range sess.Selected {
		if pl.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Session{}, fmt.Errorf("%w: player %d is not in the selection", ErrNotFound, playerID)
	}

	pick := sess.Selected[idx]
	if team.NormalizeName(targetTeam) != team.NormalizeName(pick.TeamName) {
		return Session{}, fmt.Errorf("%w: %s plays for %s and cannot be returned to %s", ErrInvalidInput, pick.Name, pick.TeamName, targetTeam)
	}

	sess.Selected = append(sess.Selected[:idx:idx], sess.Selected[idx+1:]...)
	key := team.NormalizeName(pick.TeamName)
	pick.ComputedPoints = 0
	sess.Rosters[key] = append(sess.Rosters[key], pick)
	refresh(sess, s.rules)

	return cloneSession(*sess), nil
}

// Reorder moves the player at position from to position to within the pick
// list and reassigns points.
func (s *SessionService) Reorder(ctx context.Context, sessionID string, from, to int) (Session, error) {
	_, span := startUsecaseSpan(ctx, "SessionService.Reorder")
	defer span.End()

	state, err := s.lookup(sessionID)
	if err != nil {
		return Session{}, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	sess := &state.session

	n := len(sess.Selected)
	if from < 0 || from >= n || to < 0 || to >= n {
		return Session{}, fmt.Errorf("%w: reorder positions out of range [0,%d)", ErrInvalidInput, n)
	}
	if from != to {
		moved := sess.Selected[from]
		rest := append(sess.Selected[:from:from], sess.Selected[from+1:]...)
		sess.Selected = append(rest[:to:to], append([]player.Player{moved}, rest[to:]...)...)
		refresh(sess, s.rules)
	}

	return cloneSession(*sess), nil
}

// Finalize persists the session's selection as the user's team for the
// match. The caller must be the session owner and the pick list must pass
// the full rule set at exactly the required size.
func (s *SessionService) Finalize(ctx context.Context, sessionID, userEmail string) (UserTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "SessionService.Finalize")
	defer span.End()

	state, err := s.lookup(sessionID)
	if err != nil {
		return UserTeam{}, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	sess := &state.session

	if strings.TrimSpace(userEmail) == "" || userEmail != sess.UserEmail {
		return UserTeam{}, fmt.Errorf("%w: session belongs to another user", ErrUnauthorized)
	}
	if len(sess.Selected) != s.rules.MaxPlayers {
		return UserTeam{}, fmt.Errorf("%w: selection must contain exactly %d players, currently %d", ErrInvalidInput, s.rules.MaxPlayers, len(sess.Selected))
	}

	sel := selection.FromPlayers(sess.UserEmail, sess.Match.ID, sess.Selected)
	saved, err := s.teamService.SaveUserTeam(ctx, sel.UserEmail, sel.MatchID, sel.PlayerIDs)
	if err != nil {
		return UserTeam{}, err
	}
	sess.HasExistingTeam = true

	return saved, nil
}

// PurgeExpired drops every session past its TTL and returns how many were
// removed.
func (s *SessionService) PurgeExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for sid, state := range s.sessions {
		if now.After(state.session.ExpiresAt) {
			delete(s.sessions, sid)
			purged++
		}
	}

	return purged
}

func (s *SessionService) lookup(sessionID string) (*sessionState, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	s.mu.RLock()
	state, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: session=%s", ErrNotFound, sessionID)
	}
	if s.now().After(state.session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: session=%s expired", ErrNotFound, sessionID)
	}

	return state, nil
}

func refresh(sess *Session, rules selection.Rules) {
	sess.Selected = selection.AssignPoints(sess.Selected)
	sess.Validation = selection.Validate(sess.Selected, rules)
}

func findInRosters(rosters map[string][]player.Player, playerID int64) (string, int, player.Player, bool) {
	for key, roster := range rosters {
		for i, pl := range roster {
			if pl.ID == playerID {
				return key, i, pl, true
			}
		}
	}
	return "", 0, player.Player{}, false
}

func removeFromRoster(rosters map[string][]player.Player, pick player.Player) {
	key := team.NormalizeName(pick.TeamName)
	roster := rosters[key]
	for i, pl := range roster {
		if pl.ID == pick.ID {
			rosters[key] = append(roster[:i:i], roster[i+1:]...)
			return
		}
	}
}

func cloneSession(sess Session) Session {
	out := sess
	out.Selected = append([]player.Player(nil), sess.Selected...)
	out.Rosters = make(map[string][]player.Player, len(sess.Rosters))
	for key, roster := range sess.Rosters {
		out.Rosters[key] = append([]player.Player(nil), roster...)
	}
	return out
}
