package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/match"
	"github.com/dreamsquad/fantasy-cricket/internal/platform/logging"
)

// MatchListRetry controls how many times the schedule store is retried
// before ListMatches gives up. Delay doubles after every failed attempt.
type MatchListRetry struct {
	Attempts  int
	BaseDelay time.Duration
}

func (r MatchListRetry) normalize() MatchListRetry {
	if r.Attempts < 1 {
		r.Attempts = 3
	}
	if r.BaseDelay <= 0 {
		r.BaseDelay = time.Second
	}
	return r
}

// MatchList is the schedule split around the current instant. Upcoming
// and live matches come first in chronological order, finished matches
// follow most recent first.
type MatchList struct {
	Upcoming []match.Match
	Past     []match.Match
}

// Flatten returns the list as a single slice, upcoming block first.
func (l MatchList) Flatten() []match.Match {
	out := make([]match.Match, 0, len(l.Upcoming)+len(l.Past))
	out = append(out, l.Upcoming...)
	out = append(out, l.Past...)
	return out
}

type MatchService struct {
	matchRepo match.Repository
	retry     MatchListRetry
	logger    *logging.Logger
	now       func() time.Time
	sleep     func(ctx context.Context, d time.Duration) error
}

func NewMatchService(matchRepo match.Repository, retry MatchListRetry, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matchRepo: matchRepo,
		retry:     retry.normalize(),
		logger:    logger,
		now:       time.Now,
		sleep:     sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ListMatches loads the full schedule and partitions it around now.
// Store failures are retried with a doubling delay; once the attempts
// run out the last error is surfaced as a dependency failure.
func (s *MatchService) ListMatches(ctx context.Context) (MatchList, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.ListMatches")
	defer span.End()

	matches, err := s.listWithRetry(ctx)
	if err != nil {
		return MatchList{}, err
	}

	return s.partition(matches), nil
}

func (s *MatchService) listWithRetry(ctx context.Context) ([]match.Match, error) {
	delay := s.retry.BaseDelay

	var lastErr error
	for attempt := 1; attempt <= s.retry.Attempts; attempt++ {
		matches, err := s.matchRepo.List(ctx)
		if err == nil {
			return matches, nil
		}
		lastErr = err
		s.logger.WarnContext(ctx, "list matches attempt failed",
			"attempt", attempt,
			"max_attempts", s.retry.Attempts,
			"error", err.Error(),
		)
		if attempt == s.retry.Attempts {
			break
		}
		if err := s.sleep(ctx, delay); err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}
		delay *= 2
	}

	return nil, fmt.Errorf("%w: list matches after %d attempts: %v", ErrDependencyUnavailable, s.retry.Attempts, lastErr)
}

func (s *MatchService) partition(matches []match.Match) MatchList {
	now := s.now()
	list := MatchList{
		Upcoming: make([]match.Match, 0, len(matches)),
		Past:     make([]match.Match, 0, len(matches)),
	}
	for _, m := range matches {
		if m.StatusAt(now) == match.StatusCompleted {
			list.Past = append(list.Past, m)
			continue
		}
		list.Upcoming = append(list.Upcoming, m)
	}
	sort.SliceStable(list.Upcoming, func(i, j int) bool {
		return list.Upcoming[i].StartsAt.Before(list.Upcoming[j].StartsAt)
	})
	sort.SliceStable(list.Past, func(i, j int) bool {
		return list.Past[i].StartsAt.After(list.Past[j].StartsAt)
	})
	return list
}

// GetMatch returns a single scheduled match by id.
func (s *MatchService) GetMatch(ctx context.Context, matchID int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.GetMatch")
	defer span.End()

	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	return m, nil
}
