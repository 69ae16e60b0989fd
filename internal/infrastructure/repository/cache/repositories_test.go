package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/match"
	"github.com/dreamsquad/fantasy-cricket/internal/domain/player"
	"github.com/dreamsquad/fantasy-cricket/internal/infrastructure/repository/memory"
	basecache "github.com/dreamsquad/fantasy-cricket/internal/platform/cache"
)

type countingMatchRepo struct {
	match.Repository
	listCalls int
	getCalls  int
}

func (r *countingMatchRepo) List(ctx context.Context) ([]match.Match, error) {
	r.listCalls++
	return r.Repository.List(ctx)
}

func (r *countingMatchRepo) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	r.getCalls++
	return r.Repository.GetByID(ctx, matchID)
}

type countingPlayerRepo struct {
	player.Repository
	getCalls int
}

func (r *countingPlayerRepo) GetByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	r.getCalls++
	return r.Repository.GetByIDs(ctx, playerIDs)
}

func TestMatchRepositoryServesListFromCache(t *testing.T) {
	ctx := context.Background()
	next := &countingMatchRepo{Repository: memory.NewMatchRepository(memory.SeedMatches(time.Now()))}
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	first, err := repo.List(ctx)
	require.NoError(t, err)
	second, err := repo.List(ctx)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, next.listCalls)
}

func TestMatchRepositoryCachesMisses(t *testing.T) {
	ctx := context.Background()
	next := &countingMatchRepo{Repository: memory.NewMatchRepository(memory.SeedMatches(time.Now()))}
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		_, exists, err := repo.GetByID(ctx, 999)
		require.NoError(t, err)
		require.False(t, exists)
	}
	require.Equal(t, 1, next.getCalls)
}

func TestPlayerRepositorySharesKeyAcrossOrderings(t *testing.T) {
	ctx := context.Background()
	next := &countingPlayerRepo{Repository: memory.NewPlayerRepository(memory.SeedPlayers())}
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	a, err := repo.GetByIDs(ctx, []int64{101, 102, 103})
	require.NoError(t, err)
	require.Len(t, a, 3)

	_, err = repo.GetByIDs(ctx, []int64{103, 101, 102})
	require.NoError(t, err)

	require.Equal(t, 1, next.getCalls)
}

func TestPlayerIDsKeySortsInput(t *testing.T) {
	require.Equal(t, playerIDsKey([]int64{3, 1, 2}), playerIDsKey([]int64{1, 2, 3}))
	require.Equal(t, "player:ids:1,2,3", playerIDsKey([]int64{2, 3, 1}))
}
