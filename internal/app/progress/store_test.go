package progress_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fardannozami/greencity-bot/internal/app/progress"
	"github.com/fardannozami/greencity-bot/internal/catalog"
	"github.com/fardannozami/greencity-bot/internal/domain"
)

type memRepo struct {
	stored  *domain.ProgressState
	readErr error
	// failReads makes that many upcoming reads fail before readErr applies.
	failReads int
	writeErr  error
	reads     int
	writes    int
}

func (m *memRepo) ReadProgress(ctx context.Context) (*domain.ProgressState, error) {
	m.reads++
	if m.failReads > 0 {
		m.failReads--
		return nil, errors.New("database is locked")
	}
	if m.readErr != nil {
		return nil, m.readErr
	}
	if m.stored == nil {
		return nil, nil
	}
	s := m.stored.Clone()
	return &s, nil
}

func (m *memRepo) WriteProgress(ctx context.Context, state *domain.ProgressState) error {
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	s := state.Clone()
	m.stored = &s
	return nil
}

func newStore(repo *memRepo) *progress.Store {
	return progress.NewStore(repo, catalog.Default(), nil)
}

func TestStore_LoadWithoutPersistedState(t *testing.T) {
	s := newStore(&memRepo{})

	state := s.Load(context.Background())
	assert.Equal(t, 0, state.Points)
	assert.Empty(t, state.CompletedChallengeIDs)
	assert.Equal(t, domain.DefaultUsername, state.Username)
}

func TestStore_LoadReadErrorFallsBackToDefaults(t *testing.T) {
	s := newStore(&memRepo{readErr: errors.New("disk gone")})

	state := s.Load(context.Background())
	assert.Equal(t, domain.NewProgressState(domain.DefaultUsername), state)
}

func TestStore_LoadRepairsStoredState(t *testing.T) {
	repo := &memRepo{stored: &domain.ProgressState{
		Points:                -5,
		CompletedChallengeIDs: []string{"composting", "composting", "lights-off"},
		Username:              "  ",
	}}

	state := newStore(repo).Load(context.Background())
	assert.Equal(t, 0, state.Points)
	assert.Equal(t, []string{"composting", "lights-off"}, state.CompletedChallengeIDs)
	assert.Equal(t, domain.DefaultUsername, state.Username)
}

func TestStore_WithDefaultUsername(t *testing.T) {
	s := newStore(&memRepo{}).WithDefaultUsername("Green Bean")
	assert.Equal(t, "Green Bean", s.Snapshot(context.Background()).Username)
}

func TestStore_CompleteChallenge_FirstCompletion(t *testing.T) {
	repo := &memRepo{}
	s := newStore(repo)

	state, err := s.CompleteChallenge(context.Background(), "recycle-daily")
	require.NoError(t, err)
	assert.Equal(t, 15, state.Points)
	assert.Equal(t, []string{"recycle-daily"}, state.CompletedChallengeIDs)

	require.NotNil(t, repo.stored)
	assert.Equal(t, state, *repo.stored)
}

func TestStore_CompleteChallenge_Idempotent(t *testing.T) {
	repo := &memRepo{}
	s := newStore(repo)
	ctx := context.Background()

	once, err := s.CompleteChallenge(ctx, "bike-commute")
	require.NoError(t, err)
	twice, err := s.CompleteChallenge(ctx, "bike-commute")
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Equal(t, 20, twice.Points)
	assert.Equal(t, 1, repo.writes, "repeat completion must not write")
}

func TestStore_CompleteChallenge_PreservesInsertionOrder(t *testing.T) {
	s := newStore(&memRepo{})
	ctx := context.Background()

	for _, id := range []string{"tree-planting", "lights-off", "composting"} {
		_, err := s.CompleteChallenge(ctx, id)
		require.NoError(t, err)
	}

	state := s.Snapshot(ctx)
	assert.Equal(t, []string{"tree-planting", "lights-off", "composting"}, state.CompletedChallengeIDs)
	assert.Equal(t, 30+8+25, state.Points)
}

func TestStore_CompleteChallenge_UnknownIDWorthNothing(t *testing.T) {
	s := newStore(&memRepo{})
	ctx := context.Background()

	_, err := s.CompleteChallenge(ctx, "recycle-daily")
	require.NoError(t, err)
	state, err := s.CompleteChallenge(ctx, "retired-challenge")
	require.NoError(t, err)

	assert.Equal(t, 15, state.Points)
	assert.Equal(t, []string{"recycle-daily", "retired-challenge"}, state.CompletedChallengeIDs)
}

func TestStore_CompleteChallenge_BlankIDIgnored(t *testing.T) {
	repo := &memRepo{}
	s := newStore(repo)

	state, err := s.CompleteChallenge(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, state.CompletedChallengeIDs)
	assert.Zero(t, repo.writes)
}

func TestStore_CompleteChallenge_WriteFailureKeepsMemoryState(t *testing.T) {
	repo := &memRepo{writeErr: errors.New("quota exceeded")}
	s := newStore(repo)
	ctx := context.Background()

	state, err := s.CompleteChallenge(ctx, "composting")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistenceWrite)
	assert.Equal(t, 25, state.Points)
	assert.Equal(t, 25, s.Snapshot(ctx).Points)
	assert.Nil(t, repo.stored)

	// Storage recovers; an explicit save persists the in-memory state.
	repo.writeErr = nil
	require.NoError(t, s.Save(ctx))
	require.NotNil(t, repo.stored)
	assert.Equal(t, 25, repo.stored.Points)
}

func TestStore_RenameUser(t *testing.T) {
	repo := &memRepo{}
	s := newStore(repo)
	ctx := context.Background()

	state, err := s.RenameUser(ctx, "   ")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUsername, state.Username)
	assert.Zero(t, repo.writes)

	state, err = s.RenameUser(ctx, "  Alex  ")
	require.NoError(t, err)
	assert.Equal(t, "Alex", state.Username)
	require.NotNil(t, repo.stored)
	assert.Equal(t, "Alex", repo.stored.Username)
}

func TestStore_OperationsLoadImplicitly(t *testing.T) {
	repo := &memRepo{stored: &domain.ProgressState{
		Points:                10,
		CompletedChallengeIDs: []string{"water-bottle"},
		Username:              "Sam",
	}}
	s := newStore(repo)

	state, err := s.CompleteChallenge(context.Background(), "lights-off")
	require.NoError(t, err)
	assert.Equal(t, 18, state.Points)
	assert.Equal(t, []string{"water-bottle", "lights-off"}, state.CompletedChallengeIDs)
	assert.Equal(t, "Sam", state.Username)
	assert.Equal(t, 1, repo.reads)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := newStore(&memRepo{})
	ctx := context.Background()

	_, err := s.CompleteChallenge(ctx, "recycle-daily")
	require.NoError(t, err)

	snap := s.Snapshot(ctx)
	snap.CompletedChallengeIDs[0] = "tampered"
	snap.Points = 9999

	fresh := s.Snapshot(ctx)
	assert.Equal(t, []string{"recycle-daily"}, fresh.CompletedChallengeIDs)
	assert.Equal(t, 15, fresh.Points)
}

func TestStore_RoundTrip(t *testing.T) {
	repo := &memRepo{}
	ctx := context.Background()

	first := newStore(repo)
	_, err := first.CompleteChallenge(ctx, "meatless-meal")
	require.NoError(t, err)
	_, err = first.RenameUser(ctx, "Robin")
	require.NoError(t, err)
	loaded := first.Load(ctx)

	require.NoError(t, first.Save(ctx))
	assert.Equal(t, loaded, newStore(repo).Load(ctx))
}

func TestStore_PointsMatchCatalogSum(t *testing.T) {
	cat := catalog.Default()
	s := progress.NewStore(&memRepo{}, cat, nil)
	ctx := context.Background()

	ids := []string{"short-shower", "reusable-bags", "short-shower", "local-shopping", "lights-off", "reusable-bags"}
	prev := 0
	for _, id := range ids {
		state, err := s.CompleteChallenge(ctx, id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, state.Points, prev)
		prev = state.Points

		sum := 0
		for _, done := range state.CompletedChallengeIDs {
			ch, ok := cat.FindChallenge(done)
			require.True(t, ok)
			sum += ch.Points
		}
		assert.Equal(t, sum, state.Points)
	}
}

func storedProgress() *domain.ProgressState {
	return &domain.ProgressState{
		Points:                120,
		CompletedChallengeIDs: []string{"recycle-daily", "bike-commute", "composting", "tree-planting", "short-shower", "local-shopping"},
		Username:              "Alex",
	}
}

func TestStore_ReadFailureRetriedBeforeWrite(t *testing.T) {
	repo := &memRepo{stored: storedProgress(), failReads: 1}
	s := newStore(repo)
	ctx := context.Background()

	assert.Equal(t, 0, s.Load(ctx).Points)

	state, err := s.CompleteChallenge(ctx, "lights-off")
	require.NoError(t, err)
	assert.Equal(t, 128, state.Points)
	assert.Len(t, state.CompletedChallengeIDs, 7)
	assert.Equal(t, "Alex", state.Username)

	require.NotNil(t, repo.stored)
	assert.Equal(t, 128, repo.stored.Points)
}

func TestStore_NoWriteWhileReadsFail(t *testing.T) {
	repo := &memRepo{stored: storedProgress(), readErr: errors.New("database is locked")}
	s := newStore(repo)
	ctx := context.Background()

	state, err := s.CompleteChallenge(ctx, "lights-off")
	assert.ErrorIs(t, err, domain.ErrPersistenceWrite)
	assert.ErrorIs(t, err, domain.ErrPersistenceRead)
	assert.Equal(t, 8, state.Points)

	_, err = s.RenameUser(ctx, "Someone")
	assert.ErrorIs(t, err, domain.ErrPersistenceWrite)
	assert.ErrorIs(t, s.Save(ctx), domain.ErrPersistenceWrite)

	assert.Zero(t, repo.writes)
	assert.Equal(t, 120, repo.stored.Points)

	// Once storage answers again the stored copy wins.
	repo.readErr = nil
	assert.Equal(t, 120, s.Snapshot(ctx).Points)
}

func TestStore_RecordCompletion_OneWinnerUnderConcurrency(t *testing.T) {
	s := newStore(&memRepo{})
	ctx := context.Background()

	const callers = 8
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := s.RecordCompletion(ctx, "composting")
			if err != nil {
				return
			}
			if c.Added {
				mu.Lock()
				added++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, added)
	assert.Equal(t, 25, s.Snapshot(ctx).Points)
}
