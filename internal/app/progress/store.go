// Package progress owns the single user's mutable progress state.
//
// The Store is the only writer. Every mutation is persisted through the
// domain.ProgressRepository, and callers only ever receive copies of the
// state. Views that hold a snapshot see stale data until they ask again;
// there is no change notification.
package progress

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fardannozami/greencity-bot/internal/domain"
	walog "go.mau.fi/whatsmeow/util/log"
)

// ChallengeFinder resolves catalog challenges by id.
type ChallengeFinder interface {
	FindChallenge(id string) (domain.Challenge, bool)
}

type Store struct {
	repo            domain.ProgressRepository
	challenges      ChallengeFinder
	log             walog.Logger
	defaultUsername string

	mu     sync.Mutex
	state  domain.ProgressState
	loaded bool
}

func NewStore(repo domain.ProgressRepository, challenges ChallengeFinder, logger walog.Logger) *Store {
	if logger == nil {
		logger = walog.Noop
	}
	return &Store{
		repo:            repo,
		challenges:      challenges,
		log:             logger,
		defaultUsername: domain.DefaultUsername,
	}
}

// WithDefaultUsername overrides the placeholder name used when none is stored.
func (s *Store) WithDefaultUsername(name string) *Store {
	if name = strings.TrimSpace(name); name != "" {
		s.defaultUsername = name
	}
	return s
}

// Load re-reads the persisted state, replacing the in-memory copy. Absent or
// malformed data yields the default state. If the read itself fails the
// defaults are returned but the store stays unloaded: the next operation
// reads again, and nothing is written until a read succeeds.
func (s *Store) Load(ctx context.Context) domain.ProgressState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx)
	return s.state.Clone()
}

// Snapshot returns a copy of the current state, loading it first if needed.
func (s *Store) Snapshot(ctx context.Context) domain.ProgressState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	return s.state.Clone()
}

// Completion is the outcome of RecordCompletion, taken under one lock.
type Completion struct {
	Before domain.ProgressState
	After  domain.ProgressState
	Added  bool
}

// CompleteChallenge records challengeID once. Repeating it returns the
// unchanged state. Ids unknown to the catalog are recorded worth 0 points.
// On a write failure the returned state is still the new authoritative one.
func (s *Store) CompleteChallenge(ctx context.Context, challengeID string) (domain.ProgressState, error) {
	c, err := s.RecordCompletion(ctx, challengeID)
	return c.After, err
}

// RecordCompletion is CompleteChallenge that also reports the state before
// the call and whether this call added the id.
func (s *Store) RecordCompletion(ctx context.Context, challengeID string) (Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	before := s.state.Clone()
	if strings.TrimSpace(challengeID) == "" || s.state.HasCompleted(challengeID) {
		return Completion{Before: before, After: before}, nil
	}

	points := 0
	if ch, ok := s.challenges.FindChallenge(challengeID); ok {
		points = ch.Points
	} else {
		s.log.Warnf("Completing challenge %q which is not in the catalog", challengeID)
	}

	s.state.CompletedChallengeIDs = append(s.state.CompletedChallengeIDs, challengeID)
	s.state.Points += points

	return Completion{Before: before, After: s.state.Clone(), Added: true}, s.persistLocked(ctx)
}

// RenameUser trims newName and stores it. Blank names are ignored.
func (s *Store) RenameUser(ctx context.Context, newName string) (domain.ProgressState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	name := strings.TrimSpace(newName)
	if name == "" {
		return s.state.Clone(), nil
	}

	s.state.Username = name
	return s.state.Clone(), s.persistLocked(ctx)
}

// Save writes the in-memory state again, e.g. after an earlier write failed.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	return s.persistLocked(ctx)
}

func (s *Store) ensureLoaded(ctx context.Context) {
	if !s.loaded {
		s.loadLocked(ctx)
	}
}

func (s *Store) loadLocked(ctx context.Context) {
	s.state = domain.NewProgressState(s.defaultUsername)

	stored, err := s.repo.ReadProgress(ctx)
	if err != nil {
		s.loaded = false
		s.log.Warnf("Failed to read progress, using defaults until a read succeeds: %v", err)
		return
	}
	s.loaded = true
	if stored == nil {
		return
	}

	s.state = stored.Clone()
	s.state.CompletedChallengeIDs = domain.UniqueIDs(s.state.CompletedChallengeIDs)
	if s.state.Points < 0 {
		s.state.Points = 0
	}
	if strings.TrimSpace(s.state.Username) == "" {
		s.state.Username = s.defaultUsername
	}
}

func (s *Store) persistLocked(ctx context.Context) error {
	// Defaults after a failed read must never overwrite the stored copy.
	if !s.loaded {
		s.log.Errorf("Not persisting progress: stored state could not be read")
		return fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, domain.ErrPersistenceRead)
	}
	snapshot := s.state.Clone()
	if err := s.repo.WriteProgress(ctx, &snapshot); err != nil {
		s.log.Errorf("Failed to persist progress: %v", err)
		return fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err)
	}
	return nil
}
