// Package query is the read/write surface presentation code talks to. It
// composes the catalog, the progress store and the achievement rules so
// that no view re-implements them.
package query

import (
	"context"

	"github.com/fardannozami/greencity-bot/internal/app/achievement"
	"github.com/fardannozami/greencity-bot/internal/app/progress"
	"github.com/fardannozami/greencity-bot/internal/catalog"
	"github.com/fardannozami/greencity-bot/internal/domain"
)

const UnknownChallengeTitle = "Unknown Challenge"

// ProgressStore is the subset of progress.Store the façade needs.
type ProgressStore interface {
	Snapshot(ctx context.Context) domain.ProgressState
	CompleteChallenge(ctx context.Context, challengeID string) (domain.ProgressState, error)
	RecordCompletion(ctx context.Context, challengeID string) (progress.Completion, error)
	RenameUser(ctx context.Context, newName string) (domain.ProgressState, error)
	Save(ctx context.Context) error
}

type CompletedChallenge struct {
	ID     string
	Title  string
	Points int
	Known  bool
}

type CompletionSummary struct {
	Entries []CompletedChallenge
	// TotalPointsFromKnownChallenges sums resolved entries only. It can be
	// lower than the stored points once a completed challenge leaves the catalog.
	TotalPointsFromKnownChallenges int
}

type BoardItem struct {
	Challenge domain.Challenge
	Completed bool
}

// Goal is the capped progress towards the points goal.
type Goal struct {
	Points   int
	Target   int
	Fraction float64
	Percent  int
	Reached  bool
}

type Board struct {
	Category   string
	Categories []string
	Items      []BoardItem
	Goal       Goal
}

// Home is the landing view: points counter plus the featured challenges.
type Home struct {
	Username string
	Points   int
	Featured []BoardItem
}

type Profile struct {
	Username       string
	Points         int
	CompletedCount int
	EarnedBadges   []domain.Badge
	NextBadge      *domain.Badge
	// NextBadgeProgress is the current value measured against NextBadge.Requirement.
	NextBadgeProgress int
	Completed         CompletionSummary
	Goal              Goal
}

type Facade struct {
	catalog    *catalog.Catalog
	store      ProgressStore
	goalPoints int
}

func NewFacade(cat *catalog.Catalog, store ProgressStore, goalPoints int) *Facade {
	return &Facade{catalog: cat, store: store, goalPoints: goalPoints}
}

func (f *Facade) Categories() []string {
	return f.catalog.Categories()
}

// ChallengesByCategory returns the catalog filtered by exact category.
// catalog.AllCategories returns everything.
func (f *Facade) ChallengesByCategory(selected string) []domain.Challenge {
	all := f.catalog.ListChallenges()
	if selected == catalog.AllCategories {
		return all
	}
	out := []domain.Challenge{}
	for _, ch := range all {
		if ch.Category == selected {
			out = append(out, ch)
		}
	}
	return out
}

// CompletedChallengeDetails resolves the completion history in insertion order.
func (f *Facade) CompletedChallengeDetails(state domain.ProgressState) CompletionSummary {
	summary := CompletionSummary{Entries: make([]CompletedChallenge, 0, state.CompletedCount())}
	for _, id := range state.CompletedChallengeIDs {
		entry := CompletedChallenge{ID: id, Title: UnknownChallengeTitle}
		if ch, ok := f.catalog.FindChallenge(id); ok {
			entry.Title = ch.Title
			entry.Points = ch.Points
			entry.Known = true
		}
		summary.TotalPointsFromKnownChallenges += entry.Points
		summary.Entries = append(summary.Entries, entry)
	}
	return summary
}

func (f *Facade) EarnedBadges(state domain.ProgressState) []domain.Badge {
	return achievement.EarnedBadges(state, f.catalog.ListBadges())
}

func (f *Facade) NextBadge(state domain.ProgressState) (domain.Badge, bool) {
	return achievement.NextBadge(state, f.catalog.ListBadges())
}

func (f *Facade) Snapshot(ctx context.Context) domain.ProgressState {
	return f.store.Snapshot(ctx)
}

func (f *Facade) FindChallenge(id string) (domain.Challenge, bool) {
	return f.catalog.FindChallenge(id)
}

func (f *Facade) CompleteChallenge(ctx context.Context, challengeID string) (domain.ProgressState, error) {
	return f.store.CompleteChallenge(ctx, challengeID)
}

func (f *Facade) RecordCompletion(ctx context.Context, challengeID string) (progress.Completion, error) {
	return f.store.RecordCompletion(ctx, challengeID)
}

func (f *Facade) Goal(state domain.ProgressState) Goal {
	return Goal{
		Points:   state.Points,
		Target:   f.goalPoints,
		Fraction: achievement.ProgressFraction(state, f.goalPoints),
		Percent:  achievement.ProgressPercent(state, f.goalPoints),
		Reached:  achievement.GoalReached(state, f.goalPoints),
	}
}

func (f *Facade) RenameUser(ctx context.Context, newName string) (domain.ProgressState, error) {
	return f.store.RenameUser(ctx, newName)
}

func (f *Facade) Save(ctx context.Context) error {
	return f.store.Save(ctx)
}

// Board is the challenge list view: filtered challenges with completion marks
// and the capped goal progress.
func (f *Facade) Board(ctx context.Context, category string) Board {
	state := f.store.Snapshot(ctx)
	challenges := f.ChallengesByCategory(category)

	items := make([]BoardItem, 0, len(challenges))
	for _, ch := range challenges {
		items = append(items, BoardItem{Challenge: ch, Completed: state.HasCompleted(ch.ID)})
	}

	return Board{
		Category:   category,
		Categories: f.Categories(),
		Items:      items,
		Goal:       f.Goal(state),
	}
}

func (f *Facade) Home(ctx context.Context) Home {
	state := f.store.Snapshot(ctx)

	featured := f.catalog.Featured()
	items := make([]BoardItem, 0, len(featured))
	for _, ch := range featured {
		items = append(items, BoardItem{Challenge: ch, Completed: state.HasCompleted(ch.ID)})
	}
	return Home{Username: state.Username, Points: state.Points, Featured: items}
}

func (f *Facade) Profile(ctx context.Context) Profile {
	state := f.store.Snapshot(ctx)

	p := Profile{
		Username:       state.Username,
		Points:         state.Points,
		CompletedCount: state.CompletedCount(),
		EarnedBadges:   f.EarnedBadges(state),
		Completed:      f.CompletedChallengeDetails(state),
		Goal:           f.Goal(state),
	}
	if next, ok := f.NextBadge(state); ok {
		p.NextBadge = &next
		p.NextBadgeProgress = achievement.CurrentValue(next, state)
	}
	return p
}
