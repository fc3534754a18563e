package usecase_test

import (
	"context"
	"errors"

	"github.com/fardannozami/greencity-bot/internal/app/progress"
	"github.com/fardannozami/greencity-bot/internal/app/query"
	"github.com/fardannozami/greencity-bot/internal/catalog"
	"github.com/fardannozami/greencity-bot/internal/domain"
)

// mockRepo implements domain.ProgressRepository for testing
type mockRepo struct {
	state    *domain.ProgressState
	failNext bool
}

func (m *mockRepo) ReadProgress(ctx context.Context) (*domain.ProgressState, error) {
	if m.state == nil {
		return nil, nil
	}
	s := m.state.Clone()
	return &s, nil
}

func (m *mockRepo) WriteProgress(ctx context.Context, state *domain.ProgressState) error {
	if m.failNext {
		m.failNext = false
		return errors.New("disk full")
	}
	s := state.Clone()
	m.state = &s
	return nil
}

func newFacade(repo *mockRepo) *query.Facade {
	cat := catalog.Default()
	return query.NewFacade(cat, progress.NewStore(repo, cat, nil), 200)
}
