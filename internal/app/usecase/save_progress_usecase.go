package usecase

import (
	"context"
	"errors"

	"github.com/fardannozami/greencity-bot/internal/app/query"
	"github.com/fardannozami/greencity-bot/internal/domain"
)

type SaveProgressUsecase struct {
	facade *query.Facade
}

func NewSaveProgressUsecase(facade *query.Facade) *SaveProgressUsecase {
	return &SaveProgressUsecase{facade: facade}
}

func (uc *SaveProgressUsecase) Execute(ctx context.Context) (string, error) {
	if err := uc.facade.Save(ctx); err != nil {
		if errors.Is(err, domain.ErrPersistenceWrite) {
			return saveFailedNote, nil
		}
		return "", err
	}
	return "💾 Progress saved.", nil
}
