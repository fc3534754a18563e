package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fardannozami/greencity-bot/internal/app/query"
	"github.com/fardannozami/greencity-bot/internal/domain"
)

type RenameUserUsecase struct {
	facade *query.Facade
}

func NewRenameUserUsecase(facade *query.Facade) *RenameUserUsecase {
	return &RenameUserUsecase{facade: facade}
}

func (uc *RenameUserUsecase) Execute(ctx context.Context, newName string) (string, error) {
	if strings.TrimSpace(newName) == "" {
		return "Usage: #name <new name>", nil
	}

	state, err := uc.facade.RenameUser(ctx, newName)
	if err != nil && !errors.Is(err, domain.ErrPersistenceWrite) {
		return "", err
	}

	msg := fmt.Sprintf("Name updated. Hello, %s! 🌱", state.Username)
	if err != nil {
		msg += "\n" + saveFailedNote
	}
	return msg, nil
}
