package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fardannozami/greencity-bot/internal/app/query"
)

type GetHomeUsecase struct {
	facade *query.Facade
}

func NewGetHomeUsecase(facade *query.Facade) *GetHomeUsecase {
	return &GetHomeUsecase{facade: facade}
}

func (uc *GetHomeUsecase) Execute(ctx context.Context) (string, error) {
	home := uc.facade.Home(ctx)

	var sb strings.Builder
	fmt.Fprintf(&sb, "🌱 *Welcome to GreenCity Challenge, %s!*\n", home.Username)
	fmt.Fprintf(&sb, "%d GreenPoints! 🏆\n\n", home.Points)
	sb.WriteString("🌟 *Today's Featured Challenges*\n")
	for _, item := range home.Featured {
		ch := item.Challenge
		if item.Completed {
			fmt.Fprintf(&sb, "✅ %s %s (+%d) done\n", ch.Icon, ch.Title, ch.Points)
			continue
		}
		fmt.Fprintf(&sb, "⬜ %s %s (+%d) #done %s\n", ch.Icon, ch.Title, ch.Points, ch.ID)
	}
	sb.WriteString("\nSend #challenges to view all challenges.")
	return sb.String(), nil
}
