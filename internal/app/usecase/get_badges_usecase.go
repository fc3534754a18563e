package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fardannozami/greencity-bot/internal/app/achievement"
	"github.com/fardannozami/greencity-bot/internal/app/query"
)

type GetBadgesUsecase struct {
	facade *query.Facade
}

func NewGetBadgesUsecase(facade *query.Facade) *GetBadgesUsecase {
	return &GetBadgesUsecase{facade: facade}
}

func (uc *GetBadgesUsecase) Execute(ctx context.Context) (string, error) {
	state := uc.facade.Snapshot(ctx)
	earned := uc.facade.EarnedBadges(state)

	var sb strings.Builder
	sb.WriteString("🏆 *Your Badges*\n\n")
	if len(earned) == 0 {
		sb.WriteString("Complete challenges to earn your first badge!\n")
	}
	for _, b := range earned {
		sb.WriteString(badgeLine(b) + "\n")
	}

	if next, ok := uc.facade.NextBadge(state); ok {
		fmt.Fprintf(&sb, "\n*Next Badge*\n%s\nProgress: %d / %d\n", badgeLine(next), achievement.CurrentValue(next, state), next.Requirement)
	}

	return strings.TrimSpace(sb.String()), nil
}
