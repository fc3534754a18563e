package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fardannozami/greencity-bot/internal/app/query"
)

type GetProfileUsecase struct {
	facade *query.Facade
}

func NewGetProfileUsecase(facade *query.Facade) *GetProfileUsecase {
	return &GetProfileUsecase{facade: facade}
}

func (uc *GetProfileUsecase) Execute(ctx context.Context) (string, error) {
	p := uc.facade.Profile(ctx)

	var sb strings.Builder
	fmt.Fprintf(&sb, "👤 *%s*\nEco Challenge Member\n\n", p.Username)
	fmt.Fprintf(&sb, "🌿 %d GreenPoints\n", p.Points)
	fmt.Fprintf(&sb, "✅ %d Challenges Completed\n", p.CompletedCount)
	fmt.Fprintf(&sb, "🏅 %d Badges Earned\n", len(p.EarnedBadges))
	fmt.Fprintf(&sb, "📊 %d Points from Challenges\n", p.Completed.TotalPointsFromKnownChallenges)
	sb.WriteString(goalLine(p.Goal) + "\n")

	if p.NextBadge != nil {
		fmt.Fprintf(&sb, "\nNext badge: %s %s (%d / %d)\n", p.NextBadge.Icon, p.NextBadge.Name, p.NextBadgeProgress, p.NextBadge.Requirement)
	}

	sb.WriteString("\n*Completed Challenges*\n")
	if len(p.Completed.Entries) == 0 {
		sb.WriteString("No challenges completed yet. Send #challenges and start with an easy one!")
	}
	for i, c := range p.Completed.Entries {
		fmt.Fprintf(&sb, "%d. %s (+%d points)\n", i+1, c.Title, c.Points)
	}

	return strings.TrimSpace(sb.String()), nil
}
