package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fardannozami/greencity-bot/internal/app/query"
	"github.com/fardannozami/greencity-bot/internal/domain"
)

type CompleteChallengeUsecase struct {
	facade *query.Facade
}

func NewCompleteChallengeUsecase(facade *query.Facade) *CompleteChallengeUsecase {
	return &CompleteChallengeUsecase{facade: facade}
}

func (uc *CompleteChallengeUsecase) Execute(ctx context.Context, challengeID string) (string, error) {
	challengeID = strings.ToLower(strings.TrimSpace(challengeID))
	if challengeID == "" {
		return "Usage: #done <challenge-id>. Send #challenges to see the ids.", nil
	}

	// Only catalog ids are offered to the store from chat.
	challenge, ok := uc.facade.FindChallenge(challengeID)
	if !ok {
		return fmt.Sprintf("Unknown challenge \"%s\". Send #challenges to see the list.", challengeID), nil
	}

	// The store decides under its lock whether this call added the id.
	result, err := uc.facade.RecordCompletion(ctx, challengeID)
	if err != nil && !errors.Is(err, domain.ErrPersistenceWrite) {
		return "", err
	}
	if !result.Added {
		return fmt.Sprintf("✅ %s is already completed. You have %d GreenPoints.", challenge.Title, result.After.Points), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎉 Challenge completed: %s %s (+%d points). You now have %d GreenPoints!", challenge.Icon, challenge.Title, challenge.Points, result.After.Points)
	for _, badge := range newBadges(uc.facade.EarnedBadges(result.Before), uc.facade.EarnedBadges(result.After)) {
		fmt.Fprintf(&b, "\n🏅 New badge unlocked: %s", badgeLine(badge))
	}
	if err != nil {
		b.WriteString("\n" + saveFailedNote)
	}
	return b.String(), nil
}
