package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fardannozami/greencity-bot/internal/app/query"
	"github.com/fardannozami/greencity-bot/internal/catalog"
)

type ListChallengesUsecase struct {
	facade *query.Facade
}

func NewListChallengesUsecase(facade *query.Facade) *ListChallengesUsecase {
	return &ListChallengesUsecase{facade: facade}
}

// Execute lists challenges in the given category. Matching is
// case-insensitive; an empty category means all of them.
func (uc *ListChallengesUsecase) Execute(ctx context.Context, category string) (string, error) {
	selected, ok := uc.resolveCategory(category)
	if !ok {
		return fmt.Sprintf("Unknown category \"%s\". Categories: %s", strings.TrimSpace(category), strings.Join(uc.facade.Categories(), ", ")), nil
	}

	board := uc.facade.Board(ctx, selected)

	var sb strings.Builder
	sb.WriteString("🎯 *Eco Challenges*")
	if selected != catalog.AllCategories {
		fmt.Fprintf(&sb, " - %s", selected)
	}
	sb.WriteString("\n" + goalLine(board.Goal) + "\n\n")

	for _, item := range board.Items {
		mark := "⬜"
		if item.Completed {
			mark = "✅"
		}
		ch := item.Challenge
		fmt.Fprintf(&sb, "%s %s %s (+%d, %s, %s)\n   %s\n   #done %s\n", mark, ch.Icon, ch.Title, ch.Points, ch.Difficulty, ch.Category, ch.Description, ch.ID)
	}

	fmt.Fprintf(&sb, "\nFilter: #challenges <%s>", strings.Join(board.Categories, "|"))
	return sb.String(), nil
}

func (uc *ListChallengesUsecase) resolveCategory(category string) (string, bool) {
	category = strings.TrimSpace(category)
	if category == "" {
		return catalog.AllCategories, true
	}
	for _, c := range uc.facade.Categories() {
		if strings.EqualFold(c, category) {
			return c, true
		}
	}
	return "", false
}
