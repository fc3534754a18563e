package usecase

import (
	"fmt"
	"strings"

	"github.com/fardannozami/greencity-bot/internal/app/query"
	"github.com/fardannozami/greencity-bot/internal/domain"
)

const progressBarWidth = 10

func progressBar(fraction float64) string {
	filled := int(fraction*progressBarWidth + 0.5)
	if filled > progressBarWidth {
		filled = progressBarWidth
	}
	return strings.Repeat("▓", filled) + strings.Repeat("░", progressBarWidth-filled)
}

func goalLine(g query.Goal) string {
	if g.Reached {
		return fmt.Sprintf("%s %d / %d points\n🏆 Congratulations! You've reached the goal!", progressBar(g.Fraction), g.Points, g.Target)
	}
	return fmt.Sprintf("%s %d / %d points (%d%% complete)", progressBar(g.Fraction), g.Points, g.Target, g.Percent)
}

func badgeLine(b domain.Badge) string {
	return fmt.Sprintf("%s *%s* - %s", b.Icon, b.Name, b.Description)
}

// newBadges returns badges in after that are missing from before.
func newBadges(before, after []domain.Badge) []domain.Badge {
	had := make(map[string]struct{}, len(before))
	for _, b := range before {
		had[b.ID] = struct{}{}
	}
	var out []domain.Badge
	for _, b := range after {
		if _, ok := had[b.ID]; !ok {
			out = append(out, b)
		}
	}
	return out
}

const saveFailedNote = "⚠️ Progress could not be saved right now. Send #save to try again."
