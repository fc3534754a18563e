// Package achievement derives badges and goal progress from a progress
// snapshot. Every function here is pure.
package achievement

import (
	"math"

	"github.com/fardannozami/greencity-bot/internal/domain"
)

// CurrentValue is the user's progress measured in the badge's requirement kind.
func CurrentValue(b domain.Badge, state domain.ProgressState) int {
	if b.RequirementKind == domain.RequirementPointTotal {
		return state.Points
	}
	return state.CompletedCount()
}

func IsEarned(b domain.Badge, state domain.ProgressState) bool {
	return CurrentValue(b, state) >= b.Requirement
}

// EarnedBadges returns earned badges in catalog order.
func EarnedBadges(state domain.ProgressState, badges []domain.Badge) []domain.Badge {
	earned := []domain.Badge{}
	for _, b := range badges {
		if IsEarned(b, state) {
			earned = append(earned, b)
		}
	}
	return earned
}

// NextBadge picks the unearned badge with the smallest remaining gap.
// Ties go to the badge defined first in the catalog.
func NextBadge(state domain.ProgressState, badges []domain.Badge) (domain.Badge, bool) {
	var (
		best    domain.Badge
		bestGap int
		found   bool
	)
	for _, b := range badges {
		gap := b.Requirement - CurrentValue(b, state)
		if gap <= 0 {
			continue
		}
		if !found || gap < bestGap {
			best, bestGap, found = b, gap, true
		}
	}
	return best, found
}

// ProgressFraction is points/ceiling clamped to [0,1]. A non-positive
// ceiling counts as already reached.
func ProgressFraction(state domain.ProgressState, ceilingPoints int) float64 {
	if ceilingPoints <= 0 {
		return 1
	}
	f := float64(state.Points) / float64(ceilingPoints)
	return math.Max(0, math.Min(f, 1))
}

// ProgressPercent is ProgressFraction as a rounded whole percentage.
func ProgressPercent(state domain.ProgressState, ceilingPoints int) int {
	return int(math.Round(ProgressFraction(state, ceilingPoints) * 100))
}

func GoalReached(state domain.ProgressState, ceilingPoints int) bool {
	return ProgressFraction(state, ceilingPoints) >= 1
}
