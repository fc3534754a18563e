// Package catalog holds the static challenge and badge definitions.
package catalog

import (
	"fmt"
	"slices"

	"github.com/fardannozami/greencity-bot/internal/domain"
)

// AllCategories is the category filter value that matches every challenge.
const AllCategories = "All"

// Catalog is not modified after setup. Accessors return copies.
type Catalog struct {
	challenges []domain.Challenge
	badges     []domain.Badge
	byID       map[string]int
	featured   []string
}

func New(challenges []domain.Challenge, badges []domain.Badge) (*Catalog, error) {
	c := &Catalog{
		challenges: slices.Clone(challenges),
		badges:     slices.Clone(badges),
		byID:       make(map[string]int, len(challenges)),
	}

	for i, ch := range c.challenges {
		if ch.ID == "" || ch.Points <= 0 || !ch.Difficulty.Valid() {
			return nil, fmt.Errorf("challenge %q: %w", ch.ID, domain.ErrInvalidDefinition)
		}
		if _, ok := c.byID[ch.ID]; ok {
			return nil, fmt.Errorf("challenge %q: %w", ch.ID, domain.ErrDuplicateID)
		}
		c.byID[ch.ID] = i
	}

	seen := make(map[string]struct{}, len(c.badges))
	for _, b := range c.badges {
		if b.ID == "" || b.Requirement <= 0 {
			return nil, fmt.Errorf("badge %q: %w", b.ID, domain.ErrInvalidDefinition)
		}
		if b.RequirementKind != domain.RequirementChallengeCount && b.RequirementKind != domain.RequirementPointTotal {
			return nil, fmt.Errorf("badge %q: unknown requirement kind %q: %w", b.ID, b.RequirementKind, domain.ErrInvalidDefinition)
		}
		if _, ok := seen[b.ID]; ok {
			return nil, fmt.Errorf("badge %q: %w", b.ID, domain.ErrDuplicateID)
		}
		seen[b.ID] = struct{}{}
	}

	return c, nil
}

// Default returns the built-in GreenCity catalog.
func Default() *Catalog {
	c, err := New(defaultChallenges, defaultBadges)
	if err != nil {
		panic(err)
	}
	if err := c.SetFeatured(defaultFeatured...); err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) ListChallenges() []domain.Challenge {
	return slices.Clone(c.challenges)
}

func (c *Catalog) ListBadges() []domain.Badge {
	return slices.Clone(c.badges)
}

func (c *Catalog) FindChallenge(id string) (domain.Challenge, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Challenge{}, false
	}
	return c.challenges[i], true
}

// SetFeatured picks the challenges highlighted on the home view, in order.
// Every id must already be in the catalog.
func (c *Catalog) SetFeatured(ids ...string) error {
	for _, id := range ids {
		if _, ok := c.byID[id]; !ok {
			return fmt.Errorf("featured challenge %q: %w", id, domain.ErrInvalidDefinition)
		}
	}
	c.featured = domain.UniqueIDs(ids)
	return nil
}

func (c *Catalog) Featured() []domain.Challenge {
	out := make([]domain.Challenge, 0, len(c.featured))
	for _, id := range c.featured {
		out = append(out, c.challenges[c.byID[id]])
	}
	return out
}

// Categories returns AllCategories followed by each distinct category in
// the order it first appears in the catalog.
func (c *Catalog) Categories() []string {
	out := []string{AllCategories}
	seen := make(map[string]struct{})
	for _, ch := range c.challenges {
		if _, ok := seen[ch.Category]; ok {
			continue
		}
		seen[ch.Category] = struct{}{}
		out = append(out, ch.Category)
	}
	return out
}
