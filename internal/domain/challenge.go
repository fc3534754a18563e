package domain

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Challenge struct {
	ID          string     `json:"id"`
	Icon        string     `json:"icon"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Points      int        `json:"points"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category"`
}

// RequirementKind selects which progress value a badge threshold is compared against.
type RequirementKind string

const (
	RequirementChallengeCount RequirementKind = "challenge_count"
	RequirementPointTotal     RequirementKind = "point_total"
)

type Badge struct {
	ID              string          `json:"id"`
	Icon            string          `json:"icon"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	RequirementKind RequirementKind `json:"requirement_kind"`
	Requirement     int             `json:"requirement"`
}
