package catalog

import "github.com/fardannozami/greencity-bot/internal/domain"

var defaultChallenges = []domain.Challenge{
	{
		ID:          "recycle-daily",
		Icon:        "♻️",
		Title:       "Daily Recycling Hero",
		Description: "Recycle at least 3 items today (plastic, paper, or glass)",
		Points:      15,
		Difficulty:  domain.DifficultyEasy,
		Category:    "Waste",
	},
	{
		ID:          "bike-commute",
		Icon:        "🚴‍♀️",
		Title:       "Eco-Friendly Commute",
		Description: "Use bike, walk, or public transport instead of driving",
		Points:      20,
		Difficulty:  domain.DifficultyMedium,
		Category:    "Transportation",
	},
	{
		ID:          "water-bottle",
		Icon:        "💧",
		Title:       "Plastic-Free Hydration",
		Description: "Use only reusable water bottles for the entire day",
		Points:      10,
		Difficulty:  domain.DifficultyEasy,
		Category:    "Lifestyle",
	},
	{
		ID:          "lights-off",
		Icon:        "💡",
		Title:       "Energy Saver",
		Description: "Turn off all lights when leaving rooms throughout the day",
		Points:      8,
		Difficulty:  domain.DifficultyEasy,
		Category:    "Energy",
	},
	{
		ID:          "composting",
		Icon:        "🌱",
		Title:       "Composting Champion",
		Description: "Start or maintain a compost bin with organic waste",
		Points:      25,
		Difficulty:  domain.DifficultyHard,
		Category:    "Waste",
	},
	{
		ID:          "meatless-meal",
		Icon:        "🥗",
		Title:       "Plant-Based Power",
		Description: "Eat at least one plant-based meal today",
		Points:      12,
		Difficulty:  domain.DifficultyEasy,
		Category:    "Food",
	},
	{
		ID:          "short-shower",
		Icon:        "🚿",
		Title:       "Water Conservation",
		Description: "Take a shower under 5 minutes",
		Points:      10,
		Difficulty:  domain.DifficultyMedium,
		Category:    "Water",
	},
	{
		ID:          "local-shopping",
		Icon:        "🏪",
		Title:       "Local Hero",
		Description: "Buy groceries from local farmers market or store",
		Points:      18,
		Difficulty:  domain.DifficultyMedium,
		Category:    "Community",
	},
	{
		ID:          "reusable-bags",
		Icon:        "🛍️",
		Title:       "Bag It Right",
		Description: "Use reusable bags for all shopping today",
		Points:      8,
		Difficulty:  domain.DifficultyEasy,
		Category:    "Lifestyle",
	},
	{
		ID:          "tree-planting",
		Icon:        "🌳",
		Title:       "Tree Planter",
		Description: "Plant a tree or support a tree-planting organization",
		Points:      30,
		Difficulty:  domain.DifficultyHard,
		Category:    "Environment",
	},
}

var defaultBadges = []domain.Badge{
	{ID: "starter", Icon: "🌱", Name: "Eco Beginner", Description: "Complete your first challenge", RequirementKind: domain.RequirementChallengeCount, Requirement: 1},
	{ID: "enthusiast", Icon: "🌿", Name: "Green Enthusiast", Description: "Complete 5 challenges", RequirementKind: domain.RequirementChallengeCount, Requirement: 5},
	{ID: "warrior", Icon: "🌟", Name: "Eco Warrior", Description: "Complete 10 challenges", RequirementKind: domain.RequirementChallengeCount, Requirement: 10},
	{ID: "hero", Icon: "🏆", Name: "Eco Hero", Description: "Complete 15 challenges", RequirementKind: domain.RequirementChallengeCount, Requirement: 15},
	{ID: "champion", Icon: "🌍", Name: "Planet Champion", Description: "Complete 20 challenges", RequirementKind: domain.RequirementChallengeCount, Requirement: 20},
	{ID: "points50", Icon: "💎", Name: "Point Collector", Description: "Earn 50 points", RequirementKind: domain.RequirementPointTotal, Requirement: 50},
	{ID: "points100", Icon: "👑", Name: "Point Master", Description: "Earn 100 points", RequirementKind: domain.RequirementPointTotal, Requirement: 100},
	{ID: "points200", Icon: "⭐", Name: "Point Legend", Description: "Earn 200 points", RequirementKind: domain.RequirementPointTotal, Requirement: 200},
}

// Today's featured challenges on the home view.
var defaultFeatured = []string{"recycle-daily", "bike-commute", "water-bottle", "lights-off", "composting"}
