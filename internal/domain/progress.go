package domain

import (
	"context"
	"slices"
)

const DefaultUsername = "Eco Friend"

// ProgressState is the persisted record of a single user's progress.
// CompletedChallengeIDs keeps insertion order and never holds duplicates.
type ProgressState struct {
	Points                int      `json:"points"`
	CompletedChallengeIDs []string `json:"completed_challenge_ids"`
	Username              string   `json:"username"`
}

func NewProgressState(username string) ProgressState {
	return ProgressState{
		CompletedChallengeIDs: []string{},
		Username:              username,
	}
}

// Clone returns a copy that shares no memory with s.
func (s ProgressState) Clone() ProgressState {
	out := s
	out.CompletedChallengeIDs = slices.Clone(s.CompletedChallengeIDs)
	if out.CompletedChallengeIDs == nil {
		out.CompletedChallengeIDs = []string{}
	}
	return out
}

func (s ProgressState) HasCompleted(challengeID string) bool {
	return slices.Contains(s.CompletedChallengeIDs, challengeID)
}

func (s ProgressState) CompletedCount() int {
	return len(s.CompletedChallengeIDs)
}

// ProgressRepository is the durable backing copy of the progress state.
// ReadProgress returns nil, nil when nothing has been persisted yet.
type ProgressRepository interface {
	ReadProgress(ctx context.Context) (*ProgressState, error)
	WriteProgress(ctx context.Context, state *ProgressState) error
}

// UniqueIDs drops empty and repeated ids, keeping the first occurrence.
func UniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
