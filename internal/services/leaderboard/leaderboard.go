package leaderboard

import (
	"context"
	"sort"
	"time"

	"github.com/MyelinBots/leaderboard-go/internal/db/repositories/user"
)

// Entry is a user projected with its computed rank. Never persisted.
type Entry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Avatar      string    `json:"avatar"`
	TotalPoints int64     `json:"totalPoints"`
	Rank        int       `json:"rank"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Rank sorts users by total points descending and assigns 1-based ranks.
// The sort is stable: equal totals keep the order they came in. Ranks are
// always the contiguous sequence 1..N, ties included.
func Rank(users []*user.User) []Entry {
	sorted := make([]*user.User, len(users))
	copy(sorted, users)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalPoints > sorted[j].TotalPoints
	})

	entries := make([]Entry, 0, len(sorted))
	for i, u := range sorted {
		entries = append(entries, Entry{
			ID:          u.ID,
			Name:        u.Name,
			Avatar:      u.Avatar,
			TotalPoints: u.TotalPoints,
			Rank:        i + 1,
			CreatedAt:   u.CreatedAt,
		})
	}
	return entries
}

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context) ([]Entry, error)
}

type LeaderboardServiceImpl struct {
	users user.UserRepository
}

func NewLeaderboardService(users user.UserRepository) LeaderboardService {
	return &LeaderboardServiceImpl{users: users}
}

func (s *LeaderboardServiceImpl) GetLeaderboard(ctx context.Context) ([]Entry, error) {
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(users), nil
}
