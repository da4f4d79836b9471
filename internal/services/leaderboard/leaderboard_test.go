package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/MyelinBots/leaderboard-go/internal/db/repositories/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	tests := []struct {
		name      string
		users     []*user.User
		wantOrder []string
	}{
		{
			name:      "empty input",
			users:     nil,
			wantOrder: []string{},
		},
		{
			name: "orders by points descending",
			users: []*user.User{
				{ID: "a", Name: "low", TotalPoints: 10},
				{ID: "b", Name: "high", TotalPoints: 100},
				{ID: "c", Name: "mid", TotalPoints: 50},
			},
			wantOrder: []string{"b", "c", "a"},
		},
		{
			name: "ties keep insertion order",
			users: []*user.User{
				{ID: "a", Name: "A", TotalPoints: 50},
				{ID: "b", Name: "B", TotalPoints: 50},
				{ID: "c", Name: "C", TotalPoints: 99},
			},
			wantOrder: []string{"c", "a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Rank(tt.users)

			require.Len(t, entries, len(tt.wantOrder))
			for i, e := range entries {
				assert.Equal(t, tt.wantOrder[i], e.ID)
				assert.Equal(t, i+1, e.Rank)
			}
			for i := 1; i < len(entries); i++ {
				assert.GreaterOrEqual(t, entries[i-1].TotalPoints, entries[i].TotalPoints)
			}
		})
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	users := []*user.User{
		{ID: "a", TotalPoints: 1},
		{ID: "b", TotalPoints: 2},
	}

	Rank(users)

	assert.Equal(t, "a", users[0].ID)
	assert.Equal(t, "b", users[1].ID)
}

type stubUserRepo struct {
	user.UserRepository
	users []*user.User
	err   error
}

func (s *stubUserRepo) GetAllUsers(ctx context.Context) ([]*user.User, error) {
	return s.users, s.err
}

func TestGetLeaderboard(t *testing.T) {
	now := time.Now()
	repo := &stubUserRepo{users: []*user.User{
		{ID: "a", Name: "A", TotalPoints: 5, CreatedAt: now},
		{ID: "b", Name: "B", TotalPoints: 7, CreatedAt: now},
	}}

	svc := NewLeaderboardService(repo)
	entries, err := svc.GetLeaderboard(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "a", entries[1].ID)
	assert.Equal(t, 2, entries[1].Rank)
}
