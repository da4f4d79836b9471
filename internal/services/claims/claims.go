package claims

import (
	"context"
	"errors"
	"time"

	"github.com/MyelinBots/leaderboard-go/internal/db/repositories/claimhistory"
	"github.com/MyelinBots/leaderboard-go/internal/db/repositories/user"
	"github.com/MyelinBots/leaderboard-go/internal/services/leaderboard"
	"github.com/MyelinBots/leaderboard-go/internal/services/random"
	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user does not exist")

// maxClaimPoints bounds the random draw: every claim awards 1..10 points.
const maxClaimPoints = 10

type ClaimResult struct {
	PointsClaimed int
	User          *user.User
	Leaderboard   []leaderboard.Entry
}

type ClaimService interface {
	ClaimPoints(ctx context.Context, userID string) (*ClaimResult, error)
	GetHistory(ctx context.Context, userID string) ([]*claimhistory.HistoryEntry, error)
}

type ClaimServiceImpl struct {
	users       user.UserRepository
	history     claimhistory.HistoryRepository
	leaderboard leaderboard.LeaderboardService
	rand        random.Rand
}

func NewClaimService(users user.UserRepository, history claimhistory.HistoryRepository, lb leaderboard.LeaderboardService, rnd random.Rand) ClaimService {
	return &ClaimServiceImpl{users: users, history: history, leaderboard: lb, rand: rnd}
}

// ClaimPoints awards a random 1..10 points to the user and records the claim.
// The total is bumped with a single SQL increment, so concurrent claims do not
// lose updates. The history append is a separate write: if it fails after the
// increment the total stays bumped with no matching history row.
func (s *ClaimServiceImpl) ClaimPoints(ctx context.Context, userID string) (*ClaimResult, error) {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	pointsClaimed := s.rand.Intn(maxClaimPoints) + 1

	if err := s.users.AddPoints(ctx, u.ID, pointsClaimed); err != nil {
		return nil, err
	}

	updated, err := s.users.GetUserByID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	entry := &claimhistory.ClaimHistory{
		ID:            uuid.NewString(),
		UserID:        u.ID,
		PointsClaimed: pointsClaimed,
		ClaimedAt:     time.Now(),
	}
	if err := s.history.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	lb, err := s.leaderboard.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	return &ClaimResult{
		PointsClaimed: pointsClaimed,
		User:          updated,
		Leaderboard:   lb,
	}, nil
}

// GetHistory returns claims newest first, for one user when userID is set,
// otherwise for everyone.
func (s *ClaimServiceImpl) GetHistory(ctx context.Context, userID string) ([]*claimhistory.HistoryEntry, error) {
	if userID != "" {
		return s.history.ListByUser(ctx, userID)
	}
	return s.history.ListAll(ctx)
}
