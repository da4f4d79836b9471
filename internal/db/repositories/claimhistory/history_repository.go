package claimhistory

import (
	"context"

	"github.com/MyelinBots/leaderboard-go/internal/db"
	"github.com/google/uuid"
)

//go:generate mockgen -source=history_repository.go -destination=mocks/history_repository_mock.go -package=mocks

type HistoryRepository interface {
	CreateEntry(ctx context.Context, entry *ClaimHistory) error

	// ListAll returns every claim, newest first, with user names attached.
	ListAll(ctx context.Context) ([]*HistoryEntry, error)

	// ListByUser returns one user's claims, newest first.
	ListByUser(ctx context.Context, userID string) ([]*HistoryEntry, error)
}

type HistoryRepositoryImpl struct {
	db *db.DB
}

func NewHistoryRepository(database *db.DB) HistoryRepository {
	return &HistoryRepositoryImpl{db: database}
}

func (r *HistoryRepositoryImpl) CreateEntry(ctx context.Context, entry *ClaimHistory) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return r.db.DB.WithContext(ctx).Create(entry).Error
}

func (r *HistoryRepositoryImpl) ListAll(ctx context.Context) ([]*HistoryEntry, error) {
	var entries []*HistoryEntry
	if err := r.db.DB.WithContext(ctx).
		Table("claim_history").
		Select("claim_history.id, claim_history.user_id, users.name AS user_name, claim_history.points_claimed, claim_history.claimed_at").
		Joins("JOIN users ON users.id = claim_history.user_id").
		Order("claim_history.claimed_at DESC").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *HistoryRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*HistoryEntry, error) {
	var entries []*HistoryEntry
	if err := r.db.DB.WithContext(ctx).
		Table("claim_history").
		Select("claim_history.id, claim_history.user_id, users.name AS user_name, claim_history.points_claimed, claim_history.claimed_at").
		Joins("JOIN users ON users.id = claim_history.user_id").
		Where("claim_history.user_id = ?", userID).
		Order("claim_history.claimed_at DESC").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
