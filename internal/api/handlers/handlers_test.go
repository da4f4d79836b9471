package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MyelinBots/leaderboard-go/internal/db/repositories/claimhistory"
	"github.com/MyelinBots/leaderboard-go/internal/db/repositories/user"
	"github.com/MyelinBots/leaderboard-go/internal/services/claims"
	"github.com/MyelinBots/leaderboard-go/internal/services/leaderboard"
	"github.com/MyelinBots/leaderboard-go/internal/services/users"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserService struct {
	addResult  *users.AddUserResult
	addErr     error
	seedResult *users.SeedResult
	seedErr    error
}

func (s *stubUserService) AddUser(ctx context.Context, name, avatar string) (*users.AddUserResult, error) {
	return s.addResult, s.addErr
}

func (s *stubUserService) SeedUsers(ctx context.Context) (*users.SeedResult, error) {
	return s.seedResult, s.seedErr
}

type stubClaimService struct {
	claimResult *claims.ClaimResult
	claimErr    error
	history     []*claimhistory.HistoryEntry
	historyErr  error
	gotUserID   string
}

func (s *stubClaimService) ClaimPoints(ctx context.Context, userID string) (*claims.ClaimResult, error) {
	s.gotUserID = userID
	return s.claimResult, s.claimErr
}

func (s *stubClaimService) GetHistory(ctx context.Context, userID string) ([]*claimhistory.HistoryEntry, error) {
	s.gotUserID = userID
	return s.history, s.historyErr
}

type stubLeaderboardService struct {
	entries []leaderboard.Entry
	err     error
}

func (s *stubLeaderboardService) GetLeaderboard(ctx context.Context) ([]leaderboard.Entry, error) {
	return s.entries, s.err
}

func TestGetUsers(t *testing.T) {
	h := NewHandler(&stubUserService{}, &stubClaimService{}, &stubLeaderboardService{
		entries: []leaderboard.Entry{
			{ID: "u1", Name: "Alice", TotalPoints: 100, Rank: 1},
			{ID: "u2", Name: "Bob", TotalPoints: 50, Rank: 2},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	h.GetUsers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []leaderboard.Entry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, "Alice", got[0].Name)
}

func TestAddUser_Success(t *testing.T) {
	h := NewHandler(&stubUserService{
		addResult: &users.AddUserResult{
			User:        &user.User{ID: "u1", Name: "Alice"},
			Leaderboard: []leaderboard.Entry{{ID: "u1", Name: "Alice", Rank: 1}},
		},
	}, &stubClaimService{}, &stubLeaderboardService{})

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"name":"Alice"}`))
	rec := httptest.NewRecorder()
	h.AddUser(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "User added successfully", body["msg"])
	assert.NotNil(t, body["user"])
	assert.NotNil(t, body["leaderboard"])
}

func TestAddUser_EmptyName(t *testing.T) {
	h := NewHandler(&stubUserService{addErr: users.ErrEmptyName}, &stubClaimService{}, &stubLeaderboardService{})

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"name":"  "}`))
	rec := httptest.NewRecorder()
	h.AddUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter a user name.")
}

func TestAddUser_DuplicateName(t *testing.T) {
	h := NewHandler(&stubUserService{addErr: users.ErrDuplicateName}, &stubClaimService{}, &stubLeaderboardService{})

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"name":"Alice"}`))
	rec := httptest.NewRecorder()
	h.AddUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User with this name already exists.")
}

func TestClaimPoints_Success(t *testing.T) {
	stub := &stubClaimService{
		claimResult: &claims.ClaimResult{
			PointsClaimed: 7,
			User:          &user.User{ID: "u1", Name: "Alice", TotalPoints: 107},
			Leaderboard:   []leaderboard.Entry{{ID: "u1", Rank: 1}},
		},
	}
	h := NewHandler(&stubUserService{}, stub, &stubLeaderboardService{})

	req := httptest.NewRequest(http.MethodPost, "/api/claimPoints", strings.NewReader(`{"userId":"u1"}`))
	rec := httptest.NewRecorder()
	h.ClaimPoints(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "u1", stub.gotUserID)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Successfully claimed 7 points for Alice", body["msg"])
	assert.Equal(t, float64(7), body["pointsClaimed"])

	claimedUser := body["user"].(map[string]interface{})
	assert.Equal(t, float64(107), claimedUser["totalPoints"])
}

func TestClaimPoints_MissingUserID(t *testing.T) {
	stub := &stubClaimService{}
	h := NewHandler(&stubUserService{}, stub, &stubLeaderboardService{})

	req := httptest.NewRequest(http.MethodPost, "/api/claimPoints", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.ClaimPoints(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User ID is required.")
	assert.Empty(t, stub.gotUserID)
}

func TestClaimPoints_UnknownUser(t *testing.T) {
	h := NewHandler(&stubUserService{}, &stubClaimService{claimErr: claims.ErrUserNotFound}, &stubLeaderboardService{})

	req := httptest.NewRequest(http.MethodPost, "/api/claimPoints", strings.NewReader(`{"userId":"missing"}`))
	rec := httptest.NewRecorder()
	h.ClaimPoints(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User does not exist.")
}

func TestGetClaimHistory_ByUser(t *testing.T) {
	stub := &stubClaimService{
		history: []*claimhistory.HistoryEntry{
			{ID: "h1", UserID: "u1", UserName: "Alice", PointsClaimed: 9},
		},
	}
	h := NewHandler(&stubUserService{}, stub, &stubLeaderboardService{})

	r := mux.NewRouter()
	r.HandleFunc("/api/claimHistory/{userId}", h.GetClaimHistory).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/claimHistory/u1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", stub.gotUserID)

	var got []*claimhistory.HistoryEntry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].UserName)
}

func TestGetClaimHistory_EmptyIsArray(t *testing.T) {
	h := NewHandler(&stubUserService{}, &stubClaimService{}, &stubLeaderboardService{})

	req := httptest.NewRequest(http.MethodGet, "/api/claimHistory", nil)
	rec := httptest.NewRecorder()
	h.GetClaimHistory(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestSeedUsers(t *testing.T) {
	h := NewHandler(&stubUserService{
		seedResult: &users.SeedResult{
			Seeded:      true,
			Leaderboard: []leaderboard.Entry{{Name: "Pritesh", Rank: 1}},
		},
	}, &stubClaimService{}, &stubLeaderboardService{})

	req := httptest.NewRequest(http.MethodPost, "/api/seedUsers", nil)
	rec := httptest.NewRecorder()
	h.SeedUsers(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Initial users seeded successfully")
}

func TestSeedUsers_NoOp(t *testing.T) {
	h := NewHandler(&stubUserService{
		seedResult: &users.SeedResult{Seeded: false},
	}, &stubClaimService{}, &stubLeaderboardService{})

	req := httptest.NewRequest(http.MethodPost, "/api/seedUsers", nil)
	rec := httptest.NewRecorder()
	h.SeedUsers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "no seeding performed")
}
