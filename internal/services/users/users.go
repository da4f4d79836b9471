package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MyelinBots/leaderboard-go/internal/db/repositories/user"
	"github.com/MyelinBots/leaderboard-go/internal/services/leaderboard"
	"github.com/MyelinBots/leaderboard-go/internal/services/random"
	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("user name is required")
	ErrDuplicateName = errors.New("user with this name already exists")
)

// defaultAvatars is the fixed set a new user draws from when none is given.
var defaultAvatars = []string{
	"https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2",
	"https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2",
	"https://images.pexels.com/photos/1130626/pexels-photo-1130626.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2",
	"https://images.pexels.com/photos/1559486/pexels-photo-1559486.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2",
	"https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2",
	"https://images.pexels.com/photos/1024311/pexels-photo-1024311.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2",
}

type AddUserResult struct {
	User        *user.User
	Leaderboard []leaderboard.Entry
}

type SeedResult struct {
	Seeded      bool
	Leaderboard []leaderboard.Entry
}

type UserService interface {
	AddUser(ctx context.Context, name, avatar string) (*AddUserResult, error)
	SeedUsers(ctx context.Context) (*SeedResult, error)
}

type UserServiceImpl struct {
	users       user.UserRepository
	leaderboard leaderboard.LeaderboardService
	rand        random.Rand
}

func NewUserService(users user.UserRepository, lb leaderboard.LeaderboardService, rnd random.Rand) UserService {
	return &UserServiceImpl{users: users, leaderboard: lb, rand: rnd}
}

func (s *UserServiceImpl) AddUser(ctx context.Context, name, avatar string) (*AddUserResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	existing, err := s.users.GetUserByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	if avatar == "" {
		avatar = defaultAvatars[s.rand.Intn(len(defaultAvatars))]
	}

	u := &user.User{
		ID:          uuid.NewString(),
		Name:        name,
		Avatar:      avatar,
		TotalPoints: 0,
		CreatedAt:   time.Now(),
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	lb, err := s.leaderboard.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	return &AddUserResult{User: u, Leaderboard: lb}, nil
}

// SeedUsers bootstraps the fixed starter roster when the user table is empty.
// Calling it again is a no-op.
func (s *UserServiceImpl) SeedUsers(ctx context.Context) (*SeedResult, error) {
	count, err := s.users.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &SeedResult{Seeded: false}, nil
	}

	if err := s.users.InsertUsers(ctx, seedUsers()); err != nil {
		return nil, err
	}

	lb, err := s.leaderboard.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	return &SeedResult{Seeded: true, Leaderboard: lb}, nil
}
