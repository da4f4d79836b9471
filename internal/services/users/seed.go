package users

import (
	"time"

	"github.com/MyelinBots/leaderboard-go/internal/db/repositories/user"
	"github.com/google/uuid"
)

// seedUsers returns the starter roster. IDs are fresh UUIDs; everything else
// is fixed.
func seedUsers() []*user.User {
	fixtures := []struct {
		name   string
		avatar string
		points int64
		day    int
	}{
		{"Pritesh", "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2", 1614546, 1},
		{"Rimjhim", "https://images.pexels.com/photos/1130626/pexels-photo-1130626.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2", 1134590, 2},
		{"Krishu Rajput", "https://images.pexels.com/photos/1559486/pexels-photo-1559486.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2", 942034, 3},
		{"Thakur Ram Vijay Singh", "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2", 558378, 4},
		{"Mukku", "https://images.pexels.com/photos/1024311/pexels-photo-1024311.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2", 503042, 5},
		{"VyHD", "https://images.pexels.com/photos/1040880/pexels-photo-1040880.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2", 352250, 6},
		{"Ashish", "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2", 346392, 7},
		{"Mr. Rajput", "https://images.pexels.com/photos/1212984/pexels-photo-1212984.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2", 343892, 8},
		{"Ishit", "https://images.pexels.com/photos/1065084/pexels-photo-1065084.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2", 321932, 9},
		{"Devil", "https://images.pexels.com/photos/1040881/pexels-photo-1040881.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2", 0, 10},
	}

	users := make([]*user.User, 0, len(fixtures))
	for _, f := range fixtures {
		users = append(users, &user.User{
			ID:          uuid.NewString(),
			Name:        f.name,
			Avatar:      f.avatar,
			TotalPoints: f.points,
			CreatedAt:   time.Date(2024, time.January, f.day, 0, 0, 0, 0, time.UTC),
		})
	}
	return users
}
