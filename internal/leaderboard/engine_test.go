package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	model "github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/models"
)

// samedi 15 mars 2025, midi
var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

type fakeProvider struct {
	workouts    map[string][]model.Workout
	profiles    map[string]*model.UserProfile
	badges      map[string]int
	workoutsErr error
	profilesErr map[string]error
	userIDsErr  error
}

func (f *fakeProvider) UserWorkouts(_ context.Context, userID string) ([]model.Workout, error) {
	if f.workoutsErr != nil {
		return nil, f.workoutsErr
	}
	return f.workouts[userID], nil
}

func (f *fakeProvider) UserProfile(_ context.Context, userID string) (*model.UserProfile, error) {
	if err := f.profilesErr[userID]; err != nil {
		return nil, err
	}
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	return &model.UserProfile{ID: userID, FullName: userID}, nil
}

func (f *fakeProvider) UserIDs(_ context.Context) ([]string, error) {
	if f.userIDsErr != nil {
		return nil, f.userIDsErr
	}
	ids := make([]string, 0, len(f.workouts))
	for id := range f.workouts {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeProvider) BadgeCount(_ context.Context, userID string) (int, error) {
	return f.badges[userID], nil
}

func newTestEngine(p *fakeProvider) *Engine {
	return &Engine{
		provider: p,
		now:      func() time.Time { return testNow },
	}
}

func workout(start string, calories int, distanceKm float64) model.Workout {
	return model.Workout{
		StartTime:      start,
		CaloriesBurned: calories,
		DistanceKm:     distanceKm,
	}
}

func TestUserPointsFormula(t *testing.T) {
	p := &fakeProvider{workouts: map[string][]model.Workout{
		"user1": {workout("2025-03-15 08:00:00", 100, 2.0)},
	}}
	engine := newTestEngine(p)

	// 100 + int(2.0 * 0.621371 * 5) = 100 + int(6.21371) = 106
	assert.Equal(t, 106, engine.UserPoints(context.Background(), "user1", Day))
}

func TestUserPointsTwoWorkoutSum(t *testing.T) {
	p := &fakeProvider{workouts: map[string][]model.Workout{
		"user1": {
			workout("2025-03-15 08:00:00", 100, 2.0),
			workout("2025-03-15 09:30:00", 200, 4.0),
		},
	}}
	engine := newTestEngine(p)

	// 300 calories + int(6.21371) + int(12.42742) = 300 + 6 + 12 = 318
	assert.Equal(t, 318, engine.UserPoints(context.Background(), "user1", Day))
}

func TestUserPointsZeroOnEmpty(t *testing.T) {
	engine := newTestEngine(&fakeProvider{workouts: map[string][]model.Workout{}})

	for _, period := range []Period{Day, Week, Month, Year, AllTime} {
		assert.Zero(t, engine.UserPoints(context.Background(), "ghost", period))
	}
}

func TestUserPointsZeroOnStoreFailure(t *testing.T) {
	engine := newTestEngine(&fakeProvider{workoutsErr: errors.New("store unavailable")})

	assert.Zero(t, engine.UserPoints(context.Background(), "user1", Week))
}

func TestUserPointsSkipsMalformedTimestamps(t *testing.T) {
	p := &fakeProvider{workouts: map[string][]model.Workout{
		"user1": {
			workout("not-a-timestamp", 500, 10.0),
			workout("2025-03-15 08:00:00", 50, 0),
		},
	}}
	engine := newTestEngine(p)

	// la ligne malformée est ignorée, pas d'erreur
	assert.Equal(t, 50, engine.UserPoints(context.Background(), "user1", Day))
}

func TestUserPointsWindowFiltering(t *testing.T) {
	p := &fakeProvider{workouts: map[string][]model.Workout{
		"user1": {
			workout("2025-03-15 08:00:00", 10, 0), // aujourd'hui
			workout("2025-03-12 08:00:00", 20, 0), // cette semaine
			workout("2025-03-02 08:00:00", 40, 0), // ce mois
			workout("2025-01-10 08:00:00", 80, 0), // cette année
			workout("2024-06-01 08:00:00", 160, 0),
		},
	}}
	engine := newTestEngine(p)
	ctx := context.Background()

	assert.Equal(t, 10, engine.UserPoints(ctx, "user1", Day))
	assert.Equal(t, 30, engine.UserPoints(ctx, "user1", Week))
	assert.Equal(t, 70, engine.UserPoints(ctx, "user1", Month))
	assert.Equal(t, 150, engine.UserPoints(ctx, "user1", Year))
	assert.Equal(t, 310, engine.UserPoints(ctx, "user1", AllTime))
}

func TestUserPointsMonotonicity(t *testing.T) {
	p := &fakeProvider{workouts: map[string][]model.Workout{
		"user1": {
			workout("2025-03-15 06:00:00", 37, 1.2),
			workout("2025-03-11 18:00:00", 112, 3.4),
			workout("2025-02-20 07:00:00", 250, 8.0),
			workout("2024-11-02 07:00:00", 90, 2.5),
		},
	}}
	engine := newTestEngine(p)
	ctx := context.Background()

	day := engine.UserPoints(ctx, "user1", Day)
	week := engine.UserPoints(ctx, "user1", Week)
	month := engine.UserPoints(ctx, "user1", Month)
	year := engine.UserPoints(ctx, "user1", Year)

	assert.GreaterOrEqual(t, week, day)
	assert.GreaterOrEqual(t, month, week)
	assert.GreaterOrEqual(t, year, month)
}

func TestRankingsOrder(t *testing.T) {
	p := &fakeProvider{
		workouts: map[string][]model.Workout{
			"user1": {workout("2025-03-15 08:00:00", 50, 0)},
			"user2": {workout("2025-03-15 08:00:00", 200, 0)},
			"user3": {workout("2025-03-15 08:00:00", 100, 0)},
		},
		profiles: map[string]*model.UserProfile{
			"user1": {ID: "user1", FullName: "Remi"},
			"user2": {ID: "user2", FullName: "Blake"},
			"user3": {ID: "user3", FullName: "Jordan"},
		},
	}
	engine := newTestEngine(p)

	rankings := engine.Rankings(context.Background(), Day)

	assert.Len(t, rankings, 3)
	assert.Equal(t, []int{200, 100, 50}, []int{rankings[0].Points, rankings[1].Points, rankings[2].Points})
	assert.Equal(t, []int{1, 2, 3}, []int{rankings[0].Rank, rankings[1].Rank, rankings[2].Rank})
	assert.Equal(t, "Blake", rankings[0].Name)
}

func TestRankingsTieBreakIsDeterministic(t *testing.T) {
	p := &fakeProvider{workouts: map[string][]model.Workout{
		"userB": {workout("2025-03-15 08:00:00", 100, 0)},
		"userA": {workout("2025-03-15 08:00:00", 100, 0)},
	}}
	engine := newTestEngine(p)

	// à points égaux, l'ID croissant départage
	rankings := engine.Rankings(context.Background(), Day)
	assert.Equal(t, "userA", rankings[0].UserID)
	assert.Equal(t, "userB", rankings[1].UserID)
	assert.Equal(t, 1, rankings[0].Rank)
	assert.Equal(t, 2, rankings[1].Rank)
}

func TestRankingsNeverNil(t *testing.T) {
	engine := newTestEngine(&fakeProvider{workouts: map[string][]model.Workout{}})
	assert.NotNil(t, engine.Rankings(context.Background(), Week))
	assert.Empty(t, engine.Rankings(context.Background(), Week))

	engine = newTestEngine(&fakeProvider{userIDsErr: errors.New("store unavailable")})
	assert.NotNil(t, engine.Rankings(context.Background(), Week))
}

func TestRankingsSkipsFailedProfiles(t *testing.T) {
	p := &fakeProvider{
		workouts: map[string][]model.Workout{
			"user1": {workout("2025-03-15 08:00:00", 50, 0)},
			"user2": {workout("2025-03-15 08:00:00", 80, 0)},
		},
		profilesErr: map[string]error{"user2": errors.New("profile not found")},
	}
	engine := newTestEngine(p)

	rankings := engine.Rankings(context.Background(), Day)
	assert.Len(t, rankings, 1)
	assert.Equal(t, "user1", rankings[0].UserID)
}

func TestActivityMetricsMostRecentFirst(t *testing.T) {
	p := &fakeProvider{workouts: map[string][]model.Workout{
		"user1": {
			workout("2025-03-12 08:00:00", 28, 0.7),
			workout("2025-03-14 08:00:00", 90, 1.8),
			workout("bad-timestamp", 999, 99),
		},
	}}
	engine := newTestEngine(p)

	metrics := engine.ActivityMetrics(context.Background(), "user1", Week)

	assert.Len(t, metrics, 2)
	// la plus récente en premier, index décroissant vers 1
	assert.Equal(t, 2, metrics[0].Workout)
	assert.Equal(t, 90, metrics[0].Kcals)
	assert.InDelta(t, 1.8*0.621371, metrics[0].Miles, 1e-9)
	expectedMiles := 1.8 * 0.621371
	assert.Equal(t, 90+int(expectedMiles*5), metrics[0].Points)

	assert.Equal(t, 1, metrics[1].Workout)
	assert.Equal(t, 28, metrics[1].Kcals)
}

func TestActivityMetricsEmptyOnStoreFailure(t *testing.T) {
	engine := newTestEngine(&fakeProvider{workoutsErr: errors.New("store unavailable")})

	metrics := engine.ActivityMetrics(context.Background(), "user1", Month)
	assert.NotNil(t, metrics)
	assert.Empty(t, metrics)
}

func TestUserStats(t *testing.T) {
	p := &fakeProvider{
		workouts: map[string][]model.Workout{
			"user1": {workout("2025-03-15 08:00:00", 100, 2.0)},
			"user2": {workout("2025-03-15 08:00:00", 300, 0)},
			"user3": {workout("2025-03-15 08:00:00", 50, 0)},
			"user4": {workout("2025-03-15 08:00:00", 500, 0)},
		},
		profiles: map[string]*model.UserProfile{
			"user1": {ID: "user1", FullName: "Remi", Friends: []string{"user2", "user3"}},
		},
		badges: map[string]int{"user1": 5},
	}
	engine := newTestEngine(p)

	stats := engine.UserStats(context.Background(), "user1", Day)

	// le total doit être identique à UserPoints pour le même couple (user, period)
	assert.Equal(t, engine.UserPoints(context.Background(), "user1", Day), stats.TotalPoints)
	assert.Equal(t, 106, stats.TotalPoints)

	// global: user4 (500), user2 (300), user1 (106), user3 (50)
	assert.Equal(t, 3, stats.GlobalRank)

	// cercle amis + soi: user2 (300), user1 (106), user3 (50)
	assert.Equal(t, 2, stats.FriendRank)

	assert.Equal(t, 5, stats.Badges)
}

func TestUserStatsUnknownUser(t *testing.T) {
	p := &fakeProvider{
		workouts:    map[string][]model.Workout{},
		profilesErr: map[string]error{"ghost": errors.New("user not found")},
	}
	engine := newTestEngine(p)

	stats := engine.UserStats(context.Background(), "ghost", Year)
	assert.Zero(t, stats.TotalPoints)
	assert.Zero(t, stats.GlobalRank)
	assert.Zero(t, stats.FriendRank)
}
