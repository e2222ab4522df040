package leaderboard

import (
	"context"
	"sort"
	"time"

	model "github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/models"
)

const (
	// Barème: 1 calorie = 1 point, 1 mile = 5 points
	kmToMiles     = 0.621371
	pointsPerMile = 5

	// Format des timestamps texte produits par l'ingestion capteur
	timestampLayout = "2006-01-02 15:04:05"
)

// DataProvider fournit les données brutes au moteur de classement.
// Toutes les méthodes sont des appels bloquants vers le store externe.
type DataProvider interface {
	UserWorkouts(ctx context.Context, userID string) ([]model.Workout, error)
	UserProfile(ctx context.Context, userID string) (*model.UserProfile, error)
	UserIDs(ctx context.Context) ([]string, error)
	BadgeCount(ctx context.Context, userID string) (int, error)
}

// Engine calcule les points et les classements. Le moteur est pur: tout
// état vient du provider injecté, chaque appel est idempotent pour un
// même snapshot de données.
type Engine struct {
	provider DataProvider
	now      func() time.Time
}

func NewEngine(provider DataProvider) *Engine {
	return &Engine{
		provider: provider,
		now:      time.Now,
	}
}

// UserPoints calcule le total de points d'un utilisateur sur la période.
// Les séances au timestamp malformé sont filtrées avant l'agrégation;
// un échec du store retourne 0 plutôt qu'une erreur.
func (e *Engine) UserPoints(ctx context.Context, userID string, period Period) int {
	workouts, err := e.provider.UserWorkouts(ctx, userID)
	if err != nil || len(workouts) == 0 {
		return 0
	}

	now := e.now()
	start := period.Start(now)

	total := 0
	for _, w := range workouts {
		ts, ok := parseStartTime(w.StartTime, now.Location())
		if !ok || ts.Before(start) {
			continue
		}
		total += workoutPoints(w)
	}

	return total
}

// Rankings construit le classement complet pour la période. Un échec de
// profil ou de séances pour un utilisateur exclut cet utilisateur sans
// bloquer le calcul des autres. Ne retourne jamais nil.
func (e *Engine) Rankings(ctx context.Context, period Period) []model.RankingEntry {
	ids, err := e.provider.UserIDs(ctx)
	if err != nil {
		return []model.RankingEntry{}
	}
	return e.rank(ctx, ids, period)
}

// ActivityMetrics détaille les points séance par séance, de la plus
// récente à la plus ancienne. L'index Workout décroît vers 1.
func (e *Engine) ActivityMetrics(ctx context.Context, userID string, period Period) []model.ActivityMetric {
	workouts, err := e.provider.UserWorkouts(ctx, userID)
	if err != nil {
		return []model.ActivityMetric{}
	}

	now := e.now()
	start := period.Start(now)

	type timedWorkout struct {
		workout model.Workout
		start   time.Time
	}

	kept := make([]timedWorkout, 0, len(workouts))
	for _, w := range workouts {
		ts, ok := parseStartTime(w.StartTime, now.Location())
		if !ok || ts.Before(start) {
			continue
		}
		kept = append(kept, timedWorkout{workout: w, start: ts})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].start.After(kept[j].start)
	})

	metrics := make([]model.ActivityMetric, 0, len(kept))
	for i, k := range kept {
		metrics = append(metrics, model.ActivityMetric{
			Workout: len(kept) - i,
			Kcals:   k.workout.CaloriesBurned,
			Miles:   k.workout.DistanceKm * kmToMiles,
			Points:  workoutPoints(k.workout),
		})
	}

	return metrics
}

// UserStats assemble le résumé affiché en tête du leaderboard. Le rang
// amis est calculé sur le sous-ensemble amis + utilisateur lui-même;
// le compteur de badges est un simple passe-plat du store.
func (e *Engine) UserStats(ctx context.Context, userID string, period Period) model.UserStats {
	stats := model.UserStats{
		TotalPoints: e.UserPoints(ctx, userID, period),
	}

	stats.GlobalRank = rankOf(e.Rankings(ctx, period), userID)

	if profile, err := e.provider.UserProfile(ctx, userID); err == nil {
		circle := append([]string{userID}, profile.Friends...)
		stats.FriendRank = rankOf(e.rank(ctx, circle, period), userID)
	}

	if badges, err := e.provider.BadgeCount(ctx, userID); err == nil {
		stats.Badges = badges
	}

	return stats
}

// rank calcule le classement d'un ensemble d'utilisateurs. Tri par points
// décroissants, égalité départagée par ID croissant pour rester
// déterministe; le rang est la position 1-based dans la liste triée.
func (e *Engine) rank(ctx context.Context, ids []string, period Period) []model.RankingEntry {
	seen := make(map[string]bool, len(ids))
	entries := make([]model.RankingEntry, 0, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		profile, err := e.provider.UserProfile(ctx, id)
		if err != nil {
			continue
		}

		entries = append(entries, model.RankingEntry{
			UserID:       id,
			Name:         profile.FullName,
			ProfileImage: profile.ProfileImage,
			Points:       e.UserPoints(ctx, id, period),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// workoutPoints applique le barème à une séance: les calories comptent
// 1:1, la distance est convertie en miles puis tronquée à l'entier
func workoutPoints(w model.Workout) int {
	distancePoints := int(w.DistanceKm * kmToMiles * pointsPerMile)
	return w.CaloriesBurned + distancePoints
}

// parseStartTime valide le timestamp texte d'une séance
func parseStartTime(s string, loc *time.Location) (time.Time, bool) {
	ts, err := time.ParseInLocation(timestampLayout, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// rankOf retrouve le rang d'un utilisateur dans un classement déjà
// calculé; 0 si l'utilisateur n'y figure pas
func rankOf(entries []model.RankingEntry, userID string) int {
	for _, entry := range entries {
		if entry.UserID == userID {
			return entry.Rank
		}
	}
	return 0
}
