package handler

import (
	"net/http"
	"strconv"

	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/leaderboard"
	model "github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/models"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/utils"
	"github.com/gorilla/mux"
)

// GetRankings récupère le classement général pour une période
// (day, week, month, year — tout le reste vaut all-time)
func GetRankings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	period := leaderboard.ParsePeriod(query.Get("period"))

	limit := 0
	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	rankings := engine.Rankings(r.Context(), period)
	if limit > 0 && len(rankings) > limit {
		rankings = rankings[:limit]
	}

	utils.Success(w, rankings)
}

// GetTopPerformers récupère le podium (top 3) de la période
func GetTopPerformers(w http.ResponseWriter, r *http.Request) {
	period := leaderboard.ParsePeriod(r.URL.Query().Get("period"))

	rankings := engine.Rankings(r.Context(), period)
	if len(rankings) > 3 {
		rankings = rankings[:3]
	}

	utils.Success(w, rankings)
}

// GetUserPoints récupère le total de points d'un utilisateur sur la période
func GetUserPoints(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	period := leaderboard.ParsePeriod(r.URL.Query().Get("period"))

	points := engine.UserPoints(r.Context(), userID, period)

	utils.Success(w, map[string]interface{}{
		"userId": userID,
		"period": period.String(),
		"points": points,
	})
}

// GetActivityMetrics récupère le détail des points séance par séance
func GetActivityMetrics(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	period := leaderboard.ParsePeriod(r.URL.Query().Get("period"))

	utils.Success(w, engine.ActivityMetrics(r.Context(), userID, period))
}

// GetUserStats récupère le résumé leaderboard d'un utilisateur
// (total de points, rang global, rang amis, badges)
func GetUserStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	period := leaderboard.ParsePeriod(r.URL.Query().Get("period"))

	utils.Success(w, engine.UserStats(r.Context(), userID, period))
}

// GetFriendsLeaderboard récupère le classement restreint aux amis de
// l'utilisateur (lui inclus)
func GetFriendsLeaderboard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	period := leaderboard.ParsePeriod(r.URL.Query().Get("period"))

	profile, err := dataStore.UserProfile(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "user not found", err)
		return
	}

	full := engine.Rankings(r.Context(), period)

	circle := make(map[string]bool, len(profile.Friends)+1)
	circle[userID] = true
	for _, friend := range profile.Friends {
		circle[friend] = true
	}

	friendsRanking := make([]model.RankingEntry, 0, len(circle))
	for _, entry := range full {
		if circle[entry.UserID] {
			entry.Rank = len(friendsRanking) + 1
			friendsRanking = append(friendsRanking, entry)
		}
	}

	utils.Success(w, friendsRanking)
}
