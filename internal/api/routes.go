package api

import (
	"net/http"

	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/handler"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/middleware"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Users
	r.HandleFunc("/users", handler.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", handler.UpdateUser).Methods(http.MethodPut, http.MethodPatch)
	r.HandleFunc("/users/{id}", handler.DeleteUser).Methods(http.MethodDelete)
	r.HandleFunc("/users/{id}/avatar", handler.UploadProfileImage).Methods(http.MethodPost)

	// Workouts
	r.HandleFunc("/users/{userId}/workouts", handler.GetUserWorkouts).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/workouts/{workoutId}/sensors", handler.GetWorkoutSensorData).Methods(http.MethodGet)

	// Leaderboard
	r.HandleFunc("/leaderboard", handler.GetRankings).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/top", handler.GetTopPerformers).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/points", handler.GetUserPoints).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/activity", handler.GetActivityMetrics).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/stats", handler.GetUserStats).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/friends/leaderboard", handler.GetFriendsLeaderboard).Methods(http.MethodGet)

	// Community posts
	r.HandleFunc("/users/{userId}/posts", handler.GetUserPosts).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/posts", handler.CreatePost).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
