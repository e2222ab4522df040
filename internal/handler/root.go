package handler

import (
	"net/http"

	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "ISE Workouts API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"users": []map[string]string{
				{"method": "GET", "path": "/users", "description": "Récupérer tous les utilisateurs"},
				{"method": "GET", "path": "/users/{id}", "description": "Récupérer un utilisateur par ID"},
				{"method": "POST", "path": "/users", "description": "Créer un utilisateur"},
				{"method": "PUT", "path": "/users/{id}", "description": "Mettre à jour un utilisateur"},
				{"method": "DELETE", "path": "/users/{id}", "description": "Supprimer un utilisateur (soft delete)"},
				{"method": "POST", "path": "/users/{id}/avatar", "description": "Upload image de profil"},
			},
			"workouts": []map[string]string{
				{"method": "GET", "path": "/users/{userId}/workouts", "description": "Séances d'un utilisateur"},
				{"method": "GET", "path": "/users/{userId}/workouts/{workoutId}/sensors", "description": "Mesures capteur d'une séance"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard?period=", "description": "Classement général (day/week/month/year, défaut all-time)"},
				{"method": "GET", "path": "/leaderboard/top?period=", "description": "Podium (top 3)"},
				{"method": "GET", "path": "/users/{userId}/points?period=", "description": "Total de points d'un utilisateur"},
				{"method": "GET", "path": "/users/{userId}/activity?period=", "description": "Détail des points séance par séance"},
				{"method": "GET", "path": "/users/{userId}/stats?period=", "description": "Résumé (points, rang global, rang amis, badges)"},
				{"method": "GET", "path": "/users/{userId}/friends/leaderboard?period=", "description": "Classement des amis"},
			},
			"community": []map[string]string{
				{"method": "GET", "path": "/users/{userId}/posts", "description": "Publications d'un utilisateur"},
				{"method": "POST", "path": "/users/{userId}/posts", "description": "Publier un message"},
			},
		},
	}

	utils.Success(w, routes)
}
