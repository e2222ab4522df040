package handler

import (
	"net/http"

	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/leaderboard"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/services"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/store"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/utils"
)

var (
	dataStore *store.Store
	engine    *leaderboard.Engine
	avatars   *services.CloudinaryService
)

// Init branche les dépendances partagées des handlers. L'upload d'avatar
// est optionnel: avatarService peut être nil si Cloudinary n'est pas configuré.
func Init(s *store.Store, e *leaderboard.Engine, avatarService *services.CloudinaryService) {
	dataStore = s
	engine = e
	avatars = avatarService
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
