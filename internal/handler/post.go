package handler

import (
	"net/http"
	"strings"

	model "github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/models"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/utils"
	"github.com/gorilla/mux"
)

// GetUserPosts récupère les publications d'un utilisateur, la plus
// récente en premier
func GetUserPosts(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	posts, err := dataStore.UserPosts(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query posts", err)
		return
	}
	if posts == nil {
		posts = []model.Post{}
	}

	utils.Success(w, posts)
}

// CreatePost publie un nouveau message sur le fil communautaire
func CreatePost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	var post model.Post
	if err := utils.DecodeJSON(r, &post); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if strings.TrimSpace(post.Content) == "" {
		utils.Error(w, http.StatusBadRequest, "post content is required", nil)
		return
	}

	post.UserID = userID
	if err := dataStore.CreatePost(r.Context(), &post); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create post", err)
		return
	}

	utils.Success(w, post)
}
