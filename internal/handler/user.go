package handler

import (
	"net/http"

	model "github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/models"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/utils"
	"github.com/gorilla/mux"
)

func GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := dataStore.Users(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query users", err)
		return
	}
	if users == nil {
		users = []model.UserProfile{}
	}

	utils.Success(w, users)
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	user, err := dataStore.UserProfile(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "user not found", err)
		return
	}

	utils.Success(w, user)
}

func CreateUser(w http.ResponseWriter, r *http.Request) {
	var user model.UserProfile
	if err := utils.DecodeJSON(r, &user); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if user.Username == "" {
		utils.Error(w, http.StatusBadRequest, "username is required", nil)
		return
	}

	if err := dataStore.CreateUser(r.Context(), &user); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create user", err)
		return
	}

	utils.Success(w, user)
}

func UpdateUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var user model.UserProfile
	if err := utils.DecodeJSON(r, &user); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	user.ID = vars["id"]

	if err := dataStore.UpdateUser(r.Context(), &user); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update user", err)
		return
	}

	utils.Success(w, user)
}

func DeleteUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	if err := dataStore.DeleteUser(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete user", err)
		return
	}

	utils.Message(w, "user deleted")
}

// UploadProfileImage upload l'image de profil vers Cloudinary puis
// enregistre l'URL retournée sur le profil
func UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	if avatars == nil {
		utils.Error(w, http.StatusServiceUnavailable, "image upload is not configured", nil)
		return
	}

	// 10 Mo max
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing image file", err)
		return
	}
	defer file.Close()

	imageURL, err := avatars.UploadProfileImage(r.Context(), file, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload image", err)
		return
	}

	if err := dataStore.SetProfileImage(r.Context(), id, imageURL); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save profile image", err)
		return
	}

	utils.Success(w, map[string]string{"profileImage": imageURL})
}
