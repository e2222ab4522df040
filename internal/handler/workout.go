package handler

import (
	"net/http"

	model "github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/models"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/utils"
	"github.com/gorilla/mux"
)

// GetUserWorkouts récupère les séances d'un utilisateur, la plus récente
// en premier. Un store indisponible renvoie une liste vide plutôt qu'une
// erreur, la page ne doit jamais crasher pour ça.
func GetUserWorkouts(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	workouts, err := dataStore.UserWorkouts(r.Context(), userID)
	if err != nil {
		utils.LogError("could not fetch workouts for %s: %v", userID, err)
		utils.Success(w, []model.Workout{})
		return
	}
	if workouts == nil {
		workouts = []model.Workout{}
	}

	utils.Success(w, workouts)
}

// GetWorkoutSensorData récupère les mesures capteur d'une séance
func GetWorkoutSensorData(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	workoutID := vars["workoutId"]

	samples, err := dataStore.WorkoutSensorData(r.Context(), userID, workoutID)
	if err != nil {
		utils.LogError("could not fetch sensor data for %s/%s: %v", userID, workoutID, err)
		utils.Success(w, []model.SensorSample{})
		return
	}
	if samples == nil {
		samples = []model.SensorSample{}
	}

	utils.Success(w, samples)
}
