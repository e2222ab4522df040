package model

// Coord représente un point GPS (latitude, longitude)
type Coord struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Workout est une séance enregistrée par l'ingestion capteur.
// Les timestamps arrivent en texte brut ('2006-01-02 15:04:05') et sont
// validés au moment du calcul, pas au moment du fetch.
type Workout struct {
	ID             string  `json:"workoutId"`
	UserID         string  `json:"userId,omitempty"`
	StartTime      string  `json:"startTimestamp"`
	EndTime        string  `json:"endTimestamp"`
	StartCoord     Coord   `json:"startLatLng"`
	EndCoord       Coord   `json:"endLatLng"`
	DistanceKm     float64 `json:"distance"`
	Steps          int     `json:"steps"`
	CaloriesBurned int     `json:"caloriesBurned"`
}

// SensorSample est une mesure brute associée à une séance
type SensorSample struct {
	SensorType string  `json:"sensorType"`
	Timestamp  string  `json:"timestamp"`
	Data       float64 `json:"data"`
	Units      string  `json:"units"`
}
