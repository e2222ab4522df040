package scanner

import (
	"database/sql"

	model "github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/models"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/utils"
	"github.com/lib/pq"
)

// ScanUserProfile scanne une ligne SQL vers un UserProfile.
// Les amis sont stockés en text[] et scannés via pq.Array.
func ScanUserProfile(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.UserProfile, error) {
	var user model.UserProfile
	var dateOfBirth, profileImage sql.NullString
	var friends []string
	var deletedAt sql.NullTime

	err := scanner.Scan(
		&user.ID, &user.FullName, &user.Username,
		&dateOfBirth, &profileImage, pq.Array(&friends),
		&user.CreatedAt, &user.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	user.DateOfBirth = utils.NullStringToString(dateOfBirth)
	user.ProfileImage = utils.NullStringToString(profileImage)
	user.DeletedAt = utils.NullTimeToPointer(deletedAt)
	if friends == nil {
		friends = []string{}
	}
	user.Friends = friends

	return &user, nil
}

// ScanWorkout scanne une ligne SQL vers un Workout. Les colonnes issues
// de l'ingestion capteur peuvent être NULL ou malformées; on convertit
// sans échouer, la validation se fait au moment du calcul des points.
func ScanWorkout(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Workout, error) {
	var w model.Workout
	var startTime, endTime sql.NullString
	var startLat, startLng, endLat, endLng, distance sql.NullFloat64
	var steps, calories sql.NullInt64

	err := scanner.Scan(
		&w.ID, &startTime, &endTime,
		&startLat, &startLng, &endLat, &endLng,
		&distance, &steps, &calories,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	w.StartTime = utils.NullStringToString(startTime)
	w.EndTime = utils.NullStringToString(endTime)
	w.StartCoord = model.Coord{Lat: utils.NullFloat64ToFloat64(startLat), Lng: utils.NullFloat64ToFloat64(startLng)}
	w.EndCoord = model.Coord{Lat: utils.NullFloat64ToFloat64(endLat), Lng: utils.NullFloat64ToFloat64(endLng)}
	w.DistanceKm = utils.NullFloat64ToFloat64(distance)
	w.Steps = utils.NullInt64ToInt(steps)
	w.CaloriesBurned = utils.NullInt64ToInt(calories)

	return &w, nil
}

// ScanPost scanne une ligne SQL vers un Post
func ScanPost(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Post, error) {
	var p model.Post
	var image sql.NullString

	err := scanner.Scan(&p.ID, &p.UserID, &p.Timestamp, &p.Content, &image)
	if err != nil {
		return nil, err
	}

	p.Image = utils.NullStringToString(image)

	return &p, nil
}

// ScanSensorSample scanne une ligne SQL vers un SensorSample
func ScanSensorSample(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.SensorSample, error) {
	var s model.SensorSample
	var data sql.NullFloat64
	var units sql.NullString

	err := scanner.Scan(&s.SensorType, &s.Timestamp, &data, &units)
	if err != nil {
		return nil, err
	}

	s.Data = utils.NullFloat64ToFloat64(data)
	s.Units = utils.NullStringToString(units)

	return &s, nil
}
