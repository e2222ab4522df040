package store

import (
	"context"
	"fmt"
	"time"

	model "github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/models"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/scanner"
	"github.com/ISE-w-GenAI-SP25-FIU/TheDreamTeam/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// Store regroupe tous les accès PostgreSQL. Il implémente
// leaderboard.DataProvider pour le moteur de classement.
type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// UserWorkouts retourne les séances d'un utilisateur, la plus récente en
// premier. Les timestamps sont stockés en texte par l'ingestion capteur;
// une ligne inscannable est ignorée plutôt que de faire échouer le fetch.
func (s *Store) UserWorkouts(ctx context.Context, userID string) ([]model.Workout, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT
			workout_id,
			start_timestamp,
			end_timestamp,
			start_latitude,
			start_longitude,
			end_latitude,
			end_longitude,
			distance,
			steps,
			calories_burned
		FROM workouts
		WHERE user_id = $1
		ORDER BY start_timestamp DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("could not query workouts: %w", err)
	}
	defer rows.Close()

	var workouts []model.Workout
	for rows.Next() {
		w, err := scanner.ScanWorkout(rows)
		if err != nil {
			utils.LogError("skipping unreadable workout row for %s: %v", userID, err)
			continue
		}
		w.UserID = userID
		workouts = append(workouts, *w)
	}

	return workouts, rows.Err()
}

// UserProfile retourne le profil d'un utilisateur actif
func (s *Store) UserProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT
			id, full_name, username,
			date_of_birth, profile_image, friends,
			created_at, updated_at, deleted_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`, userID)

	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		return nil, fmt.Errorf("user %s not found: %w", userID, err)
	}

	return user, nil
}

// UserIDs retourne les identifiants de tous les utilisateurs actifs,
// en ordre stable
func (s *Store) UserIDs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id FROM users
		WHERE deleted_at IS NULL
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("could not query user ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("could not scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// BadgeCount retourne le nombre de badges gagnés par un utilisateur.
// Les badges sont attribués ailleurs, ici on ne fait que compter.
func (s *Store) BadgeCount(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM user_badges WHERE user_id = $1`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("could not count badges: %w", err)
	}
	return count, nil
}

// Users retourne tous les profils actifs
func (s *Store) Users(ctx context.Context) ([]model.UserProfile, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT
			id, full_name, username,
			date_of_birth, profile_image, friends,
			created_at, updated_at, deleted_at
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY username
	`)
	if err != nil {
		return nil, fmt.Errorf("could not query users: %w", err)
	}
	defer rows.Close()

	var users []model.UserProfile
	for rows.Next() {
		u, err := scanner.ScanUserProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan user row: %w", err)
		}
		users = append(users, *u)
	}

	return users, rows.Err()
}

// CreateUser insère un nouveau profil
func (s *Store) CreateUser(ctx context.Context, user *model.UserProfile) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Friends == nil {
		user.Friends = []string{}
	}

	err := s.pool.QueryRow(ctx, `
		INSERT INTO users(id, full_name, username, date_of_birth, profile_image, friends, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`, user.ID, user.FullName, user.Username, user.DateOfBirth,
		user.ProfileImage, pq.Array(user.Friends),
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("could not create user: %w", err)
	}

	return nil
}

// UpdateUser met à jour un profil existant
func (s *Store) UpdateUser(ctx context.Context, user *model.UserProfile) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE users
		SET full_name=$1, username=$2, date_of_birth=$3, profile_image=$4, friends=$5, updated_at=NOW()
		WHERE id=$6 AND deleted_at IS NULL
	`, user.FullName, user.Username, user.DateOfBirth,
		user.ProfileImage, pq.Array(user.Friends), user.ID,
	)
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}
	return nil
}

// DeleteUser fait un soft delete du profil
func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE users SET deleted_at=NOW() WHERE id=$1 AND deleted_at IS NULL`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}
	return nil
}

// SetProfileImage enregistre l'URL de l'avatar uploadé
func (s *Store) SetProfileImage(ctx context.Context, userID, imageURL string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE users SET profile_image=$1, updated_at=NOW() WHERE id=$2 AND deleted_at IS NULL`,
		imageURL, userID,
	)
	if err != nil {
		return fmt.Errorf("could not set profile image: %w", err)
	}
	return nil
}

// UserPosts retourne les publications d'un utilisateur, la plus récente
// en premier
func (s *Store) UserPosts(ctx context.Context, userID string) ([]model.Post, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT post_id, user_id, timestamp, content, image
		FROM posts
		WHERE user_id = $1
		ORDER BY timestamp DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("could not query posts: %w", err)
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		p, err := scanner.ScanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan post row: %w", err)
		}
		posts = append(posts, *p)
	}

	return posts, rows.Err()
}

// CreatePost insère une publication avec un id généré et le timestamp serveur
func (s *Store) CreatePost(ctx context.Context, post *model.Post) error {
	post.ID = "post_" + uuid.NewString()
	post.Timestamp = utils.FormatTimestamp(time.Now())

	_, err := s.pool.Exec(ctx, `
		INSERT INTO posts(post_id, user_id, timestamp, content, image)
		VALUES($1, $2, $3, $4, NULLIF($5, ''))
	`, post.ID, post.UserID, post.Timestamp, post.Content, post.Image)
	if err != nil {
		return fmt.Errorf("could not create post: %w", err)
	}

	return nil
}

// WorkoutSensorData retourne les mesures capteur d'une séance, en ordre
// chronologique
func (s *Store) WorkoutSensorData(ctx context.Context, userID, workoutID string) ([]model.SensorSample, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT sensor_type, timestamp, data, units
		FROM sensor_data
		WHERE user_id = $1 AND workout_id = $2
		ORDER BY timestamp ASC
	`, userID, workoutID)
	if err != nil {
		return nil, fmt.Errorf("could not query sensor data: %w", err)
	}
	defer rows.Close()

	var samples []model.SensorSample
	for rows.Next() {
		sample, err := scanner.ScanSensorSample(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan sensor row: %w", err)
		}
		samples = append(samples, *sample)
	}

	return samples, rows.Err()
}
