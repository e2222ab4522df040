package model

// RankingEntry est la position d'un utilisateur dans le classement
// pour une période donnée
type RankingEntry struct {
	Rank         int    `json:"rank"`
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Points       int    `json:"points"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// ActivityMetric est le détail des points d'une séance individuelle.
// Workout est un index synthétique, décroissant de la séance la plus
// récente vers la plus ancienne.
type ActivityMetric struct {
	Workout int     `json:"workout"`
	Kcals   int     `json:"kcals"`
	Miles   float64 `json:"miles"`
	Points  int     `json:"points"`
}

// UserStats est le résumé affiché en tête du leaderboard
type UserStats struct {
	TotalPoints int `json:"totalPoints"`
	GlobalRank  int `json:"globalRank"`
	FriendRank  int `json:"friendRank"`
	Badges      int `json:"badges"`
}
