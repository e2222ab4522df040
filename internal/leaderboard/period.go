package leaderboard

import (
	"time"
)

// Period définit la fenêtre temporelle d'agrégation du classement
type Period int

const (
	AllTime Period = iota
	Day
	Week
	Month
	Year
)

// ParsePeriod convertit la valeur reçue en paramètre de requête.
// Toute valeur inconnue retombe silencieusement sur AllTime, jamais d'erreur.
func ParsePeriod(s string) Period {
	switch s {
	case "day":
		return Day
	case "week":
		return Week
	case "month":
		return Month
	case "year":
		return Year
	default:
		return AllTime
	}
}

func (p Period) String() string {
	switch p {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return "all-time"
	}
}

// Start retourne la borne inférieure de la fenêtre demi-ouverte [start, now).
// La semaine commence le lundi à 00:00, le mois le 1er, l'année le 1er janvier.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case Day:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case Week:
		// time.Weekday compte à partir de dimanche, on ramène lundi à 0
		days := (int(now.Weekday()) + 6) % 7
		monday := now.AddDate(0, 0, -days)
		return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
	case Month:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case Year:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(1970, 1, 1, 0, 0, 0, 0, now.Location())
	}
}
