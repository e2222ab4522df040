package utils

import (
	"time"
)

// TimestampLayout est le format texte des timestamps côté ingestion capteur
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp formate un instant au format texte de l'ingestion
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
