package leaderboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, Day, ParsePeriod("day"))
	assert.Equal(t, Week, ParsePeriod("week"))
	assert.Equal(t, Month, ParsePeriod("month"))
	assert.Equal(t, Year, ParsePeriod("year"))

	// toute valeur inconnue retombe sur all-time, jamais d'erreur
	assert.Equal(t, AllTime, ParsePeriod(""))
	assert.Equal(t, AllTime, ParsePeriod("fortnight"))
	assert.Equal(t, AllTime, ParsePeriod("DAY"))
}

func TestPeriodStart(t *testing.T) {
	// samedi 15 mars 2025, midi
	now := time.Date(2025, 3, 15, 12, 30, 45, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), Day.Start(now))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Week.Start(now), "la semaine commence le lundi")
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Month.Start(now))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Year.Start(now))
	assert.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), AllTime.Start(now))
}

func TestPeriodStartOnMonday(t *testing.T) {
	// un lundi: la semaine courante commence ce jour même, pas sept jours avant
	monday := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Week.Start(monday))
}

func TestPeriodStartOnSunday(t *testing.T) {
	// un dimanche appartient encore à la semaine commencée le lundi précédent
	sunday := time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Week.Start(sunday))
}

func TestPeriodString(t *testing.T) {
	assert.Equal(t, "day", Day.String())
	assert.Equal(t, "week", Week.String())
	assert.Equal(t, "month", Month.String())
	assert.Equal(t, "year", Year.String())
	assert.Equal(t, "all-time", AllTime.String())
}
