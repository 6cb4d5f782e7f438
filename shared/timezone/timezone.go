package timezone

import (
	"jumatrek/config"
	"time"

	"github.com/rs/zerolog/log"
)

var appLocation *time.Location

func init() {
	cfg := config.Get()

	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("no timezone configured, using UTC")
		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("failed to load timezone, falling back to UTC. Use IANA names such as 'Asia/Kathmandu' or 'UTC'")

		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().Str("timezone", name).Msg("application timezone initialized")
}

func location() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("timezone not initialized, using UTC")

		return time.UTC
	}

	return appLocation
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(location())
}

// ToAppTime converts a time to the application timezone.
func ToAppTime(t time.Time) time.Time {
	return t.In(location())
}

// GetLocation returns the application timezone location.
func GetLocation() *time.Location {
	return location()
}

// Parse parses a time string in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, location()) //nolint:wrapcheck
}

// Format formats a time in the application timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
