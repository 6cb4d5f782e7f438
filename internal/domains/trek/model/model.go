package model

import (
	"jumatrek/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "treks"
	EntityName = "trek"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDuration    = "duration"
	FieldDifficulty  = "difficulty"
	FieldMaxAltitude = "max_altitude"
	FieldBestSeason  = "best_season"
	FieldGroupSize   = "group_size"
)

// Trek is a catalogue listing. Duration is in days, MaxAltitude in metres.
type Trek struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Duration    int            `db:"duration"`
	Difficulty  string         `db:"difficulty"`
	MaxAltitude int            `db:"max_altitude"`
	BestSeason  string         `db:"best_season"`
	GroupSize   string         `db:"group_size"`
	Highlights  pq.StringArray `db:"highlights"`
	Itinerary   pq.StringArray `db:"itinerary"`
	Includes    pq.StringArray `db:"includes"`
	Excludes    pq.StringArray `db:"excludes"`
	model.Metadata
}
