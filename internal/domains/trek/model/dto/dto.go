package dto

import (
	"jumatrek/internal/domains/trek/model"
	gDto "jumatrek/shared/dto"
)

type TrekResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"`
	Difficulty  string   `json:"difficulty"`
	MaxAltitude int      `json:"max_altitude"`
	BestSeason  string   `json:"best_season"`
	GroupSize   string   `json:"group_size"`
	Highlights  []string `json:"highlights"`
	Itinerary   []string `json:"itinerary"`
	Includes    []string `json:"includes"`
	Excludes    []string `json:"excludes"`
	gDto.Metadata
}

func (r *TrekResponse) FromModel(model model.Trek) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Duration = model.Duration
	r.Difficulty = model.Difficulty
	r.MaxAltitude = model.MaxAltitude
	r.BestSeason = model.BestSeason
	r.GroupSize = model.GroupSize
	r.Highlights = model.Highlights
	r.Itinerary = model.Itinerary
	r.Includes = model.Includes
	r.Excludes = model.Excludes
	r.Metadata.FromModel(model.Metadata)
}
