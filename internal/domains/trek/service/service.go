package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Trek=MockTrekService

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"jumatrek/config"
	"jumatrek/infras/otel"
	"jumatrek/internal/domains/trek/model"
	"jumatrek/internal/domains/trek/model/dto"
	"jumatrek/internal/domains/trek/repository"
	"jumatrek/shared"
	"jumatrek/shared/cache"
	"jumatrek/shared/constant"
	gDto "jumatrek/shared/dto"
	"jumatrek/shared/failure"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetTrekByDestination = "trek:destination"
)

// destinationTitles maps the legacy destination keys used by the public
// trip request form to catalogue titles.
var destinationTitles = map[string]string{
	"everest_base_camp":   "Everest Base Camp",
	"annapurna_circuit":   "Annapurna Circuit",
	"annapurna_base_camp": "Annapurna Base Camp",
	"langtang_valley":     "Langtang Valley",
	"manaslu_circuit":     "Manaslu Circuit",
	"upper_mustang":       "Upper Mustang",
	"ghorepani_poonhill":  "Ghorepani Poon Hill",
	"kanchenjunga":        "Kanchenjunga",
	"makalu_base_camp":    "Makalu Base Camp",
	"rolwaling_valley":    "Rolwaling Valley",
}

// DestinationTitle resolves a legacy destination key to its catalogue
// title. Unknown keys fall back to the key with separators spaced out.
func DestinationTitle(destination string) string {
	if title, ok := destinationTitles[destination]; ok {
		return title
	}

	replacer := strings.NewReplacer("-", " ", "_", " ")

	return replacer.Replace(destination)
}

type Trek interface {
	GetByDestination(ctx context.Context, destination string) (dto.TrekResponse, error)
	ResolveTitle(ctx context.Context, destination string) string
}

type serviceImpl struct {
	repo  repository.Trek
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Trek, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Trek {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetByDestination(ctx context.Context, destination string) (res dto.TrekResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByDestination")
	defer scope.End()
	defer scope.TraceIfError(err)

	if destination == "" {
		return res, failure.BadRequestFromString("destination is required") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetTrekByDestination, destination)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for trek")

		return res, nil
	}

	trek, err := s.repo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTitle,
				Value:    DestinationTitle(destination),
				Operator: gDto.FilterOperatorLike,
			},
		},
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
		}

		log.Error().Err(err).Str("destination", destination).Msg("failed to get trek by destination")

		return res, fmt.Errorf("failed to get trek by destination: %w", err)
	}

	res.FromModel(trek)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache trek")
		}
	}()

	return res, nil
}

// ResolveTitle returns a human readable name for whatever the trip form
// stored in its destination field, which is either a legacy key or a
// catalogue ID. Lookup failures fall back to the raw value so listings
// never break on enrichment.
func (s *serviceImpl) ResolveTitle(ctx context.Context, destination string) string {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveTitle")
	defer scope.End()

	if destination == "" {
		return destination
	}

	if title, ok := destinationTitles[destination]; ok {
		return title
	}

	if _, err := uuid.Parse(destination); err != nil {
		return DestinationTitle(destination)
	}

	trek, err := s.repo.Get(ctx, shared.FilterByID(destination, model.FieldID, model.TableName), model.FieldID, model.FieldTitle)
	if err != nil {
		log.Warn().Err(err).Str("destination", destination).Msg("failed to resolve trek title, keeping raw value")

		return destination
	}

	return trek.Title
}
