package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=CustomTrip=MockCustomTripService

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"jumatrek/config"
	"jumatrek/infras/mailer"
	"jumatrek/infras/otel"
	trekService "jumatrek/internal/domains/trek/service"
	"jumatrek/internal/domains/trip/model"
	"jumatrek/internal/domains/trip/model/dto"
	"jumatrek/internal/domains/trip/repository"
	userModel "jumatrek/internal/domains/user/model"
	userRepo "jumatrek/internal/domains/user/repository"
	"jumatrek/internal/events"
	"jumatrek/shared"
	"jumatrek/shared/cache"
	"jumatrek/shared/constant"
	gDto "jumatrek/shared/dto"
	"jumatrek/shared/failure"
	"jumatrek/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTrip     = "trip:get"
	cacheGetAllTrips = "trip:gets"
	cacheCountTrips  = "trip:count"
)

type CustomTrip interface {
	Create(ctx context.Context, req dto.CreateCustomTripRequest) (dto.CustomTripResponse, error)
	GetMine(ctx context.Context) ([]dto.CustomTripResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, status string) (dto.GetCustomTripsResponse, error)
	Get(ctx context.Context, id string) (dto.CustomTripResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.CustomTripResponse, error)
	Reply(ctx context.Context, req dto.ReplyRequest, id string) (dto.CustomTripResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.CustomTrip
	userRepo  userRepo.User
	trekSvc   trekService.Trek
	cfg       *config.Config
	cache     cache.RedisCache
	mailer    mailer.Mailer
	publisher events.Publisher
	otel      otel.Otel
}

func New(
	repo repository.CustomTrip,
	userRepo userRepo.User,
	trekSvc trekService.Trek,
	cfg *config.Config,
	cache cache.RedisCache,
	mailer mailer.Mailer,
	publisher events.Publisher,
	otel otel.Otel,
) CustomTrip {
	return &serviceImpl{
		repo:      repo,
		userRepo:  userRepo,
		trekSvc:   trekSvc,
		cfg:       cfg,
		cache:     cache,
		mailer:    mailer,
		publisher: publisher,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomTripRequest) (res dto.CustomTripResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	// Stale or forged tokens can carry an id with no matching record.
	userExists, err := s.userRepo.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !userExists {
		return res, failure.NotFound(userModel.EntityName) // nolint:wrapcheck
	}

	trip, err := req.ToModel(userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse custom trip request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, trip); err != nil {
		log.Error().Err(err).Msg("failed to create custom trip request")

		return res, fmt.Errorf("failed to create custom trip request: %w", err)
	}

	s.publisher.Publish(ctx, events.RequestEvent{
		Type:      events.TypeTripRequested,
		RequestID: trip.ID,
		UserID:    userID,
		Status:    trip.Status,
	})

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTrips)
		shared.InvalidateCaches(c, s.cache, cacheCountTrips)
	}()

	res.FromModel(trip)

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context) (res []dto.CustomTripResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	params := gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}

	trips, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get own custom trip requests")

		return res, fmt.Errorf("failed to get own custom trip requests: %w", err)
	}

	res = make([]dto.CustomTripResponse, len(trips))
	for i, trip := range trips {
		res[i].FromModel(trip)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetCustomTripsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	// Unknown status values fall through to an unfiltered listing.
	if status != "" && status != constant.StatusFilterAll && model.ValidStatus(status) {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    status,
			Operator: gDto.FilterOperatorEq,
		})
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTrips, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for custom trip requests")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count custom trip requests")

		return res, fmt.Errorf("failed to count custom trip requests: %w", err)
	}

	trips, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get custom trip requests")

		return res, fmt.Errorf("failed to get custom trip requests: %w", err)
	}

	res.FromModels(trips, total, params.Limit)

	for i := range res.Requests {
		res.Requests[i].DestinationName = s.trekSvc.ResolveTitle(ctx, res.Requests[i].Destination)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache custom trip requests")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CustomTripResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTrip, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for custom trip request")

		return res, nil
	}

	trip, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(trip)
	res.DestinationName = s.trekSvc.ResolveTitle(ctx, trip.Destination)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache custom trip request")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.CustomTripResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Status != nil && !model.ValidStatus(*req.Status) {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid status: %s", *req.Status)) // nolint:wrapcheck
	}

	trip, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	admin, _ := ctx.Value(constant.ContextKeyUserID).(string)
	fields := shared.TransformFields(req, admin)

	if req.Status != nil {
		trip.Status = *req.Status
		fields[model.FieldStatus] = *req.Status
	}

	if req.AdminNotes != nil {
		trip.AdminNotes = *req.AdminNotes
		fields[model.FieldAdminNotes] = *req.AdminNotes
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update custom trip request status")

		return res, fmt.Errorf("failed to update custom trip request status: %w", err)
	}

	if req.Status != nil {
		s.publisher.Publish(ctx, events.RequestEvent{
			Type:      events.TypeTripStatusChanged,
			RequestID: id,
			UserID:    trip.UserID,
			Status:    trip.Status,
		})
	}

	s.invalidate(ctx, id)

	res.FromModel(trip)

	return res, nil
}

func (s *serviceImpl) Reply(ctx context.Context, req dto.ReplyRequest, id string) (res dto.CustomTripResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reply")
	defer scope.End()
	defer scope.TraceIfError(err)

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return res, failure.BadRequestFromString("reply message cannot be empty") // nolint:wrapcheck
	}

	trip, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	recipient, recipientName, err := s.resolveRecipient(ctx, trip)
	if err != nil {
		return res, err
	}

	adminEmail, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	adminName, _ := ctx.Value(constant.ContextKeyUserName).(string)

	if adminEmail == "" {
		adminEmail = s.cfg.App.Support.Email
	}

	if adminName == "" {
		adminName = s.cfg.App.Support.Name
	}

	destinationName := s.trekSvc.ResolveTitle(ctx, trip.Destination)

	// The send gates the mutation: a reply that was never delivered must
	// not be recorded.
	email := mailer.NewTripReplyEmail(recipient, recipientName, destinationName, message, adminName, s.cfg.App.Name)
	if err = s.mailer.Send(ctx, email); err != nil {
		log.Error().Err(err).Str("id", id).Str("recipient", recipient).Msg("failed to send reply email")

		return res, failure.BadGateway("failed to send reply email") // nolint:wrapcheck
	}

	sentAt := timezone.Now()
	admin, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := shared.TransformFields(struct{}{}, admin)
	fields[model.FieldStatus] = model.StatusReplied
	fields[model.FieldLastReplyText] = message
	fields[model.FieldLastReplySentAt] = sentAt
	fields[model.FieldLastReplyAdminEmail] = adminEmail
	fields[model.FieldLastReplyAdminName] = adminName

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to record reply on custom trip request")

		return res, fmt.Errorf("failed to record reply on custom trip request: %w", err)
	}

	trip.Status = model.StatusReplied
	trip.LastReplyText = &message
	trip.LastReplySentAt = &sentAt
	trip.LastReplyAdminEmail = &adminEmail
	trip.LastReplyAdminName = &adminName

	s.publisher.Publish(ctx, events.RequestEvent{
		Type:       events.TypeTripReplied,
		RequestID:  id,
		UserID:     trip.UserID,
		Status:     trip.Status,
		ActorEmail: adminEmail,
	})

	s.invalidate(ctx, id)

	res.FromModel(trip)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to check if custom trip request exists")

		return fmt.Errorf("failed to check if custom trip request exists: %w", err)
	}

	if !exists {
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete custom trip request")

		return fmt.Errorf("failed to delete custom trip request: %w", err)
	}

	s.publisher.Publish(ctx, events.RequestEvent{
		Type:      events.TypeTripDeleted,
		RequestID: id,
	})

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (model.CustomTrip, error) {
	trip, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return trip, failure.NotFound(model.EntityName) // nolint:wrapcheck
		}

		log.Error().Err(err).Str("id", id).Msg("failed to get custom trip request")

		return trip, fmt.Errorf("failed to get custom trip request: %w", err)
	}

	return trip, nil
}

// resolveRecipient prefers the override contact block, falling back to the
// submitter's profile email.
func (s *serviceImpl) resolveRecipient(ctx context.Context, trip model.CustomTrip) (string, string, error) {
	if trip.ContactEmail != "" {
		name := trip.ContactName
		if name == "" {
			name = "Traveler"
		}

		return trip.ContactEmail, name, nil
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(trip.UserID, userModel.FieldID, userModel.TableName))
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Str("userID", trip.UserID).Msg("failed to get submitter profile")

		return "", "", fmt.Errorf("failed to get submitter profile: %w", err)
	}

	if user.Email == "" {
		return "", "", failure.BadRequestFromString("no recipient email on request or submitter profile") // nolint:wrapcheck
	}

	name := user.Name
	if name == "" {
		name = "Traveler"
	}

	return user.Email, name, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTrip, id)); err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to invalidate custom trip request cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTrips)
		shared.InvalidateCaches(c, s.cache, cacheCountTrips)
	}()
}
