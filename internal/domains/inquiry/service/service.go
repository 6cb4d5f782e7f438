package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Inquiry=MockInquiryService

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"jumatrek/config"
	"jumatrek/infras/mailer"
	"jumatrek/infras/otel"
	"jumatrek/internal/domains/inquiry/model"
	"jumatrek/internal/domains/inquiry/model/dto"
	"jumatrek/internal/domains/inquiry/repository"
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
	cacheGetInquiry     = "inquiry:get"
	cacheGetAllInquiry  = "inquiry:gets"
	cacheCountInquiries = "inquiry:count"
)

type Inquiry interface {
	Create(ctx context.Context, req dto.CreateInquiryRequest) (dto.InquiryResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, status, search string) (dto.GetInquiriesResponse, error)
	Get(ctx context.Context, id string) (dto.InquiryResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.InquiryResponse, error)
	Reply(ctx context.Context, req dto.ReplyRequest, id string) (dto.InquiryResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Inquiry
	userRepo  userRepo.User
	cfg       *config.Config
	cache     cache.RedisCache
	mailer    mailer.Mailer
	publisher events.Publisher
	otel      otel.Otel
}

func New(
	repo repository.Inquiry,
	userRepo userRepo.User,
	cfg *config.Config,
	cache cache.RedisCache,
	mailer mailer.Mailer,
	publisher events.Publisher,
	otel otel.Otel,
) Inquiry {
	return &serviceImpl{
		repo:      repo,
		userRepo:  userRepo,
		cfg:       cfg,
		cache:     cache,
		mailer:    mailer,
		publisher: publisher,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInquiryRequest) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	// Blanks are back-filled from the authenticated profile, but explicit
	// payload values always win.
	if userID != "" {
		user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Str("userID", userID).Msg("failed to get submitter profile")

			return res, fmt.Errorf("failed to get submitter profile: %w", err)
		}

		if err == nil {
			if req.Name == "" {
				req.Name = user.Name
			}

			if req.Email == "" {
				req.Email = user.Email
			}

			if req.Phone == "" {
				req.Phone = user.Contact
			}
		}
	}

	if missing := missingFields(req); len(missing) > 0 {
		return res, failure.BadRequestFromString(fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))) // nolint:wrapcheck
	}

	inquiry := req.ToModel(userID)

	if err = s.repo.Insert(ctx, inquiry); err != nil {
		log.Error().Err(err).Msg("failed to create inquiry")

		return res, fmt.Errorf("failed to create inquiry: %w", err)
	}

	s.publisher.Publish(ctx, events.RequestEvent{
		Type:      events.TypeInquiryReceived,
		RequestID: inquiry.ID,
		UserID:    userID,
		Status:    inquiry.Status,
	})

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllInquiry)
		shared.InvalidateCaches(c, s.cache, cacheCountInquiries)
	}()

	res.FromModel(inquiry)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, status, search string) (res dto.GetInquiriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if status != "" && status != constant.StatusFilterAll {
		if !model.ValidStatus(status) {
			return res, failure.BadRequestFromString(fmt.Sprintf("invalid status: %s", status)) // nolint:wrapcheck
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    status,
			Operator: gDto.FilterOperatorEq,
		})
	}

	if search != "" {
		filter.Filters = append(filter.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: model.FieldName, Value: search, Operator: gDto.FilterOperatorLike, ArgName: "search_name"},
				gDto.Filter{Field: model.FieldEmail, Value: search, Operator: gDto.FilterOperatorLike, ArgName: "search_email"},
				gDto.Filter{Field: model.FieldSubject, Value: search, Operator: gDto.FilterOperatorLike, ArgName: "search_subject"},
				gDto.Filter{Field: model.FieldMessage, Value: search, Operator: gDto.FilterOperatorLike, ArgName: "search_message"},
			},
		})
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInquiry, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inquiries")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inquiries")

		return res, fmt.Errorf("failed to count inquiries: %w", err)
	}

	inquiries, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiries")

		return res, fmt.Errorf("failed to get inquiries: %w", err)
	}

	res.FromModels(inquiries, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache inquiries")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetInquiry, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inquiry")

		return res, nil
	}

	inquiry, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(inquiry)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache inquiry")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Status != nil && !model.ValidStatus(*req.Status) {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid status: %s", *req.Status)) // nolint:wrapcheck
	}

	inquiry, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	admin, _ := ctx.Value(constant.ContextKeyUserID).(string)
	fields := shared.TransformFields(req, admin)

	if req.Status != nil {
		inquiry.Status = *req.Status
		fields[model.FieldStatus] = *req.Status
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update inquiry status")

		return res, fmt.Errorf("failed to update inquiry status: %w", err)
	}

	if req.Status != nil {
		s.publisher.Publish(ctx, events.RequestEvent{
			Type:      events.TypeInquiryStatusChanged,
			RequestID: id,
			Status:    inquiry.Status,
		})
	}

	s.invalidate(ctx, id)

	res.FromModel(inquiry)

	return res, nil
}

func (s *serviceImpl) Reply(ctx context.Context, req dto.ReplyRequest, id string) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reply")
	defer scope.End()
	defer scope.TraceIfError(err)

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return res, failure.BadRequestFromString("reply message cannot be empty") // nolint:wrapcheck
	}

	inquiry, err := s.getByID(ctx, id)
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

	// The send gates the mutation: a reply that was never delivered must
	// not be recorded.
	email := mailer.NewInquiryReplyEmail(inquiry.Email, inquiry.Name, inquiry.Subject, message, adminName, s.cfg.App.Name)
	if err = s.mailer.Send(ctx, email); err != nil {
		log.Error().Err(err).Str("id", id).Str("recipient", inquiry.Email).Msg("failed to send reply email")

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
		log.Error().Err(err).Str("id", id).Msg("failed to record reply on inquiry")

		return res, fmt.Errorf("failed to record reply on inquiry: %w", err)
	}

	inquiry.Status = model.StatusReplied
	inquiry.LastReplyText = &message
	inquiry.LastReplySentAt = &sentAt
	inquiry.LastReplyAdminEmail = &adminEmail
	inquiry.LastReplyAdminName = &adminName

	s.publisher.Publish(ctx, events.RequestEvent{
		Type:       events.TypeInquiryReplied,
		RequestID:  id,
		Status:     inquiry.Status,
		ActorEmail: adminEmail,
	})

	s.invalidate(ctx, id)

	res.FromModel(inquiry)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to check if inquiry exists")

		return fmt.Errorf("failed to check if inquiry exists: %w", err)
	}

	if !exists {
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete inquiry")

		return fmt.Errorf("failed to delete inquiry: %w", err)
	}

	s.publisher.Publish(ctx, events.RequestEvent{
		Type:      events.TypeInquiryDeleted,
		RequestID: id,
	})

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (model.Inquiry, error) {
	inquiry, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return inquiry, failure.NotFound(model.EntityName) // nolint:wrapcheck
		}

		log.Error().Err(err).Str("id", id).Msg("failed to get inquiry")

		return inquiry, fmt.Errorf("failed to get inquiry: %w", err)
	}

	return inquiry, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetInquiry, id)); err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to invalidate inquiry cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllInquiry)
		shared.InvalidateCaches(c, s.cache, cacheCountInquiries)
	}()
}

func missingFields(req dto.CreateInquiryRequest) []string {
	missing := []string{}

	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}

	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}

	if strings.TrimSpace(req.Subject) == "" {
		missing = append(missing, "subject")
	}

	if strings.TrimSpace(req.Message) == "" {
		missing = append(missing, "message")
	}

	return missing
}
