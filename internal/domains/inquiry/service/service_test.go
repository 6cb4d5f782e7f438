package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"jumatrek/config"
	mailerMocks "jumatrek/infras/mailer/mocks"
	"jumatrek/infras/otel/mocks"
	inquiryMocks "jumatrek/internal/domains/inquiry/mocks"
	"jumatrek/internal/domains/inquiry/model"
	"jumatrek/internal/domains/inquiry/model/dto"
	"jumatrek/internal/domains/inquiry/service"
	userMocks "jumatrek/internal/domains/user/mocks"
	userModel "jumatrek/internal/domains/user/model"
	eventMocks "jumatrek/internal/events/mocks"
	cacheMocks "jumatrek/shared/cache/mocks"
	"jumatrek/shared/constant"
	gDto "jumatrek/shared/dto"
	"jumatrek/shared/failure"
)

type inquiryServiceMocks struct {
	repo      *inquiryMocks.MockInquiry
	userRepo  *userMocks.MockUser
	cache     *cacheMocks.MockRedisCache
	mailer    *mailerMocks.MockMailer
	publisher *eventMocks.MockPublisher
}

func newInquiryService(ctrl *gomock.Controller) (service.Inquiry, inquiryServiceMocks) {
	m := inquiryServiceMocks{
		repo:      inquiryMocks.NewMockInquiry(ctrl),
		userRepo:  userMocks.NewMockUser(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		mailer:    mailerMocks.NewMockMailer(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.Name = "JumaTrek"
	cfg.App.Support.Email = "support@jumatrek.com"
	cfg.App.Support.Name = "JumaTrek Support"
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.userRepo, cfg, m.cache, m.mailer, m.publisher, mocks.NewOtel())

	return svc, m
}

func validInquiry(id string) model.Inquiry {
	return model.Inquiry{
		ID:      id,
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Permit question",
		Message: "Do I need a permit for Langtang?",
		Status:  model.StatusNew,
	}
}

func TestInquiryService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newInquiryService(ctrl)

	t.Run("anonymous inquiry with full payload", func(t *testing.T) {
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inquiry model.Inquiry) error {
				assert.Nil(t, inquiry.UserID)
				assert.Equal(t, model.StatusNew, inquiry.Status)
				assert.Equal(t, "anonymous", inquiry.CreatedBy)

				return nil
			})

		m.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any())

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		result, err := svc.Create(context.Background(), dto.CreateInquiryRequest{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Subject: "Permit question",
			Message: "Do I need a permit for Langtang?",
		})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusNew, result.Status)
	})

	t.Run("profile backfills blanks but payload wins", func(t *testing.T) {
		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{
				ID:      "user-id-123",
				Name:    "Jane Doe",
				Email:   "jane@example.com",
				Contact: "+9771234567",
			}, nil)

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inquiry model.Inquiry) error {
				assert.Equal(t, "Jane Doe", inquiry.Name)
				assert.Equal(t, "other@example.com", inquiry.Email)
				assert.Equal(t, "+9771234567", inquiry.Phone)
				assert.NotNil(t, inquiry.UserID)
				assert.Equal(t, "user-id-123", *inquiry.UserID)

				return nil
			})

		m.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any())

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
		_, err := svc.Create(ctx, dto.CreateInquiryRequest{
			Email:   "other@example.com",
			Subject: "Permit question",
			Message: "Do I need a permit for Langtang?",
		})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("missing fields named after backfill", func(t *testing.T) {
		_, err := svc.Create(context.Background(), dto.CreateInquiryRequest{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "subject")
		assert.Contains(t, err.Error(), "message")
	})

	t.Run("whitespace does not satisfy required fields", func(t *testing.T) {
		_, err := svc.Create(context.Background(), dto.CreateInquiryRequest{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Subject: "Permit question",
			Message: "   ",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "message")
	})
}

func TestInquiryService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newInquiryService(ctrl)

	params := gDto.QueryParams{Page: 1, Limit: 20, SortBy: "created_at", SortDir: "DESC"}

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := svc.GetAll(context.Background(), params, "bogus", "")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("search spans name, email, subject and message", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				assert.Len(t, filter.Filters, 1)

				group, ok := filter.Filters[0].(gDto.FilterGroup)
				assert.True(t, ok)
				assert.Equal(t, gDto.FilterGroupOperatorOr, group.Operator)
				assert.Len(t, group.Filters, 4)

				return 1, nil
			})

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Inquiry{validInquiry("inquiry-1")}, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		result, err := svc.GetAll(context.Background(), params, "", "permit")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, result.Inquiries, 1)
	})

	t.Run("status filter combined with search", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				assert.Len(t, filter.Filters, 2)

				return 0, nil
			})

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Inquiry{}, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := svc.GetAll(context.Background(), params, model.StatusNew, "permit")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}

func TestInquiryService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newInquiryService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	statusRead := model.StatusRead
	statusBogus := "bogus"

	t.Run("marks an inquiry read", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validInquiry("inquiry-1"), nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusRead, fields[model.FieldStatus])

				return nil
			})

		m.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any())

		m.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		result, err := svc.UpdateStatus(ctx, dto.UpdateStatusRequest{Status: &statusRead}, "inquiry-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusRead, result.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, dto.UpdateStatusRequest{Status: &statusBogus}, "inquiry-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestInquiryService_Reply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newInquiryService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "admin@jumatrek.com")
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, "Admin")

	t.Run("empty message rejected", func(t *testing.T) {
		_, err := svc.Reply(ctx, dto.ReplyRequest{Message: ""}, "inquiry-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("failed send leaves the inquiry untouched", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validInquiry("inquiry-1"), nil)

		m.mailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			Return(errors.New("smtp connection refused"))

		_, err := svc.Reply(ctx, dto.ReplyRequest{Message: "Yes, a TIMS card is required."}, "inquiry-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})

	t.Run("successful reply records delivery", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validInquiry("inquiry-1"), nil)

		m.mailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			Return(nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusReplied, fields[model.FieldStatus])
				assert.Equal(t, "Yes, a TIMS card is required.", fields[model.FieldLastReplyText])

				return nil
			})

		m.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any())

		m.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		result, err := svc.Reply(ctx, dto.ReplyRequest{Message: "Yes, a TIMS card is required."}, "inquiry-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusReplied, result.Status)
		assert.NotNil(t, result.LastReply)
	})
}

func TestInquiryService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newInquiryService(ctrl)

	t.Run("successful deletion", func(t *testing.T) {
		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		m.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any())

		m.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Delete(context.Background(), "inquiry-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "inquiry-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
