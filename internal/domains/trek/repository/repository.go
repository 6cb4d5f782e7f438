package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"jumatrek/infras/otel"
	"jumatrek/infras/postgres"
	"jumatrek/internal/domains/trek/model"
	gDto "jumatrek/shared/dto"
	gRepo "jumatrek/shared/repository"
)

type Trek interface {
	Insert(ctx context.Context, model model.Trek) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Trek, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Trek, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Trek]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Trek {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Trek](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
