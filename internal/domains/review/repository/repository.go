package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lagoon/infras/otel"
	"lagoon/infras/postgres"
	"lagoon/internal/domains/review/model"
	gDto "lagoon/shared/dto"
	gRepo "lagoon/shared/repository"
)

type Review interface {
	Insert(ctx context.Context, model model.Review) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Review, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Review, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
