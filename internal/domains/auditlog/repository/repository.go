package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lagoon/infras/otel"
	"lagoon/infras/postgres"
	"lagoon/internal/domains/auditlog/model"
	gDto "lagoon/shared/dto"
	gRepo "lagoon/shared/repository"
)

type AuditLog interface {
	Insert(ctx context.Context, model model.Entry) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Entry, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Entry]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) AuditLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Entry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
