package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lagoon/infras/otel"
	"lagoon/infras/postgres"
	"lagoon/internal/domains/booking/model"
	"lagoon/shared/constant"
	gDto "lagoon/shared/dto"
	"lagoon/shared/logger"
	gRepo "lagoon/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ReserveSlot(ctx context.Context, booking model.Booking, guard func(existing []model.Booking) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ReserveSlot inserts a booking after running guard against every booking of
// the same facility, all inside one transaction holding a facility-scoped
// advisory lock. Two concurrent requests for the same facility serialize on
// the lock, so the second one sees the first one's row and the guard can
// reject it. The lock is released automatically at commit or rollback.
func (repo *repositoryImpl) ReserveSlot(ctx context.Context, booking model.Booking, guard func(existing []model.Booking) error) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ReserveSlot")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin reservation transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", booking.FacilityID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to acquire facility lock: %w", err)
	}

	var existing []model.Booking

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1", model.TableName, model.FieldFacilityID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = tx.SelectContext(ctx, &existing, query, booking.FacilityID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to read facility bookings: %w", err)
	}

	if err = guard(existing); err != nil {
		return err
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit reservation: %w", err)
	}

	return nil
}
