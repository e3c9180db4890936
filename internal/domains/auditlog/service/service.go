package service

import (
	"context"
	"fmt"

	"lagoon/infras/otel"
	"lagoon/internal/domains/auditlog/model"
	"lagoon/internal/domains/auditlog/model/dto"
	"lagoon/internal/domains/auditlog/repository"
	"lagoon/shared/constant"
	gDto "lagoon/shared/dto"
	gModel "lagoon/shared/model"
	"lagoon/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AuditLog interface {
	Record(ctx context.Context, entity, entityID, action, detail string) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEntriesResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo repository.AuditLog
	otel otel.Otel
}

func New(repo repository.AuditLog, otel otel.Otel) AuditLog {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Record appends one audit entry. The actor is taken from the request
// context.
func (s *serviceImpl) Record(ctx context.Context, entity, entityID, action, detail string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	entry := model.Entry{
		ID:         uuid.NewString(),
		Entity:     entity,
		EntityID:   entityID,
		Action:     action,
		ActorID:    actor,
		Detail:     detail,
		OccurredAt: timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}

	if err = s.repo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Str("entity", entity).Str("action", action).Msg("failed to record audit entry")

		return fmt.Errorf("failed to record audit entry: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit entries")

		return res, fmt.Errorf("failed to count audit entries: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit entries")

		return res, fmt.Errorf("failed to get audit entries: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit entries")

		return res, fmt.Errorf("failed to count audit entries: %w", err)
	}

	return res, nil
}
