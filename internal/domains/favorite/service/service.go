package service

import (
	"context"
	"fmt"

	"lagoon/config"
	"lagoon/infras/otel"
	facilityModel "lagoon/internal/domains/facility/model"
	facilityRepo "lagoon/internal/domains/facility/repository"
	"lagoon/internal/domains/favorite/model"
	"lagoon/internal/domains/favorite/model/dto"
	"lagoon/internal/domains/favorite/repository"
	"lagoon/shared"
	"lagoon/shared/constant"
	gDto "lagoon/shared/dto"
	"lagoon/shared/failure"

	"github.com/rs/zerolog/log"
)

type Favorite interface {
	Add(ctx context.Context, req dto.CreateFavoriteRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetFavoritesResponse, error)
	Remove(ctx context.Context, facilityID string) error
}

type serviceImpl struct {
	repo         repository.Favorite
	facilityRepo facilityRepo.Facility
	cfg          *config.Config
	otel         otel.Otel
}

func New(repo repository.Favorite, facilityRepo facilityRepo.Facility, cfg *config.Config, otel otel.Otel) Favorite {
	return &serviceImpl{
		repo:         repo,
		facilityRepo: facilityRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, req dto.CreateFavoriteRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	facilityExists, err := s.facilityRepo.Exist(ctx, shared.FilterByID(req.FacilityID, facilityModel.FieldID, facilityModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check facility existence")

		return fmt.Errorf("failed to check facility existence: %w", err)
	}

	if !facilityExists {
		return failure.NotFound("facility not found") // nolint:wrapcheck
	}

	exists, err := s.repo.Exist(ctx, s.ownFilter(user, req.FacilityID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing favorite")

		return fmt.Errorf("failed to check existing favorite: %w", err)
	}

	if exists {
		return failure.Conflict("facility already favorited") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to add favorite")

		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetFavoritesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCustomerID, Table: model.TableName, Value: user, Operator: gDto.FilterOperatorEq},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count favorites")

		return res, fmt.Errorf("failed to count favorites: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get favorites")

		return res, fmt.Errorf("failed to get favorites: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Remove(ctx context.Context, facilityID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	filter := s.ownFilter(user, facilityID)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing favorite")

		return fmt.Errorf("failed to check existing favorite: %w", err)
	}

	if !exists {
		return failure.NotFound("favorite not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to remove favorite")

		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	return nil
}

func (s *serviceImpl) ownFilter(user, facilityID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCustomerID, Table: model.TableName, Value: user, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldFacilityID, Table: model.TableName, Value: facilityID, Operator: gDto.FilterOperatorEq},
		},
	}
}
