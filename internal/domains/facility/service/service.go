package service

import (
	"context"
	"fmt"

	"lagoon/config"
	"lagoon/infras/otel"
	"lagoon/internal/domains/facility/model"
	"lagoon/internal/domains/facility/model/dto"
	"lagoon/internal/domains/facility/repository"
	"lagoon/shared"
	"lagoon/shared/cache"
	"lagoon/shared/constant"
	gDto "lagoon/shared/dto"
	"lagoon/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFacility    = "facility:get"
	cacheGetAllFacility = "facility:gets"
	cacheCountFacility  = "facility:count"
)

type Facility interface {
	Create(ctx context.Context, req dto.CreateFacilityRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFacilitiesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.FacilityResponse, error)
	Update(ctx context.Context, req dto.UpdateFacilityRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Facility
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Facility, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Facility {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFacilityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	affiliateID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if affiliateID == constant.Empty {
		return failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(affiliateID)); err != nil {
		log.Error().Err(err).Msg("failed to create facility")

		return fmt.Errorf("failed to create facility: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllFacility)
		shared.InvalidateCaches(c, s.cache, cacheCountFacility)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFacilitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFacility, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for facilities")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count facilities")

		return res, fmt.Errorf("failed to count facilities: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get facilities")

		return res, fmt.Errorf("failed to get facilities: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save facilities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountFacility, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for facility count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count facilities")

		return res, fmt.Errorf("failed to count facilities: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save facility count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FacilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFacility, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for facility")

		return res, nil
	}

	facility, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility")

		return res, fmt.Errorf("failed to get facility: %w", err)
	}

	if facility.ID == constant.Empty {
		return res, failure.NotFound("facility not found") // nolint:wrapcheck
	}

	res.FromModel(facility)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save facility to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFacilityRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check facility existence")

		return fmt.Errorf("failed to check facility existence: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Msg("facility not found")

		return failure.NotFound("facility not found") // nolint:wrapcheck
	}

	if err = s.authorizeOwner(ctx, current); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update facility")

		return fmt.Errorf("failed to update facility: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFacility, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete facility from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllFacility)
		shared.InvalidateCaches(c, s.cache, cacheCountFacility)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check facility existence")

		return fmt.Errorf("failed to check facility existence: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Msg("facility not found")

		return failure.NotFound("facility not found") // nolint:wrapcheck
	}

	if err = s.authorizeOwner(ctx, current); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete facility")

		return fmt.Errorf("failed to delete facility: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFacility, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete facility from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllFacility)
		shared.InvalidateCaches(c, s.cache, cacheCountFacility)
	}()

	return nil
}

// authorizeOwner restricts facility mutations to the owning affiliate, with
// admin override.
func (s *serviceImpl) authorizeOwner(ctx context.Context, facility model.Facility) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleAdmin {
		return nil
	}

	if user == constant.Empty || user != facility.AffiliateID {
		return failure.Forbidden("only the owning affiliate can modify this facility") // nolint:wrapcheck
	}

	return nil
}
