package service

import (
	"context"
	"errors"
	"fmt"

	"lagoon/config"
	"lagoon/infras/otel"
	bookingModel "lagoon/internal/domains/booking/model"
	bookingRepo "lagoon/internal/domains/booking/repository"
	facilityModel "lagoon/internal/domains/facility/model"
	facilityRepo "lagoon/internal/domains/facility/repository"
	"lagoon/internal/domains/review/model"
	"lagoon/internal/domains/review/model/dto"
	"lagoon/internal/domains/review/repository"
	"lagoon/shared"
	"lagoon/shared/cache"
	"lagoon/shared/constant"
	gDto "lagoon/shared/dto"
	"lagoon/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllReview = "review:gets"
	cacheCountReview  = "review:count"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReviewsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Review
	bookingRepo  bookingRepo.Booking
	facilityRepo facilityRepo.Facility
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Review,
	bookingRepo bookingRepo.Booking,
	facilityRepo facilityRepo.Facility,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Review {
	return &serviceImpl{
		repo:         repo,
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create attaches a review to a facility the caller has completed a stay at.
// The pre-insert existence check keeps the common case friendly; the unique
// index on (customer_id, facility_id) is what actually closes the race.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if user == constant.Empty || role != constant.RoleCustomer {
		return failure.Forbidden("only customers can review facilities") // nolint:wrapcheck
	}

	facility, err := s.facilityRepo.Get(ctx, shared.FilterByID(req.FacilityID, facilityModel.FieldID, facilityModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility")

		return fmt.Errorf("failed to get facility: %w", err)
	}

	if facility.ID == constant.Empty {
		return failure.NotFound("facility not found") // nolint:wrapcheck
	}

	completed, err := s.bookingRepo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldFacilityID, Table: bookingModel.TableName, Value: req.FacilityID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: bookingModel.FieldCustomerID, Table: bookingModel.TableName, Value: user, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: bookingModel.FieldStatus, Table: bookingModel.TableName, Value: string(bookingModel.StatusCompleted), Operator: gDto.FilterOperatorEq},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check completed bookings")

		return fmt.Errorf("failed to check completed bookings: %w", err)
	}

	if !completed {
		return failure.UnprocessableEntity("a completed stay is required before reviewing") // nolint:wrapcheck
	}

	exists, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldFacilityID, Table: model.TableName, Value: req.FacilityID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldCustomerID, Table: model.TableName, Value: user, Operator: gDto.FilterOperatorEq},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing review")

		return fmt.Errorf("failed to check existing review: %w", err)
	}

	if exists {
		return failure.Conflict("facility already reviewed") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(facility.AffiliateID, user)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return failure.Conflict("facility already reviewed") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create review")

		return fmt.Errorf("failed to create review: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReview)
		shared.InvalidateCaches(c, s.cache, cacheCountReview)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReview, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReview, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for review count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save review count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	review, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == constant.Empty {
		return failure.NotFound("review not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role != constant.RoleAdmin && user != review.CustomerID {
		return failure.Forbidden("only the review author can delete it") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReview)
		shared.InvalidateCaches(c, s.cache, cacheCountReview)
	}()

	return nil
}
