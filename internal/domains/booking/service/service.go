package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lagoon/config"
	"lagoon/infras/kafka"
	"lagoon/infras/otel"
	auditSvc "lagoon/internal/domains/auditlog/service"
	"lagoon/internal/domains/booking/model"
	"lagoon/internal/domains/booking/model/dto"
	"lagoon/internal/domains/booking/repository"
	facilityModel "lagoon/internal/domains/facility/model"
	facilityRepo "lagoon/internal/domains/facility/repository"
	userModel "lagoon/internal/domains/user/model"
	userRepo "lagoon/internal/domains/user/repository"
	"lagoon/shared"
	"lagoon/shared/cache"
	"lagoon/shared/constant"
	gDto "lagoon/shared/dto"
	"lagoon/shared/failure"
	"lagoon/shared/timezone"
	"lagoon/shared/watch"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	watchChannelPrefix = "booking:events"
)

type Booking interface {
	Request(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Approve(ctx context.Context, id string) error
	Decline(ctx context.Context, id string) error
	CheckIn(ctx context.Context, id string) error
	CheckOut(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
	Watch(ctx context.Context, id string, fn func(payload []byte)) (func(), error)
}

type serviceImpl struct {
	repo         repository.Booking
	facilityRepo facilityRepo.Facility
	userRepo     userRepo.User
	audit        auditSvc.AuditLog
	watcher      watch.Watcher
	kafka        kafka.Client
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	facilityRepo facilityRepo.Facility,
	userRepo userRepo.User,
	audit auditSvc.AuditLog,
	watcher watch.Watcher,
	kafkaClient kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		facilityRepo: facilityRepo,
		userRepo:     userRepo,
		audit:        audit,
		watcher:      watcher,
		kafka:        kafkaClient,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// statusEvent is the payload published to watchers and to the booking topic
// on every lifecycle change.
type statusEvent struct {
	BookingID  string `json:"booking_id"`
	FacilityID string `json:"facility_id"`
	Event      string `json:"event"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

// Request validates a booking request, prices it, and reserves the slot. The
// structural checks run before any store access; the slot conflict check and
// the insert happen atomically inside the repository so two concurrent
// requests for the same facility cannot both pass. On any failure nothing is
// written.
func (s *serviceImpl) Request(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Request")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	var customerID *string
	if role == constant.RoleCustomer && user != constant.Empty {
		customerID = &user
	}

	if customerID == nil && !req.HasCompleteGuestDetails() {
		return res, failure.BadRequestFromString("guest name, email, phone, and address are required for bookings without an account") // nolint:wrapcheck
	}

	if customerID != nil && req.HasGuestDetails() {
		return res, failure.BadRequestFromString("provide either an account or guest details, not both") // nolint:wrapcheck
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if checkIn.After(checkOut) {
		return res, failure.BadRequestFromString("check-in date must not be after check-out date") // nolint:wrapcheck
	}

	if req.AdultGuests+req.ChildGuests <= 0 {
		return res, failure.BadRequestFromString("at least one guest is required") // nolint:wrapcheck
	}

	facility, err := s.facilityRepo.Get(ctx, shared.FilterByID(req.FacilityID, facilityModel.FieldID, facilityModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility")

		return res, fmt.Errorf("failed to get facility: %w", err)
	}

	if facility.ID == constant.Empty {
		return res, failure.NotFound("facility not found") // nolint:wrapcheck
	}

	if facility.Availability != facilityModel.AvailabilityAvailable {
		return res, failure.UnprocessableEntity("facility is not accepting bookings") // nolint:wrapcheck
	}

	affiliate, err := s.userRepo.Get(ctx, shared.FilterByID(facility.AffiliateID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get affiliate")

		return res, fmt.Errorf("failed to get affiliate: %w", err)
	}

	if affiliate.ID == constant.Empty {
		return res, failure.NotFound("affiliate not found") // nolint:wrapcheck
	}

	days := model.StayDays(checkIn, checkOut)
	rates := model.Rates{
		DayTourPrice:     facility.DayTourPrice,
		NightTourPrice:   facility.NightTourPrice,
		AdultEntranceFee: facility.AdultEntranceFee,
		ChildEntranceFee: facility.ChildEntranceFee,
	}
	total := model.Quote(rates, model.TourTime(req.TourTime), days, req.AdultGuests, req.ChildGuests)

	if !model.AcceptedAmount(req.AmountPaid, total, s.cfg.App.DownpaymentRate) {
		return res, failure.BadRequestFromString(fmt.Sprintf(
			"amount paid must equal the total %.2f or the downpayment %.2f", total, total*s.cfg.App.DownpaymentRate,
		)) // nolint:wrapcheck
	}

	booking, err := req.ToModel(dto.BookingContext{
		AffiliateID:    facility.AffiliateID,
		TotalAmount:    total,
		FacilityName:   facility.Name,
		AffiliateName:  affiliate.DisplayName(),
		AffiliateEmail: affiliate.Email,
		AffiliatePhone: affiliate.ContactPhone(),
	}, customerID, user)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	err = s.repo.ReserveSlot(ctx, booking, func(existing []model.Booking) error {
		for _, other := range existing {
			if other.Blocks(checkIn, checkOut) {
				return failure.Conflict("facility is already booked for the requested dates") // nolint:wrapcheck
			}
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	s.publishEvent(ctx, booking, constant.EventBookingRequested)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter = scopeFilter(ctx, filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter = scopeFilter(ctx, filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.fetch(ctx, id)
	if err != nil {
		return res, err
	}

	if err = canView(ctx, booking); err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Approve(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusApproved, nil)
}

// Decline releases the slot by clearing both dates and reopens the facility.
func (s *serviceImpl) Decline(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusDeclined, func(ctx context.Context, booking model.Booking, updates map[string]any) error {
		updates[model.FieldCheckInDate] = nil
		updates[model.FieldCheckOutDate] = nil

		facilityFilter := shared.FilterByID(booking.FacilityID, facilityModel.FieldID, facilityModel.TableName)
		availability := map[string]any{facilityModel.FieldAvailability: facilityModel.AvailabilityAvailable}

		if err := s.facilityRepo.Update(ctx, availability, facilityFilter); err != nil {
			log.Error().Err(err).Msg("failed to reopen facility availability")

			return fmt.Errorf("failed to reopen facility availability: %w", err)
		}

		return nil
	})
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusCheckedIn, nil)
}

// CheckOut stamps the actual departure over the planned check-out date.
func (s *serviceImpl) CheckOut(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusCheckedOut, func(_ context.Context, _ model.Booking, updates map[string]any) error {
		updates[model.FieldCheckOutDate] = timezone.Now()

		return nil
	})
}

func (s *serviceImpl) Complete(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusCompleted, nil)
}

// SoftDelete hides a declined booking. Unlike the status transitions it has
// no admin override: only the affiliate the booking belongs to may do it.
func (s *serviceImpl) SoftDelete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SoftDelete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty || user != booking.AffiliateID {
		return failure.Forbidden("only the owning affiliate can delete this booking") // nolint:wrapcheck
	}

	if booking.Status != model.StatusDeclined {
		return failure.UnprocessableEntity("only declined bookings can be deleted") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	updates := map[string]any{
		model.FieldIsDeleted:     true,
		constant.FieldModifiedBy: user,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, updates, filter); err != nil {
		log.Error().Err(err).Msg("failed to soft delete booking")

		return fmt.Errorf("failed to soft delete booking: %w", err)
	}

	if auditErr := s.audit.Record(ctx, model.EntityName, id, "soft_delete", "declined booking hidden by affiliate"); auditErr != nil {
		log.Error().Err(auditErr).Msg("failed to audit booking soft delete")
	}

	s.invalidate(ctx, id)

	return nil
}

// Watch streams booking changes to fn, starting with the current state, until
// the returned function is called.
func (s *serviceImpl) Watch(ctx context.Context, id string, fn func(payload []byte)) (unsubscribe func(), err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Watch")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = canView(ctx, booking); err != nil {
		return nil, err
	}

	var current dto.BookingResponse

	current.FromModel(booking)

	snapshot, err := json.Marshal(current)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal booking snapshot")

		return nil, fmt.Errorf("failed to marshal booking snapshot: %w", err)
	}

	unsubscribe, err = s.watcher.Subscribe(ctx, watchChannel(id), fn)
	if err != nil {
		log.Error().Err(err).Msg("failed to subscribe to booking changes")

		return nil, fmt.Errorf("failed to subscribe to booking changes: %w", err)
	}

	fn(snapshot)

	return unsubscribe, nil
}

// transition moves a booking to next after checking ownership and the state
// machine, applying any extra column updates via mutate within the same
// update. The caller gets InvalidTransitionError semantics when the current
// status does not allow next; it should re-read and surface the state rather
// than retry.
func (s *serviceImpl) transition(
	ctx context.Context,
	id string,
	next model.Status,
	mutate func(ctx context.Context, booking model.Booking, updates map[string]any) error,
) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.transition.%s", constant.OtelServiceScopeName, next))
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role != constant.RoleAdmin && (user == constant.Empty || user != booking.AffiliateID) {
		return failure.Forbidden("only the owning affiliate can update this booking") // nolint:wrapcheck
	}

	if !booking.Status.CanTransitionTo(next) {
		return failure.UnprocessableEntity(fmt.Sprintf("booking cannot move from %s to %s", booking.Status, next)) // nolint:wrapcheck
	}

	updates := map[string]any{
		model.FieldStatus:         string(next),
		constant.FieldModifiedBy: user,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if mutate != nil {
		if err = mutate(ctx, booking, updates); err != nil {
			return err
		}
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	if err = s.repo.Update(ctx, updates, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	detail := fmt.Sprintf("status changed from %s to %s", booking.Status, next)
	if auditErr := s.audit.Record(ctx, model.EntityName, id, string(next), detail); auditErr != nil {
		log.Error().Err(auditErr).Msg("failed to audit booking transition")
	}

	booking.Status = next
	s.publishEvent(ctx, booking, constant.EventBookingStatusChanged)
	s.invalidate(ctx, id)

	return nil
}

// fetch loads a booking, treating missing and soft-deleted rows the same way.
func (s *serviceImpl) fetch(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty || booking.IsDeleted {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, booking model.Booking, event string) {
	payload := statusEvent{
		BookingID:  booking.ID,
		FacilityID: booking.FacilityID,
		Event:      event,
		Status:     string(booking.Status),
		OccurredAt: timezone.Now().Format(time.RFC3339),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.watcher.Publish(c, watchChannel(booking.ID), payload); err != nil {
			log.Error().Err(err).Msg("failed to publish booking event to watchers")
		}

		if s.cfg.Kafka.BookingTopic == constant.Empty {
			return
		}

		message := kafka.Message{Key: booking.ID, Value: payload}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingTopic, message); err != nil {
			log.Error().Err(err).Msg("failed to publish booking event to kafka")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

// scopeFilter narrows listings to what the caller may see: affiliates their
// facilities' bookings, customers their own, admins everything.
func scopeFilter(ctx context.Context, filter gDto.FilterGroup) gDto.FilterGroup {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	switch role {
	case constant.RoleAdmin:
		return filter
	case constant.RoleAffiliate:
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldAffiliateID,
			Table:    model.TableName,
			Value:    user,
			Operator: gDto.FilterOperatorEq,
		})
	default:
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCustomerID,
			Table:    model.TableName,
			Value:    user,
			Operator: gDto.FilterOperatorEq,
		})
	}

	if filter.Operator == constant.Empty {
		filter.Operator = gDto.FilterGroupOperatorAnd
	}

	return filter
}

func canView(ctx context.Context, booking model.Booking) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleAdmin {
		return nil
	}

	if user != constant.Empty && user == booking.AffiliateID {
		return nil
	}

	if booking.CustomerID != nil && user != constant.Empty && user == *booking.CustomerID {
		return nil
	}

	return failure.Forbidden("not allowed to view this booking") // nolint:wrapcheck
}

func watchChannel(id string) string {
	return shared.BuildCacheKey(watchChannelPrefix, id)
}
