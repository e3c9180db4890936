package facility

import (
	"net/http"

	"lagoon/infras/otel"
	"lagoon/internal/domains/facility/model"
	"lagoon/internal/domains/facility/model/dto"
	"lagoon/internal/domains/facility/service"
	"lagoon/shared/constant"
	gDto "lagoon/shared/dto"
	"lagoon/shared/validator"
	"lagoon/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Facility
	otel    otel.Otel
}

func New(service service.Facility, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/facilities", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateFacility)
		routerGroup.Get("/", handler.GetFacilities)
		routerGroup.Get("/{id}", handler.GetFacilityByID)
		routerGroup.Patch("/{id}", handler.UpdateFacility)
		routerGroup.Delete("/{id}", handler.DeleteFacility)
	})
}

// CreateFacility creates a new facility owned by the calling affiliate.
// @Summary Create a new facility
// @Description Create a new facility listing owned by the authenticated affiliate.
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.CreateFacilityRequest true "Create Facility Request"
// @Success 201 {object} response.Message "Facility created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities [post]
// @Security BearerAuth
func (handler *Handler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFacility")
	defer scope.End()

	req := dto.CreateFacilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create facility")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facility created successfully")

	response.WithMessage(w, http.StatusCreated, "Facility created successfully")
}

// GetFacilities retrieves facilities with optional filters.
// @Summary Get facilities
// @Description Retrieve facilities with optional filtering and pagination.
// @Tags Facility
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by facility name"
// @Param location query string false "Filter by location"
// @Param availability query string false "Filter by availability (Available, Unavailable)"
// @Success 200 {object} response.Data[dto.GetFacilitiesResponse] "List of facilities"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities [get]
func (handler *Handler) GetFacilities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	location := r.URL.Query().Get(model.FieldLocation)
	availability := r.URL.Query().Get(model.FieldAvailability)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if availability != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAvailability,
			Operator: gDto.FilterOperatorEq,
			Value:    availability,
			Table:    model.TableName,
		})
	}

	facilities, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facilities")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facilities retrieved successfully")

	response.WithJSON(w, http.StatusOK, facilities)
}

// GetFacilityByID retrieves a facility by its ID.
// @Summary Get a facility by ID
// @Description Retrieve a facility by its unique identifier.
// @Tags Facility
// @Accept json
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} response.Data[dto.FacilityResponse] "Facility details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id} [get]
func (handler *Handler) GetFacilityByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilityByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	facility, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facility by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facility retrieved successfully")

	response.WithJSON(w, http.StatusOK, facility)
}

// UpdateFacility updates an existing facility.
// @Summary Update a facility
// @Description Update a facility owned by the authenticated affiliate.
// @Tags Facility
// @Accept json
// @Produce json
// @Param id path string true "Facility ID"
// @Param request body dto.UpdateFacilityRequest true "Update Facility Request"
// @Success 200 {object} response.Message "Facility updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFacility")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFacilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update facility")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facility updated successfully")

	response.WithMessage(w, http.StatusOK, "Facility updated successfully")
}

// DeleteFacility deletes a facility.
// @Summary Delete a facility
// @Description Delete a facility owned by the authenticated affiliate.
// @Tags Facility
// @Accept json
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} response.Message "Facility deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFacility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFacility")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete facility")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facility deleted successfully")

	response.WithMessage(w, http.StatusOK, "Facility deleted successfully")
}
