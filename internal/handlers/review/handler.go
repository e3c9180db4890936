package review

import (
	"net/http"

	"lagoon/infras/otel"
	"lagoon/internal/domains/review/model"
	"lagoon/internal/domains/review/model/dto"
	"lagoon/internal/domains/review/service"
	"lagoon/shared/constant"
	gDto "lagoon/shared/dto"
	"lagoon/shared/validator"
	"lagoon/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReview)
		routerGroup.Get("/", handler.GetReviews)
		routerGroup.Delete("/{id}", handler.DeleteReview)
	})
}

// CreateReview posts a review for a facility.
// @Summary Create a review
// @Description Post a review for a facility. The caller must have a completed stay at the facility and may review it only once.
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Message "Review created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews [post]
// @Security BearerAuth
func (handler *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review created successfully")

	response.WithMessage(w, http.StatusCreated, "Review created successfully")
}

// GetReviews retrieves reviews with optional filters.
// @Summary Get reviews
// @Description Retrieve reviews with optional filtering and pagination.
// @Tags Review
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param facility_id query string false "Filter by facility ID"
// @Success 200 {object} response.Data[dto.GetReviewsResponse] "List of reviews"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	facilityID := r.URL.Query().Get(model.FieldFacilityID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if facilityID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFacilityID,
			Operator: gDto.FilterOperatorEq,
			Value:    facilityID,
			Table:    model.TableName,
		})
	}

	reviews, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reviews retrieved successfully")

	response.WithJSON(w, http.StatusOK, reviews)
}

// DeleteReview deletes a review.
// @Summary Delete a review
// @Description Delete a review. Only the author or an admin may delete it.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message "Review deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReview")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review deleted successfully")

	response.WithMessage(w, http.StatusOK, "Review deleted successfully")
}
