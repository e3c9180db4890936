package favorite

import (
	"net/http"

	"lagoon/infras/otel"
	"lagoon/internal/domains/favorite/model/dto"
	"lagoon/internal/domains/favorite/service"
	"lagoon/shared/constant"
	gDto "lagoon/shared/dto"
	"lagoon/shared/validator"
	"lagoon/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Favorite
	otel    otel.Otel
}

func New(service service.Favorite, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/favorites", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.AddFavorite)
		routerGroup.Get("/", handler.GetFavorites)
		routerGroup.Delete("/{id}", handler.RemoveFavorite)
	})
}

// AddFavorite marks a facility as a favorite of the caller.
// @Summary Add a favorite
// @Description Mark a facility as a favorite of the authenticated customer.
// @Tags Favorite
// @Accept json
// @Produce json
// @Param request body dto.CreateFavoriteRequest true "Create Favorite Request"
// @Success 201 {object} response.Message "Favorite added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/favorites [post]
// @Security BearerAuth
func (handler *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddFavorite")
	defer scope.End()

	req := dto.CreateFavoriteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Add(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add favorite")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Favorite added successfully")

	response.WithMessage(w, http.StatusCreated, "Favorite added successfully")
}

// GetFavorites retrieves the caller's favorite facilities.
// @Summary Get favorites
// @Description Retrieve the authenticated customer's favorite facilities with pagination.
// @Tags Favorite
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetFavoritesResponse] "List of favorites"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/favorites [get]
// @Security BearerAuth
func (handler *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFavorites")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	favorites, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get favorites")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Favorites retrieved successfully")

	response.WithJSON(w, http.StatusOK, favorites)
}

// RemoveFavorite removes a facility from the caller's favorites.
// @Summary Remove a favorite
// @Description Remove a facility from the authenticated customer's favorites.
// @Tags Favorite
// @Accept json
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} response.Message "Favorite removed successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/favorites/{id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveFavorite")
	defer scope.End()

	facilityID := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Remove(ctx, facilityID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove favorite")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Favorite removed successfully")

	response.WithMessage(w, http.StatusOK, "Favorite removed successfully")
}
