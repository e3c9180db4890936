package booking

import (
	"context"
	"fmt"
	"net/http"

	"lagoon/infras/otel"
	"lagoon/internal/domains/booking/model"
	"lagoon/internal/domains/booking/model/dto"
	"lagoon/internal/domains/booking/service"
	"lagoon/shared/constant"
	gDto "lagoon/shared/dto"
	"lagoon/shared/failure"
	"lagoon/shared/validator"
	"lagoon/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RequestBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Get("/{id}/watch", handler.WatchBooking)
		routerGroup.Patch("/{id}/approve", handler.ApproveBooking)
		routerGroup.Patch("/{id}/decline", handler.DeclineBooking)
		routerGroup.Patch("/{id}/check-in", handler.CheckInBooking)
		routerGroup.Patch("/{id}/check-out", handler.CheckOutBooking)
		routerGroup.Patch("/{id}/complete", handler.CompleteBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// RequestBooking reserves a facility slot.
// @Summary Request a booking
// @Description Validate, price, and reserve a facility for a date range. Fails with 409 when the slot is taken.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking requested successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) RequestBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Request(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking requested for facility " + req.FacilityID)

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookings retrieves bookings visible to the caller.
// @Summary Get bookings
// @Description Retrieve bookings with optional filtering and pagination. Affiliates see their facilities' bookings, customers their own.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param facility_id query string false "Filter by facility ID"
// @Param status query string false "Filter by status (pending, approved, checked-in, checked-out, completed, declined)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	facilityID := r.URL.Query().Get(model.FieldFacilityID)
	status := r.URL.Query().Get(model.FieldStatus)

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

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// WatchBooking streams booking changes as server-sent events.
// @Summary Watch a booking
// @Description Stream booking status changes as server-sent events, starting with the current state, until the client disconnects.
// @Tags Booking
// @Produce text/event-stream
// @Param id path string true "Booking ID"
// @Success 200 {string} string "event stream"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/watch [get]
// @Security BearerAuth
func (handler *Handler) WatchBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".WatchBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.WithError(w, failure.InternalError(fmt.Errorf("streaming unsupported")))

		return
	}

	events := make(chan []byte, 8)

	unsubscribe, err := handler.service.Watch(ctx, id, func(payload []byte) {
		select {
		case events <- payload:
		default:
			// A slow client drops intermediate updates rather than
			// blocking the publisher.
		}
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to watch booking")

		response.WithError(w, err)

		return
	}
	defer unsubscribe()

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeEventStream)
	w.Header().Set(constant.RequestHeaderCacheControl, "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			scope.AddEvent("Booking watch closed by client")

			return
		case payload := <-events:
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}

// ApproveBooking moves a pending booking to approved.
// @Summary Approve a booking
// @Description Approve a pending booking. Only the owning affiliate may do this.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking approved successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/approve [patch]
// @Security BearerAuth
func (handler *Handler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "ApproveBooking", handler.service.Approve, "Booking approved successfully")
}

// DeclineBooking moves a pending booking to declined, releasing its slot.
// @Summary Decline a booking
// @Description Decline a pending booking, clearing its dates and freeing the slot.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking declined successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/decline [patch]
// @Security BearerAuth
func (handler *Handler) DeclineBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "DeclineBooking", handler.service.Decline, "Booking declined successfully")
}

// CheckInBooking moves an approved booking to checked-in.
// @Summary Check in a booking
// @Description Mark an approved booking as checked in.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking checked in successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/check-in [patch]
// @Security BearerAuth
func (handler *Handler) CheckInBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CheckInBooking", handler.service.CheckIn, "Booking checked in successfully")
}

// CheckOutBooking moves a checked-in booking to checked-out.
// @Summary Check out a booking
// @Description Mark a checked-in booking as checked out, stamping the departure time.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking checked out successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/check-out [patch]
// @Security BearerAuth
func (handler *Handler) CheckOutBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CheckOutBooking", handler.service.CheckOut, "Booking checked out successfully")
}

// CompleteBooking moves a checked-out booking to completed.
// @Summary Complete a booking
// @Description Mark a checked-out booking as completed, enabling reviews.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking completed successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/complete [patch]
// @Security BearerAuth
func (handler *Handler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CompleteBooking", handler.service.Complete, "Booking completed successfully")
}

// DeleteBooking soft-deletes a declined booking.
// @Summary Delete a booking
// @Description Hide a declined booking. Only the owning affiliate may do this.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "DeleteBooking", handler.service.SoftDelete, "Booking deleted successfully")
}

func (handler *Handler) transition(w http.ResponseWriter, r *http.Request, name string, apply func(ctx context.Context, id string) error, message string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := apply(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to transition booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent(message + " by user " + user)

	response.WithMessage(w, http.StatusOK, message)
}
