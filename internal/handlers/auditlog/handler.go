package auditlog

import (
	"net/http"

	"lagoon/infras/otel"
	"lagoon/internal/domains/auditlog/model"
	"lagoon/internal/domains/auditlog/service"
	"lagoon/shared/constant"
	gDto "lagoon/shared/dto"
	"lagoon/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.AuditLog
	otel    otel.Otel
}

func New(service service.AuditLog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/audit-logs", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAuditLogs)
	})
}

// GetAuditLogs retrieves audit log entries.
// @Summary Get audit logs
// @Description Retrieve audit log entries with optional filtering and pagination. Admin only.
// @Tags AuditLog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param entity query string false "Filter by entity type (booking, facility, review)"
// @Param entity_id query string false "Filter by entity ID"
// @Param action query string false "Filter by action"
// @Success 200 {object} response.Data[dto.GetEntriesResponse] "List of audit log entries"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/audit-logs [get]
// @Security BearerAuth
func (handler *Handler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAuditLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	entity := r.URL.Query().Get(model.FieldEntity)
	entityID := r.URL.Query().Get(model.FieldEntityID)
	action := r.URL.Query().Get(model.FieldAction)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if entity != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEntity,
			Operator: gDto.FilterOperatorEq,
			Value:    entity,
			Table:    model.TableName,
		})
	}

	if entityID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEntityID,
			Operator: gDto.FilterOperatorEq,
			Value:    entityID,
			Table:    model.TableName,
		})
	}

	if action != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAction,
			Operator: gDto.FilterOperatorEq,
			Value:    action,
			Table:    model.TableName,
		})
	}

	entries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audit logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Audit logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, entries)
}
