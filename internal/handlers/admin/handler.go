package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"safar/infras/otel"
	"safar/internal/domains/admin/service"
	"safar/shared/constant"
	"safar/transport/http/middleware"
	"safar/transport/http/response"
)

type Handler struct {
	service service.Admin
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Admin, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Authenticated)
		routerGroup.Use(handler.auth.AdminOnly)

		routerGroup.Get("/stats", handler.GetDashboardStats)
	})
}

// GetDashboardStats retrieves the back-office dashboard counters.
// @Summary Get dashboard statistics
// @Description Retrieve aggregate contact and booking counters plus confirmed revenue.
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.DashboardStats "Stats retrieved successfully"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/stats [get]
// @Security BearerAuth
func (handler *Handler) GetDashboardStats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboardStats")
	defer scope.End()

	res, err := handler.service.GetDashboardStats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
