package packages

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"safar/infras/otel"
	"safar/internal/domains/packages/model/dto"
	"safar/internal/domains/packages/service"
	"safar/shared/constant"
	"safar/shared/validator"
	"safar/transport/http/middleware"
	"safar/transport/http/response"
)

type Handler struct {
	service service.Package
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Package, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/packages", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPackages)
		routerGroup.Get("/{id}", handler.GetPackageByID)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.auth.Authenticated)
			adminGroup.Use(handler.auth.AdminOnly)

			adminGroup.Post("/", handler.CreatePackage)
		})
	})
}

// CreatePackage handles the creation of a new travel package.
// @Summary Create a new travel package
// @Description Create a new travel package. New packages are visible immediately.
// @Tags Package
// @Accept json
// @Produce json
// @Param request body dto.CreatePackageRequest true "Create Package Request"
// @Success 201 {object} dto.CreatePackageResponse "Package created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages [post]
// @Security BearerAuth
func (handler *Handler) CreatePackage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePackage")
	defer scope.End()

	req := dto.CreatePackageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create package")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Package created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetPackages retrieves active packages, optionally filtered by type.
// @Summary Get travel packages
// @Description Retrieve active travel packages, optionally filtered by type (hajj, umrah, study-abroad).
// @Tags Package
// @Produce json
// @Param type query string false "Package type filter"
// @Success 200 {object} dto.PackagesResponse "Packages retrieved successfully"
// @Failure 500 {object} response.Error
// @Router /v1/packages [get]
func (handler *Handler) GetPackages(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackages")
	defer scope.End()

	packageType := request.URL.Query().Get(constant.RequestParamType)

	res, err := handler.service.GetAll(ctx, packageType)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get packages")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetPackageByID retrieves a single package by its identifier.
// @Summary Get a travel package
// @Description Retrieve a single travel package by its identifier.
// @Tags Package
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} dto.PackageResponse "Package retrieved successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id} [get]
func (handler *Handler) GetPackageByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackageByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get package")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
