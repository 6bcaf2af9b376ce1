package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"safar/infras/otel"
	"safar/internal/domains/contact/model/dto"
	"safar/internal/domains/contact/service"
	"safar/shared/constant"
	"safar/shared/validator"
	"safar/transport/http/middleware"
	"safar/transport/http/response"
)

type Handler struct {
	service service.Contact
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Contact, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/contact", handler.SubmitContact)

	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Authenticated)
		routerGroup.Use(handler.auth.AdminOnly)

		routerGroup.Get("/contacts", handler.GetContacts)
		routerGroup.Put("/contact/{id}", handler.UpdateContactStatus)
	})
}

// SubmitContact handles a contact form submission.
// @Summary Submit a contact form
// @Description Store a contact form submission from the marketing site.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.SubmitContactRequest true "Submit Contact Request"
// @Success 201 {object} dto.SubmitContactResponse "Contact submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact [post]
func (handler *Handler) SubmitContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitContact")
	defer scope.End()

	req := dto.SubmitContactRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit contact")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Contact submitted successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetContacts retrieves every contact submission, newest first.
// @Summary Get all contact submissions
// @Description Retrieve all contact submissions for the back-office, newest first.
// @Tags Contact
// @Produce json
// @Success 200 {object} dto.ContactsResponse "Contacts retrieved successfully"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contacts [get]
// @Security BearerAuth
func (handler *Handler) GetContacts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contacts")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateContactStatus updates the status of a contact submission.
// @Summary Update a contact submission status
// @Description Update the workflow status of a contact submission.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body dto.UpdateContactStatusRequest true "Update Contact Status Request"
// @Success 200 {object} dto.UpdateContactResponse "Contact updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateContactStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContactStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateContactStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update contact status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Contact status updated successfully")

	response.WithJSON(writer, http.StatusOK, res)
}
