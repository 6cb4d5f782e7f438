package inquiry

import (
	"jumatrek/infras/otel"
	"jumatrek/internal/domains/inquiry/model/dto"
	"jumatrek/internal/domains/inquiry/service"
	"jumatrek/shared/constant"
	gDto "jumatrek/shared/dto"
	"jumatrek/shared/failure"
	"jumatrek/shared/validator"
	"jumatrek/transport/http/middleware"
	"jumatrek/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Inquiry
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Inquiry, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inquiries", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.OptionalAuth)
		routerGroup.Post("/", handler.CreateInquiry)
	})

	router.Route("/admin/inquiries", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)
		routerGroup.Get("/", handler.GetInquiries)
		routerGroup.Get("/{id}", handler.GetInquiryByID)
		routerGroup.Patch("/{id}/status", handler.UpdateInquiryStatus)
		routerGroup.Post("/{id}/reply", handler.ReplyInquiry)
		routerGroup.Delete("/{id}", handler.DeleteInquiry)
	})
}

// CreateInquiry handles submission of a contact form message.
// @Summary Submit an inquiry
// @Description Submit a contact form inquiry. When authenticated, blank contact fields are filled in from the profile.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Create Inquiry Request"
// @Success 201 {object} response.Data[dto.InquiryResponse] "Inquiry created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries [post]
func (handler *Handler) CreateInquiry(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInquiry")
	defer scope.End()

	req := dto.CreateInquiryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inquiry")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Inquiry created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetInquiries retrieves all inquiries for moderation.
// @Summary Get all inquiries
// @Description Retrieve all inquiries with optional status filtering, free text search and pagination.
// @Tags Inquiry
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (new, read, replied, archived, all)"
// @Param search query string false "Case-insensitive substring match over name, email, subject and message"
// @Success 200 {object} response.Data[dto.GetInquiriesResponse] "List of inquiries"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/inquiries [get]
// @Security BearerAuth
func (handler *Handler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(constant.RequestParamStatus)
	search := r.URL.Query().Get(constant.RequestParamSearch)

	res, err := handler.service.GetAll(ctx, queryParams, status, search)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiries retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetInquiryByID retrieves a single inquiry.
// @Summary Get an inquiry by ID
// @Description Retrieve a single inquiry.
// @Tags Inquiry
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Data[dto.InquiryResponse] "Inquiry"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/inquiries/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetInquiryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if id == "" {
		err := failure.BadRequestFromString("id is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiry")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateInquiryStatus moves an inquiry through the moderation workflow.
// @Summary Update an inquiry status
// @Description Update the status of an inquiry.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.InquiryResponse] "Updated inquiry"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/inquiries/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateInquiryStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateInquiryStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if id == "" {
		err := failure.BadRequestFromString("id is required")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inquiry status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Inquiry status updated")

	response.WithJSON(writer, http.StatusOK, res)
}

// ReplyInquiry sends an email reply and records it on the inquiry.
// @Summary Reply to an inquiry
// @Description Send a reply email to the inquirer and mark the inquiry as replied. The email must be delivered before any state is recorded.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body dto.ReplyRequest true "Reply Request"
// @Success 200 {object} response.Data[dto.InquiryResponse] "Replied inquiry"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/admin/inquiries/{id}/reply [post]
// @Security BearerAuth
func (handler *Handler) ReplyInquiry(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplyInquiry")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if id == "" {
		err := failure.BadRequestFromString("id is required")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.ReplyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Reply(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reply to inquiry")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Inquiry replied")

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteInquiry permanently removes an inquiry.
// @Summary Delete an inquiry
// @Description Permanently delete an inquiry.
// @Tags Inquiry
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Message "Inquiry deleted"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/inquiries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteInquiry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if id == "" {
		err := failure.BadRequestFromString("id is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete inquiry")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Inquiry deleted successfully")
}
