package trip

import (
	"jumatrek/infras/otel"
	"jumatrek/internal/domains/trip/model/dto"
	"jumatrek/internal/domains/trip/service"
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
	service    service.CustomTrip
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.CustomTrip, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/custom-trips", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Post("/", handler.CreateCustomTrip)
		routerGroup.Get("/my", handler.GetMyCustomTrips)
	})

	router.Route("/admin/custom-trips", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)
		routerGroup.Get("/", handler.GetCustomTrips)
		routerGroup.Get("/{id}", handler.GetCustomTripByID)
		routerGroup.Patch("/{id}/status", handler.UpdateCustomTripStatus)
		routerGroup.Post("/{id}/reply", handler.ReplyCustomTrip)
		routerGroup.Delete("/{id}", handler.DeleteCustomTrip)
	})
}

// CreateCustomTrip handles submission of a new custom trip request.
// @Summary Submit a custom trip request
// @Description Submit a new custom trip request owned by the authenticated user.
// @Tags CustomTrip
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomTripRequest true "Create Custom Trip Request"
// @Success 201 {object} response.Data[dto.CustomTripResponse] "Custom trip request created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/custom-trips [post]
// @Security BearerAuth
func (handler *Handler) CreateCustomTrip(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCustomTrip")
	defer scope.End()

	req := dto.CreateCustomTripRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create custom trip request")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Custom trip request created by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetMyCustomTrips retrieves the authenticated user's own requests.
// @Summary Get my custom trip requests
// @Description Retrieve all custom trip requests submitted by the authenticated user, newest first.
// @Tags CustomTrip
// @Produce json
// @Success 200 {object} response.Data[[]dto.CustomTripResponse] "List of own custom trip requests"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/custom-trips/my [get]
// @Security BearerAuth
func (handler *Handler) GetMyCustomTrips(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyCustomTrips")
	defer scope.End()

	res, err := handler.service.GetMine(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own custom trip requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCustomTrips retrieves all custom trip requests for moderation.
// @Summary Get all custom trip requests
// @Description Retrieve all custom trip requests with optional status filtering and pagination.
// @Tags CustomTrip
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, reviewed, replied, confirmed, archived, all)"
// @Success 200 {object} response.Data[dto.GetCustomTripsResponse] "List of custom trip requests"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/custom-trips [get]
// @Security BearerAuth
func (handler *Handler) GetCustomTrips(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomTrips")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(constant.RequestParamStatus)

	res, err := handler.service.GetAll(ctx, queryParams, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get custom trip requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Custom trip requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetCustomTripByID retrieves a single custom trip request.
// @Summary Get a custom trip request by ID
// @Description Retrieve a custom trip request with its resolved destination name.
// @Tags CustomTrip
// @Produce json
// @Param id path string true "Custom Trip Request ID"
// @Success 200 {object} response.Data[dto.CustomTripResponse] "Custom trip request"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/custom-trips/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCustomTripByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomTripByID")
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
		log.Error().Err(err).Msg("failed to get custom trip request")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateCustomTripStatus applies a moderation patch to a request.
// @Summary Update a custom trip request status
// @Description Update the status and/or admin notes of a custom trip request.
// @Tags CustomTrip
// @Accept json
// @Produce json
// @Param id path string true "Custom Trip Request ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.CustomTripResponse] "Updated custom trip request"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/custom-trips/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCustomTripStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCustomTripStatus")
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
		log.Error().Err(err).Msg("failed to update custom trip request status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Custom trip request status updated")

	response.WithJSON(writer, http.StatusOK, res)
}

// ReplyCustomTrip sends an email reply and records it on the request.
// @Summary Reply to a custom trip request
// @Description Send a reply email to the requester and mark the request as replied. The email must be delivered before any state is recorded.
// @Tags CustomTrip
// @Accept json
// @Produce json
// @Param id path string true "Custom Trip Request ID"
// @Param request body dto.ReplyRequest true "Reply Request"
// @Success 200 {object} response.Data[dto.CustomTripResponse] "Replied custom trip request"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/admin/custom-trips/{id}/reply [post]
// @Security BearerAuth
func (handler *Handler) ReplyCustomTrip(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplyCustomTrip")
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
		log.Error().Err(err).Msg("failed to reply to custom trip request")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Custom trip request replied")

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteCustomTrip permanently removes a request.
// @Summary Delete a custom trip request
// @Description Permanently delete a custom trip request.
// @Tags CustomTrip
// @Produce json
// @Param id path string true "Custom Trip Request ID"
// @Success 200 {object} response.Message "Custom trip request deleted"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/custom-trips/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCustomTrip(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCustomTrip")
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
		log.Error().Err(err).Msg("failed to delete custom trip request")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Custom trip request deleted successfully")
}
