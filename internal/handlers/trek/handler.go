package trek

import (
	"jumatrek/infras/otel"
	"jumatrek/internal/domains/trek/service"
	"jumatrek/shared/constant"
	"jumatrek/shared/failure"
	"jumatrek/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Trek
	otel    otel.Otel
}

func New(service service.Trek, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/treks", func(routerGroup chi.Router) {
		routerGroup.Get("/destination/{destination}", handler.GetTrekByDestination)
	})
}

// GetTrekByDestination resolves a destination key to a catalogue listing.
// @Summary Get a trek by destination key
// @Description Resolve a destination key (e.g. everest_base_camp) to its catalogue listing.
// @Tags Trek
// @Produce json
// @Param destination path string true "Destination key"
// @Success 200 {object} response.Data[dto.TrekResponse] "Trek listing"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/treks/destination/{destination} [get]
func (handler *Handler) GetTrekByDestination(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrekByDestination")
	defer scope.End()

	destination := chi.URLParam(r, constant.RequestParamDestination)
	if destination == "" {
		err := failure.BadRequestFromString("destination is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetByDestination(ctx, destination)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("destination", destination).Msg("failed to get trek by destination")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
