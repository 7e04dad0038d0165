package console

import (
	"net/http"
	"time"

	"innkeep/infras/otel"
	"innkeep/internal/domains/console/model/dto"
	"innkeep/internal/domains/console/service"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Console
	otel    otel.Otel
}

func New(service service.Console, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/console", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSnapshot)
		routerGroup.Put("/location", handler.SelectLocation)
		routerGroup.Post("/refresh", handler.Refresh)
		routerGroup.Get("/calendar", handler.GetCalendar)
	})
}

// GetSnapshot returns the current console state.
// @Summary Get the console snapshot
// @Description Retrieve the console state: locations, selected location, its rooms and bookings, and the load phase.
// @Tags Console
// @Accept json
// @Produce json
// @Success 200 {object} model.Snapshot "Console snapshot"
// @Failure 500 {object} response.Error
// @Router /v1/console [get]
// @Security BearerAuth
func (handler *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSnapshot")
	defer scope.End()

	snapshot := handler.service.Snapshot()

	scope.AddEvent("Console snapshot retrieved successfully")

	response.WithJSON(w, http.StatusOK, snapshot)
}

// SelectLocation switches the console to another location.
// @Summary Select the active location
// @Description Switch the console to the given location and reload its rooms and bookings.
// @Tags Console
// @Accept json
// @Produce json
// @Param request body dto.SelectLocationRequest true "Select Location Request"
// @Success 200 {object} response.Message "Location selected successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/console/location [put]
// @Security BearerAuth
func (handler *Handler) SelectLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectLocation")
	defer scope.End()

	req := dto.SelectLocationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SelectLocation(ctx, req.LocationID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to select location")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Location selected successfully")

	response.WithMessage(w, http.StatusOK, "Location selected successfully")
}

// Refresh reloads the console data on demand.
// @Summary Refresh the console data
// @Description Re-fetch locations, re-validate the selection, and reload the selected location's rooms and bookings.
// @Tags Console
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Console refreshed successfully"
// @Failure 500 {object} response.Error
// @Router /v1/console/refresh [post]
// @Security BearerAuth
func (handler *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Refresh")
	defer scope.End()

	if err := handler.service.Refresh(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh console")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Console refreshed successfully")

	response.WithMessage(w, http.StatusOK, "Console refreshed successfully")
}

// GetCalendar returns the weekly availability grid.
// @Summary Get the weekly availability grid
// @Description Build the 7-day occupancy grid for the selected location's rooms. The week containing the start date is shown; without a start date the current week is used.
// @Tags Console
// @Accept json
// @Produce json
// @Param start query string false "Any date inside the week to display (YYYY-MM-DD)"
// @Success 200 {object} dto.GridResponse "Weekly availability grid"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/console/calendar [get]
// @Security BearerAuth
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	anchor := timezone.Now()

	if start := r.URL.Query().Get("start"); start != "" {
		startDate, err := time.Parse(constant.CalendarDateFormat, start)
		if err != nil {
			scope.TraceError(failure.InvalidDateParam)
			log.Error().Err(err).Str("start", start).Msg("failed to parse calendar start date")

			response.WithError(w, failure.InvalidDateParam)

			return
		}

		anchor = startDate
	}

	grid := handler.service.WeekGrid(anchor)

	res := dto.GridResponse{}
	res.FromGrid(grid)

	scope.AddEvent("Weekly grid built successfully")

	response.WithJSON(w, http.StatusOK, res)
}
