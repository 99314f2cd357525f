package routes_optimize_post

import (
	"encoding/json"
	"net/http"

	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/convert"
	"fulfillment/internal/handlers/rest/response"
	"fulfillment/internal/pkg/middlewares/auth"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		response.Unauthorized(w, h.log)
		return
	}

	var routeDTO dto.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&routeDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	origin := convert.ToWaypoint(routeDTO.Origin)
	stops := convert.ToWaypoints(routeDTO.Stops)

	route, err := h.service.OptimizeRoute(r.Context(), caller, origin, stops)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, convert.FromRoute(*route))
}
