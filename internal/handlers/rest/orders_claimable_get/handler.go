package orders_claimable_get

import (
	"net/http"
	"strconv"

	"fulfillment/internal/handlers/rest/convert"
	"fulfillment/internal/handlers/rest/response"
)

const (
	defaultLimit = 20
	maxLimit     = 100
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
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, h.log, "limit must be a positive integer")
			return
		}
		limit = min(parsed, maxLimit)
	}

	orders, err := h.service.ListClaimable(r.Context(), limit)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, convert.FromOrders(orders))
}
