package order_status_post

import (
	"encoding/json"
	"net/http"
	"strings"

	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/convert"
	"fulfillment/internal/handlers/rest/response"
	"fulfillment/internal/pkg/middlewares/auth"

	"github.com/gorilla/mux"
)

// Handler переводит заказ в следующий статус. Кто может двигать какой шаг, решает сервис.
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

	var statusDTO dto.OrderStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	target := entities.OrderStatus(strings.ToUpper(strings.TrimSpace(statusDTO.Status)))

	order, err := h.service.Advance(r.Context(), caller, mux.Vars(r)["id"], target)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, convert.FromOrder(*order))
}
