package order_get

import (
	"net/http"

	"fulfillment/internal/handlers/rest/convert"
	"fulfillment/internal/handlers/rest/response"
	"fulfillment/internal/pkg/middlewares/auth"

	"github.com/gorilla/mux"
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

	order, err := h.service.GetOrder(r.Context(), caller, mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, convert.FromOrder(*order))
}
