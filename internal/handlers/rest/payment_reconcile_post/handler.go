package payment_reconcile_post

import (
	"net/http"

	"fulfillment/internal/handlers/rest/convert"
	"fulfillment/internal/handlers/rest/response"
	"fulfillment/internal/pkg/middlewares/auth"

	"github.com/gorilla/mux"
)

// Handler ручная сверка перевода по выписке. Неоднозначный итог отдается 202:
// провайдер не ответил, запрос можно повторить.
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

	result, err := h.service.Reconcile(r.Context(), caller, mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	status := http.StatusOK
	if result.Inconclusive {
		status = http.StatusAccepted
	}
	response.JSON(w, h.log, status, convert.FromReconcileResult(*result))
}
