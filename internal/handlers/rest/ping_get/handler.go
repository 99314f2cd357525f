package ping_get

import (
	"net/http"
	"time"

	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/response"
)

type Handler struct {
	log handlerLogger
	now func() time.Time
}

func New(log handlerLogger) *Handler {
	return NewWithClock(log, time.Now)
}

func NewWithClock(log handlerLogger, now func() time.Time) *Handler {
	return &Handler{
		log: log.With(),
		now: now,
	}
}

// ServeHTTP отвечает pong и временем сервера в UTC, по нему сверяют расхождение часов
// с провайдером переводов.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, h.log, http.StatusOK, dto.Ping{
		Message:    "pong",
		ServerTime: h.now().UTC(),
	})
}
