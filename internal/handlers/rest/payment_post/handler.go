package payment_post

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

	var paymentDTO dto.PaymentCreate
	if err := json.NewDecoder(r.Body).Decode(&paymentDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	method := entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(paymentDTO.Method)))

	payment, err := h.service.CreatePayment(r.Context(), caller, mux.Vars(r)["id"], method)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, convert.FromPayment(*payment))
}
