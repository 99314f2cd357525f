package order_post

import (
	"encoding/json"
	"net/http"
	"strings"

	"fulfillment/internal/entities"
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

	var orderDTO dto.OrderCreate
	if err := json.NewDecoder(r.Body).Decode(&orderDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	draft := entities.OrderDraft{
		ShopID:        orderDTO.ShopID,
		OwnerID:       orderDTO.OwnerID,
		PaymentMethod: entities.PaymentMethod(strings.ToUpper(orderDTO.PaymentMethod)),
		Total:         orderDTO.Total,
		ShippingFee:   orderDTO.ShippingFee,
	}

	order, err := h.service.CreateOrder(r.Context(), caller, draft)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, convert.FromOrder(*order))
}
