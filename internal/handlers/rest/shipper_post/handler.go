package shipper_post

import (
	"encoding/json"
	"net/http"

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

	var shipperDTO dto.ShipperCreate
	if err := json.NewDecoder(r.Body).Decode(&shipperDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	shipperModify := entities.ShipperModify{
		Name:  shipperDTO.Name,
		Phone: shipperDTO.Phone,
	}
	// Опциональные параметры
	if shipperDTO.TransportType != nil {
		transportType := entities.ShipperTransportType(*shipperDTO.TransportType)
		shipperModify.TransportType = &transportType
	}

	shipper, err := h.service.CreateShipper(r.Context(), caller, shipperModify)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, convert.FromShipper(*shipper))
}
