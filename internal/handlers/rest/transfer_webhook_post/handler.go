package transfer_webhook_post

import (
	"encoding/json"
	"net/http"

	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/convert"
	"fulfillment/internal/handlers/rest/response"
	"fulfillment/pkg/logger"
)

// Handler вебхук провайдера о поступлении перевода. Дубли отвечают 200,
// чтобы провайдер перестал повторять доставку.
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
	var callbackDTO dto.TransferCallback
	if err := json.NewDecoder(r.Body).Decode(&callbackDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	callback, err := convert.ToTransferCallback(callbackDTO)
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	result, err := h.service.ConfirmFromCallback(r.Context(), callback)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("transfer callback applied",
		logger.NewField("order_ref", callback.OrderRef),
		logger.NewField("txn_id", callback.TxnID),
		logger.NewField("already_paid", result.AlreadyPaid),
	)

	response.JSON(w, h.log, http.StatusOK, convert.FromReconcileResult(*result))
}
