package wallet_adjustment_post

import (
	"encoding/json"
	"net/http"
	"strings"

	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/convert"
	"fulfillment/internal/handlers/rest/response"
)

// Handler ручная корректировка баланса оператором.
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
	var adjustmentDTO dto.WalletAdjustment
	if err := json.NewDecoder(r.Body).Decode(&adjustmentDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	key := entities.WalletKey{
		OwnerID: strings.TrimSpace(adjustmentDTO.OwnerID),
		Kind:    entities.WalletKind(strings.ToUpper(adjustmentDTO.Kind)),
	}

	entry, err := h.service.Adjust(r.Context(), key, adjustmentDTO.Amount, adjustmentDTO.Note)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, convert.FromLedgerEntry(*entry))
}
