package payout_reject_post

import (
	"encoding/json"
	"net/http"

	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/convert"
	"fulfillment/internal/handlers/rest/response"

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
	var reasonDTO dto.Reason
	if err := json.NewDecoder(r.Body).Decode(&reasonDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	request, err := h.service.RejectPayout(r.Context(), mux.Vars(r)["id"], reasonDTO.Reason)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, convert.FromWithdrawal(*request))
}
