package payout_post

import (
	"encoding/json"
	"net/http"
	"strings"

	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/convert"
	"fulfillment/internal/handlers/rest/response"
	"fulfillment/internal/pkg/apperr"
	"fulfillment/internal/pkg/middlewares/auth"

	"github.com/gorilla/mux"
)

var ErrWalletForbidden = apperr.Forbidden("wallet kind does not match caller role")

// Handler заявка на вывод средств. Выводить можно только со своего кошелька.
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

	kind := entities.WalletKind(strings.ToUpper(mux.Vars(r)["kind"]))
	if kind.Valid() && !caller.Is(kind.HolderRole()) {
		response.Error(w, h.log, ErrWalletForbidden)
		return
	}

	var payoutDTO dto.PayoutCreate
	if err := json.NewDecoder(r.Body).Decode(&payoutDTO); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	key := entities.WalletKey{OwnerID: caller.ID, Kind: kind}

	request, err := h.service.RequestPayout(r.Context(), key, payoutDTO.Amount, payoutDTO.BankAccount)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, convert.FromWithdrawal(*request))
}
